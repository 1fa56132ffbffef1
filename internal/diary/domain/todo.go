package domain

import "time"

// TodoStatus enumerates the lifecycle states of a todo item.
type TodoStatus string

const (
	StatusNotStarted TodoStatus = "not_started"
	StatusInProgress TodoStatus = "in_progress" // schema-only; no API transition reaches it
	StatusCompleted  TodoStatus = "completed"
)

// Display returns the human-readable label for a status.
func (s TodoStatus) Display() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Todo is a time-boxed task owned directly by a user. StartTime must precede
// EndTime; this is checked at creation only.
type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Status      TodoStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
