package domain

import "time"

// DateLayout is the calendar-date form used for diary pub dates and the
// todo list date filter.
const DateLayout = "2006-01-02"

// Diary is a single free-text entry. At most one exists per (user, pub date)
// pair, enforced by a unique constraint in the store.
type Diary struct {
	ID        string
	UserID    string
	PubDate   string // YYYY-MM-DD
	Text      string
	CreatedAt time.Time
}
