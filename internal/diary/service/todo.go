package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mydayhq/myday/internal/diary/domain"
	"github.com/mydayhq/myday/internal/diary/store"
	"github.com/mydayhq/myday/pkg/idx"
)

type TodoService struct {
	Store store.Store
}

// CreateTodoParams carries the validated-at-the-edge todo fields. Times are
// the raw RFC 3339 strings from the request.
type CreateTodoParams struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
}

// Create validates and stores a new todo with status not_started.
func (s *TodoService) Create(ctx context.Context, userID string, p CreateTodoParams) (domain.Todo, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return domain.Todo{}, Validation("Title is required.")
	}

	start, err := time.Parse(time.RFC3339, p.StartTime)
	if err != nil {
		return domain.Todo{}, Validation("Invalid start_time. Use RFC 3339 format.")
	}
	end, err := time.Parse(time.RFC3339, p.EndTime)
	if err != nil {
		return domain.Todo{}, Validation("Invalid end_time. Use RFC 3339 format.")
	}
	if !start.Before(end) {
		return domain.Todo{}, Validation("Start time must be before end time")
	}

	now := time.Now().UTC()
	t := domain.Todo{
		ID:          idx.New().String(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(p.Description),
		StartTime:   start.UTC(),
		EndTime:     end.UTC(),
		Status:      domain.StatusNotStarted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Todos().CreateTodo(ctx, t); err != nil {
		return domain.Todo{}, err
	}
	return t, nil
}

// List returns the user's todos ordered by start time descending. A non-empty
// date filters to todos whose start time falls on that UTC calendar day.
func (s *TodoService) List(ctx context.Context, userID, date string) ([]domain.Todo, error) {
	if date == "" {
		return s.Store.Todos().ListTodosByUser(ctx, userID)
	}

	day, err := time.ParseInLocation(domain.DateLayout, date, time.UTC)
	if err != nil {
		return nil, Validation("Invalid date format. Use YYYY-MM-DD.")
	}
	return s.Store.Todos().ListTodosByUserBetween(ctx, userID, day, day.Add(24*time.Hour))
}

// SetCompleted flips a todo between completed and not_started. The operation
// is idempotent; repeating it keeps the same status.
func (s *TodoService) SetCompleted(ctx context.Context, userID, todoID string, completed bool) (domain.Todo, error) {
	t, err := s.Store.Todos().GetTodoByIDAndUser(ctx, todoID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Todo{}, ErrTodoNotFound
		}
		return domain.Todo{}, err
	}

	status := domain.StatusNotStarted
	if completed {
		status = domain.StatusCompleted
	}

	if err := s.Store.Todos().UpdateTodoStatus(ctx, todoID, userID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Todo{}, ErrTodoNotFound
		}
		return domain.Todo{}, err
	}

	t.Status = status
	return t, nil
}

// Delete removes a todo owned by the user.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	if err := s.Store.Todos().DeleteTodo(ctx, todoID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return nil
}
