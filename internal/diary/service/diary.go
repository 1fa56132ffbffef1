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

type DiaryService struct {
	Store store.Store

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DiaryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// DiaryWithTodos pairs a diary entry with the owner's todos whose start time
// falls on the entry's date.
type DiaryWithTodos struct {
	Diary domain.Diary
	Todos []domain.Todo
}

// Create writes today's entry for the user. Text is trimmed; an empty result
// or an existing entry for today both fail.
func (s *DiaryService) Create(ctx context.Context, userID, text string) (domain.Diary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Diary{}, Validation("Diary text must not be empty.")
	}

	now := s.now().UTC()
	d := domain.Diary{
		ID:        idx.New().String(),
		UserID:    userID,
		PubDate:   now.Format(domain.DateLayout),
		Text:      text,
		CreatedAt: now,
	}

	if err := s.Store.Diaries().CreateDiary(ctx, d); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Diary{}, ErrDiaryExists
		}
		return domain.Diary{}, err
	}

	return d, nil
}

// List returns all of the user's entries, newest date first, each with the
// todos that start on the entry's date.
func (s *DiaryService) List(ctx context.Context, userID string) ([]DiaryWithTodos, error) {
	diaries, err := s.Store.Diaries().ListDiariesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]DiaryWithTodos, 0, len(diaries))
	for _, d := range diaries {
		todos, err := s.todosOnDate(ctx, userID, d.PubDate)
		if err != nil {
			return nil, err
		}
		out = append(out, DiaryWithTodos{Diary: d, Todos: todos})
	}
	return out, nil
}

// GetToday returns the user's entry for the current date, with its todos.
func (s *DiaryService) GetToday(ctx context.Context, userID string) (DiaryWithTodos, error) {
	today := s.now().UTC().Format(domain.DateLayout)

	d, err := s.Store.Diaries().GetDiaryByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DiaryWithTodos{}, ErrDiaryNotFound
		}
		return DiaryWithTodos{}, err
	}

	todos, err := s.todosOnDate(ctx, userID, d.PubDate)
	if err != nil {
		return DiaryWithTodos{}, err
	}

	return DiaryWithTodos{Diary: d, Todos: todos}, nil
}

// ListTodosForDiary returns the todos shown alongside a diary entry: the
// owner's todos starting on the entry's date. The diary must belong to the
// requesting user.
func (s *DiaryService) ListTodosForDiary(ctx context.Context, userID, diaryID string) ([]domain.Todo, error) {
	d, err := s.Store.Diaries().GetDiaryByID(ctx, diaryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDiaryNotFound
		}
		return nil, err
	}
	if d.UserID != userID {
		// Unowned entries are indistinguishable from missing ones.
		return nil, ErrDiaryNotFound
	}

	return s.todosOnDate(ctx, userID, d.PubDate)
}

func (s *DiaryService) todosOnDate(ctx context.Context, userID, date string) ([]domain.Todo, error) {
	day, err := time.ParseInLocation(domain.DateLayout, date, time.UTC)
	if err != nil {
		return nil, err
	}
	return s.Store.Todos().ListTodosByUserBetween(ctx, userID, day, day.Add(24*time.Hour))
}
