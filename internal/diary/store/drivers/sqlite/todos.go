package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/mydayhq/myday/internal/diary/domain"
	"github.com/mydayhq/myday/internal/diary/store"
)

type todosRepo struct {
	db dbtx
}

const todoColumns = `id, user_id, title, description, start_time, end_time, status, created_at, updated_at`

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (id, user_id, title, description, start_time, end_time, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Description,
		t.StartTime.UTC(), t.EndTime.UTC(), string(t.Status), now, now,
	)
	return mapConstraint(err)
}

func (r *todosRepo) GetTodoByIDAndUser(ctx context.Context, id, userID string) (domain.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	return scanTodo(row)
}

func (r *todosRepo) ListTodosByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = ? ORDER BY start_time DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

func (r *todosRepo) ListTodosByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos
		 WHERE user_id = ? AND start_time >= ? AND start_time < ?
		 ORDER BY start_time DESC`,
		userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	return collectTodos(rows)
}

func (r *todosRepo) UpdateTodoStatus(ctx context.Context, id, userID string, status domain.TodoStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET status = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		string(status), time.Now().UTC(), id, userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected turns a zero-row mutation into ErrNotFound so ownership
// misses and missing rows are indistinguishable.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanTodo(row *sql.Row) (domain.Todo, error) {
	var t domain.Todo
	var status string
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description,
		&t.StartTime, &t.EndTime, &status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	t.Status = domain.TodoStatus(status)
	return t, nil
}

func collectTodos(rows *sql.Rows) ([]domain.Todo, error) {
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var t domain.Todo
		var status string
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description,
			&t.StartTime, &t.EndTime, &status,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		t.Status = domain.TodoStatus(status)
		todos = append(todos, t)
	}
	return todos, rows.Err()
}
