package sqlite

import (
	"context"
	"time"

	"github.com/mydayhq/myday/internal/diary/domain"
)

type diariesRepo struct {
	db dbtx
}

func (r *diariesRepo) CreateDiary(ctx context.Context, d domain.Diary) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO diaries (id, user_id, pub_date, text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.UserID, d.PubDate, d.Text, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *diariesRepo) GetDiaryByID(ctx context.Context, id string) (domain.Diary, error) {
	var d domain.Diary
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, pub_date, text, created_at FROM diaries WHERE id = ?`, id,
	).Scan(&d.ID, &d.UserID, &d.PubDate, &d.Text, &d.CreatedAt)
	if err != nil {
		return domain.Diary{}, mapNotFound(err)
	}
	return d, nil
}

func (r *diariesRepo) GetDiaryByUserAndDate(ctx context.Context, userID, pubDate string) (domain.Diary, error) {
	var d domain.Diary
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, pub_date, text, created_at FROM diaries
		 WHERE user_id = ? AND pub_date = ?`, userID, pubDate,
	).Scan(&d.ID, &d.UserID, &d.PubDate, &d.Text, &d.CreatedAt)
	if err != nil {
		return domain.Diary{}, mapNotFound(err)
	}
	return d, nil
}

func (r *diariesRepo) ListDiariesByUser(ctx context.Context, userID string) ([]domain.Diary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, pub_date, text, created_at FROM diaries
		 WHERE user_id = ? ORDER BY pub_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diaries []domain.Diary
	for rows.Next() {
		var d domain.Diary
		if err := rows.Scan(&d.ID, &d.UserID, &d.PubDate, &d.Text, &d.CreatedAt); err != nil {
			return nil, err
		}
		diaries = append(diaries, d)
	}
	return diaries, rows.Err()
}
