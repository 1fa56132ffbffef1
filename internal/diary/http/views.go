package http

import (
	"time"

	"github.com/mydayhq/myday/internal/diary/domain"
	"github.com/mydayhq/myday/internal/diary/service"
)

// UserView is the public shape of an account.
type UserView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	TwoFA       bool      `json:"two_fa"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserView(u domain.User) UserView {
	return UserView{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		TwoFA:       u.TwoFA,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
	}
}

// TokenView is the login/refresh response body. The access/refresh key names
// match what existing clients already parse.
type TokenView struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	TokenType string `json:"token_type"`
	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`
}

func toTokenView(p *domain.TokenPair) TokenView {
	return TokenView{
		Access:    p.AccessToken,
		Refresh:   p.RefreshToken,
		TokenType: p.TokenType,
		ExpiresIn: int(p.ExpiresIn.Seconds()),
	}
}

// TodoView includes the human-readable status label next to the raw value.
type TodoView struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	StatusDisplay string    `json:"status_display"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toTodoView(t domain.Todo) TodoView {
	return TodoView{
		ID:            t.ID,
		UserID:        t.UserID,
		Title:         t.Title,
		Description:   t.Description,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		Status:        string(t.Status),
		StatusDisplay: t.Status.Display(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toTodoViews(ts []domain.Todo) []TodoView {
	out := make([]TodoView, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTodoView(t))
	}
	return out
}

// DiaryView is a diary entry with the todos that start on its date.
type DiaryView struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	PubDate   string     `json:"pub_date"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	Todos     []TodoView `json:"todos"`
}

func toDiaryView(d domain.Diary, todos []domain.Todo) DiaryView {
	return DiaryView{
		ID:        d.ID,
		UserID:    d.UserID,
		PubDate:   d.PubDate,
		Text:      d.Text,
		CreatedAt: d.CreatedAt,
		Todos:     toTodoViews(todos),
	}
}

func toDiaryViews(ds []service.DiaryWithTodos) []DiaryView {
	out := make([]DiaryView, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDiaryView(d.Diary, d.Todos))
	}
	return out
}
