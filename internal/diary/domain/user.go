package domain

import "time"

type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string // argon2 encoded
	TwoFA        bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
