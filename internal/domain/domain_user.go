package domain

import "time"

// User is a registered account.
type User struct {
	ID        int64
	Email     string
	Username  string
	Password  string
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
