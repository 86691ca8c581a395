package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt encoded, never serialized
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary returns the externally visible subset of the user record.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// UserSummary is the public view of a user. It deliberately has no
// password field so a hash can never leak through serialization.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
