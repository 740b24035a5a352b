// Package entity contains the core business objects of the blogging platform.
package entity

import "time"

// User is a registered account. PasswordHash always holds a bcrypt hash, never the plaintext.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string // unique across all users, matched case-sensitively
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Summary returns the public view of the user, without the password hash.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}

	return &UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}

// UserSummary is what clients see of a user.
type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
