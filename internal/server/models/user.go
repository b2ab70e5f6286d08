// Package models holds the server-side persistence and response types.
package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table. Role is filled by the schema default and
// is never assigned by the server.
type User struct {
	ID           int64          `db:"id"`
	Name         sql.NullString `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Role         string         `db:"role"`
	CreatedAt    time.Time      `db:"created_at"`
}

// Profile is the public view of a user returned by /api/me.
type Profile struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
}

// Profile strips the password hash and bookkeeping columns.
func (u *User) Profile() *Profile {
	p := &Profile{ID: u.ID, Email: u.Email, Role: u.Role}
	if u.Name.Valid {
		name := u.Name.String
		p.Name = &name
	}
	return p
}
