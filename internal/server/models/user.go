// Package models defines the server-side records: users, quote requests
// and the sailing catalog.
package models

import "time"

type User struct {
	ID           string
	Email        string
	Name         *string
	Image        *string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Session is a verified sign-in: the user and when the cookie stops
// being accepted.
type Session struct {
	User      *User
	ExpiresAt time.Time
}
