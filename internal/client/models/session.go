// Package models defines the client-side data types: the auth session,
// the API response envelope, sailings and the quote-request form.
package models

import "time"

// Credentials are what the login form collects.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// UserInfo identifies the signed-in user. Name and Image are optional on
// the server side and stay nil when absent.
type UserInfo struct {
	ID        string
	Email     string
	Name      *string
	Image     *string
	ExpiresAt time.Time
}

// DisplayName prefers the user's name and falls back to the email.
func (u *UserInfo) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}

// Session is the client's view of the authentication state.
// IsAuthenticated implies UserInfo != nil.
type Session struct {
	IsAuthenticated bool
	UserInfo        *UserInfo
	IsValidating    bool
	Error           string
}

// DefaultSession is the logged-out, idle state.
func DefaultSession() Session {
	return Session{}
}

// LoggedOutWithError is the default state carrying err.
func LoggedOutWithError(err string) Session {
	s := DefaultSession()
	s.Error = err
	return s
}

// Clone returns a copy that shares no pointers with s.
func (s Session) Clone() Session {
	if s.UserInfo == nil {
		return s
	}
	u := *s.UserInfo
	if u.Name != nil {
		n := *u.Name
		u.Name = &n
	}
	if u.Image != nil {
		i := *u.Image
		u.Image = &i
	}
	s.UserInfo = &u
	return s
}

// SessionUser is the "user" object of GET auth/session.
type SessionUser struct {
	Email string  `json:"email"`
	ID    string  `json:"id"`
	Image *string `json:"image"`
	Name  *string `json:"name"`
}

// SessionResponse is the body of GET auth/session. An anonymous session is
// an empty object, so User is nil.
type SessionResponse struct {
	User    *SessionUser `json:"user,omitempty"`
	Expires string       `json:"expires,omitempty"`
}

// CSRFResponse is the body of GET auth/csrf.
type CSRFResponse struct {
	CSRFToken string `json:"csrfToken"`
}
