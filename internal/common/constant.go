// Package common contains constants and helpers shared by the client and
// the development API server.
package common

// ValidationErrorMessage is the envelope message the API uses to say that a
// failed response carries per-field validation errors in its data.
const ValidationErrorMessage = "Validation error"

// Cookie names used by the auth endpoints.
const (
	SessionCookieName = "yacht.session-token"
	CSRFCookieName    = "yacht.csrf-token"
)
