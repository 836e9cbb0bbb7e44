package client

// API paths, relative to the API base URL.
const (
	PathCSRFToken       = "auth/csrf"
	PathSignIn          = "auth/callback/credentials"
	PathSession         = "auth/session"
	PathSignOut         = "auth/signout"
	PathSailings        = "sailings"
	PathNearestSailings = "schedule/nearest"
	PathQuoteRequest    = "quote-request"
)

// DefaultCallbackURL is sent as callbackUrl on sign-in.
const DefaultCallbackURL = "/"
