// Package client is the HTTP transport the rest of the client talks to the
// yacht transport API through.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the auth
//     endpoints (CSRF, credentials sign-in, session, sign-out), the sailing
//     schedule and quote submission.
//  2. HTTPClient, a net/http implementation that keeps cookies in a jar (the
//     session lives in an HttpOnly cookie), sends JSON by default and
//     URL-form-encoded bodies to the auth endpoints.
//
// # Error Handling
//
// Transport failures (DNS, refused connection, timeouts, cancelled contexts)
// are reported as ErrUnavailable. Non-2xx answers to JSON queries come back as
// *StatusError, which matches ErrUnexpectedStatus. Bodies that do not decode
// match ErrDecode. The sign-in and sign-out calls return the status code
// instead, because callers branch on it.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use; the cookie jar is shared.
package client
