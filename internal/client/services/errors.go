package services

import "errors"

// ErrOperationInProgress is returned when Login or Logout is called while
// another auth operation has not finished yet.
var ErrOperationInProgress = errors.New("auth operation already in progress")

// Messages stored in Session.Error.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgLoginFailed        = "Login failed"
	MsgFetchUserFailed    = "Failed to fetch user info"
	MsgLogoutFailed       = "Logout failed"
)

// Messages shown by the schedule and quote screens.
const (
	MsgSailingsFailed = "Failed to get sailings"
	MsgNetworkError   = "Network error"
	MsgRequestFailed  = "Request failed"
)
