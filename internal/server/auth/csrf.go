package auth

import (
	"crypto/subtle"

	"github.com/zayats-yacht/yachtclient/internal/common"
)

const csrfTokenSize = 32

// NewCSRFToken returns a random hex token for the double-submit check.
func NewCSRFToken() (string, error) {
	return common.MakeRandHexString(csrfTokenSize)
}

// CheckCSRF reports whether the token posted in the form matches the one
// held in the cookie.
func CheckCSRF(cookieToken, formToken string) bool {
	if cookieToken == "" || formToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(formToken)) == 1
}
