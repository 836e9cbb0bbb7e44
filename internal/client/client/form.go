package client

import (
	"net/url"
	"strings"

	"github.com/zayats-yacht/yachtclient/internal/client/models"
)

// FormField is one key/value of an ordered form body.
type FormField struct {
	Key   string
	Value string
}

// Form is a URL-form-encoded body that keeps insertion order, unlike
// url.Values.
type Form []FormField

func (f Form) Add(key, value string) Form {
	return append(f, FormField{Key: key, Value: value})
}

func (f Form) Encode() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}

// LoginForm is the credentials sign-in body.
func LoginForm(csrfToken string, creds models.Credentials) Form {
	return Form{}.
		Add("csrfToken", csrfToken).
		Add("email", creds.Email).
		Add("password", creds.Password).
		Add("callbackUrl", DefaultCallbackURL).
		Add("redirect", "false").
		Add("json", "true")
}

// SignOutForm is the sign-out body.
func SignOutForm(csrfToken string) Form {
	return Form{}.
		Add("csrfToken", csrfToken).
		Add("redirect", "false").
		Add("json", "true")
}
