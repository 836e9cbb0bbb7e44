package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuesJSON(t *testing.T) {
	issues := []Issue{
		{Field: "phoneNumber", Message: "Phone is required"},
		{Field: "email", Message: `Must be "valid" email`},
		{Field: "firstName", Message: "First Name is required"},
	}

	tests := []struct {
		name   string
		issues []Issue
		asList bool
		want   string
	}{
		{
			name:   "plain messages in given order",
			issues: issues,
			want:   `{"phoneNumber":"Phone is required","email":"Must be \"valid\" email","firstName":"First Name is required"}`,
		},
		{
			name:   "messages as lists",
			issues: issues[:2],
			asList: true,
			want:   `{"phoneNumber":["Phone is required"],"email":["Must be \"valid\" email"]}`,
		},
		{
			name:   "dotted and numeric names stay single keys",
			issues: []Issue{{Field: "stops.0", Message: "x"}, {Field: "7", Message: "y"}},
			want:   `{"stops.0":"x","7":"y"}`,
		},
		{
			name: "no issues",
			want: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IssuesJSON(tt.issues, tt.asList)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMessageTables(t *testing.T) {
	type quoteForm struct {
		FirstName string `json:"firstName" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
	}

	issues, err := Struct(quoteForm{Email: "nope"}, QuoteMessages)
	require.NoError(t, err)
	assert.Equal(t, []Issue{
		{Field: "firstName", Tag: "required", Message: "First Name is required"},
		{Field: "email", Tag: "email", Message: "Must be valid email"},
	}, issues)

	type login struct {
		Password string `json:"password" validate:"required,strongpassword"`
	}
	issues, err = Struct(login{Password: "weakpass"}, LoginMessages)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Please create a stronger password", issues[0].Message)
}
