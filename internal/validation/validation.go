// Package validation configures go-playground/validator the way both the
// client forms and the API server use it: field names are JSON names,
// "strongpassword" is available, and failures come back as an ordered list
// of (field, message) pairs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Issue is one failed field. Field is the JSON name.
type Issue struct {
	Field   string
	Tag     string
	Message string
}

// Messages maps "field.tag" (or just "tag") to the text shown to the user.
type Messages map[string]string

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared, configured validator.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		if err := v.RegisterValidation("strongpassword", strongPassword); err != nil {
			panic(err)
		}
		instance = v
	})
	return instance
}

// Struct validates s and returns its issues in struct field order. A nil
// result means s is valid.
func Struct(s any, msgs Messages) ([]Issue, error) {
	err := Validator().Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	issues := make([]Issue, 0, len(verrs))
	seen := map[string]struct{}{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		issues = append(issues, Issue{Field: field, Tag: fe.Tag(), Message: msgs.lookup(fe)})
	}
	return issues, nil
}

func (m Messages) lookup(fe validator.FieldError) string {
	if msg, ok := m[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := m[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Must be valid email"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	default:
		return "Invalid value"
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// strongPassword: at least 8 characters with an ASCII digit, an ASCII
// lower-case and an ASCII upper-case letter. Other scripts count towards
// the length only.
func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len([]rune(s)) < 8 {
		return false
	}
	var digit, lower, upper bool
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digit = true
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		}
	}
	return digit && lower && upper
}

// IsStrongPassword exposes the password rule to callers outside struct
// validation.
func IsStrongPassword(s string) bool {
	return Validator().Var(s, "strongpassword") == nil
}
