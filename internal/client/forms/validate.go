package forms

import (
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/validation"
)

// ValidateQuote checks the quote form before it is sent. Errors come back in
// form order.
func ValidateQuote(q models.QuoteRequest) []FieldError {
	return validate(q, validation.QuoteMessages)
}

// ValidateCredentials checks the login form.
func ValidateCredentials(c models.Credentials) []FieldError {
	return validate(c, validation.LoginMessages)
}

// Apply writes errs into setter.
func Apply(setter ErrorSetter, errs []FieldError) {
	for _, fe := range errs {
		setter.SetError(fe.Field, fe.Message)
	}
}

func validate(v any, msgs validation.Messages) []FieldError {
	issues, err := validation.Struct(v, msgs)
	if err != nil {
		// only reachable with a non-struct argument
		panic(err)
	}
	out := make([]FieldError, 0, len(issues))
	for _, is := range issues {
		out = append(out, FieldError{Field: is.Field, Message: is.Message})
	}
	return out
}
