package validation

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// IssuesJSON encodes issues as one JSON object keyed by field, keeping
// their order. With asList every message is wrapped in a one-element array,
// which is how the API reports errors under data.errors.
func IssuesJSON(issues []Issue, asList bool) ([]byte, error) {
	out := []byte(`{}`)
	for _, is := range issues {
		var msg any = is.Message
		if asList {
			msg = []string{is.Message}
		}

		var err error
		out, err = sjson.SetBytes(out, objectKey(is.Field), msg)
		if err != nil {
			return nil, fmt.Errorf("encode issue %q: %w", is.Field, err)
		}
	}
	return out, nil
}

// objectKey turns a field name into a one-component sjson path. Numeric
// names get the ':' prefix so they stay object keys.
func objectKey(field string) string {
	k := gjson.Escape(field)
	if isDigits(k) {
		return ":" + k
	}
	return k
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
