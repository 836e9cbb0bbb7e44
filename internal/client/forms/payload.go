package forms

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// FieldError is one normalised server (or local) validation error.
type FieldError struct {
	Field   string
	Message string
}

const fallbackMessage = "Invalid value"

// payloadShape says where in the data object the field errors live.
type payloadShape int

const (
	shapeNone        payloadShape = iota // not an object: nothing to reconcile
	shapeErrors                          // {"errors": {...}}
	shapeFieldErrors                     // {"fieldErrors": {...}}
	shapeFlat                            // {"field": ..., ...}
)

// classifyPayload decides the payload shape once and returns the JSON node
// holding the field → error map. Arrays count as objects: their indices
// become field names.
func classifyPayload(raw []byte) (payloadShape, gjson.Result) {
	if !gjson.ValidBytes(raw) {
		return shapeNone, gjson.Result{}
	}
	payload := gjson.ParseBytes(raw)
	if !isObjectLike(payload) {
		return shapeNone, gjson.Result{}
	}
	if errs := payload.Get("errors"); isObjectLike(errs) {
		return shapeErrors, errs
	}
	if errs := payload.Get("fieldErrors"); isObjectLike(errs) {
		return shapeFieldErrors, errs
	}
	return shapeFlat, payload
}

func isObjectLike(r gjson.Result) bool {
	return r.IsObject() || r.IsArray()
}

// normalizeFieldErrors flattens the error map into document order with a
// display message per field. topMessage is the envelope message, used when
// a value carries no usable text.
func normalizeFieldErrors(node gjson.Result, topMessage string) []FieldError {
	fallback := topMessage
	if fallback == "" {
		fallback = fallbackMessage
	}

	var out []FieldError
	seen := map[string]int{}
	idx := 0
	node.ForEach(func(key, value gjson.Result) bool {
		field := key.String()
		if node.IsArray() {
			field = strconv.Itoa(idx)
		}
		idx++
		fe := FieldError{Field: field, Message: displayMessage(value, fallback)}
		// a repeated key keeps its first position and its last value
		if i, dup := seen[field]; dup {
			out[i] = fe
			return true
		}
		seen[field] = len(out)
		out = append(out, fe)
		return true
	})
	return out
}

func displayMessage(v gjson.Result, fallback string) string {
	switch {
	case v.IsArray():
		first := v.Get("0")
		if !first.Exists() || first.Type == gjson.Null {
			return fallback
		}
		return stringify(first)
	case v.Type == gjson.String:
		return v.Str
	case v.Type == gjson.Number:
		return formatNumber(v.Num)
	default:
		return fallback
	}
}

// stringify renders an array element the way a form label would show it.
func stringify(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return formatNumber(v.Num)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	default:
		return v.Raw
	}
}

// formatNumber renders f the way a JavaScript engine converts a number to
// a string: shortest round-trip digits, plain notation for decimal
// exponents in [-6, 21), exponent notation with an explicit sign outside.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	// d.ddde±x
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mant, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	k, n := len(digits), e+1

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	expSign := "+"
	if n-1 < 0 {
		expSign = "-"
	}
	out := digits[:1]
	if k > 1 {
		out += "." + digits[1:]
	}
	return sign + out + "e" + expSign + strconv.Itoa(abs(n-1))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
