package models

import (
	"bytes"
	"encoding/json"
)

// ActionResult is the envelope returned by the API for form submissions
// and data queries. Data is kept raw: its shape depends on Success and
// Message.
type ActionResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// HasData reports whether Data holds anything other than JSON null.
func (r ActionResult) HasData() bool {
	d := bytes.TrimSpace(r.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// DecodeData unmarshals Data into v.
func (r ActionResult) DecodeData(v any) error {
	return json.Unmarshal(r.Data, v)
}
