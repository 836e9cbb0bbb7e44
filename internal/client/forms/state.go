package forms

import "sync"

// ErrorSetter receives one message per failing field.
type ErrorSetter interface {
	SetError(field, message string)
}

// Scroller is the scroll container of a form screen.
type Scroller interface {
	ScrollTo(x, y float64, animated bool)
}

// FieldPositions maps a field name to the vertical offset of its input, as
// reported by the input's layout callback. It is rebuilt on every render.
type FieldPositions map[string]float64

// Record stores the offset measured for field.
func (p FieldPositions) Record(field string, y float64) {
	p[field] = y
}

// FormState keeps the error slot of each field. Errors are remembered in
// the order they were set so screens can list them.
type FormState struct {
	mu     sync.Mutex
	order  []string
	errors map[string]string
}

func NewFormState() *FormState {
	return &FormState{errors: map[string]string{}}
}

func (s *FormState) SetError(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.errors[field]; !ok {
		s.order = append(s.order, field)
	}
	s.errors[field] = message
}

// Error returns the message of field, if any.
func (s *FormState) Error(field string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.errors[field]
	return m, ok
}

// Errors returns the field errors in the order they were first set.
func (s *FormState) Errors() []FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FieldError, 0, len(s.order))
	for _, f := range s.order {
		out = append(out, FieldError{Field: f, Message: s.errors[f]})
	}
	return out
}

func (s *FormState) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errors) > 0
}

// ClearErrors empties every error slot, e.g. before a new submit.
func (s *FormState) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.errors = map[string]string{}
}
