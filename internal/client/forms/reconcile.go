package forms

import (
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/common"
)

// ReconcileInput bundles what Reconcile needs. Errors, Scroller and
// Positions may be nil.
type ReconcileInput struct {
	Response     models.ActionResult
	Errors       ErrorSetter
	Scroller     Scroller
	Positions    FieldPositions
	ScrollOffset float64
}

// Result reports what Reconcile did. FirstErrorField is the first key of the
// server's error map; the scroll goes to the first errored field that has a
// recorded position, which can be a different field.
type Result struct {
	Handled         bool
	FirstErrorField string
	FieldErrors     []FieldError
	Scrolled        bool
	ScrollField     string
	ScrollY         float64
}

// Reconcile decides whether resp is a field-level validation failure and,
// if so, sets each field's error and scrolls to the first errored field
// with a known position. It does no I/O; the only side effects are the
// SetError and ScrollTo calls.
func Reconcile(in ReconcileInput) Result {
	resp := in.Response
	if resp.Success {
		return Result{}
	}
	if resp.Message != common.ValidationErrorMessage {
		return Result{}
	}
	if !resp.HasData() {
		return Result{}
	}

	shape, node := classifyPayload(resp.Data)
	if shape == shapeNone {
		return Result{}
	}

	fieldErrors := normalizeFieldErrors(node, resp.Message)
	if len(fieldErrors) == 0 {
		return Result{}
	}

	if in.Errors != nil {
		for _, fe := range fieldErrors {
			in.Errors.SetError(fe.Field, fe.Message)
		}
	}

	res := Result{
		Handled:         true,
		FirstErrorField: fieldErrors[0].Field,
		FieldErrors:     fieldErrors,
	}

	for _, fe := range fieldErrors {
		pos, ok := in.Positions[fe.Field]
		if !ok {
			continue
		}
		res.ScrollField = fe.Field
		res.ScrollY = max(0, pos-in.ScrollOffset)
		if in.Scroller != nil {
			in.Scroller.ScrollTo(0, res.ScrollY, true)
			res.Scrolled = true
		}
		break
	}

	return res
}
