package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zayats-yacht/yachtclient/internal/client/forms"
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/common"
)

type recordingScroller struct {
	Ys []float64
}

func (r *recordingScroller) ScrollTo(x, y float64, animated bool) { r.Ys = append(r.Ys, y) }

func validQuote() models.QuoteRequest {
	q := models.DefaultQuoteRequest()
	q.FirstName = "John"
	q.LastName = "Doe"
	q.PhoneNumber = "+13055550199"
	q.Email = "john.doe@example.com"
	q.FromWhere = "Palma"
	q.ToWhere = "Fort Lauderdale"
	return q
}

func TestSubmit_Accepted(t *testing.T) {
	fc := &fakeClient{QuoteRes: models.ActionResult{Success: true, Data: json.RawMessage(`{"id":"q-42"}`)}}
	st := forms.NewFormState()

	out := NewQuoteService(fc, nil).Submit(context.Background(), QuoteSubmission{Form: validQuote(), Errors: st})

	assert.True(t, out.Accepted)
	assert.Equal(t, "q-42", out.ID)
	assert.Empty(t, out.Notice)
	assert.False(t, st.HasErrors())
	assert.Equal(t, validQuote(), fc.LastQuote)
}

func TestSubmit_LocalValidationNeverPosts(t *testing.T) {
	fc := &fakeClient{}
	st := forms.NewFormState()
	sc := &recordingScroller{}
	q := validQuote()
	q.FirstName = ""
	q.Email = "nope"

	out := NewQuoteService(fc, nil).Submit(context.Background(), QuoteSubmission{
		Form:         q,
		Errors:       st,
		Scroller:     sc,
		Positions:    forms.FieldPositions{"email": 300},
		ScrollOffset: 40,
	})

	assert.Zero(t, fc.QuoteCalls)
	assert.True(t, out.Local)
	assert.True(t, out.Validation.Handled)
	assert.Equal(t, "firstName", out.Validation.FirstErrorField)
	assert.Equal(t, []forms.FieldError{
		{Field: "firstName", Message: "First Name is required"},
		{Field: "email", Message: "Must be valid email"},
	}, st.Errors())
	assert.Equal(t, []float64{260}, sc.Ys)
}

func TestSubmit_ServerValidationIsReconciled(t *testing.T) {
	fc := &fakeClient{QuoteRes: models.ActionResult{
		Success: false,
		Message: common.ValidationErrorMessage,
		Data:    json.RawMessage(`{"errors":{"phoneNumber":["Phone is required"]}}`),
	}}
	st := forms.NewFormState()

	out := NewQuoteService(fc, nil).Submit(context.Background(), QuoteSubmission{Form: validQuote(), Errors: st})

	assert.False(t, out.Local)
	assert.True(t, out.Validation.Handled)
	assert.Empty(t, out.Notice)
	msg, ok := st.Error("phoneNumber")
	require.True(t, ok)
	assert.Equal(t, "Phone is required", msg)
}

func TestSubmit_UnrecognisedFailureShowsNotice(t *testing.T) {
	fc := &fakeClient{QuoteRes: models.ActionResult{Success: false, Message: "Quota exceeded"}}
	st := forms.NewFormState()

	out := NewQuoteService(fc, nil).Submit(context.Background(), QuoteSubmission{Form: validQuote(), Errors: st})

	assert.False(t, out.Validation.Handled)
	assert.Equal(t, MsgRequestFailed, out.Notice)
	assert.Equal(t, "Quota exceeded", out.Response.Message)
	assert.False(t, st.HasErrors())
}

func TestSubmit_TransportFailureBecomesNetworkError(t *testing.T) {
	fc := &fakeClient{QuoteErr: unavailable()}

	out := NewQuoteService(fc, nil).Submit(context.Background(), QuoteSubmission{Form: validQuote(), Errors: forms.NewFormState()})

	assert.False(t, out.Accepted)
	assert.Equal(t, MsgRequestFailed, out.Notice)
	assert.Equal(t, models.ActionResult{Success: false, Message: MsgNetworkError}, out.Response)
}

func TestValidationEnvelope_KeepsOrder(t *testing.T) {
	res, err := validationEnvelope([]forms.FieldError{{Field: "b", Message: `say "hi"`}, {Field: "a", Message: "x"}})
	require.NoError(t, err)
	assert.Equal(t, common.ValidationErrorMessage, res.Message)
	assert.JSONEq(t, `{"b":"say \"hi\"","a":"x"}`, string(res.Data))
	assert.Equal(t, `{"b":"say \"hi\"","a":"x"}`, string(res.Data))
}
