package services

import (
	"context"
	"encoding/json"

	"github.com/zayats-yacht/yachtclient/internal/client/client"
	"github.com/zayats-yacht/yachtclient/internal/client/forms"
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/logging"
	"github.com/zayats-yacht/yachtclient/internal/validation"
)

// QuoteSubmission is everything the quote screen hands over on submit.
type QuoteSubmission struct {
	Form         models.QuoteRequest
	Errors       forms.ErrorSetter
	Positions    forms.FieldPositions
	Scroller     forms.Scroller
	ScrollOffset float64
}

// SubmitOutcome reports what happened to a submission. Exactly one of
// Accepted, Validation.Handled or Notice != "" holds.
type SubmitOutcome struct {
	Accepted bool
	ID       string

	// Validation is the reconciler result for field-level failures, either
	// found locally or reported by the API.
	Validation forms.Result
	// Local is set when the form never left the client.
	Local bool

	// Notice is the generic banner for failures without field detail.
	Notice   string
	Response models.ActionResult
}

type QuoteService interface {
	Submit(ctx context.Context, in QuoteSubmission) SubmitOutcome
}

type quoteService struct {
	client client.Client
	logger logging.Logger
}

func NewQuoteService(c client.Client, logger logging.Logger) QuoteService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &quoteService{client: c, logger: logger.With("component", "quote")}
}

func (s *quoteService) Submit(ctx context.Context, in QuoteSubmission) SubmitOutcome {
	if errs := forms.ValidateQuote(in.Form); len(errs) > 0 {
		res, err := validationEnvelope(errs)
		if err != nil {
			s.logger.Error(ctx, "local validation errors not encodable", "err", err)
			return SubmitOutcome{Local: true, Notice: MsgRequestFailed}
		}
		return SubmitOutcome{
			Validation: s.reconcile(res, in),
			Local:      true,
			Response:   res,
		}
	}

	res, err := s.client.PostQuoteRequest(ctx, in.Form)
	if err != nil {
		s.logger.Warn(ctx, "quote request failed", "err", err)
		res = models.ActionResult{Success: false, Message: MsgNetworkError}
	}

	if res.Success {
		var accepted models.QuoteAccepted
		if res.HasData() {
			if err := res.DecodeData(&accepted); err != nil {
				s.logger.Debug(ctx, "quote accepted without id", "err", err)
			}
		}
		s.logger.Info(ctx, "quote request accepted", "id", accepted.ID)
		return SubmitOutcome{Accepted: true, ID: accepted.ID, Response: res}
	}

	out := SubmitOutcome{Validation: s.reconcile(res, in), Response: res}
	if !out.Validation.Handled {
		s.logger.Info(ctx, "quote request rejected", "message", res.Message)
		out.Notice = MsgRequestFailed
	}
	return out
}

func (s *quoteService) reconcile(res models.ActionResult, in QuoteSubmission) forms.Result {
	return forms.Reconcile(forms.ReconcileInput{
		Response:     res,
		Errors:       in.Errors,
		Scroller:     in.Scroller,
		Positions:    in.Positions,
		ScrollOffset: in.ScrollOffset,
	})
}

// validationEnvelope shapes local validation errors like an API
// validation failure, keeping their order.
func validationEnvelope(errs []forms.FieldError) (models.ActionResult, error) {
	issues := make([]validation.Issue, 0, len(errs))
	for _, fe := range errs {
		issues = append(issues, validation.Issue{Field: fe.Field, Message: fe.Message})
	}
	data, err := validation.IssuesJSON(issues, false)
	if err != nil {
		return models.ActionResult{}, err
	}

	return models.ActionResult{
		Success: false,
		Message: common.ValidationErrorMessage,
		Data:    json.RawMessage(data),
	}, nil
}
