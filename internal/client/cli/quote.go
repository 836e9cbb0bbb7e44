package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zayats-yacht/yachtclient/internal/client/forms"
	"github.com/zayats-yacht/yachtclient/internal/client/models"
	"github.com/zayats-yacht/yachtclient/internal/client/services"
)

// Layout of the quote screen, in terminal "pixels": every input is one row
// of rowHeight below the header.
const (
	rowHeight    = 56.0
	headerHeight = 120.0
	cancelWord   = "cancel"
)

type quoteInput struct {
	Key       string
	Label     string
	Options   []string
	Multiline bool
}

var quoteInputs = []quoteInput{
	{Key: "firstName", Label: "First Name"},
	{Key: "lastName", Label: "Last Name"},
	{Key: "phoneNumber", Label: "Phone"},
	{Key: "email", Label: "Email"},
	{Key: "bestTimeToContact", Label: "Best time to contact"},
	{Key: "purpose", Label: "Purpose of transport", Options: purposeKeys()},
	{Key: "yachtName", Label: "Yacht name"},
	{Key: "yachtModel", Label: "Yacht model"},
	{Key: "insuredValue", Label: "Insured value"},
	{Key: "length", Label: "Length"},
	{Key: "lengthUnit", Label: "Length unit", Options: []string{models.LengthMeters, models.LengthFeet}},
	{Key: "beam", Label: "Beam"},
	{Key: "beamUnit", Label: "Beam unit", Options: []string{models.LengthMeters, models.LengthFeet}},
	{Key: "weight", Label: "Weight"},
	{Key: "weightUnit", Label: "Weight unit", Options: []string{models.WeightMetricTons, models.WeightLbs}},
	{Key: "fromWhere", Label: "From where"},
	{Key: "toWhere", Label: "To where"},
	{Key: "when", Label: "When"},
	{Key: "notes", Label: "Notes", Multiline: true},
}

func purposeKeys() []string {
	keys := make([]string, 0, len(models.PurposeOfTransport))
	for _, p := range models.PurposeOfTransport {
		keys = append(keys, p.Key)
	}
	return keys
}

// layoutPositions records where each input would be drawn.
func layoutPositions() forms.FieldPositions {
	pos := forms.FieldPositions{}
	for i, in := range quoteInputs {
		pos.Record(in.Key, headerHeight+float64(i)*rowHeight)
	}
	return pos
}

// terminalScroller turns a scroll request into a pointer at the input that
// sits at that offset.
type terminalScroller struct {
	app       *App
	positions forms.FieldPositions
	offset    float64
}

func (s terminalScroller) ScrollTo(_, y float64, _ bool) {
	for _, in := range quoteInputs {
		if p, ok := s.positions[in.Key]; ok && max(0, p-s.offset) == y {
			s.app.printf("-> %s\n", in.Label)
			return
		}
	}
}

// Quote runs the quote request form until it is accepted, rejected with a
// generic notice, or cancelled.
func (a *App) Quote(ctx context.Context) error {
	a.printf("Request a quote (type %q to leave)\n", cancelWord)

	form := models.DefaultQuoteRequest()
	for _, in := range quoteInputs {
		if ok, err := a.askQuoteField(&form, in); err != nil || !ok {
			return err
		}
	}

	positions := layoutPositions()
	for {
		state := forms.NewFormState()
		out := a.quoteService.Submit(ctx, services.QuoteSubmission{
			Form:         form,
			Errors:       state,
			Positions:    positions,
			Scroller:     terminalScroller{app: a, positions: positions, offset: headerHeight},
			ScrollOffset: headerHeight,
		})

		switch {
		case out.Accepted:
			if out.ID != "" {
				a.printf("Thank you! Your request %s was sent\n", out.ID)
			} else {
				a.printf("Thank you! Your request was sent\n")
			}
			return nil
		case out.Notice != "":
			a.printf("%s\n", out.Notice)
			return nil
		}

		errs := state.Errors()
		for _, fe := range errs {
			a.printf("  %s: %s\n", labelFor(fe.Field), fe.Message)
		}
		for _, in := range quoteInputs {
			if _, failed := state.Error(in.Key); !failed {
				continue
			}
			if ok, err := a.askQuoteField(&form, in); err != nil || !ok {
				return err
			}
		}
		if !anyKnownField(errs) {
			// nothing the user can fix from here
			a.printf("%s\n", services.MsgRequestFailed)
			return nil
		}
	}
}

// askQuoteField prompts for one input until it parses. It reports false
// when the user cancels.
func (a *App) askQuoteField(form *models.QuoteRequest, in quoteInput) (bool, error) {
	prompt := in.Label
	if len(in.Options) > 0 {
		prompt = fmt.Sprintf("%s (%s)", in.Label, strings.Join(in.Options, ", "))
	}
	for {
		var v string
		var err error
		if in.Multiline {
			v, err = AskLines(a.reader, prompt, a.out)
		} else {
			v, err = askDefault(a.reader, prompt, quoteFieldValue(*form, in.Key), a.out)
		}
		if err != nil {
			return false, err
		}
		if v == cancelWord {
			return false, nil
		}
		if err := setQuoteField(form, in.Key, v); err != nil {
			a.printf("  %s\n", err)
			continue
		}
		return true, nil
	}
}

func labelFor(key string) string {
	for _, in := range quoteInputs {
		if in.Key == key {
			return in.Label
		}
	}
	return key
}

func anyKnownField(errs []forms.FieldError) bool {
	for _, fe := range errs {
		if labelFor(fe.Field) != fe.Field {
			return true
		}
	}
	return false
}

func quoteFieldValue(q models.QuoteRequest, key string) string {
	num := func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}
	switch key {
	case "firstName":
		return q.FirstName
	case "lastName":
		return q.LastName
	case "phoneNumber":
		return q.PhoneNumber
	case "email":
		return q.Email
	case "bestTimeToContact":
		return q.BestTimeToContact
	case "purpose":
		return q.Purpose
	case "yachtName":
		return q.YachtName
	case "yachtModel":
		return q.YachtModel
	case "insuredValue":
		return num(q.InsuredValue)
	case "length":
		return num(q.Length)
	case "lengthUnit":
		return q.LengthUnit
	case "beam":
		return num(q.Beam)
	case "beamUnit":
		return q.BeamUnit
	case "weight":
		return num(q.Weight)
	case "weightUnit":
		return q.WeightUnit
	case "fromWhere":
		return q.FromWhere
	case "toWhere":
		return q.ToWhere
	case "when":
		return q.When
	case "notes":
		return q.Notes
	}
	return ""
}

func setQuoteField(q *models.QuoteRequest, key, v string) error {
	num := func(dst **float64) error {
		if v == "" {
			*dst = nil
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", labelFor(key))
		}
		*dst = &f
		return nil
	}
	switch key {
	case "firstName":
		q.FirstName = v
	case "lastName":
		q.LastName = v
	case "phoneNumber":
		q.PhoneNumber = v
	case "email":
		q.Email = v
	case "bestTimeToContact":
		q.BestTimeToContact = v
	case "purpose":
		q.Purpose = v
	case "yachtName":
		q.YachtName = v
	case "yachtModel":
		q.YachtModel = v
	case "insuredValue":
		return num(&q.InsuredValue)
	case "length":
		return num(&q.Length)
	case "lengthUnit":
		q.LengthUnit = v
	case "beam":
		return num(&q.Beam)
	case "beamUnit":
		q.BeamUnit = v
	case "weight":
		return num(&q.Weight)
	case "weightUnit":
		q.WeightUnit = v
	case "fromWhere":
		q.FromWhere = v
	case "toWhere":
		q.ToWhere = v
	case "when":
		q.When = v
	case "notes":
		q.Notes = v
	default:
		return fmt.Errorf("unknown field %q", key)
	}
	return nil
}
