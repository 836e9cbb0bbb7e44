package models

// Length and weight units accepted by the quote form.
const (
	LengthMeters = "meters"
	LengthFeet   = "feet"

	WeightMetricTons = "metricTons"
	WeightLbs        = "lbs"
)

// LengthUnitLabel and WeightUnitLabel are the human labels of the units.
var (
	LengthUnitLabel = map[string]string{LengthMeters: "Meters", LengthFeet: "Feet"}
	WeightUnitLabel = map[string]string{WeightMetricTons: "Metric Tons", WeightLbs: "Lbs"}
)

// PurposeOfTransport maps purpose keys to labels, in form order.
var PurposeOfTransport = []struct{ Key, Label string }{
	{"boatShow", "Boat Show"},
	{"charter", "Charter"},
	{"purchaseSale", "Purchase/Sale"},
	{"yardWork", "Yard Work"},
	{"fishingTournament", "Fishing Tournament"},
	{"regatta", "Regatta"},
	{"other", "Other"},
}

// QuoteRequest is the quote form payload POSTed to quote-request. Field
// order is the order the form renders its inputs.
type QuoteRequest struct {
	FirstName         string   `json:"firstName" validate:"required"`
	LastName          string   `json:"lastName" validate:"required"`
	PhoneNumber       string   `json:"phoneNumber" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	BestTimeToContact string   `json:"bestTimeToContact"`
	Purpose           string   `json:"purpose" validate:"omitempty,oneof=boatShow charter purchaseSale yardWork fishingTournament regatta other"`
	YachtName         string   `json:"yachtName"`
	YachtModel        string   `json:"yachtModel"`
	InsuredValue      *float64 `json:"insuredValue" validate:"required,gte=0"`
	Length            *float64 `json:"length" validate:"omitempty,gte=0"`
	LengthUnit        string   `json:"lengthUnit" validate:"omitempty,oneof=meters feet"`
	Beam              *float64 `json:"beam" validate:"omitempty,gte=0"`
	BeamUnit          string   `json:"beamUnit" validate:"omitempty,oneof=meters feet"`
	Weight            *float64 `json:"weight" validate:"omitempty,gte=0"`
	WeightUnit        string   `json:"weightUnit" validate:"omitempty,oneof=metricTons lbs"`
	FromWhere         string   `json:"fromWhere"`
	ToWhere           string   `json:"toWhere"`
	When              string   `json:"when"`
	Notes             string   `json:"notes"`
}

// QuoteFields lists the form's field keys in render order.
var QuoteFields = []string{
	"firstName", "lastName", "phoneNumber", "email", "bestTimeToContact",
	"purpose", "yachtName", "yachtModel", "insuredValue",
	"length", "lengthUnit", "beam", "beamUnit", "weight", "weightUnit",
	"fromWhere", "toWhere", "when", "notes",
}

// DefaultQuoteRequest is the blank form.
func DefaultQuoteRequest() QuoteRequest {
	zero := func() *float64 { v := 0.0; return &v }
	return QuoteRequest{
		InsuredValue: zero(),
		Length:       zero(),
		LengthUnit:   LengthMeters,
		Beam:         zero(),
		BeamUnit:     LengthMeters,
		Weight:       zero(),
		WeightUnit:   WeightMetricTons,
	}
}

// QuoteAccepted is the data of a successful quote-request response.
type QuoteAccepted struct {
	ID string `json:"id"`
}
