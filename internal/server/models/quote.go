package models

import "time"

// QuoteRequest is the body of POST quote-request. Field order is form
// order and drives the order of validation errors.
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

// Quote is a stored quote request.
type Quote struct {
	ID        string
	Request   QuoteRequest
	CreatedAt time.Time
}
