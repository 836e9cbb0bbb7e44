package models

import "time"

type Port struct {
	ID              string `json:"_id"`
	PortName        string `json:"portName"`
	DestinationName string `json:"destinationName"`
	ImageFileName   string `json:"imageFileName"`
}

type Sailing struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"isActive"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

type ShipStop struct {
	ID            string    `json:"_id"`
	SailingID     string    `json:"sailingId"`
	PortID        string    `json:"portId"`
	ShipID        string    `json:"shipId,omitempty"`
	ArrivalOn     time.Time `json:"arrivalOn"`
	DepartureOn   time.Time `json:"departureOn"`
	Miles         float64   `json:"miles"`
	DaysAtSea     int       `json:"daysAtSea"`
	DaysInPort    int       `json:"daysInPort"`
	DeparturePort *Port     `json:"departurePort,omitempty"`
	Sailing       *Sailing  `json:"sailing,omitempty"`
}

// SailingWithStops is a catalog entry: a sailing and its stops ordered by
// arrival.
type SailingWithStops struct {
	Sailing
	ShipStops []ShipStop `json:"shipStops"`
}

// FirstArrival is the arrival time of the first stop, zero without stops.
func (s SailingWithStops) FirstArrival() time.Time {
	if len(s.ShipStops) == 0 {
		return time.Time{}
	}
	return s.ShipStops[0].ArrivalOn
}
