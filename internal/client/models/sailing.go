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

// ShipStop is one port call of a sailing. DeparturePort and Sailing are
// populated by the schedule endpoints.
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

// SailingWithStops is a sailing with its ordered ship stops, as returned by
// GET sailings and GET schedule/nearest.
type SailingWithStops struct {
	Sailing
	ShipStops []ShipStop `json:"shipStops"`
}

// ScheduleState is what the schedule screen renders.
type ScheduleState struct {
	Schedule  []SailingWithStops
	IsLoading bool
	Error     string
	// Offline is set when Schedule came from the local cache because the
	// API was unreachable.
	Offline   bool
	FetchedAt time.Time
}
