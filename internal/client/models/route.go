package models

import (
	"math"
	"time"
)

// Route is the ordered list of stops a card is rendered from: the first
// stop is the loading port, the last one the destination.
type Route []ShipStop

// RouteFor builds a Route from a sailing, filling in each stop's Sailing
// back-reference.
func RouteFor(s SailingWithStops) Route {
	r := make(Route, len(s.ShipStops))
	for i, st := range s.ShipStops {
		sailing := s.Sailing
		st.Sailing = &sailing
		r[i] = st
	}
	return r
}

// MilesForRoute sums the miles of every stop.
func MilesForRoute(r Route) float64 {
	var total float64
	for _, st := range r {
		total += st.Miles
	}
	return total
}

// DaysInTransit is the number of calendar days between the first and the
// last arrival. An empty route has zero days.
func DaysInTransit(r Route) int {
	if len(r) == 0 {
		return 0
	}
	return DaysBetween(r[0].ArrivalOn, r[len(r)-1].ArrivalOn)
}

// DaysBetween counts whole days between the calendar dates of a and b,
// ignoring the time of day. The result is never negative.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(math.Abs(db.Sub(da).Hours() / 24)))
}

// LoadingPort returns the first stop's port name.
func (r Route) LoadingPort() string {
	if len(r) == 0 || r[0].DeparturePort == nil {
		return ""
	}
	return r[0].DeparturePort.PortName
}

// DestinationPort returns the last stop's port name.
func (r Route) DestinationPort() string {
	if len(r) == 0 || r[len(r)-1].DeparturePort == nil {
		return ""
	}
	return r[len(r)-1].DeparturePort.PortName
}

// Name is the sailing name attached to the last stop.
func (r Route) Name() string {
	if len(r) == 0 || r[len(r)-1].Sailing == nil {
		return ""
	}
	return r[len(r)-1].Sailing.Name
}
