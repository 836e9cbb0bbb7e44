package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleSailing() SailingWithStops {
	return SailingWithStops{
		Sailing: Sailing{ID: "s1", Name: "Caribbean Spring", IsActive: true},
		ShipStops: []ShipStop{
			{ID: "a", ArrivalOn: day("2026-03-01T18:00:00Z"), Miles: 0, DeparturePort: &Port{PortName: "Fort Lauderdale"}},
			{ID: "b", ArrivalOn: day("2026-03-05T02:00:00Z"), Miles: 1200.5, DeparturePort: &Port{PortName: "Golfito"}},
			{ID: "c", ArrivalOn: day("2026-03-11T09:30:00Z"), Miles: 900, DeparturePort: &Port{PortName: "Ensenada"}},
		},
	}
}

func TestRouteFor_FillsSailingBackReference(t *testing.T) {
	r := RouteFor(sampleSailing())
	require.Len(t, r, 3)
	for _, st := range r {
		require.NotNil(t, st.Sailing)
		assert.Equal(t, "Caribbean Spring", st.Sailing.Name)
	}
	assert.Equal(t, "Caribbean Spring", r.Name())
	assert.Equal(t, "Fort Lauderdale", r.LoadingPort())
	assert.Equal(t, "Ensenada", r.DestinationPort())
}

func TestMilesForRoute(t *testing.T) {
	assert.InDelta(t, 2100.5, MilesForRoute(RouteFor(sampleSailing())), 1e-9)
	assert.Zero(t, MilesForRoute(nil))
}

func TestDaysInTransit_IgnoresTimeOfDay(t *testing.T) {
	assert.Equal(t, 10, DaysInTransit(RouteFor(sampleSailing())))
	assert.Zero(t, DaysInTransit(nil))
}

func TestDaysBetween_Symmetric(t *testing.T) {
	a := day("2026-01-31T23:59:00Z")
	b := day("2026-02-01T00:01:00Z")
	assert.Equal(t, 1, DaysBetween(a, b))
	assert.Equal(t, 1, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestEmptyRouteAccessors(t *testing.T) {
	var r Route
	assert.Empty(t, r.Name())
	assert.Empty(t, r.LoadingPort())
	assert.Empty(t, r.DestinationPort())
}
