package services

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

// LoadSailings reads a catalog from a JSON file holding an array of
// sailings with their stops.
func LoadSailings(path string) ([]models.SailingWithStops, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sailings file: %w", err)
	}

	var list []models.SailingWithStops
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse sailings file %s: %w", path, err)
	}
	return list, nil
}

var (
	portFortLauderdale = models.Port{ID: "port-fll", PortName: "Port Everglades", DestinationName: "Fort Lauderdale", ImageFileName: "fort-lauderdale.jpg"}
	portPalma          = models.Port{ID: "port-pmi", PortName: "Club de Mar", DestinationName: "Palma de Mallorca", ImageFileName: "palma.jpg"}
	portGenoa          = models.Port{ID: "port-goa", PortName: "Porto Antico", DestinationName: "Genoa", ImageFileName: "genoa.jpg"}
	portSanJuan        = models.Port{ID: "port-sju", PortName: "San Juan Bay", DestinationName: "San Juan", ImageFileName: "san-juan.jpg"}
)

type leg struct {
	port       models.Port
	miles      float64
	daysAtSea  int
	daysInPort int
}

// DefaultSailings is the built-in development catalog, laid out relative
// to now so the schedule always has upcoming departures. The first entry
// has already sailed.
func DefaultSailings(now time.Time) []models.SailingWithStops {
	day := 24 * time.Hour
	start := now.UTC().Truncate(day).Add(10 * time.Hour)

	eastbound := []leg{
		{port: portFortLauderdale, daysInPort: 3},
		{port: portPalma, miles: 4210, daysAtSea: 14, daysInPort: 2},
		{port: portGenoa, miles: 435, daysAtSea: 2, daysInPort: 2},
	}
	westbound := []leg{
		{port: portGenoa, daysInPort: 3},
		{port: portPalma, miles: 435, daysAtSea: 2, daysInPort: 2},
		{port: portSanJuan, miles: 3640, daysAtSea: 12, daysInPort: 2},
		{port: portFortLauderdale, miles: 1010, daysAtSea: 4, daysInPort: 2},
	}

	return []models.SailingWithStops{
		buildSailing("sailing-past", "Winter Eastbound", true, start.Add(-40*day), eastbound),
		buildSailing("sailing-spring-east", "Spring Eastbound", true, start.Add(14*day), eastbound),
		buildSailing("sailing-autumn-west", "Autumn Westbound", true, start.Add(75*day), westbound),
		buildSailing("sailing-summer-west", "Summer Westbound", true, start.Add(45*day), westbound),
		buildSailing("sailing-cancelled", "Charter Special", false, start.Add(30*day), eastbound),
	}
}

func buildSailing(id, name string, active bool, firstArrival time.Time, legs []leg) models.SailingWithStops {
	day := 24 * time.Hour
	created := firstArrival.Add(-120 * day)

	sw := models.SailingWithStops{
		Sailing:   models.Sailing{ID: id, Name: name, IsActive: active, CreatedAt: &created},
		ShipStops: make([]models.ShipStop, 0, len(legs)),
	}

	arrival := firstArrival
	for i, l := range legs {
		if i > 0 {
			arrival = arrival.Add(time.Duration(l.daysAtSea) * day)
		}
		port := l.port
		departure := arrival.Add(time.Duration(l.daysInPort) * day)
		sw.ShipStops = append(sw.ShipStops, models.ShipStop{
			ID:            fmt.Sprintf("%s-stop-%d", id, i+1),
			SailingID:     id,
			PortID:        port.ID,
			ArrivalOn:     arrival,
			DepartureOn:   departure,
			Miles:         l.miles,
			DaysAtSea:     l.daysAtSea,
			DaysInPort:    l.daysInPort,
			DeparturePort: &port,
		})
		arrival = departure
	}
	return sw
}
