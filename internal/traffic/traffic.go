// Package traffic models location demand: base traffic per location,
// day-of-week swings, event-day spikes, and the review reputation
// multiplier. Values here are hidden from players.
package traffic

import "github.com/lemonworks/lemonstand/internal/events"

// Location identifies a selling spot.
type Location string

const (
	Driveway         Location = "location_driveway"
	LocalPark        Location = "location_localpark"
	FleaMarket       Location = "location_fleamarket"
	DowntownPark     Location = "location_downtownpark"
	FarmersMarket    Location = "location_farmersmarket"
	ConventionCenter Location = "location_conventioncenter"
	Stadium          Location = "location_stadium"
)

// All lists every location in display order.
var All = []Location{
	Driveway, LocalPark, FleaMarket, DowntownPark,
	FarmersMarket, ConventionCenter, Stadium,
}

// Info describes a location for display and permit checks.
type Info struct {
	Name               string
	Description        string
	PermitRequired     bool
	PriceSensitivity   float64
	QualitySensitivity float64
}

var Catalog = map[Location]Info{
	Driveway: {
		Name:               "Your Driveway",
		Description:        "Sell from your own driveway. Free to use, no permit required!",
		PriceSensitivity:   0.9,
		QualitySensitivity: 0.7,
	},
	LocalPark: {
		Name:               "Local Park",
		Description:        "A quiet neighborhood park with families and dog walkers.",
		PermitRequired:     true,
		PriceSensitivity:   0.6,
		QualitySensitivity: 0.8,
	},
	FleaMarket: {
		Name:               "Flea Market",
		Description:        "Busy weekend market with bargain hunters.",
		PermitRequired:     true,
		PriceSensitivity:   0.7,
		QualitySensitivity: 0.9,
	},
	DowntownPark: {
		Name:               "Downtown Park",
		Description:        "Popular urban park with lunch crowds and tourists.",
		PermitRequired:     true,
		PriceSensitivity:   0.8,
		QualitySensitivity: 1.0,
	},
	FarmersMarket: {
		Name:               "Farmer's Market",
		Description:        "Premium market with health-conscious shoppers.",
		PermitRequired:     true,
		PriceSensitivity:   0.9,
		QualitySensitivity: 1.3,
	},
	ConventionCenter: {
		Name:               "Convention Center",
		Description:        "Large events with captive audiences.",
		PermitRequired:     true,
		PriceSensitivity:   1.2,
		QualitySensitivity: 1.1,
	},
	Stadium: {
		Name:               "Stadium",
		Description:        "Major sporting events with huge crowds.",
		PermitRequired:     true,
		PriceSensitivity:   1.5,
		QualitySensitivity: 0.6,
	},
}

// PermitCosts prices each permit. The driveway needs none.
var PermitCosts = map[Location]float64{
	LocalPark:        15.00,
	FleaMarket:       30.00,
	DowntownPark:     50.00,
	FarmersMarket:    75.00,
	ConventionCenter: 150.00,
	Stadium:          3000.00,
}

var baseTraffic = map[Location]float64{
	Driveway:         1.0,
	LocalPark:        1.5,
	FleaMarket:       0.3,
	DowntownPark:     1.0,
	FarmersMarket:    1.0,
	ConventionCenter: 0.5,
	Stadium:          0.5,
}

// Weekend boosts; all other location/day pairs are 1.0.
var dayOfWeekTraffic = map[Location]map[string]float64{
	Driveway:      {"Saturday": 1.5, "Sunday": 1.5},
	LocalPark:     {"Saturday": 2.5, "Sunday": 2.5},
	FleaMarket:    {"Sunday": 10.0},
	FarmersMarket: {"Saturday": 4.0},
}

const (
	conventionEventMultiplier = 10.0
	stadiumEventMultiplier    = 30.0
	downtownEventMultiplier   = 5.0
)

// Multiplier returns the combined traffic multiplier for a location on a
// given date: base x day-of-week x event-day.
func Multiplier(loc Location, dayName string, cal events.Calendar, month, day int) float64 {
	base, ok := baseTraffic[loc]
	if !ok {
		base = 1.0
	}

	dayMult := 1.0
	if days, ok := dayOfWeekTraffic[loc]; ok {
		if m, ok := days[dayName]; ok {
			dayMult = m
		}
	}

	eventMult := 1.0
	switch loc {
	case ConventionCenter:
		if hasDatedEvent(cal.ConventionEvents, month, day) {
			eventMult = conventionEventMultiplier
		}
	case Stadium:
		if hasDatedEvent(cal.StadiumEvents, month, day) {
			eventMult = stadiumEventMultiplier
		}
	case DowntownPark:
		if hasDatedEvent(cal.DowntownEvents, month, day) {
			eventMult = downtownEventMultiplier
		}
	}

	return base * dayMult * eventMult
}

func hasDatedEvent(evs []events.Event, month, day int) bool {
	for _, e := range evs {
		if e.Month == month && e.Day == day {
			return true
		}
	}
	return false
}

// ReviewMultiplier maps a location's average star rating to a traffic
// multiplier. Locations with no reviews get 1.0.
func ReviewMultiplier(avgRating float64) float64 {
	switch {
	case avgRating <= 0:
		return 1.0
	case avgRating >= 4.8:
		return 1.5
	case avgRating >= 4.5:
		return 1.24
	case avgRating >= 4.0:
		return 1.1
	case avgRating >= 3.0:
		return 1.0
	case avgRating >= 2.0:
		return 0.7
	default:
		return 0.5
	}
}
