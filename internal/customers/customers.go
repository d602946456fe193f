// Package customers generates the daily customer population for a location
// and models per-customer purchase decisions: cup size, price tolerance,
// tips, and reviews.
package customers

import (
	"math"

	"github.com/google/uuid"

	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/events"
	"github.com/lemonworks/lemonstand/internal/traffic"
	"github.com/lemonworks/lemonstand/internal/weather"
)

// Customer is one potential buyer in a day's crowd.
type Customer struct {
	ID             string  `json:"id"`
	ThirstLevel    int     `json:"thirst_level"`
	DesiredQuality int     `json:"desired_quality"`
	MaxPricePerOz  float64 `json:"max_price_per_oz"`
}

// Daily is the generated crowd for one location on one day. It is computed
// once per sell session so the preview and the serving loop see the same
// people.
type Daily struct {
	Location          traffic.Location `json:"location"`
	TotalCount        int              `json:"total_count"`
	BaseCount         int              `json:"base_count"`
	TrafficMultiplier float64          `json:"traffic_multiplier"`
	ReviewMultiplier  float64          `json:"review_multiplier"`
	Customers         []Customer       `json:"customers"`
}

const (
	baseCountMin = 50
	baseCountMax = 60

	thirstMin = 20
	thirstMax = 30

	qualityExpectationMin = 80
	qualityExpectationMax = 100
)

// tempModifier adjusts thirst and quality expectations by temperature band.
type tempModifier struct {
	thirst             float64
	qualityMinIncrease int
}

func tempModifierFor(temp int) tempModifier {
	switch {
	case temp <= 49:
		return tempModifier{-0.6, 15}
	case temp <= 59:
		return tempModifier{-0.3, 10}
	case temp <= 69:
		return tempModifier{0, 5}
	case temp <= 79:
		return tempModifier{0.07, 0}
	case temp <= 89:
		return tempModifier{0.15, -10}
	case temp <= 100:
		return tempModifier{0.7, -20}
	default:
		return tempModifier{0.9, -30}
	}
}

// priceTier maps a thirst band to the most a customer pays per ounce.
type priceTier struct {
	thirstMin, thirstMax int
	maxPricePerOz        float64
}

var priceTiers = []priceTier{
	{0, 19, 0.15},
	{20, 25, 0.20},
	{26, 39, 0.30},
	{40, 59, 0.50},
	{60, 60, 0.80},
	{61, 999, 1.25},
}

// MaxPriceForThirst returns the per-ounce price ceiling for a thirst level.
func MaxPriceForThirst(thirst int) float64 {
	for _, t := range priceTiers {
		if thirst >= t.thirstMin && thirst <= t.thirstMax {
			return t.maxPricePerOz
		}
	}
	return priceTiers[0].maxPricePerOz
}

// tierThreshold is the floor of the customer's price tier, used to judge
// how far over their band they are.
func tierThreshold(thirst int) int {
	for _, t := range priceTiers {
		if thirst >= t.thirstMin && thirst <= t.thirstMax {
			return t.thirstMin
		}
	}
	return 20
}

// Generate builds the crowd for a location. Thirst and quality expectations
// shift with temperature and weather; headcount scales with traffic, the
// location's review reputation, and owned upgrade bonuses.
func Generate(src entropy.Source, loc traffic.Location, temp int, wtype weather.Type,
	dayName string, cal events.Calendar, month, day int,
	reviewMult, upgradeBonus float64) Daily {

	mod := tempModifierFor(temp)
	thirstAdjust := int(math.Round((mod.thirst + weather.ThirstModifier(wtype)) * thirstMax))

	trafficMult := traffic.Multiplier(loc, dayName, cal, month, day)
	baseCount := src.IntBetween(baseCountMin, baseCountMax)
	total := int(math.Round(float64(baseCount) * trafficMult * reviewMult * (1 + upgradeBonus)))

	crowd := make([]Customer, 0, total)
	for i := 0; i < total; i++ {
		thirst := src.IntBetween(thirstMin, thirstMax) + thirstAdjust
		if thirst < 0 {
			thirst = 0
		}
		quality := src.IntBetween(qualityExpectationMin, qualityExpectationMax) + mod.qualityMinIncrease
		if quality < 0 {
			quality = 0
		}
		if quality > 100 {
			quality = 100
		}
		crowd = append(crowd, Customer{
			ID:             uuid.NewString(),
			ThirstLevel:    thirst,
			DesiredQuality: quality,
			MaxPricePerOz:  MaxPriceForThirst(thirst),
		})
	}

	return Daily{
		Location:          loc,
		TotalCount:        total,
		BaseCount:         baseCount,
		TrafficMultiplier: trafficMult,
		ReviewMultiplier:  reviewMult,
		Customers:         crowd,
	}
}
