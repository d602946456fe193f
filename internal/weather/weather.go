// Package weather generates the full-season weather timeline and heatwave
// schedule at game-reset time. The timeline is generated once, stored in the
// game document, and looked up by (month, day) thereafter.
package weather

// Type is a daily weather condition.
type Type string

const (
	Sunny        Type = "sunny"
	PartlyCloudy Type = "partly_cloudy"
	Cloudy       Type = "cloudy"
	Rainy        Type = "rainy"
)

// Info holds the display and gameplay attributes of a weather type.
type Info struct {
	Name           string  `json:"name"`
	Multiplier     float64 `json:"multiplier"`
	ThirstModifier float64 `json:"thirst_modifier"`
}

// Types maps each weather type to its attributes.
var Types = map[Type]Info{
	Sunny:        {Name: "Sunny", Multiplier: 1.5, ThirstModifier: 0.3},
	PartlyCloudy: {Name: "Partly Cloudy", Multiplier: 1.2, ThirstModifier: 0.15},
	Cloudy:       {Name: "Cloudy", Multiplier: 0.9, ThirstModifier: 0},
	Rainy:        {Name: "Rainy", Multiplier: 0.3, ThirstModifier: -0.2},
}

// ThirstModifier returns the thirst adjustment for a weather type.
// Unknown types behave like sunny.
func ThirstModifier(t Type) float64 {
	if info, ok := Types[t]; ok {
		return info.ThirstModifier
	}
	return Types[Sunny].ThirstModifier
}

// Daily is one day's entry in the pregenerated season timeline. Info carries
// the weather type's attributes inline so a stored timeline is
// self-describing.
type Daily struct {
	Month      int  `json:"month"`
	Day        int  `json:"day"`
	Temp       int  `json:"temp"`
	Weather    Type `json:"weather_type"`
	Info       Info `json:"weather_info"`
	IsHeatwave bool `json:"is_heatwave"`
}

// Heatwave is a multi-day forced-heat event in a summer month.
type Heatwave struct {
	Month    int    `json:"month"`
	StartDay int    `json:"start_day"`
	EndDay   int    `json:"end_day"`
	Duration int    `json:"duration"`
	Name     string `json:"name"`
}

// Covers reports whether the heatwave is active on the given date.
func (h Heatwave) Covers(month, day int) bool {
	return h.Month == month && day >= h.StartDay && day <= h.EndDay
}

// tempRange bounds daily temperatures within a month.
type tempRange struct {
	min, max int
}

// Monthly temperature bands, Fahrenheit. The season runs March through
// October; there is no November–February play.
var tempRanges = map[int]tempRange{
	3:  {55, 75},
	4:  {60, 80},
	5:  {70, 95},
	6:  {75, 95},
	7:  {79, 98},
	8:  {79, 98},
	9:  {60, 85},
	10: {45, 70},
}

// heatwaveRange overrides the monthly band on heatwave days.
var heatwaveRange = tempRange{99, 115}

// Day-to-day temperature deltas. Small moves dominate.
var tempChangeOptions = []int{1, 1, 1, 1, 2, 2, 3, 4, 5}

// bucketProbs assigns weather-type percentages for one temperature bucket.
// Percentages sum to 100.
type bucketProbs struct {
	sunny, partlyCloudy, cloudy, rainy int
}

var weatherProbabilities = map[string]bucketProbs{
	"cold":     {30, 30, 25, 15}, // below 50F
	"cool":     {40, 30, 20, 10}, // 50-65F
	"mild":     {50, 30, 15, 5},  // 65-75F
	"warm":     {60, 25, 10, 5},  // 75-85F
	"hot":      {70, 20, 7, 3},   // 85-95F
	"very_hot": {80, 15, 4, 1},   // 95F+
}

func tempCategory(temp int) string {
	switch {
	case temp < 50:
		return "cold"
	case temp < 65:
		return "cool"
	case temp < 75:
		return "mild"
	case temp < 85:
		return "warm"
	case temp < 95:
		return "hot"
	default:
		return "very_hot"
	}
}

var heatwaveNames = []string{
	"Summer Scorcher",
	"Heat Advisory Issued",
	"Record Temperatures Expected",
	"Excessive Heat Warning",
	"Triple Digit Temps Forecasted",
	"Heat Dome Arrives",
	"Sweltering Conditions Continue",
	"Dangerous Heat Wave Alert",
}

// TempRange returns the [min, max] temperature band for a month, or the
// heatwave band when heatwave is set. Out-of-season months fall back to
// March.
func TempRange(month int, heatwave bool) (min, max int) {
	if heatwave {
		return heatwaveRange.min, heatwaveRange.max
	}
	r, ok := tempRanges[month]
	if !ok {
		r = tempRanges[3]
	}
	return r.min, r.max
}
