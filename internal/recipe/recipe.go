// Package recipe holds the lemonade recipe model: ingredient math, juicer
// and container catalogs, and the quality score that drives customer
// satisfaction.
package recipe

import "math"

// Perfect lemonade ratio per 8 oz serving.
const (
	PerfectWaterOz   = 6.0
	PerfectJuiceOz   = 2.0
	PerfectSugarGram = 25.0
)

// CiderOzPerLbApples is the cider yield of one pound of apples.
const CiderOzPerLbApples = 20.0

// Unit conversions.
const (
	GramsPerLb = 453.592
	GramsPerOz = 28.35
)

// LbsToGrams converts pounds to grams.
func LbsToGrams(lbs float64) float64 { return lbs * GramsPerLb }

// GramsToLbs converts grams to pounds.
func GramsToLbs(grams float64) float64 { return grams / GramsPerLb }

// LemonType distinguishes the lemon varieties on sale.
type LemonType string

const (
	Normal LemonType = "normal"
	Sour   LemonType = "sour"
	Sweet  LemonType = "sweet"
)

// Juice intensity by lemon type. Off-normal varieties read slightly
// stronger.
var lemonJuiceQuality = map[LemonType]float64{
	Normal: 1.0,
	Sour:   1.1,
	Sweet:  1.1,
}

// LemonCounts is a per-variety lemon tally.
type LemonCounts struct {
	Normal int `json:"normal"`
	Sour   int `json:"sour"`
	Sweet  int `json:"sweet"`
}

// Total sums all varieties.
func (l LemonCounts) Total() int { return l.Normal + l.Sour + l.Sweet }

// TypesUsed counts how many varieties are present.
func (l LemonCounts) TypesUsed() int {
	n := 0
	if l.Normal > 0 {
		n++
	}
	if l.Sour > 0 {
		n++
	}
	if l.Sweet > 0 {
		n++
	}
	return n
}

// Recipe records what went into a lemonade batch.
type Recipe struct {
	Lemons     LemonCounts `json:"lemons"`
	SugarGrams float64     `json:"sugar_grams"`
	WaterOz    float64     `json:"water_oz"`
	JuiceOz    float64     `json:"juice_oz"`
	Juicer     JuicerLevel `json:"juicer_level"`
}

// TotalOz is the liquid volume of the mixture. Sugar dissolves and adds no
// volume.
func (r Recipe) TotalOz() float64 { return r.WaterOz + r.JuiceOz }

// JuicerLevel is the owned juicer tier.
type JuicerLevel string

const (
	JuicerHand       JuicerLevel = "hand"
	JuicerElectric   JuicerLevel = "electric"
	JuicerCommercial JuicerLevel = "commercial"
	JuicerIndustrial JuicerLevel = "industrial"
)

// JuicerOrder lists tiers from weakest to strongest; purchases must follow
// this progression.
var JuicerOrder = []JuicerLevel{JuicerHand, JuicerElectric, JuicerCommercial, JuicerIndustrial}

var juicerYields = map[JuicerLevel]float64{
	JuicerHand:       1.5,
	JuicerElectric:   2.5,
	JuicerCommercial: 4,
	JuicerIndustrial: 7,
}

// JuicerYield returns ounces of juice per lemon for a juicer tier. Unknown
// tiers fall back to the hand juicer.
func JuicerYield(level JuicerLevel) float64 {
	if y, ok := juicerYields[level]; ok {
		return y
	}
	return juicerYields[JuicerHand]
}

// JuiceYield returns total juice from a lemon selection.
func JuiceYield(lemons LemonCounts, level JuicerLevel) float64 {
	return float64(lemons.Total()) * JuicerYield(level)
}

// JuicerRank returns a tier's position in the progression, or -1.
func JuicerRank(level JuicerLevel) int {
	for i, l := range JuicerOrder {
		if l == level {
			return i
		}
	}
	return -1
}

// ContainerType is a batch vessel size.
type ContainerType string

const (
	OneGal  ContainerType = "one_gal"
	FiveGal ContainerType = "five_gal"
	Barrel  ContainerType = "barrel"
	Tanker  ContainerType = "tanker"
)

// ContainerSpec describes a vessel.
type ContainerSpec struct {
	Name       string
	CapacityOz float64
	MaxUses    int
}

var Containers = map[ContainerType]ContainerSpec{
	OneGal:  {Name: "1 Gallon Container", CapacityOz: 128, MaxUses: 2},
	FiveGal: {Name: "5 Gallon Container", CapacityOz: 640, MaxUses: 5},
	Barrel:  {Name: "Barrel (55 gal)", CapacityOz: 7040, MaxUses: 10},
	Tanker:  {Name: "Tanker (500 gal)", CapacityOz: 64000, MaxUses: 99},
}

// ContainerCapacity returns a vessel's capacity in ounces, 0 if unknown.
func ContainerCapacity(ct ContainerType) float64 {
	return Containers[ct].CapacityOz
}

func round(f float64) int { return int(math.Round(f)) }
