package customers

import (
	"math"

	"github.com/lemonworks/lemonstand/internal/entropy"
)

// CupSize is a lemonade serving size.
type CupSize string

const (
	Small  CupSize = "small"  // 10 oz
	Medium CupSize = "medium" // 16 oz
	Large  CupSize = "large"  // 24 oz
)

// CupOz returns a cup size's volume in ounces.
func CupOz(size CupSize) float64 {
	switch size {
	case Medium:
		return 16
	case Large:
		return 24
	default:
		return 10
	}
}

const thirstCupSizeThreshold = 3

const (
	tipChanceHigh = 0.75
	tipChanceLow  = 0.20

	reviewChanceSatisfied   = 0.10
	reviewChanceUnsatisfied = 0.25
)

// tipAmounts are the possible tip values; small tips dominate.
var tipAmounts = []float64{0.25, 0.25, 0.25, 0.25, 0.5, 0.5, 0.5, 1, 1, 2, 5}

// RandomTip draws a tip amount.
func RandomTip(src entropy.Source) float64 {
	return entropy.Pick(src, tipAmounts)
}

// WillBuy reports whether the price per ounce is within the customer's
// tolerance.
func WillBuy(c Customer, pricePerOz float64) bool {
	return pricePerOz <= c.MaxPricePerOz
}

// CupSizeFor picks a cup size. Customers well over their price tier's
// thirst floor usually size up, split evenly between medium and large.
func CupSizeFor(src entropy.Source, c Customer) CupSize {
	diff := c.ThirstLevel - tierThreshold(c.ThirstLevel)
	if diff >= thirstCupSizeThreshold && entropy.Chance(src, 0.75) {
		if entropy.Chance(src, 0.5) {
			return Medium
		}
		return Large
	}
	return Small
}

// TipDecision reports whether the customer tips. Quality must meet their
// expectation; very thirsty customers who sized up tip most of the time.
func TipDecision(src entropy.Source, c Customer, quality int, size CupSize) bool {
	if quality < c.DesiredQuality {
		return false
	}
	diff := c.ThirstLevel - tierThreshold(c.ThirstLevel)
	if diff >= thirstCupSizeThreshold && (size == Medium || size == Large) {
		return entropy.Chance(src, tipChanceHigh)
	}
	return entropy.Chance(src, tipChanceLow)
}

// Satisfaction scores the experience 0-100: up to 50 points for quality
// against expectation plus an exceed bonus, and up to 30 for price value.
func Satisfaction(c Customer, quality int, pricePerOz float64) int {
	score := 0.0

	qualityDiff := float64(quality - c.DesiredQuality)
	if qualityDiff >= 0 {
		score += 50 + math.Min(20, qualityDiff/2)
	} else {
		score += math.Max(0, 50+qualityDiff)
	}

	ratio := pricePerOz / c.MaxPricePerOz
	switch {
	case ratio <= 0.5:
		score += 30
	case ratio <= 0.75:
		score += 20
	case ratio <= 1.0:
		score += 10
	}

	return int(math.Min(100, math.Max(0, score)))
}

// Review is a star rating with text left by a customer.
type Review struct {
	Stars int    `json:"stars"`
	Text  string `json:"text"`
}

// ReviewFor rolls whether this customer leaves a review. Satisfied
// customers occasionally leave 5 stars; disappointed ones are more vocal,
// with stars skewed by how bad the experience was.
func ReviewFor(src entropy.Source, c Customer, quality int, pricePerOz float64) (Review, bool) {
	if quality >= c.DesiredQuality {
		if entropy.Chance(src, reviewChanceSatisfied) {
			return Review{Stars: 5, Text: randomReviewText(src, 5)}, true
		}
		return Review{}, false
	}

	if !entropy.Chance(src, reviewChanceUnsatisfied) {
		return Review{}, false
	}

	satisfaction := Satisfaction(c, quality, pricePerOz)
	var stars int
	switch {
	case satisfaction < 25:
		if entropy.Chance(src, 0.6) {
			stars = 1
		} else {
			stars = 2
		}
	case satisfaction < 50:
		if entropy.Chance(src, 0.5) {
			stars = 2
		} else {
			stars = 3
		}
	default:
		if entropy.Chance(src, 0.5) {
			stars = 3
		} else {
			stars = 4
		}
	}
	return Review{Stars: stars, Text: randomReviewText(src, stars)}, true
}

// FiveStarReview builds an unconditional 5-star review, used by the frozen
// and cider paths which roll their own review chance.
func FiveStarReview(src entropy.Source) Review {
	return Review{Stars: 5, Text: randomReviewText(src, 5)}
}
