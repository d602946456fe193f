package customers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/events"
	"github.com/lemonworks/lemonstand/internal/traffic"
	"github.com/lemonworks/lemonstand/internal/weather"
)

func TestMaxPriceForThirstTiers(t *testing.T) {
	cases := []struct {
		thirst int
		want   float64
	}{
		{0, 0.15},
		{19, 0.15},
		{20, 0.20},
		{25, 0.20},
		{26, 0.30},
		{40, 0.50},
		{60, 0.80},
		{61, 1.25},
		{120, 1.25},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, MaxPriceForThirst(c.thirst), 1e-9, "thirst %d", c.thirst)
	}
}

func TestMaxPriceMonotonicInThirst(t *testing.T) {
	prev := 0.0
	for thirst := 0; thirst <= 120; thirst++ {
		p := MaxPriceForThirst(thirst)
		assert.GreaterOrEqual(t, p, prev, "thirst %d", thirst)
		prev = p
	}
}

func TestGenerateCountFormula(t *testing.T) {
	src := entropy.NewSeeded(42)
	d := Generate(src, traffic.Driveway, 75, weather.Sunny, "Tuesday",
		events.Calendar{}, 6, 10, 1.0, 0)

	assert.GreaterOrEqual(t, d.BaseCount, 50)
	assert.LessOrEqual(t, d.BaseCount, 60)
	assert.InDelta(t, 1.0, d.TrafficMultiplier, 1e-9)
	assert.Equal(t, d.BaseCount, d.TotalCount)
	assert.Len(t, d.Customers, d.TotalCount)
}

func TestGenerateScalesWithMultipliers(t *testing.T) {
	cal := events.Calendar{
		StadiumEvents: []events.Event{{Month: 6, Day: 8, Type: events.Stadium}},
	}
	d := Generate(entropy.NewSeeded(1), traffic.Stadium, 90, weather.Sunny,
		"Wednesday", cal, 6, 8, 1.5, 0.2)

	// base x 15.0 event traffic x 1.5 reviews x 1.2 upgrades
	expected := int(float64(d.BaseCount)*15.0*1.5*1.2 + 0.5)
	assert.InDelta(t, expected, d.TotalCount, 1)
	assert.Greater(t, d.TotalCount, 1000)
}

func TestGenerateHotDayRaisesThirstLowersExpectations(t *testing.T) {
	hot := Generate(entropy.NewSeeded(9), traffic.Driveway, 95, weather.Sunny,
		"Monday", events.Calendar{}, 7, 10, 1.0, 0)
	cold := Generate(entropy.NewSeeded(9), traffic.Driveway, 45, weather.Rainy,
		"Monday", events.Calendar{}, 10, 10, 1.0, 0)

	require.NotEmpty(t, hot.Customers)
	require.NotEmpty(t, cold.Customers)

	// Hot sunny: +0.7 temp +0.3 weather = +30 thirst. Raw 20-30 -> 50-60.
	for _, c := range hot.Customers {
		assert.GreaterOrEqual(t, c.ThirstLevel, 50)
		assert.LessOrEqual(t, c.ThirstLevel, 60)
		assert.LessOrEqual(t, c.DesiredQuality, 80)
	}
	// Cold rainy: -0.6 temp -0.2 weather = -24 thirst. Raw 20-30 -> 0-6.
	for _, c := range cold.Customers {
		assert.LessOrEqual(t, c.ThirstLevel, 6)
		assert.GreaterOrEqual(t, c.ThirstLevel, 0)
		assert.GreaterOrEqual(t, c.DesiredQuality, 95)
	}
}

func TestCupSizeLowThirstAlwaysSmall(t *testing.T) {
	src := entropy.NewSeeded(5)
	c := Customer{ThirstLevel: 21, MaxPricePerOz: 0.20}
	for i := 0; i < 50; i++ {
		assert.Equal(t, Small, CupSizeFor(src, c))
	}
}

func TestCupSizeThirstyCustomersSizeUp(t *testing.T) {
	src := entropy.NewSeeded(6)
	c := Customer{ThirstLevel: 25, MaxPricePerOz: 0.20}
	sizes := map[CupSize]int{}
	for i := 0; i < 1000; i++ {
		sizes[CupSizeFor(src, c)]++
	}
	assert.Greater(t, sizes[Medium], 0)
	assert.Greater(t, sizes[Large], 0)
	// Roughly 75% size up.
	assert.InDelta(t, 750, sizes[Medium]+sizes[Large], 100)
}

func TestTipDecisionRequiresQuality(t *testing.T) {
	src := entropy.NewSeeded(7)
	c := Customer{ThirstLevel: 25, DesiredQuality: 90, MaxPricePerOz: 0.20}
	for i := 0; i < 50; i++ {
		assert.False(t, TipDecision(src, c, 80, Large))
	}
}

func TestSatisfactionBands(t *testing.T) {
	c := Customer{DesiredQuality: 80, MaxPricePerOz: 0.20}

	// Quality met exactly, cheap price: 50 + 30.
	assert.Equal(t, 80, Satisfaction(c, 80, 0.10))
	// Exceeded by 40: 50 + 20 cap + 10 fair price.
	assert.Equal(t, 80, Satisfaction(c, 120, 0.20))
	// Missed by 30, overpriced: 20 + 0.
	assert.Equal(t, 20, Satisfaction(c, 50, 0.25))
	// Missed by 60: floor at 0 quality points, good price.
	assert.Equal(t, 20, Satisfaction(c, 20, 0.14))
}

func TestReviewForSatisfiedOnlyFiveStars(t *testing.T) {
	src := entropy.NewSeeded(8)
	c := Customer{DesiredQuality: 80, MaxPricePerOz: 0.20}
	got := 0
	for i := 0; i < 2000; i++ {
		r, ok := ReviewFor(src, c, 95, 0.15)
		if ok {
			got++
			assert.Equal(t, 5, r.Stars)
			assert.NotEmpty(t, r.Text)
		}
	}
	// 10% leave a review.
	assert.InDelta(t, 200, got, 60)
}

func TestReviewForUnsatisfiedSkewsLow(t *testing.T) {
	src := entropy.NewSeeded(9)
	c := Customer{DesiredQuality: 95, MaxPricePerOz: 0.20}
	got := 0
	for i := 0; i < 2000; i++ {
		r, ok := ReviewFor(src, c, 20, 0.20)
		if ok {
			got++
			assert.GreaterOrEqual(t, r.Stars, 1)
			assert.LessOrEqual(t, r.Stars, 2)
		}
	}
	// 25% leave a review.
	assert.InDelta(t, 500, got, 100)
}

func TestRandomTipValues(t *testing.T) {
	src := entropy.NewSeeded(10)
	valid := map[float64]bool{0.25: true, 0.5: true, 1: true, 2: true, 5: true}
	for i := 0; i < 200; i++ {
		assert.True(t, valid[RandomTip(src)])
	}
}

func TestCupOz(t *testing.T) {
	assert.InDelta(t, 10, CupOz(Small), 1e-9)
	assert.InDelta(t, 16, CupOz(Medium), 1e-9)
	assert.InDelta(t, 24, CupOz(Large), 1e-9)
}
