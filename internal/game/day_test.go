package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemonworks/lemonstand/internal/recipe"
	"github.com/lemonworks/lemonstand/internal/weather"
)

func TestAdvanceDayBanksTipsWithInterest(t *testing.T) {
	s := newTestState(t)
	s.TipsSavings = 100
	s.TipJar = 10

	s.AdvanceDay()

	// Interest lands on the old balance before the jar is deposited.
	assert.InDelta(t, 112.50, s.TipsSavings, 1e-9)
	assert.Zero(t, s.TipJar)
	assert.Equal(t, 2, s.DayCount)
	assert.Equal(t, "Tuesday", s.DayName)
	assert.Equal(t, 21, s.DayNum)
}

func TestAdvanceDayRollsMonths(t *testing.T) {
	s := newTestState(t)

	// March 20 + 12 days lands on April 1.
	for i := 0; i < 12; i++ {
		s.AdvanceDay()
	}
	assert.Equal(t, 4, s.Month)
	assert.Equal(t, "April", s.MonthName)
	assert.Equal(t, 1, s.DayNum)
	assert.Equal(t, 13, s.DayCount)

	// Weather tracks the pregenerated timeline.
	d, ok := weather.Lookup(s.Weather.WeatherData, 4, 1)
	require.True(t, ok)
	assert.Equal(t, d.Temp, s.Weather.CurrentTemp)
	assert.Equal(t, d.Weather, s.Weather.CurrentWeather)
}

func TestAdvanceDayResetsWeeklyCountersOnMonday(t *testing.T) {
	s := newTestState(t)
	s.ActiveEffects.SecondLocationUsesThisWeek = 2

	// Day 1 is a Monday; six advances land on Sunday, the seventh on Monday.
	for i := 0; i < 6; i++ {
		s.AdvanceDay()
	}
	assert.Equal(t, "Sunday", s.DayName)
	assert.Equal(t, 2, s.ActiveEffects.SecondLocationUsesThisWeek)

	s.AdvanceDay()
	assert.Equal(t, "Monday", s.DayName)
	assert.Zero(t, s.ActiveEffects.SecondLocationUsesThisWeek)
}

func TestAdvanceDayExpiresAdCampaign(t *testing.T) {
	s := newTestState(t)
	s.Money = 3000
	require.NoError(t, s.BuyUpgrade(upgradeAdCampaign))

	s.AdvanceDay()
	s.AdvanceDay()
	assert.True(t, s.ActiveEffects.AdCampaignActive)

	s.AdvanceDay()
	assert.False(t, s.ActiveEffects.AdCampaignActive)
	assert.Zero(t, s.ActiveEffects.AdCampaignDaysLeft)
}

func TestBatchesSpoilAfterThreeDays(t *testing.T) {
	s := newTestState(t)
	stockPantry(s)
	_, err := s.MixLemonade(recipe.LemonCounts{Normal: 10}, 187.5, 45, recipe.OneGal)
	require.NoError(t, err)

	s.AdvanceDay()
	s.AdvanceDay()
	assert.Len(t, s.Inventory.LemonadeBatches, 1)

	s.AdvanceDay()
	assert.Empty(t, s.Inventory.LemonadeBatches)
	assert.Equal(t, 1, s.Inventory.Containers[recipe.OneGal]) // jug comes back
}

func TestAdvanceDayWrapsOctoberToMarchFirst(t *testing.T) {
	s := newTestState(t)
	s.Month = 10
	s.DayNum = 31
	s.DayName = "Friday"
	eventsBefore := s.Events
	timelineBefore := s.Weather.WeatherData
	tempBefore := s.Weather.CurrentTemp

	s.AdvanceDay()

	// November through February are skipped outright.
	assert.Equal(t, 3, s.Month)
	assert.Equal(t, 1, s.DayNum)
	assert.Equal(t, "March", s.MonthName)
	assert.Equal(t, "Saturday", s.DayName)

	// The calendar and weather timeline are fixed at game creation; the
	// wrap must not regenerate either.
	assert.Equal(t, eventsBefore, s.Events)
	assert.Equal(t, timelineBefore, s.Weather.WeatherData)

	// March 1 predates the timeline's opening day, so current conditions
	// simply go stale until March 20.
	assert.Equal(t, tempBefore, s.Weather.CurrentTemp)
	_, ok := weather.Lookup(s.Weather.WeatherData, 3, 1)
	assert.False(t, ok)
}

func TestShutdownCompoundsInterestDaily(t *testing.T) {
	s := newTestState(t)
	s.Money = 100
	s.TipsSavings = 100
	s.TipJar = 10

	require.NoError(t, s.Shutdown(2))

	// Jar banks first, then two days of interest compound.
	assert.InDelta(t, 110*1.025*1.025, s.TipsSavings, 1e-9)
	assert.Zero(t, s.TipJar)
	assert.InDelta(t, 96.0, s.Money, 1e-9)
	assert.Equal(t, 3, s.DayCount)
	assert.Equal(t, "Wednesday", s.DayName)
}

func TestShutdownValidatesDaysAndFunds(t *testing.T) {
	s := newTestState(t)
	s.Money = 5

	assert.ErrorIs(t, s.Shutdown(0), ErrInvalidAmount)
	assert.ErrorIs(t, s.Shutdown(366), ErrInvalidAmount)
	assert.ErrorIs(t, s.Shutdown(10), ErrInsufficientFunds)
	assert.Equal(t, 1, s.DayCount)
}

func TestShutdownCancelsAdCampaign(t *testing.T) {
	s := newTestState(t)
	s.Money = 3000
	require.NoError(t, s.BuyUpgrade(upgradeAdCampaign))

	require.NoError(t, s.Shutdown(1))
	assert.False(t, s.ActiveEffects.AdCampaignActive)
}

func TestTransferAndWithdrawTips(t *testing.T) {
	s := newTestState(t)
	s.TipJar = 20

	require.NoError(t, s.TransferTips(15))
	assert.InDelta(t, 5.0, s.TipJar, 1e-9)
	assert.InDelta(t, 15.0, s.TipsSavings, 1e-9)

	assert.ErrorIs(t, s.TransferTips(6), ErrInvalidAmount)
	assert.ErrorIs(t, s.TransferTips(-1), ErrInvalidAmount)

	require.NoError(t, s.WithdrawSavings(10))
	assert.InDelta(t, 5.0, s.TipsSavings, 1e-9)
	assert.InDelta(t, 60.0, s.Money, 1e-9)

	assert.ErrorIs(t, s.WithdrawSavings(100), ErrInvalidAmount)
}

func TestCloneRoundTrips(t *testing.T) {
	s := newTestState(t)
	stockPantry(s)
	_, err := s.MixLemonade(recipe.LemonCounts{Normal: 10}, 187.5, 45, recipe.OneGal)
	require.NoError(t, err)

	c, err := s.Clone()
	require.NoError(t, err)
	assert.Equal(t, s.Money, c.Money)
	assert.Equal(t, s.Inventory.LemonadeBatches, c.Inventory.LemonadeBatches)

	// The clone is independent.
	c.Money = 0
	assert.NotEqual(t, s.Money, c.Money)
}
