package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/recipe"
	"github.com/lemonworks/lemonstand/internal/traffic"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return New(entropy.NewSeeded(42))
}

func TestNewGameOpensOnDayOne(t *testing.T) {
	s := newTestState(t)

	assert.Equal(t, 50.0, s.Money)
	assert.Equal(t, 1, s.DayCount)
	assert.Equal(t, "Monday", s.DayName)
	assert.Equal(t, "March", s.MonthName)
	assert.Equal(t, 20, s.DayNum)
	assert.Equal(t, 3, s.Month)
	assert.Equal(t, recipe.JuicerHand, s.Inventory.JuicerLevel)
	assert.Empty(t, s.Inventory.LemonadeBatches)
	assert.NotEmpty(t, s.Weather.WeatherData)
	assert.Equal(t, s.Weather.WeatherData[0].Temp, s.Weather.CurrentTemp)
}

func TestBuyItemsRoutesSpendBuckets(t *testing.T) {
	s := newTestState(t)
	s.Money = 100

	err := s.BuyItems(map[string]int{
		ItemLemonsNormal:    10, // 5.00 grocery
		ItemSugarLbs:        2,  // 3.00 grocery
		ItemContainerOneGal: 1,  // 5.00 supplies
		ItemCupsTenOz:       50, // 5.00 supplies
	})
	require.NoError(t, err)

	assert.InDelta(t, 82.0, s.Money, 1e-9)
	assert.Equal(t, 10, s.Inventory.Lemons.Normal)
	assert.InDelta(t, 2.0, s.Inventory.SugarLbs, 1e-9)
	assert.Equal(t, 1, s.Inventory.Containers[recipe.OneGal])
	assert.Equal(t, 50, s.Inventory.Cups.TenOz)
	assert.InDelta(t, 8.0, s.Statistics.TotalSpentGrocery, 1e-9)
	assert.InDelta(t, 10.0, s.Statistics.TotalSpentSupplies, 1e-9)
}

func TestBuyItemsRejectionLeavesStateUntouched(t *testing.T) {
	s := newTestState(t)
	s.Money = 1

	err := s.BuyItems(map[string]int{ItemLemonsNormal: 100})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 1.0, s.Money)
	assert.Zero(t, s.Inventory.Lemons.Normal)

	// One bad line rejects the whole cart.
	err = s.BuyItems(map[string]int{ItemLemonsNormal: 1, "caviar": 1})
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Zero(t, s.Inventory.Lemons.Normal)
}

func TestJuicerTiersBuyInOrder(t *testing.T) {
	s := newTestState(t)
	s.Money = 5000

	err := s.BuyItems(map[string]int{ItemJuicerCommerc: 1})
	assert.ErrorIs(t, err, ErrJuicerProgression)

	require.NoError(t, s.BuyItems(map[string]int{ItemJuicerElectric: 1}))
	assert.Equal(t, recipe.JuicerElectric, s.Inventory.JuicerLevel)

	err = s.BuyItems(map[string]int{ItemJuicerElectric: 1})
	assert.ErrorIs(t, err, ErrAlreadyOwned)

	require.NoError(t, s.BuyItems(map[string]int{ItemJuicerCommerc: 1}))
	require.NoError(t, s.BuyItems(map[string]int{ItemJuicerIndust: 1}))
	assert.Equal(t, recipe.JuicerIndustrial, s.Inventory.JuicerLevel)
}

func TestBuyUpgradeOnceOnly(t *testing.T) {
	s := newTestState(t)
	s.Money = 500

	require.NoError(t, s.BuyUpgrade(upgradeGlassDispenser))
	assert.True(t, s.Upgrades[upgradeGlassDispenser])
	assert.InDelta(t, 400.0, s.Money, 1e-9)

	err := s.BuyUpgrade(upgradeGlassDispenser)
	assert.ErrorIs(t, err, ErrAlreadyOwned)
	assert.InDelta(t, 400.0, s.Money, 1e-9)
}

func TestCiderEquipmentWaitsForSeptember(t *testing.T) {
	s := newTestState(t)
	s.Money = 5000

	err := s.BuyUpgrade(upgradeCiderMaker)
	assert.ErrorIs(t, err, ErrNotAvailableYet)

	s.Month = 9
	require.NoError(t, s.BuyUpgrade(upgradeCiderMaker))
	assert.True(t, s.Upgrades[upgradeCiderMaker])
}

func TestAdCampaignWeeklyLimit(t *testing.T) {
	s := newTestState(t)
	s.Money = 10000

	require.NoError(t, s.BuyUpgrade(upgradeAdCampaign))
	assert.True(t, s.ActiveEffects.AdCampaignActive)
	assert.Equal(t, 3, s.ActiveEffects.AdCampaignDaysLeft)

	err := s.BuyUpgrade(upgradeAdCampaign)
	assert.ErrorIs(t, err, ErrWeeklyLimit)

	// A new calendar week opens the slot again.
	s.DayCount = 8
	require.NoError(t, s.BuyUpgrade(upgradeAdCampaign))
}

func TestServeAndCustomerMultipliers(t *testing.T) {
	s := newTestState(t)
	assert.InDelta(t, 0.5, s.ServeMultiplier(), 1e-9)
	assert.InDelta(t, 0.0, s.CustomerBonus(), 1e-9)

	s.Upgrades[upgradeGlassDispenser] = true
	s.Upgrades[upgradePOSSystem] = true
	assert.InDelta(t, 2.5, s.ServeMultiplier(), 1e-9)
	assert.InDelta(t, 0.2, s.CustomerBonus(), 1e-9)

	s.ActiveEffects.AdCampaignActive = true
	s.ActiveEffects.AdCampaignDaysLeft = 2
	assert.InDelta(t, 1.0, s.CustomerBonus(), 1e-9)
}

func TestBuyPermitTracksRecord(t *testing.T) {
	s := newTestState(t)
	s.Money = 100

	assert.True(t, s.HasPermit(traffic.Driveway))
	assert.False(t, s.HasPermit(traffic.LocalPark))

	require.NoError(t, s.BuyPermit(traffic.LocalPark))
	assert.True(t, s.HasPermit(traffic.LocalPark))
	assert.InDelta(t, 85.0, s.Money, 1e-9)
	assert.InDelta(t, 15.0, s.Statistics.TotalSpentPermits, 1e-9)

	rec := s.Permits[traffic.LocalPark]
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Count)
	assert.Equal(t, 1, rec.FirstPurchasedDay)

	err := s.BuyPermit(traffic.Stadium)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}
