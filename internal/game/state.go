// Package game holds the save-document model and every player action:
// shopping, permits, the kitchen, selling, banking, and the day cycle.
// Actions validate first and mutate only on success, so a rejected call
// leaves the document untouched.
package game

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/events"
	"github.com/lemonworks/lemonstand/internal/recipe"
	"github.com/lemonworks/lemonstand/internal/traffic"
	"github.com/lemonworks/lemonstand/internal/weather"
)

// State is the whole game document, persisted as one JSON blob.
type State struct {
	Money       float64 `json:"money"`
	TipJar      float64 `json:"tip_jar"`
	TipsSavings float64 `json:"tips_savings"`

	DayCount  int    `json:"day_count"`
	DayName   string `json:"day_name"`
	MonthName string `json:"month_name"`
	DayNum    int    `json:"day_num"`
	Month     int    `json:"month"`

	Permits       map[traffic.Location]*PermitRecord `json:"permits"`
	Events        events.Calendar                    `json:"events"`
	Weather       WeatherState                       `json:"weather"`
	Inventory     Inventory                          `json:"inventory"`
	Upgrades      map[string]bool                    `json:"upgrades"`
	ActiveEffects ActiveEffects                      `json:"active_effects"`
	Reviews       map[traffic.Location]ReviewSummary `json:"reviews"`
	Statistics    Statistics                         `json:"statistics"`
}

// WeatherState carries today's conditions plus the whole pregenerated
// season for lookups.
type WeatherState struct {
	CurrentTemp    int             `json:"current_temp"`
	CurrentWeather weather.Type    `json:"current_weather"`
	WeatherData    []weather.Daily `json:"weather_data"`
}

// Cups is the paper cup stock by size.
type Cups struct {
	TenOz        int `json:"ten_oz"`
	SixteenOz    int `json:"sixteen_oz"`
	TwentyfourOz int `json:"twentyfour_oz"`
}

// Inventory is everything in the pantry and garage.
type Inventory struct {
	Lemons          recipe.LemonCounts            `json:"lemons"`
	SugarLbs        float64                       `json:"sugar_lbs"`
	ApplesLbs       float64                       `json:"apples_lbs"`
	Cups            Cups                          `json:"cups"`
	MugsCinnamon    int                           `json:"mugs_cinnamon"`
	Containers      map[recipe.ContainerType]int  `json:"containers"`
	LemonadeBatches []Batch                       `json:"lemonade_batches"`
	CiderBatches    []CiderBatch                  `json:"cider_batches"`
	JuicerLevel     recipe.JuicerLevel            `json:"juicer_level"`
}

// Batch is a mixed container of lemonade.
type Batch struct {
	ID            string               `json:"id"`
	CreatedOnDay  int                  `json:"created_on_day"`
	CreatedDate   string               `json:"created_date"`
	ContainerType recipe.ContainerType `json:"container_type"`
	ContainerUses int                  `json:"container_uses"`
	VolumeOz      float64              `json:"volume_oz"`
	CapacityOz    float64              `json:"capacity_oz"`
	RemainingOz   float64              `json:"remaining_oz"`
	Quality       int                  `json:"quality"`
	Recipe        recipe.Recipe        `json:"recipe"`
}

// CiderBatch is a brewed container of apple cider. Cider has no recipe
// quality; demand is driven by temperature.
type CiderBatch struct {
	ID            string               `json:"id"`
	CreatedOnDay  int                  `json:"created_on_day"`
	CreatedDate   string               `json:"created_date"`
	ContainerType recipe.ContainerType `json:"container_type"`
	VolumeOz      float64              `json:"volume_oz"`
	CapacityOz    float64              `json:"capacity_oz"`
	RemainingOz   float64              `json:"remaining_oz"`
	ApplesUsed    float64              `json:"apples_used"`
}

// PermitRecord tracks permit purchases for one location.
type PermitRecord struct {
	Count             int     `json:"count"`
	FirstPurchasedDay int     `json:"first_purchased_day"`
	LastPurchasedDay  int     `json:"last_purchased_day"`
	TotalSpent        float64 `json:"total_spent"`
}

// ActiveEffects are temporary modifiers and daily counters.
type ActiveEffects struct {
	AdCampaignActive           bool               `json:"ad_campaign_active"`
	AdCampaignDaysLeft         int                `json:"ad_campaign_days_left"`
	AdCampaignLastPurchaseWeek int                `json:"ad_campaign_last_purchase_week"` // -1 until first purchase
	SecondLocationUsesThisWeek int                `json:"second_location_uses_this_week"`
	SoldLocationsToday         []traffic.Location `json:"sold_locations_today"`
}

// ReviewSummary is the running star average for a location.
type ReviewSummary struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// Statistics are lifetime counters shown in the home office.
type Statistics struct {
	TotalSpentGrocery   float64                      `json:"total_spent_grocery"`
	TotalSpentSupplies  float64                      `json:"total_spent_supplies"`
	TotalSpentPermits   float64                      `json:"total_spent_permits"`
	TotalSpentAds       float64                      `json:"total_spent_ads"`
	TotalEarned         float64                      `json:"total_earned"`
	TotalEarnedLocation map[traffic.Location]float64 `json:"total_earned_location"`
	TotalServed         int                          `json:"total_served"`
	TotalServedLocation map[traffic.Location]int     `json:"total_served_location"`
}

var monthNames = []string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

const (
	startingMoney = 50.00
	gameYear      = 2024
)

// New creates a fresh game: $50, Day 1, Monday March 20, empty pantry, hand
// juicer, and a freshly generated event calendar and season timeline.
func New(src entropy.Source) *State {
	cal := events.Generate(src, gameYear)
	timeline := weather.GenerateSeason(src, cal.HeatwaveEvents)
	first := timeline[0]

	earned := make(map[traffic.Location]float64, len(traffic.All))
	served := make(map[traffic.Location]int, len(traffic.All))
	reviews := make(map[traffic.Location]ReviewSummary, len(traffic.All))
	for _, loc := range traffic.All {
		earned[loc] = 0
		served[loc] = 0
		reviews[loc] = ReviewSummary{}
	}

	return &State{
		Money:     startingMoney,
		DayCount:  1,
		DayName:   "Monday",
		MonthName: "March",
		DayNum:    weather.SeasonStartDay,
		Month:     weather.SeasonStartMonth,
		Permits:   map[traffic.Location]*PermitRecord{},
		Events:    cal,
		Weather: WeatherState{
			CurrentTemp:    first.Temp,
			CurrentWeather: first.Weather,
			WeatherData:    timeline,
		},
		Inventory: Inventory{
			Containers:      map[recipe.ContainerType]int{recipe.OneGal: 0, recipe.FiveGal: 0, recipe.Barrel: 0, recipe.Tanker: 0},
			LemonadeBatches: []Batch{},
			CiderBatches:    []CiderBatch{},
			JuicerLevel:     recipe.JuicerHand,
		},
		Upgrades: map[string]bool{},
		ActiveEffects: ActiveEffects{
			AdCampaignLastPurchaseWeek: -1,
			SoldLocationsToday:         []traffic.Location{},
		},
		Reviews: reviews,
		Statistics: Statistics{
			TotalEarnedLocation: earned,
			TotalServedLocation: served,
		},
	}
}

// Clone deep-copies the document through its JSON form.
func (s *State) Clone() (*State, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("clone state: %w", err)
	}
	var out State
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("clone state: %w", err)
	}
	return &out, nil
}

// currentDate renders today as an ISO timestamp for batch stamps.
func (s *State) currentDate() string {
	return time.Date(gameYear, time.Month(s.Month), s.DayNum, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

// ServeMultiplier is the serving-capacity multiplier from permanent
// upgrades.
func (s *State) ServeMultiplier() float64 {
	m := 0.5
	for key, owned := range s.Upgrades {
		if !owned {
			continue
		}
		if u, ok := upgradeCatalog[key]; ok {
			m += u.ServeBonus
		}
	}
	return m
}

// CustomerBonus is the extra customer multiplier from permanent upgrades
// plus a running ad campaign.
func (s *State) CustomerBonus() float64 {
	b := 0.0
	for key, owned := range s.Upgrades {
		if !owned {
			continue
		}
		if u, ok := upgradeCatalog[key]; ok {
			b += u.CustomerBonus
		}
	}
	if s.ActiveEffects.AdCampaignActive && s.ActiveEffects.AdCampaignDaysLeft > 0 {
		b += adCampaignCustomerBonus
	}
	return b
}

// findLemonadeBatch returns the index of a lemonade batch, -1 if absent.
func (s *State) findLemonadeBatch(id string) int {
	for i := range s.Inventory.LemonadeBatches {
		if s.Inventory.LemonadeBatches[i].ID == id {
			return i
		}
	}
	return -1
}

// findCiderBatch returns the index of a cider batch, -1 if absent.
func (s *State) findCiderBatch(id string) int {
	for i := range s.Inventory.CiderBatches {
		if s.Inventory.CiderBatches[i].ID == id {
			return i
		}
	}
	return -1
}
