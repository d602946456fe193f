package game

import (
	"github.com/lemonworks/lemonstand/internal/events"
	"github.com/lemonworks/lemonstand/internal/traffic"
	"github.com/lemonworks/lemonstand/internal/weather"
)

const (
	savingsInterestRate = 0.025
	shutdownCostPerDay  = 2.00
	maxShutdownDays     = 365
	batchSpoilAgeDays   = 3
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// AdvanceDay closes out the current day and opens the next one. Savings
// earn interest before the tip jar is deposited; batches spoil after three
// days; the weekly second-location allowance resets on Mondays. Rolling
// past October 31 wraps the date to March 1 of the off-season.
func (s *State) AdvanceDay() {
	s.TipsSavings *= 1 + savingsInterestRate
	s.TipsSavings += s.TipJar
	s.TipJar = 0

	if s.ActiveEffects.AdCampaignActive {
		s.ActiveEffects.AdCampaignDaysLeft--
		if s.ActiveEffects.AdCampaignDaysLeft <= 0 {
			s.ActiveEffects.AdCampaignActive = false
			s.ActiveEffects.AdCampaignDaysLeft = 0
		}
	}
	s.ActiveEffects.SoldLocationsToday = s.ActiveEffects.SoldLocationsToday[:0]

	s.stepDate()
	if s.DayName == "Monday" {
		s.ActiveEffects.SecondLocationUsesThisWeek = 0
	}

	s.spoilOldBatches()
	s.refreshWeather()
}

// Shutdown closes the stand for a stretch of days at $2 a day. The tip jar
// is banked first, then interest compounds once per closed day. Any ad
// campaign lapses, and batches left behind spoil as usual.
func (s *State) Shutdown(days int) error {
	if days < 1 || days > maxShutdownDays {
		return ErrInvalidAmount
	}
	cost := shutdownCostPerDay * float64(days)
	if cost > s.Money {
		return ErrInsufficientFunds
	}

	s.Money -= cost
	s.TipsSavings += s.TipJar
	s.TipJar = 0
	for i := 0; i < days; i++ {
		s.TipsSavings *= 1 + savingsInterestRate
	}

	s.ActiveEffects.AdCampaignActive = false
	s.ActiveEffects.AdCampaignDaysLeft = 0
	s.ActiveEffects.SoldLocationsToday = s.ActiveEffects.SoldLocationsToday[:0]

	for i := 0; i < days; i++ {
		s.stepDate()
		if s.DayName == "Monday" {
			s.ActiveEffects.SecondLocationUsesThisWeek = 0
		}
	}

	s.spoilOldBatches()
	s.refreshWeather()
	return nil
}

// TransferTips moves money from the tip jar into savings.
func (s *State) TransferTips(amount float64) error {
	if amount <= 0 || amount > s.TipJar {
		return ErrInvalidAmount
	}
	s.TipJar -= amount
	s.TipsSavings += amount
	return nil
}

// WithdrawSavings moves banked tips back into spending money.
func (s *State) WithdrawSavings(amount float64) error {
	if amount <= 0 || amount > s.TipsSavings {
		return ErrInvalidAmount
	}
	s.TipsSavings -= amount
	s.Money += amount
	return nil
}

// stepDate advances the calendar by one day. October 31 wraps straight to
// March 1, skipping the closed winter months; the game's calendar and
// weather timeline are fixed at creation and never regenerated, so the
// wrapped date simply has no timeline entry until opening day.
func (s *State) stepDate() {
	s.DayCount++

	for i, name := range dayNames {
		if name == s.DayName {
			s.DayName = dayNames[(i+1)%len(dayNames)]
			break
		}
	}

	s.DayNum++
	if s.DayNum > weather.DaysInMonth(s.Month) {
		s.DayNum = 1
		s.Month++
	}
	if s.Month > weather.SeasonEndMonth {
		s.Month = weather.SeasonStartMonth
		s.DayNum = 1
	}
	s.MonthName = monthNames[s.Month]
}

// spoilOldBatches discards lemonade and cider past their shelf life and
// returns their containers.
func (s *State) spoilOldBatches() {
	keptLem := s.Inventory.LemonadeBatches[:0]
	for _, b := range s.Inventory.LemonadeBatches {
		if s.DayCount-b.CreatedOnDay < batchSpoilAgeDays {
			keptLem = append(keptLem, b)
			continue
		}
		s.Inventory.Containers[b.ContainerType]++
	}
	s.Inventory.LemonadeBatches = keptLem

	keptCid := s.Inventory.CiderBatches[:0]
	for _, b := range s.Inventory.CiderBatches {
		if s.DayCount-b.CreatedOnDay < batchSpoilAgeDays {
			keptCid = append(keptCid, b)
			continue
		}
		s.Inventory.Containers[b.ContainerType]++
	}
	s.Inventory.CiderBatches = keptCid
}

// refreshWeather looks up today's conditions in the season timeline.
func (s *State) refreshWeather() {
	if d, ok := weather.Lookup(s.Weather.WeatherData, s.Month, s.DayNum); ok {
		s.Weather.CurrentTemp = d.Temp
		s.Weather.CurrentWeather = d.Weather
	}
}

// Forecast previews the next n days of weather.
func (s *State) Forecast(n int) []weather.Daily {
	return weather.Forecast(s.Weather.WeatherData, s.Month, s.DayNum, n)
}

// UpcomingEvents lists calendar events in the next week.
func (s *State) UpcomingEvents() []events.UpcomingEvent {
	return events.Upcoming(s.Events, s.Month, s.DayNum)
}

// ReviewRating returns the running star average for a location.
func (s *State) ReviewRating(loc traffic.Location) (float64, int) {
	sum := s.Reviews[loc]
	return sum.Rating, sum.Count
}
