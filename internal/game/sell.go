package game

import (
	"math"

	"github.com/lemonworks/lemonstand/internal/customers"
	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/sale"
	"github.com/lemonworks/lemonstand/internal/traffic"
)

const secondLocationWeeklyUses = 2

// CanSellAt checks permits and the daily location allowance. One sale per
// day by default; the second-location upgrade allows a second, at most
// twice a week.
func (s *State) CanSellAt(loc traffic.Location) error {
	if _, ok := traffic.Catalog[loc]; !ok {
		return ErrUnknownItem
	}
	if !s.HasPermit(loc) {
		return ErrPermitRequired
	}
	for _, sold := range s.ActiveEffects.SoldLocationsToday {
		if sold == loc {
			return ErrLocationLimit
		}
	}
	if len(s.ActiveEffects.SoldLocationsToday) == 0 {
		return nil
	}
	if !s.Upgrades[upgradeSecondLocation] ||
		len(s.ActiveEffects.SoldLocationsToday) >= 2 ||
		s.ActiveEffects.SecondLocationUsesThisWeek >= secondLocationWeeklyUses {
		return ErrLocationLimit
	}
	return nil
}

// DailyCrowd rolls the day's customers for a location under current
// weather, events, reviews, and upgrades.
func (s *State) DailyCrowd(src entropy.Source, loc traffic.Location) customers.Daily {
	reviewMult := traffic.ReviewMultiplier(s.Reviews[loc].Rating)
	return customers.Generate(src, loc, s.Weather.CurrentTemp, s.Weather.CurrentWeather,
		s.DayName, s.Events, s.Month, s.DayNum, reviewMult, s.CustomerBonus())
}

// StartSale opens a selling session at a location with the chosen batches.
// Cider may only be offered once the mugs are in stock to serve it.
func (s *State) StartSale(src entropy.Source, loc traffic.Location, batchIDs []string, prices sale.Prices) (*sale.Session, error) {
	if err := s.CanSellAt(loc); err != nil {
		return nil, err
	}

	var stock []sale.Stock
	for _, id := range batchIDs {
		if i := s.findLemonadeBatch(id); i >= 0 {
			b := s.Inventory.LemonadeBatches[i]
			stock = append(stock, sale.Stock{ID: b.ID, Kind: sale.Lemonade, Quality: b.Quality, RemainingOz: b.RemainingOz})
			continue
		}
		if i := s.findCiderBatch(id); i >= 0 {
			if s.Inventory.MugsCinnamon <= 0 {
				return nil, ErrInsufficientInventory
			}
			b := s.Inventory.CiderBatches[i]
			stock = append(stock, sale.Stock{ID: b.ID, Kind: sale.Cider, RemainingOz: b.RemainingOz})
			continue
		}
		return nil, ErrBatchNotFound
	}

	crowd := s.DailyCrowd(src, loc)
	return sale.New(src, crowd.Customers, stock, prices, s.Weather.CurrentTemp,
		s.ServeMultiplier(), s.Upgrades[upgradeFrozenMachine])
}

// ApplySale books a finished session: revenue to cash, tips to the jar,
// consumption against the batches, reviews into the running average, and
// the location onto today's sold list.
func (s *State) ApplySale(loc traffic.Location, res sale.Result) {
	s.Money += res.TotalRevenue
	s.TipJar += res.TotalTips

	for id, oz := range res.Consumed {
		if i := s.findLemonadeBatch(id); i >= 0 {
			s.Inventory.LemonadeBatches[i].RemainingOz -= oz
			continue
		}
		if i := s.findCiderBatch(id); i >= 0 {
			s.Inventory.CiderBatches[i].RemainingOz -= oz
		}
	}
	s.dropEmptyBatches()

	if len(res.Reviews) > 0 {
		sum := s.Reviews[loc]
		total := sum.Rating * float64(sum.Count)
		for _, r := range res.Reviews {
			total += float64(r.Stars)
		}
		sum.Count += len(res.Reviews)
		sum.Rating = math.Round(total/float64(sum.Count)*10) / 10
		s.Reviews[loc] = sum
	}

	s.Statistics.TotalEarned += res.TotalRevenue
	s.Statistics.TotalEarnedLocation[loc] += res.TotalRevenue
	s.Statistics.TotalServed += res.TotalSales
	s.Statistics.TotalServedLocation[loc] += res.TotalSales

	if len(s.ActiveEffects.SoldLocationsToday) >= 1 {
		s.ActiveEffects.SecondLocationUsesThisWeek++
	}
	s.ActiveEffects.SoldLocationsToday = append(s.ActiveEffects.SoldLocationsToday, loc)
}

func (s *State) dropEmptyBatches() {
	keptLem := s.Inventory.LemonadeBatches[:0]
	for _, b := range s.Inventory.LemonadeBatches {
		if b.RemainingOz > 0 {
			keptLem = append(keptLem, b)
			continue
		}
		s.Inventory.Containers[b.ContainerType]++
	}
	s.Inventory.LemonadeBatches = keptLem

	keptCid := s.Inventory.CiderBatches[:0]
	for _, b := range s.Inventory.CiderBatches {
		if b.RemainingOz > 0 {
			keptCid = append(keptCid, b)
			continue
		}
		s.Inventory.Containers[b.ContainerType]++
	}
	s.Inventory.CiderBatches = keptCid
}
