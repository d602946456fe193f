package game

import "github.com/lemonworks/lemonstand/internal/traffic"

// BuyPermit purchases a vending permit for a location. Permits never
// expire, but buying again is allowed and tracked.
func (s *State) BuyPermit(loc traffic.Location) error {
	cost, ok := traffic.PermitCosts[loc]
	if !ok {
		return ErrUnknownItem
	}
	if cost > s.Money {
		return ErrInsufficientFunds
	}

	s.Money -= cost
	s.Statistics.TotalSpentPermits += cost

	rec := s.Permits[loc]
	if rec == nil {
		rec = &PermitRecord{FirstPurchasedDay: s.DayCount}
		s.Permits[loc] = rec
	}
	rec.Count++
	rec.LastPurchasedDay = s.DayCount
	rec.TotalSpent += cost
	return nil
}

// HasPermit reports whether the stand may sell at a location. The home
// driveway never needs one.
func (s *State) HasPermit(loc traffic.Location) bool {
	if !traffic.Catalog[loc].PermitRequired {
		return true
	}
	rec := s.Permits[loc]
	return rec != nil && rec.Count > 0
}
