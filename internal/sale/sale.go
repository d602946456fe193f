// Package sale runs a selling session at one location: a crowd is walked
// customer by customer against the offered batches and prices, producing
// revenue, tips, reviews, and per-batch consumption. The session only
// tallies results; applying them to the game document is the caller's job.
package sale

import (
	"errors"
	"math"

	"github.com/lemonworks/lemonstand/internal/customers"
	"github.com/lemonworks/lemonstand/internal/entropy"
)

// ProductKind separates the two drink lines.
type ProductKind string

const (
	Lemonade ProductKind = "lemonade"
	Cider    ProductKind = "cider"
)

// Stock is one batch offered for sale, viewed by the session.
type Stock struct {
	ID          string
	Kind        ProductKind
	Quality     int
	RemainingOz float64
}

// Prices is the player's price sheet for the day.
type Prices struct {
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
	Cider  float64 `json:"cider"`
}

// Phase tracks session progress.
type Phase int

const (
	NotStarted Phase = iota
	Selling
	Finished
)

// Serving capacity: a bare stand works half the base rate; upgrades raise
// the multiplier.
const baseServeCount = 150

// MaxServed converts a serve multiplier into a customer cap for the day.
func MaxServed(serveMultiplier float64) int {
	return int(math.Floor(baseServeCount * serveMultiplier))
}

const ciderMugOz = 8

// Result accumulates everything a finished session changes.
type Result struct {
	TotalSales   int                `json:"total_sales"`
	TotalRevenue float64            `json:"total_revenue"`
	TotalTips    float64            `json:"total_tips"`
	Reviews      []customers.Review `json:"reviews"`
	CupsSold     map[string]int     `json:"cups_sold"`
	Consumed     map[string]float64 `json:"consumed"`
}

// Outcome reports what one customer did.
type Outcome struct {
	Customer customers.Customer
	Bought   bool
	Product  ProductKind
	Cup      string
	Price    float64
	Tip      float64
	Review   *customers.Review
}

var (
	ErrNoBatches    = errors.New("sale: no batches selected")
	ErrInvalidPrice = errors.New("sale: prices must be positive for offered products")
	ErrFinished     = errors.New("sale: session already finished")
)

// Session is the step-wise selling state machine. Serve advances one
// customer at a time so callers control pacing; Run drains it in one call.
type Session struct {
	src           entropy.Source
	crowd         []customers.Customer
	stock         []Stock
	prices        Prices
	temp          int
	frozenMachine bool
	maxServed     int

	phase  Phase
	next   int
	result Result
}

// New validates the offer and builds a session. At least one batch must be
// selected, and each offered product line needs positive prices.
func New(src entropy.Source, crowd []customers.Customer, stock []Stock, prices Prices,
	temp int, serveMultiplier float64, frozenMachine bool) (*Session, error) {

	if len(stock) == 0 {
		return nil, ErrNoBatches
	}
	hasLemonade, hasCider := false, false
	for _, s := range stock {
		switch s.Kind {
		case Lemonade:
			hasLemonade = true
		case Cider:
			hasCider = true
		}
	}
	if hasLemonade && (prices.Small <= 0 || prices.Medium <= 0 || prices.Large <= 0) {
		return nil, ErrInvalidPrice
	}
	if hasCider && prices.Cider <= 0 {
		return nil, ErrInvalidPrice
	}

	owned := make([]Stock, len(stock))
	copy(owned, stock)

	return &Session{
		src:           src,
		crowd:         crowd,
		stock:         owned,
		prices:        prices,
		temp:          temp,
		frozenMachine: frozenMachine,
		maxServed:     MaxServed(serveMultiplier),
		result: Result{
			CupsSold: map[string]int{"small": 0, "medium": 0, "large": 0, "frozen": 0, "cider": 0},
			Consumed: map[string]float64{},
		},
	}, nil
}

// Phase returns the session phase.
func (s *Session) Phase() Phase { return s.phase }

// Processed returns how many customers have been handled so far.
func (s *Session) Processed() int { return s.next }

// Result returns the running tally. Only stable once the phase is Finished.
func (s *Session) Result() Result { return s.result }

// Serve handles the next customer. The second return is false once the
// session has finished: the customer cap was hit, the crowd ran out, or
// every batch is empty.
func (s *Session) Serve() (Outcome, bool) {
	if s.phase == Finished {
		return Outcome{}, false
	}
	s.phase = Selling

	if s.next >= s.maxServed || s.next >= len(s.crowd) || s.allEmpty() {
		s.phase = Finished
		return Outcome{}, false
	}

	c := s.crowd[s.next]
	s.next++

	out := s.serveOne(c)
	if s.next >= s.maxServed || s.next >= len(s.crowd) || s.allEmpty() {
		s.phase = Finished
	}
	return out, true
}

// Run drains the session and returns the final result.
func (s *Session) Run() Result {
	for {
		if _, ok := s.Serve(); !ok {
			return s.result
		}
	}
}

// allEmpty reports whether no batch can serve another customer. Cider only
// pours in full mugs, so a cider batch below one mug counts as empty.
func (s *Session) allEmpty() bool {
	for _, b := range s.stock {
		switch b.Kind {
		case Cider:
			if b.RemainingOz >= ciderMugOz {
				return false
			}
		default:
			if b.RemainingOz > 0 {
				return false
			}
		}
	}
	return true
}

func (s *Session) findStock(kind ProductKind, needOz float64) *Stock {
	for i := range s.stock {
		if s.stock[i].Kind == kind && s.stock[i].RemainingOz >= needOz {
			return &s.stock[i]
		}
	}
	return nil
}

func (s *Session) hasStock(kind ProductKind, needOz float64) bool {
	return s.findStock(kind, needOz) != nil
}

// serveOne routes a customer to a product. Cold weather pushes customers
// toward warm cider when it is on offer.
func (s *Session) serveOne(c customers.Customer) Outcome {
	hasCider := s.hasStock(Cider, ciderMugOz)
	hasLemonade := s.hasStock(Lemonade, 0.001)

	prefersCider := false
	if hasCider && s.temp < 60 {
		prefersCider = entropy.Chance(s.src, 0.7)
	} else if hasCider && s.temp < 70 {
		prefersCider = entropy.Chance(s.src, 0.3)
	}

	if prefersCider {
		return s.serveCider(c)
	}
	if hasLemonade {
		return s.serveLemonade(c)
	}
	if hasCider {
		return s.serveCider(c)
	}
	return Outcome{Customer: c}
}

func (s *Session) serveCider(c customers.Customer) Outcome {
	// Cold weather widens what customers will pay for a hot drink.
	tolerance := c.MaxPricePerOz
	if s.temp < 50 {
		tolerance *= 2.0
	} else if s.temp < 60 {
		tolerance *= 1.5
	}

	pricePerOz := s.prices.Cider / ciderMugOz
	if pricePerOz > tolerance {
		return Outcome{Customer: c}
	}

	batch := s.findStock(Cider, ciderMugOz)
	if batch == nil {
		if s.hasStock(Lemonade, 0.001) {
			return s.serveLemonade(c)
		}
		return Outcome{Customer: c}
	}

	var tip float64
	var review *customers.Review
	if s.temp < 60 {
		if entropy.Chance(s.src, 0.6) {
			tip = customers.RandomTip(s.src)
		}
		if entropy.Chance(s.src, 0.4) {
			r := customers.Review{Stars: 5, Text: "Perfect warm cider on a cold day!"}
			review = &r
		}
	} else if entropy.Chance(s.src, 0.3) {
		tip = customers.RandomTip(s.src)
	}

	s.record(batch, ciderMugOz, "cider", s.prices.Cider, tip, review)
	return Outcome{Customer: c, Bought: true, Product: Cider, Cup: "cider", Price: s.prices.Cider, Tip: tip, Review: review}
}

func (s *Session) serveLemonade(c customers.Customer) Outcome {
	wantsFrozen := s.frozenMachine && entropy.Chance(s.src, 0.2)

	var cup string
	var cupOz, salePrice float64
	if wantsFrozen {
		cup = "frozen"
		cupOz = 20
		salePrice = s.prices.Medium * 2
	} else {
		size := customers.CupSizeFor(s.src, c)
		cup = string(size)
		cupOz = customers.CupOz(size)
		salePrice = s.priceFor(size)
	}

	if !customers.WillBuy(c, salePrice/cupOz) {
		return Outcome{Customer: c}
	}

	batch := s.findStock(Lemonade, cupOz)
	if batch == nil {
		if s.hasStock(Cider, ciderMugOz) {
			return s.serveCider(c)
		}
		return Outcome{Customer: c}
	}

	var tip float64
	var review *customers.Review
	if wantsFrozen {
		if entropy.Chance(s.src, 0.5) {
			r := customers.Review{Stars: 5, Text: "The frozen lemonade was amazing! So refreshing!"}
			review = &r
		}
		tip = customers.RandomTip(s.src)
	} else {
		size := customers.CupSize(cup)
		if customers.TipDecision(s.src, c, batch.Quality, size) {
			tip = customers.RandomTip(s.src)
		}
		if r, ok := customers.ReviewFor(s.src, c, batch.Quality, c.MaxPricePerOz); ok {
			review = &r
		}
	}

	s.record(batch, cupOz, cup, salePrice, tip, review)
	return Outcome{Customer: c, Bought: true, Product: Lemonade, Cup: cup, Price: salePrice, Tip: tip, Review: review}
}

func (s *Session) priceFor(size customers.CupSize) float64 {
	switch size {
	case customers.Medium:
		return s.prices.Medium
	case customers.Large:
		return s.prices.Large
	default:
		return s.prices.Small
	}
}

func (s *Session) record(batch *Stock, oz float64, cup string, price, tip float64, review *customers.Review) {
	batch.RemainingOz -= oz
	s.result.TotalSales++
	s.result.TotalRevenue += price
	s.result.TotalTips += tip
	s.result.CupsSold[cup]++
	s.result.Consumed[batch.ID] += oz
	if review != nil {
		s.result.Reviews = append(s.result.Reviews, *review)
	}
}
