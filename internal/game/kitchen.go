package game

import (
	"math"

	"github.com/google/uuid"

	"github.com/lemonworks/lemonstand/internal/recipe"
)

const tasteCostOz = 8.0

// MixLemonade mixes a new batch from the pantry into an empty container.
// The mixture must include lemons, sugar, and water, fit the container, and
// be covered by stock.
func (s *State) MixLemonade(lemons recipe.LemonCounts, sugarGrams, waterOz float64, container recipe.ContainerType) (Batch, error) {
	if lemons.Total() == 0 || sugarGrams <= 0 || waterOz <= 0 {
		return Batch{}, ErrInvalidRecipe
	}
	if lemons.Normal > s.Inventory.Lemons.Normal ||
		lemons.Sour > s.Inventory.Lemons.Sour ||
		lemons.Sweet > s.Inventory.Lemons.Sweet {
		return Batch{}, ErrInsufficientInventory
	}
	if sugarGrams > recipe.LbsToGrams(s.Inventory.SugarLbs) {
		return Batch{}, ErrInsufficientInventory
	}
	if s.Inventory.Containers[container] <= 0 {
		return Batch{}, ErrNoContainer
	}

	juiceOz := recipe.JuiceYield(lemons, s.Inventory.JuicerLevel)
	volume := juiceOz + waterOz
	capacity := recipe.ContainerCapacity(container)
	if volume > capacity {
		return Batch{}, ErrCapacityExceeded
	}

	r := recipe.Recipe{
		Lemons:     lemons,
		SugarGrams: sugarGrams,
		WaterOz:    waterOz,
		JuiceOz:    juiceOz,
		Juicer:     s.Inventory.JuicerLevel,
	}

	s.Inventory.Lemons.Normal -= lemons.Normal
	s.Inventory.Lemons.Sour -= lemons.Sour
	s.Inventory.Lemons.Sweet -= lemons.Sweet
	s.Inventory.SugarLbs -= recipe.GramsToLbs(sugarGrams)
	s.Inventory.Containers[container]--

	batch := Batch{
		ID:            uuid.NewString(),
		CreatedOnDay:  s.DayCount,
		CreatedDate:   s.currentDate(),
		ContainerType: container,
		ContainerUses: 1,
		VolumeOz:      volume,
		CapacityOz:    capacity,
		RemainingOz:   volume,
		Quality:       recipe.Quality(r),
		Recipe:        r,
	}
	s.Inventory.LemonadeBatches = append(s.Inventory.LemonadeBatches, batch)
	return batch, nil
}

// BrewCider presses apples into a container of warm cider. Requires the
// cider-making equipment.
func (s *State) BrewCider(applesLbs float64, container recipe.ContainerType) (CiderBatch, error) {
	if !s.Upgrades[upgradeCiderMaker] {
		return CiderBatch{}, ErrUpgradeRequired
	}
	if applesLbs <= 0 {
		return CiderBatch{}, ErrInvalidAmount
	}
	if applesLbs > s.Inventory.ApplesLbs {
		return CiderBatch{}, ErrInsufficientInventory
	}
	if s.Inventory.Containers[container] <= 0 {
		return CiderBatch{}, ErrNoContainer
	}

	ciderOz := applesLbs * recipe.CiderOzPerLbApples
	capacity := recipe.ContainerCapacity(container)
	if ciderOz > capacity {
		return CiderBatch{}, ErrCapacityExceeded
	}

	s.Inventory.ApplesLbs -= applesLbs
	s.Inventory.Containers[container]--

	batch := CiderBatch{
		ID:            uuid.NewString(),
		CreatedOnDay:  s.DayCount,
		CreatedDate:   s.currentDate(),
		ContainerType: container,
		VolumeOz:      ciderOz,
		CapacityOz:    capacity,
		RemainingOz:   ciderOz,
		ApplesUsed:    applesLbs,
	}
	s.Inventory.CiderBatches = append(s.Inventory.CiderBatches, batch)
	return batch, nil
}

// TasteBatch samples a lemonade batch and returns tasting notes. Tasting
// drinks 8 oz unless the taster's handbook makes it free; the handbook also
// unlocks corrective hints.
func (s *State) TasteBatch(batchID string) ([]string, error) {
	idx := s.findLemonadeBatch(batchID)
	if idx < 0 {
		return nil, ErrBatchNotFound
	}
	batch := &s.Inventory.LemonadeBatches[idx]

	handbook := s.Upgrades[upgradeTasterHandbook]
	cost := tasteCostOz
	if handbook {
		cost = 0
	}
	if batch.RemainingOz < cost {
		return nil, ErrNotEnoughToTaste
	}

	notes := recipe.Analyze(batch.Recipe, handbook)
	batch.RemainingOz -= cost
	return notes, nil
}

// Adjustment is a single-step batch correction.
type Adjustment int

const (
	AddWater Adjustment = iota // +1 oz water
	AddLemon                   // squeeze one more lemon
	AddSugar                   // +25 g sugar
)

// AdjustBatch nudges an existing batch by one adjustment step and rescores
// it on ratio accuracy.
func (s *State) AdjustBatch(batchID string, adj Adjustment) (Batch, error) {
	idx := s.findLemonadeBatch(batchID)
	if idx < 0 {
		return Batch{}, ErrBatchNotFound
	}
	batch := &s.Inventory.LemonadeBatches[idx]

	switch adj {
	case AddWater:
		if batch.RemainingOz+1 > batch.CapacityOz {
			return Batch{}, ErrCapacityExceeded
		}
		batch.Recipe.WaterOz++
		batch.RemainingOz++
		batch.VolumeOz++

	case AddLemon:
		if s.Inventory.Lemons.Total() < 1 {
			return Batch{}, ErrInsufficientInventory
		}
		juice := recipe.JuicerYield(s.Inventory.JuicerLevel)
		if batch.RemainingOz+juice > batch.CapacityOz {
			return Batch{}, ErrCapacityExceeded
		}
		switch {
		case s.Inventory.Lemons.Normal > 0:
			s.Inventory.Lemons.Normal--
		case s.Inventory.Lemons.Sour > 0:
			s.Inventory.Lemons.Sour--
		default:
			s.Inventory.Lemons.Sweet--
		}
		batch.Recipe.JuiceOz += juice
		batch.RemainingOz += juice
		batch.VolumeOz += juice

	case AddSugar:
		const grams = 25.0
		if s.Inventory.SugarLbs < recipe.GramsToLbs(grams) {
			return Batch{}, ErrInsufficientInventory
		}
		s.Inventory.SugarLbs -= recipe.GramsToLbs(grams)
		batch.Recipe.SugarGrams += grams

	default:
		return Batch{}, ErrInvalidAmount
	}

	batch.Quality = recipe.RatioQuality(batch.Recipe)
	return *batch, nil
}

// CombineBatches pours several lemonade batches into one vessel. All
// batches must share a container type, fit its capacity, and have reuse
// left. Quality is the volume-weighted average; the combined batch keeps
// the oldest creation day, and the freed containers return to inventory.
func (s *State) CombineBatches(batchIDs []string) (Batch, error) {
	if len(batchIDs) < 2 {
		return Batch{}, ErrTooFewBatches
	}

	var picked []Batch
	for _, id := range batchIDs {
		idx := s.findLemonadeBatch(id)
		if idx < 0 {
			return Batch{}, ErrBatchNotFound
		}
		picked = append(picked, s.Inventory.LemonadeBatches[idx])
	}

	ct := picked[0].ContainerType
	for _, b := range picked[1:] {
		if b.ContainerType != ct {
			return Batch{}, ErrMixedContainerTypes
		}
	}

	totalVolume := 0.0
	maxUses := 0
	oldest := picked[0]
	weighted := 0.0
	for _, b := range picked {
		totalVolume += b.RemainingOz
		weighted += float64(b.Quality) * b.RemainingOz
		if b.ContainerUses > maxUses {
			maxUses = b.ContainerUses
		}
		if b.CreatedOnDay < oldest.CreatedOnDay {
			oldest = b
		}
	}

	capacity := recipe.ContainerCapacity(ct)
	if totalVolume > capacity {
		return Batch{}, ErrCapacityExceeded
	}
	if maxUses >= recipe.Containers[ct].MaxUses {
		return Batch{}, ErrContainerWornOut
	}

	quality := 0
	if totalVolume > 0 {
		quality = int(math.Round(weighted / totalVolume))
	}

	combined := Batch{
		ID:            uuid.NewString(),
		CreatedOnDay:  oldest.CreatedOnDay,
		CreatedDate:   oldest.CreatedDate,
		ContainerType: ct,
		ContainerUses: maxUses + 1,
		VolumeOz:      totalVolume,
		CapacityOz:    capacity,
		RemainingOz:   totalVolume,
		Quality:       quality,
		Recipe:        oldest.Recipe,
	}

	// Drop the merged batches, keep the rest.
	drop := make(map[string]bool, len(batchIDs))
	for _, id := range batchIDs {
		drop[id] = true
	}
	kept := s.Inventory.LemonadeBatches[:0]
	for _, b := range s.Inventory.LemonadeBatches {
		if !drop[b.ID] {
			kept = append(kept, b)
		}
	}
	s.Inventory.LemonadeBatches = append(kept, combined)

	// The merge frees every container but the one still in use.
	s.Inventory.Containers[ct] += len(picked) - 1

	return combined, nil
}

// PlanAutoRecipe asks the lemonade robot for a perfect-ratio recipe from
// current stock. It only plans; MixLemonade executes it.
func (s *State) PlanAutoRecipe(container recipe.ContainerType) (recipe.Recipe, error) {
	if !s.Upgrades[upgradeLemonadeRobot] {
		return recipe.Recipe{}, ErrUpgradeRequired
	}
	r, ok := recipe.AutoRecipe(s.Inventory.Lemons, recipe.LbsToGrams(s.Inventory.SugarLbs),
		s.Inventory.JuicerLevel, container)
	if !ok {
		return recipe.Recipe{}, ErrInsufficientInventory
	}
	return r, nil
}
