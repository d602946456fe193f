package game

import "errors"

// Domain rejections. Actions return these without touching state.
var (
	ErrInsufficientFunds     = errors.New("game: not enough money")
	ErrInsufficientInventory = errors.New("game: not enough inventory")
	ErrNoContainer           = errors.New("game: no container of that type available")
	ErrCapacityExceeded      = errors.New("game: container capacity exceeded")
	ErrInvalidRecipe         = errors.New("game: recipe needs lemons, sugar, and water")
	ErrBatchNotFound         = errors.New("game: batch not found")
	ErrNotEnoughToTaste      = errors.New("game: not enough left in batch to taste")
	ErrMixedContainerTypes   = errors.New("game: batches must share a container type")
	ErrContainerWornOut      = errors.New("game: container has reached its reuse limit")
	ErrTooFewBatches         = errors.New("game: need at least two batches to combine")
	ErrUpgradeRequired       = errors.New("game: required upgrade not owned")
	ErrNotAvailableYet       = errors.New("game: item not available this early in the season")
	ErrWeeklyLimit           = errors.New("game: weekly purchase limit reached")
	ErrAlreadyOwned          = errors.New("game: upgrade already owned")
	ErrJuicerProgression     = errors.New("game: juicer tiers must be bought in order")
	ErrUnknownItem           = errors.New("game: unknown shop item")
	ErrPermitRequired        = errors.New("game: no permit for that location")
	ErrLocationLimit         = errors.New("game: already sold at the allowed locations today")
	ErrInvalidAmount         = errors.New("game: invalid amount")
)
