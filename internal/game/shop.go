package game

import (
	"math"

	"github.com/lemonworks/lemonstand/internal/recipe"
)

// Shop item identifiers.
const (
	ItemLemonsNormal    = "lemons_normal"
	ItemLemonsSour      = "lemons_sour"
	ItemLemonsSweet     = "lemons_sweet"
	ItemSugarLbs        = "sugar_lbs"
	ItemApplesLbs       = "apples_lbs"
	ItemCupsTenOz       = "cups_ten_oz"
	ItemCupsSixteenOz   = "cups_sixteen_oz"
	ItemCupsTwentyFour  = "cups_twentyfour_oz"
	ItemMugsCinnamon    = "mugs_cinnamon"
	ItemContainerOneGal = "container_one_gal"
	ItemContainerFive   = "container_five_gal"
	ItemContainerBarrel = "container_barrel"
	ItemContainerTanker = "container_tanker"
	ItemJuicerElectric  = "juicer_electric"
	ItemJuicerCommerc   = "juicer_commercial"
	ItemJuicerIndust    = "juicer_industrial"
)

// Permanent upgrade keys.
const (
	upgradeGlassDispenser   = "glass_dispenser"
	upgradeCashDrawer       = "cash_drawer"
	upgradePOSSystem        = "pos_system"
	upgradeFrozenMachine    = "frozen_machine"
	upgradeSecondLocation   = "second_location"
	upgradeChilledDispenser = "chilled_dispenser"
	upgradeLemonadeRobot    = "lemonade_robot"
	upgradeCiderMaker       = "cider_maker"
	upgradeTasterHandbook   = "taster_handbook"
	upgradeAdCampaign       = "ad_campaign"
)

const (
	adCampaignCustomerBonus = 0.8
	adCampaignDurationDays  = 3
	ciderMakerMonth         = 9
)

// spendBucket routes a purchase to its statistics counter.
type spendBucket int

const (
	bucketGrocery spendBucket = iota
	bucketSupplies
	bucketAds
)

// Item is a stocked shop good: produce, supplies, or equipment.
type Item struct {
	Name   string
	Price  float64
	Unit   string
	Bucket spendBucket

	// Exactly one of these is set.
	addLemons    recipe.LemonType
	addSugarLbs  bool
	addApplesLbs bool
	addCup       string
	addMugs      bool
	addContainer recipe.ContainerType
	juicer       recipe.JuicerLevel
}

// itemCatalog prices every purchasable good.
var itemCatalog = map[string]Item{
	ItemLemonsNormal:    {Name: "Normal Lemons", Price: 0.50, Unit: "each", Bucket: bucketGrocery, addLemons: recipe.Normal},
	ItemLemonsSour:      {Name: "Sour Lemons", Price: 0.40, Unit: "each", Bucket: bucketGrocery, addLemons: recipe.Sour},
	ItemLemonsSweet:     {Name: "Sweet Lemons", Price: 0.60, Unit: "each", Bucket: bucketGrocery, addLemons: recipe.Sweet},
	ItemSugarLbs:        {Name: "Sugar", Price: 1.50, Unit: "lb", Bucket: bucketGrocery, addSugarLbs: true},
	ItemApplesLbs:       {Name: "Apples", Price: 2.00, Unit: "lb", Bucket: bucketGrocery, addApplesLbs: true},
	ItemCupsTenOz:       {Name: "10 oz Cups", Price: 0.10, Unit: "each", Bucket: bucketSupplies, addCup: "small"},
	ItemCupsSixteenOz:   {Name: "16 oz Cups", Price: 0.15, Unit: "each", Bucket: bucketSupplies, addCup: "medium"},
	ItemCupsTwentyFour:  {Name: "24 oz Cups", Price: 0.20, Unit: "each", Bucket: bucketSupplies, addCup: "large"},
	ItemMugsCinnamon:    {Name: "Mugs w/ Cinnamon Stick", Price: 0.75, Unit: "each", Bucket: bucketSupplies, addMugs: true},
	ItemContainerOneGal: {Name: "1 Gallon Container", Price: 5.00, Unit: "each", Bucket: bucketSupplies, addContainer: recipe.OneGal},
	ItemContainerFive:   {Name: "5 Gallon Container", Price: 15.00, Unit: "each", Bucket: bucketSupplies, addContainer: recipe.FiveGal},
	ItemContainerBarrel: {Name: "Barrel", Price: 50.00, Unit: "each", Bucket: bucketSupplies, addContainer: recipe.Barrel},
	ItemContainerTanker: {Name: "Tanker", Price: 500.00, Unit: "each", Bucket: bucketSupplies, addContainer: recipe.Tanker},
	ItemJuicerElectric:  {Name: "Electric Juicer", Price: 75.00, Unit: "each", Bucket: bucketSupplies, juicer: recipe.JuicerElectric},
	ItemJuicerCommerc:   {Name: "Commercial Juicer", Price: 300.00, Unit: "each", Bucket: bucketSupplies, juicer: recipe.JuicerCommercial},
	ItemJuicerIndust:    {Name: "Industrial Juicer", Price: 1500.00, Unit: "each", Bucket: bucketSupplies, juicer: recipe.JuicerIndustrial},
}

// Upgrade describes a stand upgrade and its effects.
type Upgrade struct {
	Name          string
	Price         float64
	ServeBonus    float64
	CustomerBonus float64
	Consumable    bool
	AvailableFrom int // earliest month, 0 = always
}

var upgradeCatalog = map[string]Upgrade{
	upgradeGlassDispenser:   {Name: "Glass Beverage Dispenser", Price: 100, ServeBonus: 0.5},
	upgradeCashDrawer:       {Name: "Cash Drawer", Price: 200, ServeBonus: 0.5},
	upgradePOSSystem:        {Name: "Point of Sale with Card Pay", Price: 2500, ServeBonus: 1.5, CustomerBonus: 0.2},
	upgradeFrozenMachine:    {Name: "Frozen Drink Machine", Price: 3500},
	upgradeSecondLocation:   {Name: "Second Location", Price: 10000},
	upgradeChilledDispenser: {Name: "Chilled Commercial Beverage Dispenser", Price: 1000, ServeBonus: 10},
	upgradeLemonadeRobot:    {Name: "Lemonade Robot", Price: 10000},
	upgradeCiderMaker:       {Name: "Cider Making Equipment", Price: 2500, AvailableFrom: ciderMakerMonth},
	upgradeTasterHandbook:   {Name: "Taster's Handbook", Price: 500},
	upgradeAdCampaign:       {Name: "Ad Campaign", Price: 2500, Consumable: true},
}

// BuyItems purchases a cart of shop goods. The whole cart is validated
// before anything is applied; juicers enforce strict tier progression.
func (s *State) BuyItems(cart map[string]int) error {
	total := 0.0
	for id, qty := range cart {
		item, ok := itemCatalog[id]
		if !ok {
			return ErrUnknownItem
		}
		if qty <= 0 {
			return ErrInvalidAmount
		}
		if item.juicer != "" {
			if recipe.JuicerRank(s.Inventory.JuicerLevel) >= recipe.JuicerRank(item.juicer) {
				return ErrAlreadyOwned
			}
			if recipe.JuicerRank(item.juicer) != recipe.JuicerRank(s.Inventory.JuicerLevel)+1 {
				return ErrJuicerProgression
			}
		}
		total += item.Price * float64(qty)
	}
	if total > s.Money {
		return ErrInsufficientFunds
	}

	s.Money -= total
	for id, qty := range cart {
		item := itemCatalog[id]
		s.bumpSpend(item.Bucket, item.Price*float64(qty))
		s.applyItem(item, qty)
	}
	return nil
}

func (s *State) applyItem(item Item, qty int) {
	switch {
	case item.addLemons != "":
		switch item.addLemons {
		case recipe.Normal:
			s.Inventory.Lemons.Normal += qty
		case recipe.Sour:
			s.Inventory.Lemons.Sour += qty
		case recipe.Sweet:
			s.Inventory.Lemons.Sweet += qty
		}
	case item.addSugarLbs:
		s.Inventory.SugarLbs += float64(qty)
	case item.addApplesLbs:
		s.Inventory.ApplesLbs += float64(qty)
	case item.addCup != "":
		switch item.addCup {
		case "small":
			s.Inventory.Cups.TenOz += qty
		case "medium":
			s.Inventory.Cups.SixteenOz += qty
		case "large":
			s.Inventory.Cups.TwentyfourOz += qty
		}
	case item.addMugs:
		s.Inventory.MugsCinnamon += qty
	case item.addContainer != "":
		s.Inventory.Containers[item.addContainer] += qty
	case item.juicer != "":
		s.Inventory.JuicerLevel = item.juicer
	}
}

func (s *State) bumpSpend(bucket spendBucket, amount float64) {
	switch bucket {
	case bucketGrocery:
		s.Statistics.TotalSpentGrocery += amount
	case bucketSupplies:
		s.Statistics.TotalSpentSupplies += amount
	case bucketAds:
		s.Statistics.TotalSpentAds += amount
	}
}

// BuyUpgrade purchases a stand upgrade. Permanent upgrades are one-time;
// the ad campaign is consumable but limited to one per calendar week, and
// cider equipment only sells from September.
func (s *State) BuyUpgrade(key string) error {
	u, ok := upgradeCatalog[key]
	if !ok {
		return ErrUnknownItem
	}
	if u.AvailableFrom > 0 && s.Month < u.AvailableFrom {
		return ErrNotAvailableYet
	}

	if u.Consumable {
		week := currentWeek(s.DayCount)
		if week == s.ActiveEffects.AdCampaignLastPurchaseWeek {
			return ErrWeeklyLimit
		}
		if u.Price > s.Money {
			return ErrInsufficientFunds
		}
		s.Money -= u.Price
		s.Statistics.TotalSpentAds += u.Price
		s.ActiveEffects.AdCampaignActive = true
		s.ActiveEffects.AdCampaignDaysLeft = adCampaignDurationDays
		s.ActiveEffects.AdCampaignLastPurchaseWeek = week
		return nil
	}

	if s.Upgrades[key] {
		return ErrAlreadyOwned
	}
	if u.Price > s.Money {
		return ErrInsufficientFunds
	}
	s.Money -= u.Price
	s.Statistics.TotalSpentSupplies += u.Price
	s.Upgrades[key] = true
	return nil
}

func currentWeek(dayCount int) int {
	return int(math.Floor(float64(dayCount) / 7))
}
