package recipe

import "math"

// AutoRecipe computes a perfect-ratio recipe from the pantry: use every
// lemon, pair it with matching water and sugar, and fall back to a
// sugar-limited or container-scaled plan when stock or capacity runs short.
// Lemon varieties are drawn proportionally to what is available. Returns
// false when there are no lemons.
func AutoRecipe(avail LemonCounts, availSugarGrams float64, level JuicerLevel, container ContainerType) (Recipe, bool) {
	totalLemons := avail.Total()
	if totalLemons == 0 {
		return Recipe{}, false
	}

	yield := JuicerYield(level)
	maxJuice := float64(totalLemons) * yield
	servings := maxJuice / PerfectJuiceOz
	requiredWater := servings * PerfectWaterOz
	requiredSugar := servings * PerfectSugarGram

	if requiredSugar > availSugarGrams {
		// Sugar-limited plan.
		servings = availSugarGrams / PerfectSugarGram
		lemonsNeeded := int(math.Ceil(servings * PerfectJuiceOz / yield))
		return buildRecipe(avail, lemonsNeeded, servings, level), true
	}

	capacity := ContainerCapacity(container)
	if totalVolume := maxJuice + math.Round(requiredWater); totalVolume > capacity {
		// Scale down to fit the vessel.
		scale := capacity / totalVolume
		lemonsToUse := int(float64(totalLemons) * scale)
		servings = float64(lemonsToUse) * yield / PerfectJuiceOz
		return buildRecipe(avail, lemonsToUse, servings, level), true
	}

	return buildRecipe(avail, totalLemons, servings, level), true
}

// buildRecipe splits the lemon draw proportionally across varieties and
// fills in the matching water and sugar.
func buildRecipe(avail LemonCounts, lemonsToUse int, servings float64, level JuicerLevel) Recipe {
	total := avail.Total()
	lemons := LemonCounts{
		Normal: int(math.Floor(float64(lemonsToUse) * float64(avail.Normal) / float64(total))),
		Sour:   int(math.Floor(float64(lemonsToUse) * float64(avail.Sour) / float64(total))),
		Sweet:  int(math.Floor(float64(lemonsToUse) * float64(avail.Sweet) / float64(total))),
	}
	return Recipe{
		Lemons:     lemons,
		SugarGrams: math.Round(servings * PerfectSugarGram),
		WaterOz:    math.Round(servings * PerfectWaterOz),
		JuiceOz:    JuiceYield(lemons, level),
		Juicer:     level,
	}
}
