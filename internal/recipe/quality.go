package recipe

import "math"

// Deviation tolerances and penalty exponents per axis. Juice is the most
// critical axis, water the least.
const (
	waterTolerance = 0.3
	juiceTolerance = 0.2
	sugarTolerance = 0.25

	waterPenalty = 0.8
	juicePenalty = 1.2
	sugarPenalty = 1.0

	balanceBonus   = 1.15
	diversityBonus = 1.05
)

// deviations returns the relative distance of each axis from the perfect
// ratio. Ratios are taken over the liquid volume.
func (r Recipe) deviations() (water, juice, sugar float64) {
	total := r.TotalOz()
	if total == 0 {
		return 1, 1, 1
	}
	perfectTotal := PerfectWaterOz + PerfectJuiceOz
	perfectWater := PerfectWaterOz / perfectTotal
	perfectJuice := PerfectJuiceOz / perfectTotal
	perfectSugar := PerfectSugarGram / perfectTotal

	water = math.Abs(r.WaterOz/total-perfectWater) / perfectWater
	juice = math.Abs(r.JuiceOz/total-perfectJuice) / perfectJuice
	sugar = math.Abs(r.SugarGrams/total-perfectSugar) / perfectSugar
	return water, juice, sugar
}

func axisScore(deviation, tolerance, penalty float64) float64 {
	return math.Pow(math.Max(0, 1-deviation/tolerance), penalty)
}

// ratioScore is the mean of the three axis scores in [0, 1].
func (r Recipe) ratioScore() float64 {
	water, juice, sugar := r.deviations()
	ws := axisScore(water, waterTolerance, waterPenalty)
	js := axisScore(juice, juiceTolerance, juicePenalty)
	ss := axisScore(sugar, sugarTolerance, sugarPenalty)
	return (ws + js + ss) / 3
}

// Quality scores a fresh mix 0-100: ratio accuracy, lemon variety
// intensity, a diversity bonus for mixing varieties, and a balance bonus
// when every axis is within tolerance.
func Quality(r Recipe) int {
	if r.TotalOz() == 0 {
		return 0
	}

	lemonScore := 1.0
	if total := r.Lemons.Total(); total > 0 {
		weighted := 0.0
		weighted += float64(r.Lemons.Normal) / float64(total) * lemonJuiceQuality[Normal]
		weighted += float64(r.Lemons.Sour) / float64(total) * lemonJuiceQuality[Sour]
		weighted += float64(r.Lemons.Sweet) / float64(total) * lemonJuiceQuality[Sweet]
		lemonScore = weighted
	}

	diversity := 1.0
	if r.Lemons.TypesUsed() >= 2 {
		diversity = diversityBonus
	}

	water, juice, sugar := r.deviations()
	balance := 1.0
	if water < waterTolerance && juice < juiceTolerance && sugar < sugarTolerance {
		balance = balanceBonus
	}

	final := r.ratioScore() * lemonScore * diversity * balance * 100
	return round(math.Min(100, math.Max(0, final)))
}

// RatioQuality scores a recipe on ratio accuracy alone. Batch adjustments
// use this form; the mix-time variety bonuses do not survive tampering.
func RatioQuality(r Recipe) int {
	if r.TotalOz() == 0 {
		return 0
	}
	return round(math.Min(100, math.Max(0, r.ratioScore()*100)))
}

// Analyze tastes a recipe and reports what is off. The taster's handbook
// adds corrective hints to each note. A balanced recipe returns a single
// compliment.
func Analyze(r Recipe, handbook bool) []string {
	total := r.TotalOz()
	if total == 0 {
		return []string{"Nothing to taste."}
	}
	perfectTotal := PerfectWaterOz + PerfectJuiceOz
	waterDev := (r.WaterOz/total - PerfectWaterOz/perfectTotal) / (PerfectWaterOz / perfectTotal)
	juiceDev := (r.JuiceOz/total - PerfectJuiceOz/perfectTotal) / (PerfectJuiceOz / perfectTotal)
	sugarDev := (r.SugarGrams/total - PerfectSugarGram/perfectTotal) / (PerfectSugarGram / perfectTotal)

	var notes []string
	note := func(plain, hint string) {
		if handbook {
			notes = append(notes, plain+" - "+hint)
		} else {
			notes = append(notes, plain)
		}
	}

	switch {
	case waterDev > 0.2:
		note("WAY TOO WEAK", "Too much water! Add more lemons or sugar.")
	case waterDev > 0.1:
		note("A LITTLE WEAK", "Could use more lemons or sugar.")
	case waterDev < -0.2:
		note("WAY TOO STRONG", "Too little water! Add more water.")
	case waterDev < -0.1:
		note("A LITTLE STRONG", "Could use a bit more water.")
	}

	switch {
	case sugarDev > 0.2:
		note("WAY TOO SWEET", "Too much sugar! Add water or lemon juice.")
	case sugarDev > 0.1:
		note("A LITTLE SWEET", "Could use slightly less sugar or more lemon.")
	case sugarDev < -0.2:
		note("WAY TOO SOUR", "Not enough sugar! Add more sugar.")
	case sugarDev < -0.1:
		note("A LITTLE SOUR", "Could use a bit more sugar.")
	}

	switch {
	case juiceDev > 0.2:
		note("WAY TOO SOUR", "Too much lemon juice! Add water or sugar.")
	case juiceDev > 0.1:
		note("A LITTLE SOUR", "Could balance with water or sugar.")
	}

	if len(notes) == 0 {
		notes = append(notes, "PERFECT! This lemonade is balanced beautifully!")
	}
	return notes
}
