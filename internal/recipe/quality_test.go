package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perfectSingleServing() Recipe {
	return Recipe{
		Lemons:     LemonCounts{Normal: 2},
		SugarGrams: 25,
		WaterOz:    6,
		JuiceOz:    2,
		Juicer:     JuicerHand,
	}
}

func TestQualityPerfectRecipe(t *testing.T) {
	q := Quality(perfectSingleServing())
	assert.GreaterOrEqual(t, q, 95)
	assert.LessOrEqual(t, q, 100)
}

func TestQualityIsPureAndBounded(t *testing.T) {
	recipes := []Recipe{
		perfectSingleServing(),
		{Lemons: LemonCounts{Sour: 3}, SugarGrams: 5, WaterOz: 40, JuiceOz: 4.5, Juicer: JuicerHand},
		{Lemons: LemonCounts{Normal: 1, Sweet: 1}, SugarGrams: 60, WaterOz: 2, JuiceOz: 3, Juicer: JuicerElectric},
		{},
	}
	for _, r := range recipes {
		first := Quality(r)
		assert.Equal(t, first, Quality(r))
		assert.GreaterOrEqual(t, first, 0)
		assert.LessOrEqual(t, first, 100)
	}
}

func TestQualityEmptyMixtureIsZero(t *testing.T) {
	assert.Equal(t, 0, Quality(Recipe{SugarGrams: 25}))
	assert.Equal(t, 0, RatioQuality(Recipe{}))
}

func TestQualityDegradesWithDeviation(t *testing.T) {
	perfect := perfectSingleServing()
	watery := perfect
	watery.WaterOz = 12
	assert.Less(t, Quality(watery), Quality(perfect))

	sugary := perfect
	sugary.SugarGrams = 50
	assert.Less(t, Quality(sugary), Quality(perfect))
}

func TestQualityDiversityBonus(t *testing.T) {
	single := Recipe{
		Lemons:     LemonCounts{Normal: 4},
		SugarGrams: 50,
		WaterOz:    12,
		JuiceOz:    4,
		Juicer:     JuicerHand,
	}
	mixed := single
	mixed.Lemons = LemonCounts{Normal: 2, Sweet: 2}
	assert.Greater(t, Quality(mixed), Quality(single))
}

func TestRatioQualityIgnoresLemonBonuses(t *testing.T) {
	r := perfectSingleServing()
	r.Lemons = LemonCounts{Sour: 1, Sweet: 1}
	// Perfect ratios: full marks before variety multipliers.
	assert.Equal(t, 100, RatioQuality(r))
}

func TestAnalyzeBalancedRecipe(t *testing.T) {
	notes := Analyze(perfectSingleServing(), false)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "PERFECT")
}

func TestAnalyzeFlagsWeakAndSour(t *testing.T) {
	weak := Recipe{
		Lemons:     LemonCounts{Normal: 1},
		SugarGrams: 10,
		WaterOz:    20,
		JuiceOz:    1.5,
		Juicer:     JuicerHand,
	}
	notes := Analyze(weak, false)
	joined := ""
	for _, n := range notes {
		joined += n + "\n"
	}
	assert.Contains(t, joined, "WEAK")
	assert.Contains(t, joined, "SOUR")

	withHints := Analyze(weak, true)
	assert.Contains(t, withHints[0], "-")
}

func TestJuicerYieldProgression(t *testing.T) {
	assert.InDelta(t, 1.5, JuicerYield(JuicerHand), 1e-9)
	assert.InDelta(t, 2.5, JuicerYield(JuicerElectric), 1e-9)
	assert.InDelta(t, 4.0, JuicerYield(JuicerCommercial), 1e-9)
	assert.InDelta(t, 7.0, JuicerYield(JuicerIndustrial), 1e-9)
	assert.InDelta(t, 1.5, JuicerYield(JuicerLevel("unknown")), 1e-9)

	assert.Equal(t, 0, JuicerRank(JuicerHand))
	assert.Equal(t, 3, JuicerRank(JuicerIndustrial))
	assert.Equal(t, -1, JuicerRank(JuicerLevel("laser")))
}

func TestContainerCatalog(t *testing.T) {
	assert.InDelta(t, 128.0, ContainerCapacity(OneGal), 1e-9)
	assert.InDelta(t, 64000.0, ContainerCapacity(Tanker), 1e-9)
	assert.Equal(t, 2, Containers[OneGal].MaxUses)
	assert.Equal(t, 99, Containers[Tanker].MaxUses)
}

func TestAutoRecipeUsesAllLemonsWhenStocked(t *testing.T) {
	avail := LemonCounts{Normal: 10}
	r, ok := AutoRecipe(avail, LbsToGrams(2), JuicerHand, OneGal)
	require.True(t, ok)
	assert.Equal(t, 10, r.Lemons.Total())
	assert.InDelta(t, 15, r.JuiceOz, 1e-9)
	assert.InDelta(t, 45, r.WaterOz, 1e-9)
	assert.InDelta(t, 188, r.SugarGrams, 1.0)
	assert.GreaterOrEqual(t, Quality(r), 90)
}

func TestAutoRecipeSugarLimited(t *testing.T) {
	avail := LemonCounts{Normal: 100}
	r, ok := AutoRecipe(avail, 50, JuicerHand, Tanker)
	require.True(t, ok)
	// 50g sugar makes two servings: 4 oz juice, 12 oz water.
	assert.InDelta(t, 50, r.SugarGrams, 1.0)
	assert.InDelta(t, 12, r.WaterOz, 1.0)
	assert.LessOrEqual(t, r.Lemons.Total(), 3)
}

func TestAutoRecipeScalesToContainer(t *testing.T) {
	avail := LemonCounts{Normal: 100}
	r, ok := AutoRecipe(avail, LbsToGrams(50), JuicerHand, OneGal)
	require.True(t, ok)
	assert.LessOrEqual(t, r.TotalOz(), ContainerCapacity(OneGal))
}

func TestAutoRecipeNoLemons(t *testing.T) {
	_, ok := AutoRecipe(LemonCounts{}, 1000, JuicerHand, OneGal)
	assert.False(t, ok)
}

func TestConversions(t *testing.T) {
	assert.InDelta(t, 453.592, LbsToGrams(1), 1e-9)
	assert.InDelta(t, 1.0, GramsToLbs(453.592), 1e-9)
}
