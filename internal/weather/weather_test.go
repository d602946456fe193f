package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemonworks/lemonstand/internal/entropy"
)

func TestGenerateSeasonCoversEveryPlayableDate(t *testing.T) {
	src := entropy.NewSeeded(1)
	timeline := GenerateSeason(src, GenerateHeatwaves(src))

	seen := make(map[[2]int]int)
	for _, d := range timeline {
		seen[[2]int{d.Month, d.Day}]++
	}
	total := 0
	for month := 3; month <= 10; month++ {
		start := 1
		if month == 3 {
			start = 20
		}
		for day := start; day <= DaysInMonth(month); day++ {
			assert.Equal(t, 1, seen[[2]int{month, day}], "month %d day %d", month, day)
			total++
		}
	}
	assert.Len(t, timeline, total)
}

func TestGenerateSeasonTempsWithinBands(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		src := entropy.NewSeeded(seed)
		timeline := GenerateSeason(src, GenerateHeatwaves(src))
		for _, d := range timeline {
			min, max := TempRange(d.Month, d.IsHeatwave)
			assert.GreaterOrEqual(t, d.Temp, min, "seed %d month %d day %d", seed, d.Month, d.Day)
			assert.LessOrEqual(t, d.Temp, max, "seed %d month %d day %d", seed, d.Month, d.Day)
		}
	}
}

func TestGenerateHeatwavesSummerOnlyNoOverlap(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		waves := GenerateHeatwaves(entropy.NewSeeded(seed))
		perMonth := make(map[int][]Heatwave)
		for _, w := range waves {
			assert.Contains(t, []int{6, 7, 8}, w.Month)
			assert.GreaterOrEqual(t, w.Duration, 2)
			assert.LessOrEqual(t, w.Duration, 4)
			assert.Equal(t, w.Duration, w.EndDay-w.StartDay+1)
			assert.GreaterOrEqual(t, w.StartDay, 1)
			assert.LessOrEqual(t, w.EndDay, DaysInMonth(w.Month))
			assert.NotEmpty(t, w.Name)
			perMonth[w.Month] = append(perMonth[w.Month], w)
		}
		for month, ws := range perMonth {
			assert.LessOrEqual(t, len(ws), 2, "month %d", month)
			for i := 0; i < len(ws); i++ {
				for j := i + 1; j < len(ws); j++ {
					overlap := ws[i].StartDay <= ws[j].EndDay && ws[i].EndDay >= ws[j].StartDay
					assert.False(t, overlap, "month %d waves overlap", month)
				}
			}
		}
	}
}

func TestHeatwaveDaysUseHeatwaveBand(t *testing.T) {
	src := entropy.NewSeeded(7)
	waves := GenerateHeatwaves(src)
	require.NotEmpty(t, waves)
	timeline := GenerateSeason(src, waves)
	found := false
	for _, d := range timeline {
		if d.IsHeatwave {
			found = true
			assert.GreaterOrEqual(t, d.Temp, 99)
			assert.LessOrEqual(t, d.Temp, 115)
		}
	}
	assert.True(t, found)
}

func TestGenerateSeasonInlinesWeatherInfo(t *testing.T) {
	src := entropy.NewSeeded(5)
	timeline := GenerateSeason(src, nil)
	require.NotEmpty(t, timeline)
	for _, d := range timeline {
		assert.Equal(t, Types[d.Weather], d.Info, "month %d day %d", d.Month, d.Day)
		assert.NotEmpty(t, d.Info.Name)
	}
}

func TestLookupAndForecast(t *testing.T) {
	src := entropy.NewSeeded(3)
	timeline := GenerateSeason(src, nil)

	d, ok := Lookup(timeline, 3, 20)
	require.True(t, ok)
	assert.Equal(t, 3, d.Month)
	assert.Equal(t, 20, d.Day)

	_, ok = Lookup(timeline, 3, 19)
	assert.False(t, ok)

	fc := Forecast(timeline, 3, 20, 7)
	require.Len(t, fc, 7)
	assert.Equal(t, 21, fc[0].Day)
	assert.Equal(t, 27, fc[6].Day)

	// Forecast truncates at end of season.
	fc = Forecast(timeline, 10, 30, 7)
	require.Len(t, fc, 1)
	assert.Equal(t, 31, fc[0].Day)
}

func TestThirstModifier(t *testing.T) {
	assert.InDelta(t, 0.3, ThirstModifier(Sunny), 1e-9)
	assert.InDelta(t, -0.2, ThirstModifier(Rainy), 1e-9)
	assert.InDelta(t, 0.3, ThirstModifier(Type("fog")), 1e-9)
}
