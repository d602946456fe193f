package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/weather"
)

func TestGenerateConventions(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		evs := GenerateConventions(entropy.NewSeeded(seed))
		require.Len(t, evs, 12)
		byMonth := make(map[int][]Event)
		for _, e := range evs {
			assert.Equal(t, Convention, e.Type)
			byMonth[e.Month] = append(byMonth[e.Month], e)
		}
		for _, month := range []int{4, 5, 6, 7} {
			days := byMonth[month]
			require.Len(t, days, 3, "month %d", month)
			assert.GreaterOrEqual(t, days[0].Day, 5)
			assert.LessOrEqual(t, days[2].Day, 24)
			assert.Equal(t, days[0].Day+1, days[1].Day)
			assert.Equal(t, days[0].Day+2, days[2].Day)
			assert.Equal(t, conventionNames[month], days[0].Name)
		}
	}
}

func TestGenerateStadiumSpacing(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		evs := GenerateStadium(entropy.NewSeeded(seed))
		byMonth := make(map[int][]Event)
		for _, e := range evs {
			assert.Equal(t, Stadium, e.Type)
			byMonth[e.Month] = append(byMonth[e.Month], e)
		}
		for month, days := range byMonth {
			assert.Contains(t, []int{5, 6, 7, 8, 9, 10}, month)
			// Days come in consecutive pairs, at most 4 pairs.
			require.Equal(t, 0, len(days)%2)
			assert.LessOrEqual(t, len(days)/2, 4)
			var starts []int
			for i := 0; i < len(days); i += 2 {
				assert.Equal(t, days[i].Day+1, days[i+1].Day)
				starts = append(starts, days[i].Day)
			}
			for i := range starts {
				for j := i + 1; j < len(starts); j++ {
					diff := starts[i] - starts[j]
					if diff < 0 {
						diff = -diff
					}
					assert.GreaterOrEqual(t, diff, 3, "month %d", month)
				}
			}
		}
	}
}

func TestGenerateDowntownWeekly(t *testing.T) {
	evs := GenerateDowntown(entropy.NewSeeded(11))
	byMonth := make(map[int][]Event)
	for _, e := range evs {
		assert.Equal(t, Downtown, e.Type)
		byMonth[e.Month] = append(byMonth[e.Month], e)
	}
	for month := 3; month <= 10; month++ {
		days := byMonth[month]
		require.NotEmpty(t, days, "month %d", month)
		assert.LessOrEqual(t, days[0].Day, 7)
		for i := 1; i < len(days); i++ {
			assert.Equal(t, days[i-1].Day+7, days[i].Day)
		}
		assert.LessOrEqual(t, days[len(days)-1].Day, weather.DaysInMonth(month))
	}
}

func TestEventOnChecksHeatwaveRange(t *testing.T) {
	cal := Calendar{
		HeatwaveEvents: []weather.Heatwave{
			{Month: 7, StartDay: 10, EndDay: 12, Duration: 3, Name: "Heat Dome Arrives"},
		},
	}
	e, ok := EventOn(cal, 7, 11)
	require.True(t, ok)
	assert.Equal(t, HeatwaveEv, e.Type)
	assert.Equal(t, "Heat Dome Arrives", e.Name)

	_, ok = EventOn(cal, 7, 13)
	assert.False(t, ok)
}

func TestEventOnPrefersDatedEvents(t *testing.T) {
	cal := Calendar{
		StadiumEvents: []Event{{Month: 7, Day: 11, Type: Stadium, Name: "Summer Bash"}},
		HeatwaveEvents: []weather.Heatwave{
			{Month: 7, StartDay: 10, EndDay: 12, Duration: 3, Name: "Heat Dome Arrives"},
		},
	}
	e, ok := EventOn(cal, 7, 11)
	require.True(t, ok)
	assert.Equal(t, Stadium, e.Type)
}

func TestUpcomingWindowAndOrder(t *testing.T) {
	cal := Calendar{
		DowntownEvents: []Event{
			{Month: 6, Day: 28, Type: Downtown, Name: "Art in the Park"},
			{Month: 6, Day: 20, Type: Downtown, Name: "Local Craft Fair"},
		},
		StadiumEvents: []Event{
			{Month: 7, Day: 2, Type: Stadium, Name: "Independence Day Game"},
		},
		HeatwaveEvents: []weather.Heatwave{
			{Month: 6, StartDay: 27, EndDay: 29, Duration: 3, Name: "Summer Scorcher"},
		},
	}
	up := Upcoming(cal, 6, 26)
	require.Len(t, up, 3)
	assert.Equal(t, "Summer Scorcher", up[0].Name)
	assert.Equal(t, 1, up[0].DaysUntil)
	assert.Equal(t, "Art in the Park", up[1].Name)
	assert.Equal(t, 2, up[1].DaysUntil)
	assert.Equal(t, "Independence Day Game", up[2].Name)
	assert.Equal(t, 6, up[2].DaysUntil) // June has 30 days
}
