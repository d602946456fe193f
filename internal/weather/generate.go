package weather

import (
	"math"

	"github.com/lemonworks/lemonstand/internal/entropy"
)

// SeasonStart and SeasonEnd bound the playable calendar.
const (
	SeasonStartMonth = 3
	SeasonStartDay   = 20
	SeasonEndMonth   = 10
)

// DaysInMonth returns the calendar length of a month (non-leap year).
func DaysInMonth(month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		return 28
	default:
		return 31
	}
}

// GenerateHeatwaves schedules heatwaves for the summer months. June, July and
// August each get one or two non-overlapping waves of 2-4 days.
func GenerateHeatwaves(src entropy.Source) []Heatwave {
	var waves []Heatwave
	for _, month := range []int{6, 7, 8} {
		count := 2
		if entropy.Chance(src, 0.6) {
			count = 1
		}
		var placed []Heatwave
		for i := 0; i < count; i++ {
			for attempt := 0; attempt < 20; attempt++ {
				duration := src.Intn(3) + 2
				startDay := src.Intn(DaysInMonth(month)-duration-1) + 1
				endDay := startDay + duration - 1
				if overlapsAny(placed, startDay, endDay) {
					continue
				}
				placed = append(placed, Heatwave{
					Month:    month,
					StartDay: startDay,
					EndDay:   endDay,
					Duration: duration,
					Name:     entropy.Pick(src, heatwaveNames),
				})
				break
			}
		}
		waves = append(waves, placed...)
	}
	return waves
}

func overlapsAny(placed []Heatwave, start, end int) bool {
	for _, w := range placed {
		if start <= w.EndDay && end >= w.StartDay {
			return true
		}
	}
	return false
}

// HeatwaveAt returns the heatwave covering the given date, if any.
func HeatwaveAt(waves []Heatwave, month, day int) (Heatwave, bool) {
	for _, w := range waves {
		if w.Covers(month, day) {
			return w, true
		}
	}
	return Heatwave{}, false
}

// startingTemp seeds the walk near the middle of the first month's band.
func startingTemp(src entropy.Source, month int) int {
	min, max := TempRange(month, false)
	mid := float64(min+max) / 2
	span := float64(max - min)
	return int(math.Round(mid + (src.Float()-0.5)*span*0.25))
}

// nextTemp advances the temperature one day as a signed random walk clamped
// to the day's band.
func nextTemp(src entropy.Source, current, month int, heatwave bool) int {
	min, max := TempRange(month, heatwave)
	delta := entropy.Pick(src, tempChangeOptions)
	if entropy.Chance(src, 0.5) {
		delta = -delta
	}
	t := current + delta
	if t < min {
		t = min
	}
	if t > max {
		t = max
	}
	return t
}

// weatherFor rolls a weather type from the temperature bucket's table.
func weatherFor(src entropy.Source, temp int) Type {
	p := weatherProbabilities[tempCategory(temp)]
	roll := src.Intn(100)
	switch {
	case roll < p.sunny:
		return Sunny
	case roll < p.sunny+p.partlyCloudy:
		return PartlyCloudy
	case roll < p.sunny+p.partlyCloudy+p.cloudy:
		return Cloudy
	default:
		return Rainy
	}
}

// GenerateSeason builds the day-by-day timeline from March 20 through
// October 31, honoring the given heatwave schedule. Every playable date
// appears exactly once, in calendar order.
func GenerateSeason(src entropy.Source, waves []Heatwave) []Daily {
	var timeline []Daily
	temp := startingTemp(src, SeasonStartMonth)
	for month := SeasonStartMonth; month <= SeasonEndMonth; month++ {
		startDay := 1
		if month == SeasonStartMonth {
			startDay = SeasonStartDay
		}
		for day := startDay; day <= DaysInMonth(month); day++ {
			_, hot := HeatwaveAt(waves, month, day)
			if hot {
				min, _ := TempRange(month, true)
				if temp < min {
					temp = min
				}
			}
			temp = nextTemp(src, temp, month, hot)
			wtype := weatherFor(src, temp)
			timeline = append(timeline, Daily{
				Month:      month,
				Day:        day,
				Temp:       temp,
				Weather:    wtype,
				Info:       Types[wtype],
				IsHeatwave: hot,
			})
			if hot {
				// Fall back toward the month band once the wave passes.
				if _, still := HeatwaveAt(waves, month, day+1); !still {
					_, max := TempRange(month, false)
					temp = max
				}
			}
		}
	}
	return timeline
}

// Lookup finds the timeline entry for a date.
func Lookup(timeline []Daily, month, day int) (Daily, bool) {
	for _, d := range timeline {
		if d.Month == month && d.Day == day {
			return d, true
		}
	}
	return Daily{}, false
}

// Forecast returns up to n entries starting the day after the given date.
func Forecast(timeline []Daily, month, day, n int) []Daily {
	idx := -1
	for i, d := range timeline {
		if d.Month == month && d.Day == day {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(timeline) {
		return nil
	}
	end := idx + 1 + n
	if end > len(timeline) {
		end = len(timeline)
	}
	return timeline[idx+1 : end]
}
