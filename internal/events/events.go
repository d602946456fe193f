// Package events builds the season event calendar at game-reset time:
// convention-center shows, stadium weekends, downtown park gatherings, and
// the heatwave schedule. Like the weather timeline, the calendar is
// generated once and stored in the game document.
package events

import (
	"fmt"
	"sort"

	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/weather"
)

// EventType tags a calendar entry with its location demand effect.
type EventType string

const (
	Convention EventType = "convention"
	Stadium    EventType = "stadium"
	Downtown   EventType = "downtown"
	HeatwaveEv EventType = "heatwave"
)

// Event is a single event day on the calendar. Multi-day events appear as
// one entry per day.
type Event struct {
	Month       int       `json:"month"`
	Day         int       `json:"day"`
	Type        EventType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Calendar holds the full season schedule.
type Calendar struct {
	ConventionEvents []Event            `json:"convention_events"`
	StadiumEvents    []Event            `json:"stadium_events"`
	DowntownEvents   []Event            `json:"downtown_events"`
	HeatwaveEvents   []weather.Heatwave `json:"heatwave_events"`
	Year             int                `json:"year"`
}

var conventionNames = map[int]string{
	4: "Spring Tech Expo",
	5: "Regional Business Summit",
	6: "Summer Innovation Conference",
	7: "Annual Trade Show",
}

var stadiumNames = map[int][]string{
	5:  {"Opening Day", "Memorial Day Tournament", "Spring Classic", "Rivalry Weekend"},
	6:  {"Summer Series", "Championship Qualifier", "All-Star Weekend", "Pride Festival"},
	7:  {"Independence Day Game", "Mid-Season Showdown", "Summer Bash", "League Finals"},
	8:  {"Playoff Opener", "Championship Series", "Summer Finale", "Tournament Finals"},
	9:  {"Fall Classic", "Homecoming Game", "Rivalry Match", "Season Closer"},
	10: {"Championship Game", "World Series", "Grand Final", "Trophy Match"},
}

var downtownNames = []string{
	"Food Truck Festival",
	"Outdoor Concert Series",
	"Art in the Park",
	"Community Yoga Day",
	"Local Craft Fair",
	"Live Music Fest",
	"Street Food Market",
	"Outdoor Movie Night",
	"Fitness Bootcamp",
	"Cultural Festival",
}

// GenerateConventions places one 3-day convention in each of April through
// July, starting between the 5th and the 22nd.
func GenerateConventions(src entropy.Source) []Event {
	var events []Event
	for _, month := range []int{4, 5, 6, 7} {
		startDay := src.Intn(18) + 5
		name := conventionNames[month]
		for i := 0; i < 3; i++ {
			events = append(events, Event{
				Month:       month,
				Day:         startDay + i,
				Type:        Convention,
				Name:        name,
				Description: fmt.Sprintf("%s at Convention Center", name),
			})
		}
	}
	return events
}

// GenerateStadium places up to four 2-day stadium events per month from May
// through October. Starts are at least 3 days apart within a month; after
// 100 placement attempts the month keeps whatever fit.
func GenerateStadium(src entropy.Source) []Event {
	var events []Event
	for _, month := range []int{5, 6, 7, 8, 9, 10} {
		var starts []int
		daysInMonth := weather.DaysInMonth(month)
		for attempt := 0; len(starts) < 4 && attempt < 100; attempt++ {
			startDay := src.Intn(daysInMonth-2) + 1
			conflict := false
			for _, s := range starts {
				if abs(s-startDay) < 3 {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}
			name := stadiumNames[month][len(starts)%len(stadiumNames[month])]
			for i := 0; i < 2; i++ {
				events = append(events, Event{
					Month:       month,
					Day:         startDay + i,
					Type:        Stadium,
					Name:        name,
					Description: fmt.Sprintf("%s at Stadium", name),
				})
			}
			starts = append(starts, startDay)
		}
	}
	return events
}

// GenerateDowntown places a weekly one-day event in each playable month,
// anchored on a random day in the first week.
func GenerateDowntown(src entropy.Source) []Event {
	var events []Event
	for month := 3; month <= 10; month++ {
		day := src.Intn(7) + 1
		for day <= weather.DaysInMonth(month) {
			name := entropy.Pick(src, downtownNames)
			events = append(events, Event{
				Month:       month,
				Day:         day,
				Type:        Downtown,
				Name:        name,
				Description: fmt.Sprintf("%s at Downtown Park", name),
			})
			day += 7
		}
	}
	return events
}

// Generate builds the complete calendar for a new game.
func Generate(src entropy.Source, year int) Calendar {
	return Calendar{
		ConventionEvents: GenerateConventions(src),
		StadiumEvents:    GenerateStadium(src),
		DowntownEvents:   GenerateDowntown(src),
		HeatwaveEvents:   weather.GenerateHeatwaves(src),
		Year:             year,
	}
}

// EventOn returns the event active on a date, checking conventions, stadium,
// downtown, then heatwaves (matched by day range).
func EventOn(cal Calendar, month, day int) (Event, bool) {
	for _, group := range [][]Event{cal.ConventionEvents, cal.StadiumEvents, cal.DowntownEvents} {
		for _, e := range group {
			if e.Month == month && e.Day == day {
				return e, true
			}
		}
	}
	if hw, ok := weather.HeatwaveAt(cal.HeatwaveEvents, month, day); ok {
		return Event{
			Month:       hw.Month,
			Day:         hw.StartDay,
			Type:        HeatwaveEv,
			Name:        hw.Name,
			Description: fmt.Sprintf("%s (%d days)", hw.Name, hw.Duration),
		}, true
	}
	return Event{}, false
}

// UpcomingEvent is a calendar entry annotated with its distance from today.
type UpcomingEvent struct {
	Event
	DaysUntil int `json:"days_until"`
}

// Upcoming returns events starting within the next 7 days, soonest first.
// Heatwaves contribute their start day only.
func Upcoming(cal Calendar, month, day int) []UpcomingEvent {
	all := make([]Event, 0, len(cal.ConventionEvents)+len(cal.StadiumEvents)+len(cal.DowntownEvents)+len(cal.HeatwaveEvents))
	all = append(all, cal.ConventionEvents...)
	all = append(all, cal.StadiumEvents...)
	all = append(all, cal.DowntownEvents...)
	for _, hw := range cal.HeatwaveEvents {
		all = append(all, Event{
			Month:       hw.Month,
			Day:         hw.StartDay,
			Type:        HeatwaveEv,
			Name:        hw.Name,
			Description: fmt.Sprintf("%s (%d days)", hw.Name, hw.Duration),
		})
	}

	var upcoming []UpcomingEvent
	for _, e := range all {
		daysUntil := -1
		if e.Month == month {
			daysUntil = e.Day - day
		} else if e.Month == month+1 {
			daysUntil = (weather.DaysInMonth(month) - day) + e.Day
		}
		if daysUntil >= 0 && daysUntil <= 7 {
			upcoming = append(upcoming, UpcomingEvent{Event: e, DaysUntil: daysUntil})
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysUntil < upcoming[j].DaysUntil
	})
	return upcoming
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
