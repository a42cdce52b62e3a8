package search

import "time"

// Period is a coarse local time-of-day bucket.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// PeriodOf classifies a wall-clock time: before noon is morning, noon to
// 5pm is afternoon, the rest is evening.
func PeriodOf(t time.Time) Period {
	switch hour := t.Hour(); {
	case hour < 12:
		return PeriodMorning
	case hour < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// TimeOfDayTable maps (period, normalized dish type) to a bonus of 0-10
// points. The bonus only applies when neither explicit filters nor boosters
// constrain the meal type, so it never fights an explicit request.
type TimeOfDayTable map[Period]map[string]float64

// DefaultTimeOfDayTable returns the bonus table the engine ships with.
func DefaultTimeOfDayTable() TimeOfDayTable {
	return TimeOfDayTable{
		PeriodMorning: {
			"breakfast":    10,
			"brunch":       8,
			"morning meal": 10,
		},
		PeriodAfternoon: {
			"lunch":       10,
			"salad":       6,
			"soup":        5,
			"snack":       4,
			"main course": 4,
		},
		PeriodEvening: {
			"dinner":      10,
			"main course": 8,
			"dessert":     5,
			"side dish":   3,
		},
	}
}

// bonus returns the highest table entry among the recipe's dish types for
// the given period. Dish types don't stack; a recipe tagged both "dinner"
// and "main course" gets the dinner bonus, not the sum.
func (t TimeOfDayTable) bonus(period Period, dishTypes []string) float64 {
	entries := t[period]
	var best float64
	for _, dishType := range dishTypes {
		if b, ok := entries[dishType]; ok && b > best {
			best = b
		}
	}
	return best
}
