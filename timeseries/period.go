package timeseries

import "time"

// yearDuration uses the 365.25-day astronomical year so that the derived
// month and quarter divide it exactly.
const yearDuration = time.Duration(365.25 * 24 * float64(time.Hour))

// Period represents the regular interval between successive observations.
// The zero value is invalid; construct periods with the One* helpers or
// FromDuration.
type Period struct {
	d time.Duration
}

// OneYear returns a period of one year.
func OneYear() Period { return Period{yearDuration} }

// OneQuarter returns a period of one quarter (a quarter year).
func OneQuarter() Period { return Period{yearDuration / 4} }

// OneMonth returns a period of one month (a twelfth of a year).
func OneMonth() Period { return Period{yearDuration / 12} }

// OneWeek returns a period of one week.
func OneWeek() Period { return Period{7 * 24 * time.Hour} }

// OneDay returns a period of one day.
func OneDay() Period { return Period{24 * time.Hour} }

// OneHour returns a period of one hour.
func OneHour() Period { return Period{time.Hour} }

// FromDuration creates a period from an arbitrary duration.
func FromDuration(d time.Duration) Period { return Period{d} }

// Duration returns the length of the period.
func (p Period) Duration() time.Duration { return p.d }

// FrequencyPer reports how many periods of length p occur within one cycle of
// the given length. Monthly observations against a yearly cycle yield 12.
// Returns 0 if p has no positive length.
func (p Period) FrequencyPer(cycle Period) float64 {
	if p.d <= 0 {
		return 0
	}
	return float64(cycle.d) / float64(p.d)
}
