package parking

import (
	"errors"
	"time"
)

var ErrExitBeforeEntry = errors.New("exit time is before entry time")

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// Tariff is the billing schedule for a completed session.
//
// The charge is a pure function of the entry/exit pair:
//   - at most GraceMinutes of parking is free
//   - sub-day stays pay FirstHourCents for the first (possibly partial) hour
//     and AdditionalHourCents per started hour after that
//   - once a sub-day stay reaches DailyAfterHours full hours, the hourly
//     tally is replaced by the flat DailyCents
//   - stays of a day or longer pay DailyCents per full day, and the partial
//     last day is billed as a fresh stay starting at the day boundary,
//     grace period included
type Tariff struct {
	GraceMinutes        int
	FirstHourCents      int64
	AdditionalHourCents int64
	DailyCents          int64
	DailyAfterHours     int
}

// DefaultTariff returns the reference schedule: 15 min grace, 5.00 first
// hour, 2.00 per additional hour, 25.00 per day from 10 hours up.
func DefaultTariff() Tariff {
	return Tariff{
		GraceMinutes:        15,
		FirstHourCents:      500,
		AdditionalHourCents: 200,
		DailyCents:          2500,
		DailyAfterHours:     10,
	}
}

// Charge computes the amount owed for the interval [entry, exit].
func (t Tariff) Charge(entry, exit time.Time) (Money, error) {
	if exit.Before(entry) {
		return Money{}, ErrExitBeforeEntry
	}
	return NewMoney(t.charge(entry, exit))
}

func (t Tariff) charge(entry, exit time.Time) int64 {
	minutes := int64(exit.Sub(entry) / time.Minute)

	if minutes <= int64(t.GraceMinutes) {
		return 0
	}

	if fullDays := minutes / minutesPerDay; fullDays >= 1 {
		total := t.DailyCents * fullDays
		if minutes%minutesPerDay > 0 {
			// The remainder restarts the schedule from the day boundary.
			dayBoundary := entry.Add(time.Duration(fullDays) * 24 * time.Hour)
			total += t.charge(dayBoundary, exit)
		}
		return total
	}

	fullHours := minutes / minutesPerHour
	if fullHours >= int64(t.DailyAfterHours) {
		// Flat daily rate supersedes the hourly tally, it is not added to it.
		return t.DailyCents
	}

	if fullHours == 0 {
		return t.FirstHourCents
	}

	total := t.FirstHourCents + t.AdditionalHourCents*(fullHours-1)
	if minutes%minutesPerHour > 0 {
		// Any started hour is billed in full.
		total += t.AdditionalHourCents
	}
	return total
}
