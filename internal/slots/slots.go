// Package slots generates valid interview time slots on a half-hour grid
// under business-hour and weekend constraints. Both entry points are pure
// given a Config; the clock is injected so "today" is testable.
package slots

import (
	"fmt"
	"time"

	"github.com/hireloop/matchd/internal/talent"
)

const slotStep = 30 * time.Minute

// Config bounds slot generation. It is threaded explicitly into every call;
// the generator reads no ambient state.
type Config struct {
	WorkingHoursStart int           // first slot hour, inclusive
	WorkingHoursEnd   int           // no slot starts at or after this hour
	Duration          time.Duration // per-slot interview duration
	ExcludeWeekends   bool
	Location          *time.Location
	Now               func() time.Time // nil means time.Now
}

// DefaultConfig returns the stock 09:00-17:00 weekday configuration with
// 30 minute interviews.
func DefaultConfig() Config {
	return Config{
		WorkingHoursStart: 9,
		WorkingHoursEnd:   17,
		Duration:          30 * time.Minute,
		ExcludeWeekends:   true,
		Location:          time.Local,
	}
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Config) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// Available enumerates the valid slots for one calendar date in
// chronological order. Weekend dates yield nothing when weekends are
// excluded, and slots at or before the current time are dropped when the
// date is today.
func Available(date time.Time, cfg Config) []talent.TimeSlot {
	loc := cfg.location()
	date = date.In(loc)

	if cfg.ExcludeWeekends {
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return nil
		}
	}

	now := cfg.now().In(loc)
	today := sameDay(date, now)

	var out []talent.TimeSlot
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), cfg.WorkingHoursStart, 0, 0, 0, loc)
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), cfg.WorkingHoursEnd, 0, 0, 0, loc)

	for start := dayStart; start.Before(dayEnd); start = start.Add(slotStep) {
		if today && !start.After(now) {
			continue
		}
		out = append(out, talent.TimeSlot{
			Date:     start.Format("2006-01-02"),
			Time:     fmt.Sprintf("%02d:%02d", start.Hour(), start.Minute()),
			Duration: cfg.Duration,
			StartsAt: start,
			Timezone: loc.String(),
		})
	}

	return out
}

// Auto picks slotsPerDay slots for each of the next daysAhead days, starting
// tomorrow. Within a day the picks are spread over the available grid using a
// fixed stride; days yielding fewer slots than requested contribute fewer
// picks rather than padding or failing. The result is concatenated in day
// order.
func Auto(daysAhead, slotsPerDay int, cfg Config) []talent.TimeSlot {
	if daysAhead <= 0 || slotsPerDay <= 0 {
		return nil
	}

	now := cfg.now().In(cfg.location())

	var out []talent.TimeSlot
	for offset := 1; offset <= daysAhead; offset++ {
		day := now.AddDate(0, 0, offset)
		available := Available(day, cfg)
		if len(available) == 0 {
			continue
		}

		step := len(available) / slotsPerDay
		if step < 1 {
			step = 1
		}
		for i, picked := 0, 0; i < len(available) && picked < slotsPerDay; i += step {
			out = append(out, available[i])
			picked++
		}
	}

	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
