package slots

import (
	"testing"
	"time"

	"github.com/hireloop/matchd/internal/talent"
)

// fixedConfig pins the clock to a Monday morning so tests are independent of
// the wall clock.
func fixedConfig(now time.Time) Config {
	cfg := DefaultConfig()
	cfg.Location = time.UTC
	cfg.Now = func() time.Time { return now }
	return cfg
}

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

func TestAvailableFullDay(t *testing.T) {
	cfg := fixedConfig(monday)

	// Tuesday: a full open day yields 16 half-hour slots 09:00..16:30.
	got := Available(monday.AddDate(0, 0, 1), cfg)
	if len(got) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(got))
	}
	if got[0].Time != "09:00" {
		t.Errorf("first slot = %s, want 09:00", got[0].Time)
	}
	if got[len(got)-1].Time != "16:30" {
		t.Errorf("last slot = %s, want 16:30", got[len(got)-1].Time)
	}
	for i := 1; i < len(got); i++ {
		if !got[i].StartsAt.After(got[i-1].StartsAt) {
			t.Fatalf("slots out of chronological order at %d: %+v", i, got)
		}
	}
}

func TestAvailableExcludesWeekends(t *testing.T) {
	cfg := fixedConfig(monday)

	saturday := monday.AddDate(0, 0, 5)
	if got := Available(saturday, cfg); len(got) != 0 {
		t.Errorf("expected no slots on Saturday, got %d", len(got))
	}
	sunday := monday.AddDate(0, 0, 6)
	if got := Available(sunday, cfg); len(got) != 0 {
		t.Errorf("expected no slots on Sunday, got %d", len(got))
	}

	cfg.ExcludeWeekends = false
	if got := Available(saturday, cfg); len(got) != 16 {
		t.Errorf("expected 16 Saturday slots when weekends allowed, got %d", len(got))
	}
}

func TestAvailableDropsPastSlotsToday(t *testing.T) {
	// 13:15 on the queried day itself.
	now := time.Date(2026, 9, 7, 13, 15, 0, 0, time.UTC)
	cfg := fixedConfig(now)

	got := Available(now, cfg)
	if len(got) == 0 {
		t.Fatal("expected afternoon slots")
	}
	for _, slot := range got {
		if !slot.StartsAt.After(now) {
			t.Fatalf("slot %s %s is not after now", slot.Date, slot.Time)
		}
	}
	if got[0].Time != "13:30" {
		t.Errorf("first slot = %s, want 13:30", got[0].Time)
	}
}

func TestAvailableSlotBoundaryIsExclusive(t *testing.T) {
	// Exactly on a grid point: the 13:00 slot is "at the current time" and
	// must be dropped.
	now := time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC)
	cfg := fixedConfig(now)

	got := Available(now, cfg)
	if got[0].Time != "13:30" {
		t.Errorf("first slot = %s, want 13:30", got[0].Time)
	}
}

func TestAutoOpenCalendar(t *testing.T) {
	cfg := fixedConfig(monday)

	// Mon..Thu ahead are all open weekdays: 3 days x 3 slots.
	got := Auto(3, 3, cfg)
	if len(got) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(got))
	}

	byDay := map[string]int{}
	var order []string
	for _, slot := range got {
		if byDay[slot.Date] == 0 {
			order = append(order, slot.Date)
		}
		byDay[slot.Date]++
	}
	if len(order) != 3 {
		t.Fatalf("expected slots across 3 days, got %v", order)
	}
	for _, day := range order {
		if byDay[day] != 3 {
			t.Errorf("day %s has %d slots, want 3", day, byDay[day])
		}
	}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Fatalf("days out of order: %v", order)
		}
	}
}

func TestAutoStrideSpreadsPicks(t *testing.T) {
	cfg := fixedConfig(monday)

	got := Auto(1, 3, cfg)
	if len(got) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(got))
	}
	// 16 available, step = 16/3 = 5: indices 0, 5, 10.
	want := []string{"09:00", "11:30", "14:00"}
	for i, w := range want {
		if got[i].Time != w {
			t.Errorf("slot %d = %s, want %s", i, got[i].Time, w)
		}
	}
}

func TestAutoUnderSamplesShortDays(t *testing.T) {
	cfg := fixedConfig(monday)
	cfg.WorkingHoursStart = 16 // only 16:00 and 16:30 exist

	got := Auto(1, 3, cfg)
	if len(got) != 2 {
		t.Fatalf("expected 2 slots (no padding), got %d", len(got))
	}
}

func TestAutoSkipsWeekendDays(t *testing.T) {
	// Friday: the next 3 days are Sat, Sun, Mon.
	friday := time.Date(2026, 9, 4, 8, 0, 0, 0, time.UTC)
	cfg := fixedConfig(friday)

	got := Auto(3, 3, cfg)
	if len(got) != 3 {
		t.Fatalf("expected 3 slots (Monday only), got %d", len(got))
	}
	for _, slot := range got {
		if slot.Date != "2026-09-07" {
			t.Errorf("slot on %s, want all on 2026-09-07", slot.Date)
		}
	}
}

func TestSlotCarriesDerivedInstant(t *testing.T) {
	cfg := fixedConfig(monday)

	got := Available(monday.AddDate(0, 0, 1), cfg)
	slot := got[0]
	want := talent.TimeSlot{
		Date:     "2026-09-08",
		Time:     "09:00",
		Duration: 30 * time.Minute,
		StartsAt: time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC),
		Timezone: "UTC",
	}
	if slot.Date != want.Date || slot.Time != want.Time || slot.Duration != want.Duration ||
		!slot.StartsAt.Equal(want.StartsAt) || slot.Timezone != want.Timezone {
		t.Fatalf("slot = %+v, want %+v", slot, want)
	}
}
