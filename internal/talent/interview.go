package talent

import (
	"fmt"
	"time"
)

// InterviewStatus is the lifecycle state of an Interview.
type InterviewStatus string

const (
	InterviewPending   InterviewStatus = "pending"
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewConfirmed InterviewStatus = "confirmed"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

// ParseInterviewStatus converts a raw string to an InterviewStatus, returning
// an error for unknown values.
func ParseInterviewStatus(s string) (InterviewStatus, error) {
	st := InterviewStatus(s)
	switch st {
	case InterviewPending, InterviewScheduled, InterviewConfirmed, InterviewCompleted, InterviewCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown interview status %q", s)
}

// TimeSlot is one offered interview date/time/duration tuple. StartsAt is the
// absolute instant derived from Date and Time in the generator's timezone.
type TimeSlot struct {
	Date     string        `mapstructure:"date"` // YYYY-MM-DD
	Time     string        `mapstructure:"time"` // HH:MM, 24h
	Duration time.Duration `mapstructure:"duration"`
	StartsAt time.Time     `mapstructure:"starts_at"`
	Timezone string        `mapstructure:"timezone"`
}

// Interview is an offer of time slots for a match. At most one interview may
// ever exist per match; enforcing that is the coordinator's core contract.
type Interview struct {
	ID        string          `mapstructure:"id"`
	MatchID   string          `mapstructure:"match_id"`
	Slots     []TimeSlot      `mapstructure:"slots"`
	Status    InterviewStatus `mapstructure:"status"`
	Type      string          `mapstructure:"type"` // e.g. "video", "phone"
	CreatedAt time.Time       `mapstructure:"created_at"`
}
