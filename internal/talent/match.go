// Package talent defines the entities of the matching engine and the match
// status state machine.
//
// Valid match status graph:
//
//	matched ──► interviewing ──► offered ──► hired
//	    │              │             │
//	    └──────────────┴─────────────┴──► rejected / withdrawn
//
// hired, rejected and withdrawn are terminal. A withdrawal transitions the
// match, it never deletes the record.
package talent

import (
	"fmt"
	"time"
)

// MatchStatus is the lifecycle state of a Match.
type MatchStatus string

const (
	StatusMatched      MatchStatus = "matched"
	StatusInterviewing MatchStatus = "interviewing"
	StatusOffered      MatchStatus = "offered"
	StatusHired        MatchStatus = "hired"
	StatusRejected     MatchStatus = "rejected"
	StatusWithdrawn    MatchStatus = "withdrawn"
)

// validMatchTransitions lists every allowed (from → to) pair.
var validMatchTransitions = map[MatchStatus][]MatchStatus{
	StatusMatched:      {StatusInterviewing, StatusRejected, StatusWithdrawn},
	StatusInterviewing: {StatusOffered, StatusRejected, StatusWithdrawn},
	StatusOffered:      {StatusHired, StatusRejected, StatusWithdrawn},
	// hired, rejected and withdrawn are terminal
}

// ParseMatchStatus converts a raw string to a MatchStatus, returning an error
// for unknown values.
func ParseMatchStatus(s string) (MatchStatus, error) {
	st := MatchStatus(s)
	switch st {
	case StatusMatched, StatusInterviewing, StatusOffered, StatusHired, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown match status %q", s)
}

// IsMatchTransitionAllowed returns true when moving from → to is permitted by
// the state machine.
func IsMatchTransitionAllowed(from, to MatchStatus) bool {
	allowed, ok := validMatchTransitions[from]
	if !ok {
		return false // terminal state
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Match links one candidate to one job posting once mutual interest exists.
// Matches are never deleted, only status-transitioned.
type Match struct {
	ID          string      `mapstructure:"id"`
	CandidateID string      `mapstructure:"candidate_id"`
	JobID       string      `mapstructure:"job_id"`
	Status      MatchStatus `mapstructure:"status"`
	Score       int         `mapstructure:"score"`
	CreatedAt   time.Time   `mapstructure:"created_at"`
	UpdatedAt   time.Time   `mapstructure:"updated_at"`
}
