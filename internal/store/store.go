// Package store abstracts the record store the engine reads and mutates.
// Two implementations exist: an in-memory store for tests and fixture-driven
// runs, and a Postgres store for production.
package store

import (
	"context"
	"errors"

	"github.com/hireloop/matchd/internal/talent"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateInterview is returned when an interview already references the
// match. Callers treat this as a data-integrity signal, not a routine miss.
var ErrDuplicateInterview = errors.New("interview already exists for match")

// Store is the key-addressable record store consumed by the engine. Each call
// is individually atomic; no multi-record transaction is assumed.
type Store interface {
	Candidate(ctx context.Context, id string) (*talent.CandidateProfile, error)
	Job(ctx context.Context, id string) (*talent.JobPosting, error)
	Company(ctx context.Context, id string) (*talent.CompanyProfile, error)

	// MatchesByStatus returns matches in creation order, oldest first.
	MatchesByStatus(ctx context.Context, status talent.MatchStatus) ([]*talent.Match, error)
	UpdateMatchStatus(ctx context.Context, matchID string, status talent.MatchStatus) error

	InterviewExistsForMatch(ctx context.Context, matchID string) (bool, error)
	CreateInterview(ctx context.Context, iv *talent.Interview) (*talent.Interview, error)

	AppendMessage(ctx context.Context, matchID, senderID, content string) error
}
