package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/matchd/internal/talent"
)

// Message is one entry in a match's communication channel.
type Message struct {
	MatchID   string
	SenderID  string
	Content   string
	CreatedAt time.Time
}

// Memory is a mutex-guarded in-memory Store. It backs tests and
// fixture-driven runs of the review and run commands.
type Memory struct {
	mu         sync.RWMutex
	candidates map[string]*talent.CandidateProfile
	jobs       map[string]*talent.JobPosting
	companies  map[string]*talent.CompanyProfile
	matches    map[string]*talent.Match
	interviews map[string]*talent.Interview
	messages   []Message

	now func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		candidates: make(map[string]*talent.CandidateProfile),
		jobs:       make(map[string]*talent.JobPosting),
		companies:  make(map[string]*talent.CompanyProfile),
		matches:    make(map[string]*talent.Match),
		interviews: make(map[string]*talent.Interview),
		now:        time.Now,
	}
}

// AddCandidate seeds a candidate, minting an ID when absent.
func (m *Memory) AddCandidate(c *talent.CandidateProfile) *talent.CandidateProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.candidates[c.ID] = c
	return c
}

// AddJob seeds a job posting, minting an ID when absent.
func (m *Memory) AddJob(j *talent.JobPosting) *talent.JobPosting {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	m.jobs[j.ID] = j
	return j
}

// AddCompany seeds a company, minting an ID when absent.
func (m *Memory) AddCompany(c *talent.CompanyProfile) *talent.CompanyProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.companies[c.ID] = c
	return c
}

// AddMatch seeds a match, minting an ID and creation timestamp when absent.
func (m *Memory) AddMatch(match *talent.Match) *talent.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if match.CreatedAt.IsZero() {
		match.CreatedAt = m.now()
	}
	if match.UpdatedAt.IsZero() {
		match.UpdatedAt = match.CreatedAt
	}
	m.matches[match.ID] = match
	return match
}

func (m *Memory) Candidate(_ context.Context, id string) (*talent.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (m *Memory) Job(_ context.Context, id string) (*talent.JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return j, nil
}

func (m *Memory) Company(_ context.Context, id string) (*talent.CompanyProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (m *Memory) MatchesByStatus(_ context.Context, status talent.MatchStatus) ([]*talent.Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*talent.Match, 0)
	for _, match := range m.matches {
		if match.Status == status {
			out = append(out, match)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) UpdateMatchStatus(_ context.Context, matchID string, status talent.MatchStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	match, ok := m.matches[matchID]
	if !ok {
		return ErrNotFound
	}
	match.Status = status
	match.UpdatedAt = m.now()
	return nil
}

func (m *Memory) InterviewExistsForMatch(_ context.Context, matchID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.interviewExistsLocked(matchID), nil
}

func (m *Memory) interviewExistsLocked(matchID string) bool {
	for _, iv := range m.interviews {
		if iv.MatchID == matchID {
			return true
		}
	}
	return false
}

func (m *Memory) CreateInterview(_ context.Context, iv *talent.Interview) (*talent.Interview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.interviewExistsLocked(iv.MatchID) {
		return nil, ErrDuplicateInterview
	}

	created := *iv
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.Status == "" {
		created.Status = talent.InterviewPending
	} else if _, err := talent.ParseInterviewStatus(string(created.Status)); err != nil {
		return nil, fmt.Errorf("interview for match %s: %w", iv.MatchID, err)
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = m.now()
	}
	m.interviews[created.ID] = &created
	return &created, nil
}

// InterviewsForMatch returns all interviews referencing the match. Used by
// tests to assert the one-interview-per-match invariant.
func (m *Memory) InterviewsForMatch(matchID string) []*talent.Interview {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*talent.Interview
	for _, iv := range m.interviews {
		if iv.MatchID == matchID {
			out = append(out, iv)
		}
	}
	return out
}

func (m *Memory) AppendMessage(_ context.Context, matchID, senderID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.matches[matchID]; !ok {
		return ErrNotFound
	}
	m.messages = append(m.messages, Message{
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: m.now(),
	})
	return nil
}

// MessagesForMatch returns the communication channel of a match.
func (m *Memory) MessagesForMatch(matchID string) []Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Message
	for _, msg := range m.messages {
		if msg.MatchID == matchID {
			out = append(out, msg)
		}
	}
	return out
}
