package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/hireloop/matchd/internal/talent"
)

// Fixture is the on-disk shape of a seeded data set for the memory store.
type Fixture struct {
	Candidates []map[string]any `json:"candidates"`
	Jobs       []map[string]any `json:"jobs"`
	Companies  []map[string]any `json:"companies"`
	Matches    []map[string]any `json:"matches"`
}

// LoadFixture reads a JSON fixture file and seeds a fresh memory store with
// its records. Timestamps are RFC3339 strings, durations are Go duration
// strings.
func LoadFixture(path string) (*Memory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var fixture Fixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	mem := NewMemory()

	for _, record := range fixture.Candidates {
		var c talent.CandidateProfile
		if err := decodeRecord(record, &c); err != nil {
			return nil, fmt.Errorf("decode candidate: %w", err)
		}
		if c.ExperienceLevel != "" {
			if _, err := talent.ParseExperienceLevel(string(c.ExperienceLevel)); err != nil {
				return nil, fmt.Errorf("candidate %s: %w", c.ID, err)
			}
		}
		mem.AddCandidate(&c)
	}
	for _, record := range fixture.Companies {
		var c talent.CompanyProfile
		if err := decodeRecord(record, &c); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		if c.Size != "" {
			if _, err := talent.ParseCompanySize(string(c.Size)); err != nil {
				return nil, fmt.Errorf("company %s: %w", c.ID, err)
			}
		}
		mem.AddCompany(&c)
	}
	for _, record := range fixture.Jobs {
		var j talent.JobPosting
		if err := decodeRecord(record, &j); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		if j.RequiredLevel != "" {
			if _, err := talent.ParseExperienceLevel(string(j.RequiredLevel)); err != nil {
				return nil, fmt.Errorf("job %s: %w", j.ID, err)
			}
		}
		if j.JobType != "" {
			if _, err := talent.ParseJobType(string(j.JobType)); err != nil {
				return nil, fmt.Errorf("job %s: %w", j.ID, err)
			}
		}
		mem.AddJob(&j)
	}
	for _, record := range fixture.Matches {
		var m talent.Match
		if err := decodeRecord(record, &m); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		if m.Status == "" {
			m.Status = talent.StatusMatched
		} else if _, err := talent.ParseMatchStatus(string(m.Status)); err != nil {
			return nil, fmt.Errorf("match %s: %w", m.ID, err)
		}
		mem.AddMatch(&m)
	}

	return mem, nil
}

func decodeRecord(record map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(record)
}
