package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireloop/matchd/internal/talent"
)

// Postgres is the production Store backed by a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates and verifies a pgx-backed store.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the underlying pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) Candidate(ctx context.Context, id string) (*talent.CandidateProfile, error) {
	var (
		c            talent.CandidateProfile
		level        string
		dealBreakers []byte
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id, user_id, name, email, skills, experience_level, years_of_experience,
		        location, culture_preferences, preferred_job_types, deal_breakers
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Skills, &level, &c.YearsOfExperience,
		&c.Location, &c.CulturePreferences, &c.PreferredJobTypes, &dealBreakers,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("candidate query: %w", err)
	}

	// An empty level means the profile never declared one; anything else
	// must be a known enum value.
	if level != "" {
		if c.ExperienceLevel, err = talent.ParseExperienceLevel(level); err != nil {
			return nil, fmt.Errorf("candidate %s: %w", id, err)
		}
	}
	if len(dealBreakers) > 0 {
		if err := json.Unmarshal(dealBreakers, &c.DealBreakers); err != nil {
			return nil, fmt.Errorf("candidate deal_breakers: %w", err)
		}
	}
	return &c, nil
}

func (p *Postgres) Job(ctx context.Context, id string) (*talent.JobPosting, error) {
	var (
		j       talent.JobPosting
		level   string
		jobType string
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id, company_id, title, required_skills, required_level, min_years,
		        location, job_type, salary_min, salary_max, active
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.RequiredSkills, &level, &j.MinYears,
		&j.Location, &jobType, &j.SalaryMin, &j.SalaryMax, &j.Active,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("job query: %w", err)
	}

	if level != "" {
		if j.RequiredLevel, err = talent.ParseExperienceLevel(level); err != nil {
			return nil, fmt.Errorf("job %s: %w", id, err)
		}
	}
	if jobType != "" {
		if j.JobType, err = talent.ParseJobType(jobType); err != nil {
			return nil, fmt.Errorf("job %s: %w", id, err)
		}
	}
	return &j, nil
}

func (p *Postgres) Company(ctx context.Context, id string) (*talent.CompanyProfile, error) {
	var (
		c    talent.CompanyProfile
		size string
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, culture_traits, size FROM companies WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.CultureTraits, &size)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("company query: %w", err)
	}

	if size != "" {
		if c.Size, err = talent.ParseCompanySize(size); err != nil {
			return nil, fmt.Errorf("company %s: %w", id, err)
		}
	}
	return &c, nil
}

func (p *Postgres) MatchesByStatus(ctx context.Context, status talent.MatchStatus) ([]*talent.Match, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, candidate_id, job_id, status, score, created_at, updated_at
		 FROM matches WHERE status = $1
		 ORDER BY created_at ASC`,
		string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("matches query: %w", err)
	}
	defer rows.Close()

	matches := make([]*talent.Match, 0)
	for rows.Next() {
		var (
			m  talent.Match
			st string
		)
		if err := rows.Scan(&m.ID, &m.CandidateID, &m.JobID, &st, &m.Score, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("matches scan: %w", err)
		}
		if m.Status, err = talent.ParseMatchStatus(st); err != nil {
			return nil, fmt.Errorf("match %s: %w", m.ID, err)
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

func (p *Postgres) UpdateMatchStatus(ctx context.Context, matchID string, status talent.MatchStatus) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE matches SET status = $2, updated_at = now() WHERE id = $1`,
		matchID, string(status),
	)
	if err != nil {
		return fmt.Errorf("update match status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) InterviewExistsForMatch(ctx context.Context, matchID string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM interviews WHERE match_id = $1)`,
		matchID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("interview existence query: %w", err)
	}
	return exists, nil
}

// CreateInterview inserts an interview for a match. A unique index on
// interviews.match_id backs the one-interview-per-match invariant; a conflict
// surfaces as ErrDuplicateInterview.
func (p *Postgres) CreateInterview(ctx context.Context, iv *talent.Interview) (*talent.Interview, error) {
	slots, err := json.Marshal(iv.Slots)
	if err != nil {
		return nil, fmt.Errorf("marshal slots: %w", err)
	}

	created := *iv
	if created.Status == "" {
		created.Status = talent.InterviewPending
	} else if _, err := talent.ParseInterviewStatus(string(created.Status)); err != nil {
		return nil, fmt.Errorf("interview for match %s: %w", iv.MatchID, err)
	}

	err = p.pool.QueryRow(ctx,
		`INSERT INTO interviews (match_id, slots, status, interview_type)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (match_id) DO NOTHING
		 RETURNING id, created_at`,
		iv.MatchID, slots, string(created.Status), iv.Type,
	).Scan(&created.ID, &created.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDuplicateInterview
	}
	if err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}
	return &created, nil
}

func (p *Postgres) AppendMessage(ctx context.Context, matchID, senderID, content string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO match_messages (match_id, sender_id, content) VALUES ($1, $2, $3)`,
		matchID, senderID, content,
	)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}
