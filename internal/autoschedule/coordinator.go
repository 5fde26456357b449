// Package autoschedule decides which high-scoring matches receive an
// interview offer and drives the per-match side effects. Its core contract
// is that a match never receives more than one interview, enforced by a
// fresh existence check per match plus a run-in-progress latch that
// serializes whole runs.
package autoschedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/ai"
	"github.com/hireloop/matchd/internal/notify"
	"github.com/hireloop/matchd/internal/scoring"
	"github.com/hireloop/matchd/internal/slots"
	"github.com/hireloop/matchd/internal/store"
	"github.com/hireloop/matchd/internal/talent"
)

// batchSize caps the matches processed per run. Fixed, not configurable.
const batchSize = 5

// ErrRunInProgress is returned when Run is invoked while a previous run has
// not finished. Triggers treat it as a coalesced signal, not a failure.
var ErrRunInProgress = errors.New("auto-schedule run already in progress")

// errNoSlots aborts a single match when the calendar ahead yields nothing.
var errNoSlots = errors.New("no available interview slots")

// Config tunes the coordinator. Zero values fall back to the stock
// threshold 80, 3 days ahead, 3 slots per day.
type Config struct {
	Enabled        bool
	ScoreThreshold int
	DaysAhead      int
	SlotsPerDay    int
	InterviewType  string
	SenderID       string // author of the auto-offer channel message
	Slots          slots.Config
}

func (c Config) withDefaults() Config {
	if c.ScoreThreshold == 0 {
		c.ScoreThreshold = 80
	}
	if c.DaysAhead == 0 {
		c.DaysAhead = 3
	}
	if c.SlotsPerDay == 0 {
		c.SlotsPerDay = 3
	}
	if c.InterviewType == "" {
		c.InterviewType = "video"
	}
	if c.SenderID == "" {
		c.SenderID = "system"
	}
	return c
}

// Deps aggregates the external collaborators the coordinator drives.
// Composer may be nil; the deterministic template message is used then.
type Deps struct {
	Store     store.Store
	Notifier  notify.Notifier
	Mailer    notify.Mailer
	Messenger notify.Messenger
	Composer  ai.Composer
	Logger    *zap.Logger
}

// Report is the aggregate outcome of one run. Per-match failures are logged,
// not surfaced individually.
type Report struct {
	Scheduled int
	Skipped   int
	Failed    int
}

// Coordinator is the stateful auto-schedule orchestrator. A single
// Coordinator serializes its runs; create one per store.
type Coordinator struct {
	cfg     Config
	deps    Deps
	running atomic.Bool
}

// New creates a Coordinator with defaults applied.
func New(cfg Config, deps Deps) *Coordinator {
	if deps.Composer == nil {
		deps.Composer = ai.TemplateComposer{}
	}
	return &Coordinator{cfg: cfg.withDefaults(), deps: deps}
}

// Run executes one bounded auto-schedule batch: scan pending matches, apply
// the score threshold, and offer interviews to at most batchSize eligible
// matches in creation order. Concurrent invocations return ErrRunInProgress
// instead of interleaving. A per-match failure aborts that match only.
func (c *Coordinator) Run(ctx context.Context) (Report, error) {
	log := c.deps.Logger

	if !c.cfg.Enabled {
		log.Debug("auto-schedule disabled, skipping run")
		return Report{}, nil
	}

	if !c.running.CompareAndSwap(false, true) {
		return Report{}, ErrRunInProgress
	}
	defer c.running.Store(false)

	matches, err := c.deps.Store.MatchesByStatus(ctx, talent.StatusMatched)
	if err != nil {
		return Report{}, fmt.Errorf("listing pending matches: %w", err)
	}

	eligible := make([]*talent.Match, 0, len(matches))
	for _, match := range matches {
		if match.Score >= c.cfg.ScoreThreshold {
			eligible = append(eligible, match)
		}
	}

	log.Info("score threshold filter",
		zap.Int("initial", len(matches)),
		zap.Int("dropped", len(matches)-len(eligible)),
		zap.Int("left", len(eligible)),
		zap.Int("threshold", c.cfg.ScoreThreshold),
	)

	var report Report
	processed := 0
	for _, match := range eligible {
		if processed >= batchSize {
			log.Info("batch cap reached",
				zap.Int("cap", batchSize),
				zap.Int("remaining", len(eligible)-report.Scheduled-report.Skipped-report.Failed),
			)
			break
		}

		// The existence check must happen against the store immediately
		// before acting, never from a stale snapshot.
		exists, err := c.deps.Store.InterviewExistsForMatch(ctx, match.ID)
		if err != nil {
			log.Warn("interview existence check failed",
				zap.String("match_id", match.ID),
				zap.Error(err),
			)
			report.Failed++
			processed++
			continue
		}
		if exists {
			log.Debug("interview already exists, skipping match",
				zap.String("match_id", match.ID),
			)
			report.Skipped++
			continue
		}

		processed++
		if err := c.Offer(ctx, match); err != nil {
			if errors.Is(err, store.ErrNotFound) || errors.Is(err, errNoSlots) {
				log.Info("skipping match",
					zap.String("match_id", match.ID),
					zap.String("reason", err.Error()),
				)
				report.Skipped++
				continue
			}
			log.Warn("auto-schedule failed for match",
				zap.String("match_id", match.ID),
				zap.Error(err),
			)
			report.Failed++
			continue
		}
		report.Scheduled++
	}

	log.Info("auto-schedule run complete",
		zap.Int("scheduled", report.Scheduled),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}

// Offer runs the full interview-offer sequence for one match: generate
// slots, create the interview, notify, e-mail, transition the match and post
// the channel message. Steps execute sequentially; side effects already
// performed are not rolled back on a later failure.
func (c *Coordinator) Offer(ctx context.Context, match *talent.Match) error {
	if !talent.IsMatchTransitionAllowed(match.Status, talent.StatusInterviewing) {
		return fmt.Errorf("match %s in status %s cannot move to interviewing", match.ID, match.Status)
	}

	candidate, err := c.deps.Store.Candidate(ctx, match.CandidateID)
	if err != nil {
		return fmt.Errorf("resolve candidate %s: %w", match.CandidateID, err)
	}
	job, err := c.deps.Store.Job(ctx, match.JobID)
	if err != nil {
		return fmt.Errorf("resolve job %s: %w", match.JobID, err)
	}

	// Company data only enriches the explanation; its absence is not fatal.
	company, err := c.deps.Store.Company(ctx, job.CompanyID)
	if err != nil {
		company = nil
	}

	offered := slots.Auto(c.cfg.DaysAhead, c.cfg.SlotsPerDay, c.cfg.Slots)
	if len(offered) == 0 {
		return errNoSlots
	}

	_, insights := scoring.Score(candidate, job, company)

	interview, err := c.deps.Store.CreateInterview(ctx, &talent.Interview{
		MatchID: match.ID,
		Slots:   offered,
		Status:  talent.InterviewPending,
		Type:    c.cfg.InterviewType,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateInterview) {
			// The fresh existence check should have prevented this; reaching
			// here means the invariant was raced. Never ignore it quietly.
			c.deps.Logger.Error("duplicate interview detected for match",
				zap.String("match_id", match.ID),
				zap.Error(err),
			)
		}
		return fmt.Errorf("create interview: %w", err)
	}

	refs := notify.ContextRefs{MatchID: match.ID, InterviewID: interview.ID}
	notification := fmt.Sprintf("You have been offered an interview for %s. Pick one of %d proposed times.", job.Title, len(offered))
	if err := c.deps.Notifier.Notify(ctx, candidate.UserID, "Interview offer", notification, refs); err != nil {
		return fmt.Errorf("notify candidate: %w", err)
	}

	subject := fmt.Sprintf("Interview offer: %s", job.Title)
	if err := c.deps.Mailer.SendEmail(ctx, candidate.Email, subject, offerEmailBody(candidate, job, offered, insights)); err != nil {
		return fmt.Errorf("send offer email: %w", err)
	}

	if err := c.deps.Store.UpdateMatchStatus(ctx, match.ID, talent.StatusInterviewing); err != nil {
		return fmt.Errorf("transition match to interviewing: %w", err)
	}
	match.Status = talent.StatusInterviewing

	message, err := c.deps.Composer.Compose(ctx, candidate, job, offered)
	if err != nil {
		return fmt.Errorf("compose offer message: %w", err)
	}
	if err := c.deps.Messenger.PostMessage(ctx, match.ID, c.cfg.SenderID, message); err != nil {
		return fmt.Errorf("post offer message: %w", err)
	}

	return nil
}

// offerEmailBody summarizes the proposed slots and the strongest match
// reasons for the candidate.
func offerEmailBody(candidate *talent.CandidateProfile, job *talent.JobPosting, offered []talent.TimeSlot, insights []scoring.Insight) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", candidate.Name)
	fmt.Fprintf(&b, "You have been invited to interview for %s. Proposed times:\n", job.Title)
	for _, slot := range offered {
		fmt.Fprintf(&b, "- %s at %s (%s, %s)\n", slot.Date, slot.Time, slot.Timezone, slot.Duration)
	}

	reasons := 0
	for _, insight := range insights {
		if !insight.Positive {
			continue
		}
		if reasons == 0 {
			b.WriteString("\nWhy we think this is a fit:\n")
		}
		fmt.Fprintf(&b, "- %s\n", insight.Message)
		if reasons++; reasons == 3 {
			break
		}
	}

	b.WriteString("\nReply with the slot that suits you best.\n")
	return b.String()
}
