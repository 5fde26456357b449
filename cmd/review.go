package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/dealbreaker"
	"github.com/hireloop/matchd/internal/scoring"
	"github.com/hireloop/matchd/internal/store"
	"github.com/hireloop/matchd/internal/talent"
)

const (
	PromptBack     = "back"
	PromptSchedule = "Schedule an interview"
	PromptSkip     = "Skip"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review pending matches interactively and schedule interviews by hand",
	Run: func(cmd *cobra.Command, _ []string) {
		review(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func review(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	st, closeStore, err := openStore(ctx, config.Store)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer closeStore()

	coordinator, err := newCoordinator(ctx, config, st, logger)
	if err != nil {
		logger.Fatal("building the coordinator", zap.Error(err))
	}

	for {
		matches, err := st.MatchesByStatus(ctx, talent.StatusMatched)
		if err != nil {
			logger.Fatal("listing matches", zap.Error(err))
		}

		if len(matches) == 0 {
			logger.Info("no pending matches to review")
			return
		}

		items := make([]string, 0)
		for _, m := range matches {
			items = append(items, matchLabel(ctx, st, m))
		}

		matchPrompt := promptui.Select{
			Label: "Choose a match and press ENTER",
			Items: append(items, PromptBack),
		}

		idx, selected, err := matchPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if selected == PromptBack {
			return
		}

		if err := reviewMatch(ctx, st, coordinator, logger, matches[idx]); err != nil {
			logger.Fatal("reviewing a match", zap.Error(err))
		}
	}
}

func matchLabel(ctx context.Context, st store.Store, m *talent.Match) string {
	candidateName := m.CandidateID
	if candidate, err := st.Candidate(ctx, m.CandidateID); err == nil {
		candidateName = candidate.Name
	}

	jobTitle := m.JobID
	if job, err := st.Job(ctx, m.JobID); err == nil {
		jobTitle = job.Title
	}

	return fmt.Sprintf("%s %s / %s / score %d", m.ID, candidateName, jobTitle, m.Score)
}

// reviewMatch prints the score breakdown and advisory deal-breaker report
// for one match, then offers to schedule it.
func reviewMatch(ctx context.Context, st store.Store, coordinator scheduler, logger *zap.Logger, match *talent.Match) error {
	candidate, err := st.Candidate(ctx, match.CandidateID)
	if err != nil {
		return fmt.Errorf("resolving candidate %s: %w", match.CandidateID, err)
	}

	job, err := st.Job(ctx, match.JobID)
	if err != nil {
		return fmt.Errorf("resolving job %s: %w", match.JobID, err)
	}

	// Company context is optional, company-scoped checks are skipped
	// without it.
	company, err := st.Company(ctx, job.CompanyID)
	if err != nil {
		company = nil
	}

	score, insights := scoring.Score(candidate, job, company)

	var report strings.Builder
	fmt.Fprintf(&report, "%s for %q at score %d\n", candidate.Name, job.Title, score)
	for _, insight := range insights {
		marker := "-"
		if insight.Positive {
			marker = "+"
		}
		fmt.Fprintf(&report, "  %s %s\n", marker, insight.Message)
	}

	result := dealbreaker.Check(candidate, job, company)
	if result.Passed {
		report.WriteString("  no deal-breaker violations\n")
	} else {
		for _, v := range result.Violations {
			fmt.Fprintf(&report, "  ! %s: %s\n", v.Type, v.Message)
		}
	}

	fmt.Print(report.String())

	actionPrompt := promptui.Select{
		Label: "Proceed?",
		Items: []string{PromptSchedule, PromptSkip},
	}

	_, action, err := actionPrompt.Run()
	if err != nil {
		return err
	}

	if action != PromptSchedule {
		return nil
	}

	if err := coordinator.Offer(ctx, match); err != nil {
		return fmt.Errorf("scheduling match %s: %w", match.ID, err)
	}

	logger.Info("interview scheduled", zap.String("match_id", match.ID))

	return nil
}

// scheduler is the slice of the coordinator the review flow needs.
type scheduler interface {
	Offer(ctx context.Context, match *talent.Match) error
}
