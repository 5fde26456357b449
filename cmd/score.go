package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/dealbreaker"
	"github.com/hireloop/matchd/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <candidate-id> <job-id>",
	Short: "Score one candidate against one job and print the breakdown",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		score(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func score(_ *cobra.Command, candidateID, jobID string) {
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

	candidate, err := st.Candidate(ctx, candidateID)
	if err != nil {
		logger.Fatal("resolving the candidate", zap.String("candidate_id", candidateID), zap.Error(err))
	}

	job, err := st.Job(ctx, jobID)
	if err != nil {
		logger.Fatal("resolving the job", zap.String("job_id", jobID), zap.Error(err))
	}

	company, err := st.Company(ctx, job.CompanyID)
	if err != nil {
		company = nil
	}

	total, insights := scoring.Score(candidate, job, company)

	fmt.Printf("%s / %q: %d\n", candidate.Name, job.Title, total)
	for _, insight := range insights {
		marker := "-"
		if insight.Positive {
			marker = "+"
		}
		fmt.Printf("  %s %s\n", marker, insight.Message)
	}

	result := dealbreaker.Check(candidate, job, company)
	for _, v := range result.Violations {
		fmt.Printf("  ! %s: %s\n", v.Type, v.Message)
	}
}
