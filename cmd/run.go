package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one auto-schedule pass over pending matches",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("force", "f", false, "run even when auto-scheduling is disabled in the config")
}

// run executes a single coordinator pass and reports the outcome.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the matchd run", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	st, closeStore, err := openStore(ctx, config.Store)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer closeStore()

	if force, _ := cmd.Flags().GetBool("force"); force {
		if config.AutoSchedule == nil {
			config.AutoSchedule = &AutoScheduleConfig{}
		}
		config.AutoSchedule.Enabled = true
	}

	coordinator, err := newCoordinator(ctx, config, st, logger)
	if err != nil {
		logger.Fatal("building the coordinator", zap.Error(err))
	}

	report, err := coordinator.Run(ctx)
	if err != nil {
		logger.Fatal("auto-schedule run failed", zap.Error(err))
	}

	logger.Info("auto-schedule run finished",
		zap.Int("scheduled", report.Scheduled),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
}
