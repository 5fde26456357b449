package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/autoschedule"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the auto-scheduler continuously, triggered by redis events and a cron fallback",
	Run: func(cmd *cobra.Command, _ []string) {
		daemon(cmd)
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func daemon(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the matchd daemon", zap.String("version", version))

	st, closeStore, err := openStore(ctx, config.Store)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer closeStore()

	coordinator, err := newCoordinator(ctx, config, st, logger)
	if err != nil {
		logger.Fatal("building the coordinator", zap.Error(err))
	}

	dcfg := config.Daemon
	if dcfg == nil {
		dcfg = &DaemonConfig{}
	}

	var rdb *redis.Client
	if dcfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: dcfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("pinging redis", zap.String("addr", dcfg.RedisAddr), zap.Error(err))
		}
		defer rdb.Close()
	}

	runner := autoschedule.NewRunner(coordinator, rdb, autoschedule.RunnerConfig{
		Channel:  dcfg.Channel,
		CronSpec: dcfg.CronSpec,
	}, logger)

	if err := runner.Start(ctx); err != nil {
		logger.Fatal("starting the runner", zap.Error(err))
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	logger.Info("shutting down", zap.String("signal", sig.String()))
	runner.Stop()
}
