package autoschedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultChannel is the redis pub/sub channel announcing pending-match set
// changes.
const DefaultChannel = "matchd:matches"

// RunnerConfig tunes the daemon trigger plumbing.
type RunnerConfig struct {
	// Channel is the redis pub/sub channel to subscribe to. Empty selects
	// DefaultChannel.
	Channel string
	// CronSpec is the fallback schedule, e.g. "@every 1h". Empty disables
	// the fallback.
	CronSpec string
}

// Runner turns external signals into serialized coordinator runs. Two
// sources feed it: a redis subscription on the match channel (the reactive
// trigger) and an optional cron fallback so offers still go out when no
// signal arrives. Overlapping triggers coalesce on the coordinator latch.
type Runner struct {
	coordinator *Coordinator
	rdb         *redis.Client
	cron        *cron.Cron
	cfg         RunnerConfig
	logger      *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner wires a coordinator to its triggers. rdb may be nil when only
// the cron fallback is wanted.
func NewRunner(coordinator *Coordinator, rdb *redis.Client, cfg RunnerConfig, logger *zap.Logger) *Runner {
	if cfg.Channel == "" {
		cfg.Channel = DefaultChannel
	}
	return &Runner{
		coordinator: coordinator,
		rdb:         rdb,
		cron:        cron.New(),
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the cron job and begins consuming redis signals. It also
// fires one run immediately so a restart does not wait for the next signal.
func (r *Runner) Start(ctx context.Context) error {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	if r.cfg.CronSpec != "" {
		if _, err := r.cron.AddFunc(r.cfg.CronSpec, func() { r.trigger(ctx, "cron") }); err != nil {
			return fmt.Errorf("cron.AddFunc: %w", err)
		}
		r.cron.Start()
		r.logger.Info("cron fallback started", zap.String("spec", r.cfg.CronSpec))
	}

	if r.rdb != nil {
		sub := r.rdb.Subscribe(ctx, r.cfg.Channel)
		go r.consume(ctx, sub)
		r.logger.Info("subscribed to match signals", zap.String("channel", r.cfg.Channel))
	} else {
		close(r.done)
	}

	go r.trigger(ctx, "startup")

	return nil
}

// Stop shuts down both trigger sources. A batch already in flight finishes;
// stopping only takes effect at the next trigger.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.cron.Stop()
	<-r.done
	r.logger.Info("auto-schedule runner stopped")
}

func (r *Runner) consume(ctx context.Context, sub *redis.PubSub) {
	defer close(r.done)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			r.logger.Debug("match signal received", zap.String("payload", msg.Payload))
			r.trigger(ctx, "signal")
		}
	}
}

func (r *Runner) trigger(ctx context.Context, source string) {
	report, err := r.coordinator.Run(ctx)
	if errors.Is(err, ErrRunInProgress) {
		// A running batch already covers this signal.
		r.logger.Debug("run in progress, signal coalesced", zap.String("source", source))
		return
	}
	if err != nil {
		r.logger.Error("auto-schedule run failed",
			zap.String("source", source),
			zap.Error(err),
		)
		return
	}
	r.logger.Info("auto-schedule run triggered",
		zap.String("source", source),
		zap.Int("scheduled", report.Scheduled),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
}
