package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/ai"
	"github.com/hireloop/matchd/internal/ai/gemini"
	"github.com/hireloop/matchd/internal/autoschedule"
	"github.com/hireloop/matchd/internal/logger"
	"github.com/hireloop/matchd/internal/notify"
	"github.com/hireloop/matchd/internal/secrets"
	"github.com/hireloop/matchd/internal/slots"
	"github.com/hireloop/matchd/internal/store"
)

func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}

// openStore builds the configured record store. The cleanup func releases
// any held connections and is safe to defer unconditionally.
func openStore(ctx context.Context, cfg *StoreConfig) (store.Store, func(), error) {
	if cfg == nil {
		cfg = &StoreConfig{}
	}

	noop := func() {}

	switch cfg.Driver {
	case "", "memory":
		if cfg.Fixture != "" {
			mem, err := store.LoadFixture(cfg.Fixture)
			if err != nil {
				return nil, noop, fmt.Errorf("loading fixture %q: %w", cfg.Fixture, err)
			}
			return mem, noop, nil
		}
		return store.NewMemory(), noop, nil
	case "postgres":
		dsn, err := secrets.Load(secrets.Source{
			Name:  "database dsn",
			Value: cfg.DSN,
			File:  cfg.DSNFile,
		})
		if err != nil {
			return nil, noop, err
		}

		pg, err := store.NewPostgres(ctx, dsn)
		if err != nil {
			return nil, noop, err
		}
		return pg, pg.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func slotsConfig(cfg *AutoScheduleConfig) (slots.Config, error) {
	sc := slots.DefaultConfig()
	if cfg == nil {
		return sc, nil
	}

	if cfg.WorkingHoursStart > 0 {
		sc.WorkingHoursStart = cfg.WorkingHoursStart
	}
	if cfg.WorkingHoursEnd > 0 {
		sc.WorkingHoursEnd = cfg.WorkingHoursEnd
	}
	if cfg.InterviewDurationMinutes > 0 {
		sc.Duration = time.Duration(cfg.InterviewDurationMinutes) * time.Minute
	}
	sc.ExcludeWeekends = !cfg.IncludeWeekends

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return sc, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
		}
		sc.Location = loc
	}

	return sc, nil
}

// newComposer builds the offer-message composer. The template fallback is
// used when AI is disabled.
func newComposer(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Composer, error) {
	if cfg == nil || !cfg.Enabled {
		return ai.TemplateComposer{}, nil
	}

	gcfg := cfg.Gemini
	if gcfg == nil {
		gcfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: gcfg.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model)
	if err != nil {
		return nil, err
	}

	return gemini.NewComposer(generator, log, gcfg.MaxLogLength), nil
}

func newCoordinator(ctx context.Context, config *Config, st store.Store, log *zap.Logger) (*autoschedule.Coordinator, error) {
	as := config.AutoSchedule
	if as == nil {
		as = &AutoScheduleConfig{}
	}

	sc, err := slotsConfig(as)
	if err != nil {
		return nil, err
	}

	composer, err := newComposer(ctx, config.AI, log)
	if err != nil {
		return nil, err
	}

	sink := notify.NewLogSink(log)

	return autoschedule.New(autoschedule.Config{
		Enabled:        as.Enabled,
		ScoreThreshold: as.ScoreThreshold,
		DaysAhead:      as.DaysAhead,
		SlotsPerDay:    as.SlotsPerDay,
		InterviewType:  as.InterviewType,
		SenderID:       as.SenderID,
		Slots:          sc,
	}, autoschedule.Deps{
		Store:     st,
		Notifier:  sink,
		Mailer:    sink,
		Messenger: sink,
		Composer:  composer,
		Logger:    log,
	}), nil
}
