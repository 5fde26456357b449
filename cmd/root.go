package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "matchd"
)

type Config struct {
	Store        *StoreConfig        `mapstructure:"store"`
	AutoSchedule *AutoScheduleConfig `mapstructure:"auto-schedule"`
	Daemon       *DaemonConfig       `mapstructure:"daemon"`
	AI           *AIConfig           `mapstructure:"ai"`
}

type StoreConfig struct {
	// Driver selects the record store: "memory" or "postgres".
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
	DSNFile string `mapstructure:"dsn-file"`
	// Fixture seeds the memory store from a JSON file.
	Fixture string `mapstructure:"fixture"`
}

type AutoScheduleConfig struct {
	Enabled                  bool   `mapstructure:"enabled"`
	ScoreThreshold           int    `mapstructure:"score-threshold"`
	DaysAhead                int    `mapstructure:"days-ahead"`
	SlotsPerDay              int    `mapstructure:"slots-per-day"`
	InterviewDurationMinutes int    `mapstructure:"interview-duration-minutes"`
	WorkingHoursStart        int    `mapstructure:"working-hours-start"`
	WorkingHoursEnd          int    `mapstructure:"working-hours-end"`
	IncludeWeekends          bool   `mapstructure:"include-weekends"`
	InterviewType            string `mapstructure:"interview-type"`
	Timezone                 string `mapstructure:"timezone"`
	SenderID                 string `mapstructure:"sender-id"`
}

type DaemonConfig struct {
	RedisAddr string `mapstructure:"redis-addr"`
	Channel   string `mapstructure:"channel"`
	CronSpec  string `mapstructure:"cron-spec"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "matchd scores candidate-job matches and schedules interview offers",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("store.dsn-file", "MATCHD_DSN_FILE"); err != nil {
		log.Fatalf("can't bind to MATCHD_DSN_FILE variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("can't bind to GEMINI_API_KEY_FILE variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is matchd.yaml in the current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine, flags and env still apply. A broken
	// one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}
