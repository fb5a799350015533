package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/triviaz/internal/quiz"
)

// EnvPrefix is prepended to every environment variable the app reads,
// e.g. TRIVIAZ_ROUND_QUESTIONS.
const EnvPrefix = "TRIVIAZ"

// Configuration keys, also used as flag binding targets.
const (
	KeyEnv          = "env"
	KeyLogFile      = "log_file"
	KeyBankPath     = "bank_path"
	KeyQuestions    = "round.questions"
	KeyLevel        = "round.level"
	KeyTimed        = "round.timed"
	KeyTimeLimit    = "round.time_limit"
	KeyCycle        = "round.cycle"
	KeyAdvanceDelay = "round.advance_delay"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files, environment
// variables and command-line flags.
type Config struct {
	Env      string `mapstructure:"env"`       // local, production, ...
	LogFile  string `mapstructure:"log_file"`  // empty disables TUI logging
	BankPath string `mapstructure:"bank_path"` // empty uses the built-in bank
	Round    Round  `mapstructure:"round"`
}

// Round holds the defaults for a new round.
type Round struct {
	Questions    int           `mapstructure:"questions"`
	Level        string        `mapstructure:"level"`
	Timed        bool          `mapstructure:"timed"`
	TimeLimit    time.Duration `mapstructure:"time_limit"`
	Cycle        bool          `mapstructure:"cycle"`
	AdvanceDelay time.Duration `mapstructure:"advance_delay"`
}

// QuizOptions converts the round settings into engine options.
func (r Round) QuizOptions() quiz.Options {
	opts := quiz.Options{
		QuestionCount: r.Questions,
		Level:         quiz.ParseLevel(r.Level),
	}
	if r.Timed {
		opts.TimeLimit = int(r.TimeLimit / time.Second)
	}
	return opts
}

// New returns a viper instance with defaults, environment handling and the
// config search path configured. Callers may bind flags to it before Load.
func New(configFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyEnv, "local")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyBankPath, "")
	v.SetDefault(KeyQuestions, quiz.DefaultQuestionsPerRound)
	v.SetDefault(KeyLevel, quiz.LevelMixed.String())
	v.SetDefault(KeyTimed, false)
	v.SetDefault(KeyTimeLimit, time.Duration(quiz.DefaultTimeLimit)*time.Second)
	v.SetDefault(KeyCycle, false)
	v.SetDefault(KeyAdvanceDelay, quiz.DefaultAdvanceDelay)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	return v
}

// Load reads the config file (if any) and unmarshals all sources into a
// validated Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []string

	r := c.Round
	if r.Questions < 0 && !(r.Questions == quiz.Unlimited && r.Timed && r.Cycle) {
		errs = append(errs, fmt.Sprintf("round.questions must be >= 0 (or %d for a timed cycling round), got %d", quiz.Unlimited, r.Questions))
	}
	// The timed challenge reads time_limit even when round.timed is off.
	if r.TimeLimit < time.Second {
		errs = append(errs, fmt.Sprintf("round.time_limit must be at least 1s, got %s", r.TimeLimit))
	}
	if r.AdvanceDelay < 0 {
		errs = append(errs, fmt.Sprintf("round.advance_delay must be >= 0, got %s", r.AdvanceDelay))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidConfig, strings.Join(errs, "\n  "))
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// configDir returns $XDG_CONFIG_HOME/triviaz, falling back to
// ~/.config/triviaz.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "triviaz"), nil
}
