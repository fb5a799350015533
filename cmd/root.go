package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/triviaz/internal/config"
	"github.com/abhisek/triviaz/internal/questionbank"
)

var (
	cfg     *config.Config
	bank    *questionbank.Bank
	bankErr error
)

var rootCmd = &cobra.Command{
	Use:           "triviaz",
	Short:         "Terminal trivia quiz",
	Long:          "Triviaz is a terminal trivia game: pick a level, answer multiple-choice questions, beat the clock.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./config/config.yaml or $XDG_CONFIG_HOME/triviaz/config.yaml)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (overrides TRIVIAZ_BANK_PATH)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"bank":     config.KeyBankPath,
	"log-file": config.KeyLogFile,
	"count":    config.KeyQuestions,
	"level":    config.KeyLevel,
	"timed":    config.KeyTimed,
	"cycle":    config.KeyCycle,
}

// loadConfig layers defaults, config file, environment and flags, then
// loads the active question bank. A bank error is kept in bankErr so the
// TUI can report it; commands that need the bank check it themselves.
func loadConfig(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	v := config.New(configFile)

	if err := bindFlags(cmd, v); err != nil {
		return err
	}

	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c

	bank, bankErr = resolveBank(cfg.BankPath)
	return nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	// Seconds on the command line, a duration in the config file.
	if f := cmd.Flags().Lookup("seconds"); f != nil && f.Changed {
		secs, err := cmd.Flags().GetInt("seconds")
		if err != nil {
			return err
		}
		v.Set(config.KeyTimeLimit, fmt.Sprintf("%ds", secs))
	}
	return nil
}

// resolveBank returns the bank at path, or the built-in bank when path is
// empty.
func resolveBank(path string) (*questionbank.Bank, error) {
	if path == "" {
		return questionbank.Default(), nil
	}
	return questionbank.Load(path)
}
