package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/triviaz/internal/logger"
	"github.com/abhisek/triviaz/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the active bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		if bankErr != nil {
			return bankErr
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(bank)
		}

		fmt.Fprintf(out, "%-3s  %-48s  %-24s  %s\n", "#", "Prompt", "Answer", "Misdirectors")
		fmt.Fprintln(out, strings.Repeat("─", 92))

		for i, q := range bank.All() {
			fmt.Fprintf(out, "%-3d  %-48s  %-24s  %d\n",
				i+1, truncate(q.Prompt, 48), truncate(q.CorrectAnswer, 24), len(q.Misdirectors))
		}

		source := "built-in"
		if cfg.BankPath != "" {
			source = cfg.BankPath
		}
		fmt.Fprintf(out, "\n%d questions (%s, %s)\n", bank.Len(), source, bank.Version())
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a question bank file against the bank format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		b, err := questionbank.Load(args[0])
		if err != nil {
			log.Error("question bank rejected", zap.String("path", args[0]), zap.Error(err))
			return err
		}
		log.Debug("question bank accepted",
			zap.String("path", args[0]),
			zap.Int("questions", b.Len()),
			zap.String("version", b.Version()),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d questions, %s)\n", args[0], b.Len(), b.Version())
		return nil
	},
}

func init() {
	bankListCmd.Flags().Bool("json", false, "Print the bank in its JSON file format")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
