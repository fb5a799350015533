package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a round",
	Example: `  triviaz play --level Hard --count 8
  triviaz play --timed --seconds 60 --cycle --count -1`,
	RunE: playRunE,
}

func playRunE(cmd *cobra.Command, args []string) error {
	if bankErr != nil {
		return bankErr
	}
	return runApp(func(round game.Round) screen.Screen {
		return game.New(round.NewSession(), round)
	})
}

func init() {
	playCmd.Flags().String("level", "", "Level: Easy, Hard or \"Mix It Up\"")
	playCmd.Flags().Int("count", 0, "Questions in the round (-1 with --timed --cycle for no cap)")
	playCmd.Flags().Bool("timed", false, "Play against the clock")
	playCmd.Flags().Int("seconds", 0, "Round clock in seconds for --timed rounds")
	playCmd.Flags().Bool("cycle", false, "Reshuffle the bank and keep going until the clock runs out")
}
