// Simulate command: play guesses against a known answer.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wrdlstab/internal/console"
	"github.com/robalobadob/wrdlstab/internal/words"
)

var (
	flagTarget string
	flagTurns  int
	flagSalt   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [guess...]",
	Short: "Score guesses against a known answer, then let the solver finish",
	Long: `Score each guess against the target and show how many candidates remain.
When the listed guesses run out the top-ranked candidate is played until the
target is found or the turns are used up.

Without --target the word of the day is drawn from the word list.`,
	Example: `  wrdlstab simulate --target north crate
  wrdlstab simulate --target north --turns 10
  wrdlstab simulate --salt club crate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		target := flagTarget
		if target == "" {
			ws, err := words.Load(cmd.Context(), b.source, cfg.Length)
			if err != nil {
				return err
			}
			now := time.Now()
			target, _ = console.DailyTarget(now, flagSalt, ws)
			fmt.Fprintf(cmd.OutOrStdout(), "playing the word for %s\n", console.DateKey(now))
		}

		res, err := console.Simulate(cmd.Context(), b.engine(), target, args, flagTurns, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(cmd.OutOrStdout(), res)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVarP(&flagTarget, "target", "t", "", "the answer to play against (default: word of the day)")
	simulateCmd.Flags().IntVar(&flagTurns, "turns", console.DefaultTurns, "maximum number of guesses")
	simulateCmd.Flags().StringVar(&flagSalt, "salt", "wrdlstab", "salt for choosing the word of the day")
}
