// Solve command: candidates for rows given on the command line.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wrdlstab/internal/console"
	"github.com/robalobadob/wrdlstab/internal/puzzle"
)

var flagFirst bool

var solveCmd = &cobra.Command{
	Use:   "solve [row...]",
	Short: "List the words consistent with the given guess rows",
	Long: `List the words consistent with the given guess rows, most common first.

Each row is word:marks (crate:-y-g-), word/marks, or one field per letter
with the mark first ("-c ~r -a +t -e", quoted and after --). Marks: '-' '.' 'x' absent,
'y' '~' present, 'g' '+' correct. With no rows every word is a candidate.`,
	Example: `  wrdlstab solve crate:-y-g-
  wrdlstab solve crate:-y-g- forty:-ggg- --first
  wrdlstab solve -n 6 planet:--y--g --json
  wrdlstab solve -- "-c ~r -a +t -e"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var board puzzle.Board
		for _, arg := range args {
			row, err := puzzle.ParseRowSpec(arg, cfg.Length)
			if err != nil {
				return err
			}
			board.AddRow(row)
		}

		b, err := openBackend(cmd.Context())
		if err != nil {
			return err
		}
		defer b.Close()

		res, err := b.engine().Solve(cmd.Context(), board, cfg.Length)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case flagJSON:
			return printJSON(out, res)
		case flagFirst:
			if w, ok := res.First(); ok {
				fmt.Fprintln(out, w)
				return nil
			}
			fmt.Fprintln(out, "No matches.")
		default:
			console.PrintResult(out, res)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().BoolVar(&flagFirst, "first", false, "print only the best candidate")
}
