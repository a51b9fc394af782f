package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wrdlstab/internal/engine"
	"github.com/robalobadob/wrdlstab/internal/puzzle"
)

// DefaultTurns is the usual number of guesses allowed.
const DefaultTurns = 6

// Outcome summarises a simulated game.
type Outcome struct {
	Guesses []string
	Solved  bool
}

// Simulate scores guesses against target one by one, printing each scored row
// and how many candidates remain. Once the given guesses run out the top
// candidate is played, until the target is found, nothing is left, or maxTurns
// guesses have been made.
func Simulate(ctx context.Context, e *engine.Engine, target string, guesses []string, maxTurns int, w io.Writer) (Outcome, error) {
	if maxTurns < 1 {
		maxTurns = DefaultTurns
	}
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" || puzzle.Clean(target) != target {
		return Outcome{}, fmt.Errorf("%w: target %q", puzzle.ErrInvalidRow, target)
	}
	if err := puzzle.CheckLength(len(target)); err != nil {
		return Outcome{}, err
	}
	length := len(target)
	var (
		board puzzle.Board
		out   Outcome
		tried = make(map[string]bool)
	)
	for turn := 0; turn < maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		var guess string
		if turn < len(guesses) {
			guess = strings.ToLower(strings.TrimSpace(guesses[turn]))
		} else {
			res, err := e.Solve(ctx, board, length)
			if err != nil {
				return out, err
			}
			guess = nextGuess(res.Candidates, tried)
			if guess == "" {
				warn.Fprintln(w, "No matches.")
				return out, nil
			}
		}
		tried[guess] = true

		row, err := puzzle.ScoredRow(target, guess)
		if err != nil {
			return out, err
		}
		board.AddRow(row)
		out.Guesses = append(out.Guesses, row.Word())

		res, err := e.Solve(ctx, board, length)
		if err != nil {
			return out, err
		}
		fmt.Fprintf(w, "%d %s  %d left\n", turn+1, RenderRow(row), res.Total)

		if row.Word() == target {
			out.Solved = true
			heading.Fprintf(w, "solved in %d\n", turn+1)
			return out, nil
		}
	}
	warn.Fprintf(w, "not solved in %d guesses\n", maxTurns)
	return out, nil
}

// nextGuess picks the best-ranked candidate not played yet. A word can survive
// its own feedback when a repeated letter is marked absent next to a green copy.
func nextGuess(candidates []string, tried map[string]bool) string {
	for _, c := range candidates {
		if !tried[c] {
			return c
		}
	}
	return ""
}
