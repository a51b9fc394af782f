// internal/engine/engine.go
//
// Engine ties the solver pipeline together for the CLI and HTTP layers:
// word source → constraint derivation → candidate filter → ranking → display cap.
//
// Notes:
//   - The word source is checked first, so an empty result always means the
//     constraints ruled every word out, never that there was nothing to filter.
//   - The oracle is optional; without one candidates are ranked lexically.

package engine

import (
	"context"

	"github.com/robalobadob/wrdlstab/internal/puzzle"
	"github.com/robalobadob/wrdlstab/internal/rank"
	"github.com/robalobadob/wrdlstab/internal/solver"
	"github.com/robalobadob/wrdlstab/internal/words"
)

type Engine struct {
	Source  words.Source
	Oracle  rank.Oracle
	MaxShow int
}

// Result is one solve of a board.
type Result struct {
	Constraints solver.ConstraintSet `json:"constraints"`
	Candidates  []string             `json:"candidates"` // ranked, capped at MaxShow
	Total       int                  `json:"total"`      // matches before the cap
	More        int                  `json:"more"`       // matches left out by the cap
}

// First returns the top-ranked candidate, if any.
func (r Result) First() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	return r.Candidates[0], true
}

// Solve derives constraints from board and returns the ranked candidates.
func (e *Engine) Solve(ctx context.Context, board puzzle.Board, length int) (Result, error) {
	ws, err := words.Load(ctx, e.Source, length)
	if err != nil {
		return Result{}, err
	}
	cs, err := solver.Derive(board, length)
	if err != nil {
		return Result{}, err
	}
	return e.apply(ws, cs)
}

// SolveConstraints filters with constraints the caller already holds.
func (e *Engine) SolveConstraints(ctx context.Context, cs solver.ConstraintSet) (Result, error) {
	ws, err := words.Load(ctx, e.Source, cs.Len())
	if err != nil {
		return Result{}, err
	}
	return e.apply(ws, cs)
}

func (e *Engine) apply(ws []string, cs solver.ConstraintSet) (Result, error) {
	matched, err := solver.Filter(ws, cs)
	if err != nil {
		return Result{}, err
	}
	ranked := rank.ByFrequency(matched, e.Oracle)
	shown, more := rank.Truncate(ranked, e.MaxShow)
	return Result{
		Constraints: cs,
		Candidates:  shown,
		Total:       len(matched),
		More:        more,
	}, nil
}
