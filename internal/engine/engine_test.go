package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wrdlstab/internal/puzzle"
	"github.com/robalobadob/wrdlstab/internal/rank"
	"github.com/robalobadob/wrdlstab/internal/solver"
	"github.com/robalobadob/wrdlstab/internal/words"
)

func crateBoard(t *testing.T) puzzle.Board {
	t.Helper()
	row, err := puzzle.ParseRowSpec("crate:-y-g-", 5)
	require.NoError(t, err)
	var b puzzle.Board
	b.AddRow(row)
	return b
}

func TestSolveRanksAndCaps(t *testing.T) {
	e := &Engine{
		Source:  words.List{"worth", "north", "forty", "birth", "write", "tabor"},
		Oracle:  rank.MapOracle{"north": 4.5, "forty": 4.9, "birth": 4.7},
		MaxShow: 2,
	}
	res, err := e.Solve(context.Background(), crateBoard(t), 5)
	require.NoError(t, err)

	assert.Equal(t, "...t.", res.Constraints.Pattern())
	assert.Equal(t, []string{"forty", "birth"}, res.Candidates)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 2, res.More)

	first, ok := res.First()
	assert.True(t, ok)
	assert.Equal(t, "forty", first)
}

func TestSolveLexicalWithoutOracle(t *testing.T) {
	e := &Engine{Source: words.List{"worth", "north", "forty"}}
	res, err := e.Solve(context.Background(), crateBoard(t), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"forty", "north", "worth"}, res.Candidates)
	assert.Zero(t, res.More)
}

func TestSolveNoWordSource(t *testing.T) {
	e := &Engine{}
	_, err := e.Solve(context.Background(), crateBoard(t), 5)
	require.ErrorIs(t, err, words.ErrNoWordSource)

	e.Source = words.List{"abc"}
	_, err = e.Solve(context.Background(), crateBoard(t), 5)
	require.ErrorIs(t, err, words.ErrNoWordSource)
}

func TestSolveInvalidBoard(t *testing.T) {
	e := &Engine{Source: words.List{"abcd"}}
	_, err := e.Solve(context.Background(), crateBoard(t), 4)
	require.ErrorIs(t, err, solver.ErrInvalidInput)
}

func TestSolveUnsatisfiableIsEmpty(t *testing.T) {
	e := &Engine{Source: words.List{"worth", "north"}}
	res, err := e.Solve(context.Background(), crateBoard(t), 5)
	require.NoError(t, err)
	require.Len(t, res.Candidates, 2)

	var b puzzle.Board
	for _, spec := range []string{"xxaxx:--g--", "yybyy:--g--"} {
		row, err := puzzle.ParseRowSpec(spec, 5)
		require.NoError(t, err)
		b.AddRow(row)
	}
	res, err = e.Solve(context.Background(), b, 5)
	require.NoError(t, err)
	assert.Empty(t, res.Candidates)
	assert.True(t, res.Constraints.Contradictory())
	_, ok := res.First()
	assert.False(t, ok)
}

func TestSolveConstraints(t *testing.T) {
	cs, err := solver.NewConstraintSet("..e..", "", "", nil)
	require.NoError(t, err)
	e := &Engine{Source: words.List{"fleet", "north", "sheep"}}
	res, err := e.SolveConstraints(context.Background(), cs)
	require.NoError(t, err)
	assert.Equal(t, []string{"fleet", "sheep"}, res.Candidates)
}
