package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wrdlstab/internal/engine"
	"github.com/robalobadob/wrdlstab/internal/puzzle"
	"github.com/robalobadob/wrdlstab/internal/words"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var dict = words.List{"tabor", "trout", "write", "north", "grits", "forty", "carts"}

func newEngine() *engine.Engine {
	return &engine.Engine{Source: dict, MaxShow: 500}
}

func TestRenderRow(t *testing.T) {
	row, err := puzzle.ParseRowSpec("crate:-y-g-", 5)
	require.NoError(t, err)
	out := RenderRow(row)
	assert.Contains(t, out, " C  R  A  T  E ")
	assert.True(t, strings.HasSuffix(out, "crate:-y-g-"))

	blank := RenderRow(puzzle.NewRow(3))
	assert.Equal(t, " _  _  _   :", blank)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, engine.Result{Candidates: []string{"forty"}, Total: 3, More: 2})
	assert.Equal(t, "3 candidate(s):\nforty\n... and 2 more\n", buf.String())

	buf.Reset()
	PrintResult(&buf, engine.Result{Candidates: []string{}})
	assert.Equal(t, "No matches.\n", buf.String())
}

func TestSessionScript(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(newEngine(), 5, &out)
	script := strings.Join([]string{
		"add crate:-y-g-",
		"find",
		"first",
		"cycle 1 2",
		"find",
		"bogus thing",
		"del 1",
		"show",
		"quit",
		"find",
	}, "\n")
	require.NoError(t, s.Run(context.Background(), strings.NewReader(script)))

	got := out.String()
	assert.Contains(t, got, "2 candidate(s):\nforty\nnorth\n")
	assert.Contains(t, got, "> forty\n> ", "first prints only the top word")
	assert.Contains(t, got, "1 candidate(s):\ngrits\n")
	assert.Contains(t, got, "error: ")
	assert.Contains(t, got, "(empty board)")
	assert.Equal(t, 1, strings.Count(got, "1 candidate(s)"), "nothing runs after quit")
}

func TestSessionEdits(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	s := NewSession(newEngine(), 5, &out)

	_, err := s.Exec(ctx, "crate:-y-g-")
	require.NoError(t, err)
	require.Len(t, s.Board.Rows, 1, "a bare row fills the blank row")

	_, err = s.Exec(ctx, "add")
	require.NoError(t, err)
	require.Len(t, s.Board.Rows, 2)
	_, err = s.Exec(ctx, "add")
	require.NoError(t, err)
	require.Len(t, s.Board.Rows, 3, "a bare add always appends a blank row")
	_, err = s.Exec(ctx, "del 3")
	require.NoError(t, err)

	_, err = s.Exec(ctx, "set 2 Tr!out")
	require.NoError(t, err)
	assert.Equal(t, "trout", s.Board.Rows[1].Word())

	_, err = s.Exec(ctx, "length 4")
	require.NoError(t, err)
	assert.Equal(t, 4, s.Length)
	assert.Equal(t, "crat:----", s.Board.Rows[0].String())

	_, err = s.Exec(ctx, "clear")
	require.NoError(t, err)
	require.Len(t, s.Board.Rows, 1)
	assert.True(t, s.Board.Rows[0].IsBlank())

	quit, err := s.Exec(ctx, "exit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestSessionRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	s := NewSession(newEngine(), 5, &bytes.Buffer{})
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, pr) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run kept waiting for input after cancel")
	}
}

func TestSessionErrors(t *testing.T) {
	ctx := context.Background()
	s := NewSession(newEngine(), 5, &bytes.Buffer{})

	_, err := s.Exec(ctx, "del 4")
	assert.ErrorIs(t, err, puzzle.ErrNoSuchRow)
	_, err = s.Exec(ctx, "cycle 1 9")
	assert.ErrorIs(t, err, puzzle.ErrNoSuchRow)
	_, err = s.Exec(ctx, "cycle 1")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = s.Exec(ctx, "length zero")
	assert.ErrorIs(t, err, puzzle.ErrInvalidRow)
	_, err = s.Exec(ctx, "length 100000")
	assert.ErrorIs(t, err, puzzle.ErrInvalidRow)
	assert.Equal(t, 5, s.Length)
	_, err = s.Exec(ctx, "add crates")
	assert.ErrorIs(t, err, puzzle.ErrInvalidRow)

	empty := NewSession(&engine.Engine{}, 5, &bytes.Buffer{})
	_, err = empty.Exec(ctx, "find")
	assert.ErrorIs(t, err, words.ErrNoWordSource)
}

func TestSimulateAutoPlay(t *testing.T) {
	var out bytes.Buffer
	res, err := Simulate(context.Background(), newEngine(), "north", []string{"CRATE"}, 0, &out)
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Equal(t, []string{"crate", "forty", "north"}, res.Guesses)
	assert.Contains(t, out.String(), "crate:-y-g-")
	assert.Contains(t, out.String(), "forty:-ggg-")
	assert.Contains(t, out.String(), "solved in 3")
}

func TestSimulateOutOfTurns(t *testing.T) {
	var out bytes.Buffer
	res, err := Simulate(context.Background(), newEngine(), "north", []string{"crate"}, 1, &out)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Contains(t, out.String(), "not solved in 1 guesses")
}

func TestSimulateRunsDry(t *testing.T) {
	var out bytes.Buffer
	res, err := Simulate(context.Background(), newEngine(), "zzzzz", nil, 6, &out)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, []string{"carts"}, res.Guesses)
	assert.Contains(t, out.String(), "No matches.")
}

func TestSimulateBadGuess(t *testing.T) {
	_, err := Simulate(context.Background(), newEngine(), "north", []string{"nor"}, 6, &bytes.Buffer{})
	assert.ErrorIs(t, err, puzzle.ErrInvalidRow)
}

func TestSimulateBadTarget(t *testing.T) {
	_, err := Simulate(context.Background(), newEngine(), " ", nil, 6, &bytes.Buffer{})
	assert.ErrorIs(t, err, puzzle.ErrInvalidRow)
}

func TestDailyTarget(t *testing.T) {
	day := time.Date(2026, 10, 18, 23, 0, 0, 0, time.FixedZone("x", -5*3600))
	assert.Equal(t, "2026-10-19", DateKey(day))

	a, ok := DailyTarget(day, "salt", dict)
	require.True(t, ok)
	assert.Contains(t, dict, a)

	b, _ := DailyTarget(day.Add(30*time.Minute), "salt", dict)
	assert.Equal(t, a, b, "same UTC day, same word")

	seen := map[string]bool{}
	for i := 0; i < 60; i++ {
		w, _ := DailyTarget(day.AddDate(0, 0, i), "salt", dict)
		seen[w] = true
	}
	assert.Greater(t, len(seen), 1)

	_, ok = DailyTarget(day, "salt", nil)
	assert.False(t, ok)
}
