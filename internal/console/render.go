// internal/console/render.go
//
// Terminal rendering of boards and candidate lists.
//
// Tiles are drawn as coloured blocks (green = correct, yellow = present,
// grey = absent). Each row is followed by its mark notation so the output
// stays readable with NO_COLOR or when piped.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wrdlstab/internal/engine"
	"github.com/robalobadob/wrdlstab/internal/puzzle"
)

var (
	correctTile = color.New(color.BgGreen, color.FgBlack, color.Bold)
	presentTile = color.New(color.BgYellow, color.FgBlack, color.Bold)
	absentTile  = color.New(color.BgHiBlack, color.FgWhite)
	heading     = color.New(color.FgCyan)
	warn        = color.New(color.FgYellow)
)

// RenderRow draws one row as tiles followed by "word:marks".
func RenderRow(row puzzle.Row) string {
	var b strings.Builder
	for _, t := range row {
		if t.Empty() {
			b.WriteString(" _ ")
			continue
		}
		cell := fmt.Sprintf(" %c ", t.Letter-'a'+'A')
		switch t.State {
		case puzzle.Correct:
			b.WriteString(correctTile.Sprint(cell))
		case puzzle.Present:
			b.WriteString(presentTile.Sprint(cell))
		default:
			b.WriteString(absentTile.Sprint(cell))
		}
	}
	b.WriteString("  ")
	b.WriteString(row.String())
	return b.String()
}

// RenderBoard writes every row, numbered from 1.
func RenderBoard(w io.Writer, board puzzle.Board) {
	if len(board.Rows) == 0 {
		fmt.Fprintln(w, "(empty board)")
		return
	}
	for i, row := range board.Rows {
		fmt.Fprintf(w, "%2d %s\n", i+1, RenderRow(row))
	}
}

// PrintResult writes the candidate list:
//
//	N candidate(s):
//	word
//	...
//	... and K more
//
// or "No matches." when nothing survived the filter.
func PrintResult(w io.Writer, res engine.Result) {
	if res.Total == 0 {
		warn.Fprintln(w, "No matches.")
		return
	}
	heading.Fprintf(w, "%d candidate(s):\n", res.Total)
	for _, word := range res.Candidates {
		fmt.Fprintln(w, word)
	}
	if res.More > 0 {
		fmt.Fprintf(w, "... and %d more\n", res.More)
	}
}
