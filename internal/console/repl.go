// internal/console/repl.go
//
// Interactive board editor.
// Responsibilities:
//   - Keep a board of guess rows and edit it line by line.
//   - Run the solver on demand and print the ranked candidates.
//
// Rows and tiles are numbered from 1 on screen and in commands.
// A line that is not a command is read as a row to add ("crate:-y-g-").

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robalobadob/wrdlstab/internal/engine"
	"github.com/robalobadob/wrdlstab/internal/puzzle"
)

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("usage")

const helpText = `commands:
  add [row]        append a row, e.g. "add crate:-y-g-" (blank row if omitted)
  set R word       retype the letters of row R
  cycle R P        cycle tile P of row R: absent → present → correct
  del R            delete row R
  clear            remove all rows
  length N         change the word length (rows are re-sliced, marks reset)
  show             print the board
  find             list candidates
  first            print the best candidate only
  help             this text
  quit             leave
`

// Session is one interactive editing session.
type Session struct {
	Engine *engine.Engine
	Length int
	Board  puzzle.Board
	Out    io.Writer
}

// NewSession starts with a single blank row.
func NewSession(e *engine.Engine, length int, out io.Writer) *Session {
	s := &Session{Engine: e, Length: length, Out: out}
	s.Board.AddRow(puzzle.NewRow(length))
	return s
}

// Run reads commands from in until EOF, "quit", or ctx is done.
// Command errors are printed and the loop continues.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, in)

	fmt.Fprintf(s.Out, "word length %d; type help for commands\n", s.Length)
	for {
		fmt.Fprint(s.Out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.Out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.Out)
				return <-errc
			}
			quit, err := s.Exec(ctx, line)
			if err != nil {
				warn.Fprintf(s.Out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. errc receives exactly one value before lines is closed.
// A read already in progress when ctx ends is abandoned.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

// Exec runs a single command line.
func (s *Session) Exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.Out, helpText)
	case "show":
		RenderBoard(s.Out, s.Board)
	case "add":
		err = s.add(strings.Join(args, " "))
	case "set":
		err = s.set(args)
	case "cycle":
		err = s.cycle(args)
	case "del", "delete", "rm":
		err = s.del(args)
	case "clear":
		s.Board.Clear()
		s.Board.AddRow(puzzle.NewRow(s.Length))
		RenderBoard(s.Out, s.Board)
	case "length":
		err = s.resize(args)
	case "find":
		err = s.find(ctx, false)
	case "first":
		err = s.find(ctx, true)
	default:
		err = s.add(line)
	}
	return false, err
}

func (s *Session) add(spec string) error {
	if strings.TrimSpace(spec) == "" {
		s.Board.AddRow(puzzle.NewRow(s.Length))
		RenderBoard(s.Out, s.Board)
		return nil
	}
	row, err := puzzle.ParseRowSpec(spec, s.Length)
	if err != nil {
		return err
	}
	// fill a trailing blank row before growing the board
	if n := len(s.Board.Rows); n > 0 && s.Board.Rows[n-1].IsBlank() {
		s.Board.Rows[n-1] = row
	} else {
		s.Board.AddRow(row)
	}
	RenderBoard(s.Out, s.Board)
	return nil
}

func (s *Session) set(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: set R word", ErrUsage)
	}
	row, err := s.row(args[0])
	if err != nil {
		return err
	}
	row.SetWord(args[1])
	RenderBoard(s.Out, s.Board)
	return nil
}

func (s *Session) cycle(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: cycle R P", ErrUsage)
	}
	row, err := s.row(args[0])
	if err != nil {
		return err
	}
	p, err := strconv.Atoi(args[1])
	if err != nil || p < 1 || p > len(row) {
		return fmt.Errorf("%w: tile %q", puzzle.ErrNoSuchRow, args[1])
	}
	row[p-1].Cycle()
	RenderBoard(s.Out, s.Board)
	return nil
}

func (s *Session) del(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: del R", ErrUsage)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: row %q", puzzle.ErrNoSuchRow, args[0])
	}
	if err := s.Board.RemoveRow(i - 1); err != nil {
		return err
	}
	RenderBoard(s.Out, s.Board)
	return nil
}

func (s *Session) resize(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: length N", ErrUsage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: length %q", puzzle.ErrInvalidRow, args[0])
	}
	if err := puzzle.CheckLength(n); err != nil {
		return err
	}
	s.Length = n
	s.Board.Resize(n)
	RenderBoard(s.Out, s.Board)
	return nil
}

func (s *Session) find(ctx context.Context, firstOnly bool) error {
	res, err := s.Engine.Solve(ctx, s.Board, s.Length)
	if err != nil {
		return err
	}
	if firstOnly {
		if w, ok := res.First(); ok {
			fmt.Fprintln(s.Out, w)
			return nil
		}
		warn.Fprintln(s.Out, "No matches.")
		return nil
	}
	PrintResult(s.Out, res)
	return nil
}

func (s *Session) row(arg string) (puzzle.Row, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: row %q", puzzle.ErrNoSuchRow, arg)
	}
	return s.Board.Row(i - 1)
}
