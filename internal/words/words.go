// internal/words/words.go
//
// Word-list sources for the solver.
//
// Responsibilities:
//   - Read newline-delimited word files.
//   - Serve the bundled default list (assets/words.txt).
//   - Hold uploaded lists in memory.
//   - Fall back from one source to the next, like reloading the builtin list
//     when no file was chosen.
//
// Constraints:
//   • Every returned word is non-empty, lowercase a–z, exactly the requested length.
//   • Duplicates are dropped; first occurrence wins, order is otherwise kept.
//   • An empty result surfaces as ErrNoWordSource so callers never filter nothing.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wrdlstab/assets"
)

// ErrNoWordSource means no word list is available for the requested length.
var ErrNoWordSource = errors.New("words: no word list available")

// Source supplies the words of one length.
type Source interface {
	Words(ctx context.Context, length int) ([]string, error)
}

// File is a newline-delimited word file on disk.
type File string

func (f File) Words(ctx context.Context, length int) ([]string, error) {
	fh, err := os.Open(string(f))
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", string(f), err)
	}
	defer fh.Close()
	return Read(fh, length)
}

func (f File) String() string { return "file " + string(f) }

// List is an in-memory word list, e.g. one uploaded over HTTP.
type List []string

func (l List) Words(ctx context.Context, length int) ([]string, error) {
	return Normalize(l, length), nil
}

func (l List) String() string { return fmt.Sprintf("list (%d words)", len(l)) }

// Embedded is the bundled default list.
type Embedded struct{}

func (Embedded) Words(ctx context.Context, length int) ([]string, error) {
	all, err := assets.DefaultList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return Normalize(all, length), nil
}

func (Embedded) String() string { return "embedded" }

// Read loads one word per line from r, keeping only valid words of length.
func Read(r io.Reader, length int) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	return Normalize(lines, length), nil
}

// Normalize trims and lowercases lines and keeps the alphabetic words of
// exactly length letters, without duplicates.
func Normalize(lines []string, length int) []string {
	out := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}

// Load asks src for words of length and reports ErrNoWordSource when there
// are none.
func Load(ctx context.Context, src Source, length int) ([]string, error) {
	if src == nil {
		return nil, ErrNoWordSource
	}
	ws, err := src.Words(ctx, length)
	if err != nil {
		return nil, err
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("%w: %v has no %d-letter words", ErrNoWordSource, src, length)
	}
	return ws, nil
}

// Fallback tries each source in order and returns the first non-empty result.
type Fallback []Source

func (f Fallback) Words(ctx context.Context, length int) ([]string, error) {
	var errs []error
	for _, src := range f {
		ws, err := src.Words(ctx, length)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(ws) > 0 {
			return ws, nil
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoWordSource, errors.Join(errs...))
	}
	return nil, nil
}

func (f Fallback) String() string {
	names := make([]string, len(f))
	for i, src := range f {
		names[i] = fmt.Sprint(src)
	}
	return strings.Join(names, " → ")
}
