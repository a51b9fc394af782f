// internal/solver/constraints.go
//
// Constraint derivation: reduces a board of guess rows into the constraint
// set handed to the candidate filter.
// Responsibilities:
//   - Fix Correct letters into a positional pattern.
//   - Collect required letters (Correct + Present), position order first,
//     then Present letters in first-seen order.
//   - Record Present letters as excluded from the position they were seen at.
//   - Forbid Absent letters unless they are required elsewhere.
//   - Fail closed when two different letters are marked Correct at one position.
//
// Notes:
//   - Each required letter is recorded once, so a doubled letter in the
//     solution is only enforced as "at least one".

package solver

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wrdlstab/internal/puzzle"
)

// ErrInvalidInput reports a malformed board, a word-length mismatch, or
// letters outside a–z.
var ErrInvalidInput = errors.New("solver: invalid input")

// Wildcard is the pattern character for an unconstrained position.
const Wildcard = '.'

// ConstraintSet is the immutable result of Derive (or NewConstraintSet).
type ConstraintSet struct {
	pattern       []byte // 0 = wildcard
	required      []byte // ordered; a letter repeats to require more than one copy
	forbidden     LetterSet
	yellow        map[int]LetterSet
	contradictory bool
}

// Derive builds the constraint set implied by every row of board.
// Rows must all be wordLength tiles wide. The board is not modified.
func Derive(board puzzle.Board, wordLength int) (ConstraintSet, error) {
	if wordLength < 1 || wordLength > puzzle.MaxLength {
		return ConstraintSet{}, fmt.Errorf("%w: word length %d", ErrInvalidInput, wordLength)
	}
	for i, row := range board.Rows {
		if len(row) != wordLength {
			return ConstraintSet{}, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidInput, i, len(row), wordLength)
		}
		for j, t := range row {
			if !t.Empty() && (t.Letter < 'a' || t.Letter > 'z') {
				return ConstraintSet{}, fmt.Errorf("%w: row %d tile %d letter %q", ErrInvalidInput, i, j, t.Letter)
			}
		}
	}

	// greens-by-position
	greens := make([]LetterSet, wordLength)
	for _, row := range board.Rows {
		for pos, t := range row {
			if !t.Empty() && t.State == puzzle.Correct {
				greens[pos] = greens[pos].with(t.Letter)
			}
		}
	}
	for _, g := range greens {
		if g.Len() > 1 {
			return FailClosed(wordLength), nil
		}
	}

	cs := ConstraintSet{
		pattern: make([]byte, wordLength),
		yellow:  make(map[int]LetterSet),
	}
	var seen LetterSet
	need := func(ch byte) {
		if !seen.Has(ch) {
			seen = seen.with(ch)
			cs.required = append(cs.required, ch)
		}
	}

	for pos, g := range greens {
		if letters := g.Letters(); len(letters) == 1 {
			cs.pattern[pos] = letters[0]
			need(letters[0])
		}
	}

	var greys LetterSet
	for _, row := range board.Rows {
		for pos, t := range row {
			if t.Empty() {
				continue
			}
			switch t.State {
			case puzzle.Present:
				cs.yellow[pos] = cs.yellow[pos].with(t.Letter)
				need(t.Letter)
			case puzzle.Absent:
				greys = greys.with(t.Letter)
			}
		}
	}
	cs.forbidden = greys.Without(seen)
	return cs, nil
}

// FailClosed returns a constraint set that no word can satisfy: every letter
// is forbidden and nothing is required.
func FailClosed(wordLength int) ConstraintSet {
	return ConstraintSet{
		pattern:       make([]byte, wordLength),
		forbidden:     Alphabet(),
		yellow:        map[int]LetterSet{},
		contradictory: true,
	}
}

// NewConstraintSet assembles constraints directly, for callers that already
// know them. pattern uses '.' or '_' for wildcards. Repeating a letter in
// required raises its minimum count. yellow maps a position to letters that
// may not sit there.
func NewConstraintSet(pattern, required, forbidden string, yellow map[int]string) (ConstraintSet, error) {
	if pattern == "" {
		return ConstraintSet{}, fmt.Errorf("%w: empty pattern", ErrInvalidInput)
	}
	cs := ConstraintSet{
		pattern:   make([]byte, len(pattern)),
		forbidden: LettersOf(forbidden),
		yellow:    make(map[int]LetterSet, len(yellow)),
	}
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case ch == Wildcard || ch == '_':
		case isLetter(lower(ch)):
			cs.pattern[i] = lower(ch)
		default:
			return ConstraintSet{}, fmt.Errorf("%w: pattern character %q", ErrInvalidInput, ch)
		}
	}
	for _, ch := range []byte(strings.ToLower(required)) {
		if isLetter(ch) {
			cs.required = append(cs.required, ch)
		}
	}
	for pos, letters := range yellow {
		if pos < 0 || pos >= len(pattern) {
			return ConstraintSet{}, fmt.Errorf("%w: yellow position %d outside pattern", ErrInvalidInput, pos)
		}
		if set := LettersOf(letters); set.Len() > 0 {
			cs.yellow[pos] = set
		}
	}
	return cs, nil
}

// Len is the word length the constraints apply to.
func (c ConstraintSet) Len() int { return len(c.pattern) }

// Pattern renders the positional pattern, '.' for wildcards.
func (c ConstraintSet) Pattern() string {
	b := make([]byte, len(c.pattern))
	for i, ch := range c.pattern {
		if ch == 0 {
			ch = Wildcard
		}
		b[i] = ch
	}
	return string(b)
}

// Fixed returns the letter fixed at position i, if any.
func (c ConstraintSet) Fixed(i int) (byte, bool) {
	if i < 0 || i >= len(c.pattern) || c.pattern[i] == 0 {
		return 0, false
	}
	return c.pattern[i], true
}

// Required returns the required letters in derivation order.
func (c ConstraintSet) Required() string { return string(c.required) }

// MinCount returns how many copies of ch a candidate must contain.
func (c ConstraintSet) MinCount(ch byte) int {
	n := 0
	for _, r := range c.required {
		if r == ch {
			n++
		}
	}
	return n
}

// Forbidden returns the letters no candidate may contain.
func (c ConstraintSet) Forbidden() LetterSet { return c.forbidden }

// Yellow returns a copy of the position → excluded letters map.
func (c ConstraintSet) Yellow() map[int]LetterSet {
	out := make(map[int]LetterSet, len(c.yellow))
	for k, v := range c.yellow {
		out[k] = v
	}
	return out
}

// YellowAt returns the letters excluded from position i.
func (c ConstraintSet) YellowAt(i int) LetterSet { return c.yellow[i] }

// Contradictory reports whether the set came from conflicting Correct marks.
func (c ConstraintSet) Contradictory() bool { return c.contradictory }

type constraintJSON struct {
	Length        int               `json:"length"`
	Pattern       string            `json:"pattern"`
	Required      string            `json:"required"`
	Forbidden     LetterSet         `json:"forbidden"`
	Yellow        map[int]LetterSet `json:"yellow"`
	Contradictory bool              `json:"contradictory"`
}

func (c ConstraintSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(constraintJSON{
		Length:        c.Len(),
		Pattern:       c.Pattern(),
		Required:      c.Required(),
		Forbidden:     c.forbidden,
		Yellow:        c.Yellow(),
		Contradictory: c.contradictory,
	})
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

func isLetter(ch byte) bool { return ch >= 'a' && ch <= 'z' }
