// internal/puzzle/types.go
//
// Core type definitions for the puzzle board.
// Defines:
//   - LetterState: per-letter feedback (absent/present/correct).
//   - Tile: one cell of a guess row (optional letter + state).
//   - Row: a fixed-length sequence of tiles.
//   - Board: the ordered collection of guess rows.

package puzzle

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRow = errors.New("puzzle: invalid row")
	ErrNoSuchRow  = errors.New("puzzle: no such row")
)

// MaxLength bounds the word length of any row or board.
const MaxLength = 32

// Gap stands for an empty tile in row notation ("_r:-y").
const Gap = '_'

// CheckLength rejects word lengths outside 1..MaxLength.
func CheckLength(n int) error {
	if n < 1 || n > MaxLength {
		return fmt.Errorf("%w: length %d not in 1..%d", ErrInvalidRow, n, MaxLength)
	}
	return nil
}

// LetterState is the feedback attached to a single guessed letter.
//   - Absent:  letter not in the solution (or already fully accounted for).
//   - Present: letter in the solution but not at this position.
//   - Correct: letter at this exact position.
type LetterState uint8

const (
	Absent LetterState = iota
	Present
	Correct
)

// Next returns the state a tile moves to when toggled:
// Absent → Present → Correct → Absent.
func (s LetterState) Next() LetterState {
	return (s + 1) % 3
}

func (s LetterState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("LetterState(%d)", uint8(s))
}

// Mark returns the single-character notation used by ParseRow and Row.Marks.
func (s LetterState) Mark() byte {
	switch s {
	case Present:
		return 'y'
	case Correct:
		return 'g'
	}
	return '-'
}

// MarshalText encodes the state by name so JSON payloads stay readable.
func (s LetterState) MarshalText() ([]byte, error) {
	if s > Correct {
		return nil, fmt.Errorf("puzzle: unknown letter state %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts either the state name or a single mark character.
func (s *LetterState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "absent":
		*s = Absent
		return nil
	case "present":
		*s = Present
		return nil
	case "correct":
		*s = Correct
		return nil
	}
	if len(b) == 1 {
		if st, ok := ParseMark(b[0]); ok {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("puzzle: unknown letter state %q", b)
}

// ParseMark maps a feedback character to a state.
// Accepted: '-', '.', 'b', 'x', '0' (absent); 'y', '~', '1' (present); 'g', '+', '2' (correct).
func ParseMark(c byte) (LetterState, bool) {
	switch c {
	case '-', '.', 'b', 'B', 'x', 'X', '0':
		return Absent, true
	case 'y', 'Y', '~', '1':
		return Present, true
	case 'g', 'G', '+', '2':
		return Correct, true
	}
	return Absent, false
}

// Tile is a single position within a guess row.
// Letter == 0 means the cell is empty; State is meaningless for empty tiles.
type Tile struct {
	Letter byte        `json:"letter"`
	State  LetterState `json:"state"`
}

// Empty reports whether the tile has no letter.
func (t Tile) Empty() bool { return t.Letter == 0 }

// Row is an ordered, fixed-length sequence of tiles.
type Row []Tile

// Board is an ordered collection of rows (insertion order = guess order).
type Board struct {
	Rows []Row `json:"rows"`
}
