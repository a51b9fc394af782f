// internal/puzzle/board.go
//
// Board editing operations.
// Responsibilities:
//   - Tile letter/state mutation (clearing a letter resets its state).
//   - Row construction from typed text and from "word:marks" notation.
//   - Board row management (append, remove, clear, resize).
//
// Notes:
//   - Typed text is cleaned to lowercase a–z before it reaches a tile.
//   - Nothing here derives constraints; see the solver package.

package puzzle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SetLetter stores a lowercase letter; anything outside a–z clears the tile.
// Clearing a tile resets its state to Absent.
func (t *Tile) SetLetter(ch byte) {
	ch = lower(ch)
	if !isLetter(ch) {
		t.Letter, t.State = 0, Absent
		return
	}
	t.Letter = ch
}

// Cycle advances the tile state. Empty tiles stay Absent.
func (t *Tile) Cycle() {
	if t.Empty() {
		t.State = Absent
		return
	}
	t.State = t.State.Next()
}

type tileJSON struct {
	Letter string      `json:"letter"`
	State  LetterState `json:"state"`
}

func (t Tile) MarshalJSON() ([]byte, error) {
	v := tileJSON{State: t.State}
	if !t.Empty() {
		v.Letter = string(t.Letter)
	}
	return json.Marshal(v)
}

func (t *Tile) UnmarshalJSON(b []byte) error {
	var v tileJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if len(v.Letter) > 1 {
		return fmt.Errorf("%w: tile letter %q", ErrInvalidRow, v.Letter)
	}
	*t = Tile{}
	if v.Letter != "" {
		t.SetLetter(v.Letter[0])
		if t.Empty() {
			return fmt.Errorf("%w: tile letter %q", ErrInvalidRow, v.Letter)
		}
		t.State = v.State
	}
	return nil
}

// NewRow returns an empty row of the given width.
func NewRow(length int) Row {
	return make(Row, length)
}

// SetWord writes typed text into the row. Non-letters are dropped, the rest is
// lowercased and truncated to the row width. Tiles past the end of the text
// are cleared; tiles that keep a letter keep their state.
func (r Row) SetWord(text string) {
	cleaned := Clean(text)
	for i := range r {
		var ch byte
		if i < len(cleaned) {
			ch = cleaned[i]
		}
		r[i].SetLetter(ch)
	}
}

// Word returns the row letters, skipping empty tiles.
func (r Row) Word() string {
	var b strings.Builder
	for _, t := range r {
		if !t.Empty() {
			b.WriteByte(t.Letter)
		}
	}
	return b.String()
}

// Marks returns the row feedback in mark notation ('-', 'y', 'g'), one per
// non-empty tile.
func (r Row) Marks() string {
	var b strings.Builder
	for _, t := range r {
		if !t.Empty() {
			b.WriteByte(t.State.Mark())
		}
	}
	return b.String()
}

// String renders the row as "word:marks". Empty tiles before the last letter
// are written as Gap with an absent mark so ParseRow reads the row back at the
// same positions; trailing empty tiles are left out.
func (r Row) String() string {
	end := len(r)
	for end > 0 && r[end-1].Empty() {
		end--
	}
	var word, marks strings.Builder
	for _, t := range r[:end] {
		if t.Empty() {
			word.WriteByte(Gap)
			marks.WriteByte(Absent.Mark())
			continue
		}
		word.WriteByte(t.Letter)
		marks.WriteByte(t.State.Mark())
	}
	return word.String() + ":" + marks.String()
}

// IsBlank reports whether every tile is empty.
func (r Row) IsBlank() bool {
	for _, t := range r {
		if !t.Empty() {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// ParseRow builds a row of the given width from a word and its marks
// (see ParseMark). Missing trailing marks default to Absent. A Gap in the
// word leaves that tile empty; its mark, if any, must be absent.
//
// Unlike SetWord, ParseRow refuses input that would need truncation.
func ParseRow(word, marks string, length int) (Row, error) {
	if err := CheckLength(length); err != nil {
		return nil, err
	}
	word = strings.TrimSpace(word)
	if len(word) > length {
		return nil, fmt.Errorf("%w: %q is longer than %d letters", ErrInvalidRow, word, length)
	}
	if len(marks) > len(word) {
		return nil, fmt.Errorf("%w: %d marks for %d letters", ErrInvalidRow, len(marks), len(word))
	}
	row := NewRow(length)
	for i := 0; i < len(word); i++ {
		if word[i] == Gap {
			continue
		}
		row[i].SetLetter(word[i])
		if row[i].Empty() {
			return nil, fmt.Errorf("%w: %q contains non-letters", ErrInvalidRow, word)
		}
	}
	for i := 0; i < len(marks); i++ {
		st, ok := ParseMark(marks[i])
		if !ok {
			return nil, fmt.Errorf("%w: unknown mark %q", ErrInvalidRow, marks[i])
		}
		if row[i].Empty() && st != Absent {
			return nil, fmt.Errorf("%w: mark %q on empty tile %d", ErrInvalidRow, marks[i], i+1)
		}
		row[i].State = st
	}
	return row, nil
}

// ParseRowSpec parses one row from a single line of text. Two forms are accepted:
//
//	crate:-y-g-       word, optional ':' or '/' and marks
//	-c ~r -a +t -e    one field per letter: mark then letter
func ParseRowSpec(spec string, length int) (Row, error) {
	spec = strings.TrimSpace(spec)
	fields := strings.Fields(spec)
	if len(fields) > 1 {
		var word, marks strings.Builder
		for _, f := range fields {
			if len(f) != 2 {
				return nil, fmt.Errorf("%w: field %q is not <mark><letter>", ErrInvalidRow, f)
			}
			word.WriteByte(f[1])
			marks.WriteByte(f[0])
		}
		return ParseRow(word.String(), marks.String(), length)
	}
	if i := strings.IndexAny(spec, ":/"); i >= 0 {
		return ParseRow(spec[:i], spec[i+1:], length)
	}
	return ParseRow(spec, "", length)
}

// AddRow appends a copy of row.
func (b *Board) AddRow(row Row) {
	b.Rows = append(b.Rows, row.Clone())
}

// RemoveRow deletes the row at index i.
func (b *Board) RemoveRow(i int) error {
	if i < 0 || i >= len(b.Rows) {
		return fmt.Errorf("%w: %d", ErrNoSuchRow, i)
	}
	b.Rows = append(b.Rows[:i], b.Rows[i+1:]...)
	return nil
}

// Row returns the row at index i for in-place edits.
func (b *Board) Row(i int) (Row, error) {
	if i < 0 || i >= len(b.Rows) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchRow, i)
	}
	return b.Rows[i], nil
}

// Clear removes every row.
func (b *Board) Clear() {
	b.Rows = nil
}

// Resize rebuilds every row at a new width. Letters keep their positions,
// anything past the new width is dropped, and all states reset to Absent.
// An empty board gets a single blank row.
func (b *Board) Resize(length int) {
	rows := make([]Row, 0, len(b.Rows))
	for _, old := range b.Rows {
		row := NewRow(length)
		for i := 0; i < len(row) && i < len(old); i++ {
			row[i].SetLetter(old[i].Letter)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, NewRow(length))
	}
	b.Rows = rows
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := Board{Rows: make([]Row, len(b.Rows))}
	for i, r := range b.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}

// Clean lowercases text and drops everything that is not a letter a–z.
func Clean(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if ch := lower(text[i]); isLetter(ch) {
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

func isLetter(ch byte) bool { return ch >= 'a' && ch <= 'z' }
