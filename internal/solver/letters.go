package solver

import (
	"encoding/json"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const alphabetSize = 26

// LetterSet is an immutable set of lowercase letters a–z.
// The zero value is the empty set.
type LetterSet struct {
	bits *bitset.BitSet
}

// NewLetterSet builds a set from letters; bytes outside a–z are ignored.
func NewLetterSet(letters ...byte) LetterSet {
	var s LetterSet
	for _, ch := range letters {
		s = s.with(ch)
	}
	return s
}

// LettersOf builds a set from the letters of text.
func LettersOf(text string) LetterSet {
	return NewLetterSet([]byte(strings.ToLower(text))...)
}

// Alphabet returns the set of all 26 letters.
func Alphabet() LetterSet {
	b := bitset.New(alphabetSize)
	for i := uint(0); i < alphabetSize; i++ {
		b.Set(i)
	}
	return LetterSet{bits: b}
}

// Has reports whether ch is in the set.
func (s LetterSet) Has(ch byte) bool {
	i, ok := letterIndex(ch)
	return ok && s.bits != nil && s.bits.Test(i)
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Letters returns the members in ascending order.
func (s LetterSet) Letters() []byte {
	if s.bits == nil {
		return nil
	}
	out := make([]byte, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, byte('a'+i))
	}
	return out
}

// Without returns s minus every letter in o.
func (s LetterSet) Without(o LetterSet) LetterSet {
	if s.bits == nil {
		return LetterSet{}
	}
	if o.bits == nil {
		return LetterSet{bits: s.bits.Clone()}
	}
	return LetterSet{bits: s.bits.Difference(o.bits)}
}

func (s LetterSet) String() string { return string(s.Letters()) }

func (s LetterSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LetterSet) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return err
	}
	*s = LettersOf(text)
	return nil
}

// with returns a copy of s that also contains ch.
func (s LetterSet) with(ch byte) LetterSet {
	i, ok := letterIndex(ch)
	if !ok {
		return s
	}
	var b *bitset.BitSet
	if s.bits == nil {
		b = bitset.New(alphabetSize)
	} else {
		b = s.bits.Clone()
	}
	return LetterSet{bits: b.Set(i)}
}

func letterIndex(ch byte) (uint, bool) {
	if ch < 'a' || ch > 'z' {
		return 0, false
	}
	return uint(ch - 'a'), true
}
