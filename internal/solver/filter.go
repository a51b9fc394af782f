// internal/solver/filter.go
//
// Candidate filtering against a derived constraint set.
//
// Per-word checks, short-circuiting at the first failure:
//   1. Pattern: every fixed position must hold its letter.
//   2. Forbidden: no forbidden letter may appear, unless it is also required.
//   3. Required: the word holds at least MinCount copies of each required letter.
//   4. Yellow: no position may hold a letter excluded from it.
//
// Survivors keep their input order.

package solver

import "fmt"

// matcher is a ConstraintSet unpacked into per-letter tables.
type matcher struct {
	pattern   []byte
	forbidden [alphabetSize]bool
	minCount  [alphabetSize]int
	yellow    []LetterSet
}

func newMatcher(cs ConstraintSet) *matcher {
	m := &matcher{
		pattern: cs.pattern,
		yellow:  make([]LetterSet, len(cs.pattern)),
	}
	for _, ch := range cs.required {
		m.minCount[ch-'a']++
	}
	for _, ch := range cs.forbidden.Letters() {
		// required takes precedence over forbidden
		if m.minCount[ch-'a'] == 0 {
			m.forbidden[ch-'a'] = true
		}
	}
	for pos, set := range cs.yellow {
		if pos >= 0 && pos < len(m.yellow) {
			m.yellow[pos] = set
		}
	}
	return m
}

func (m *matcher) match(word string) (bool, error) {
	if len(word) != len(m.pattern) {
		return false, fmt.Errorf("%w: word %q has %d letters, pattern has %d", ErrInvalidInput, word, len(word), len(m.pattern))
	}
	for i := 0; i < len(word); i++ {
		if !isLetter(word[i]) {
			return false, fmt.Errorf("%w: word %q is not lowercase a–z", ErrInvalidInput, word)
		}
	}

	for i, want := range m.pattern {
		if want != 0 && word[i] != want {
			return false, nil
		}
	}

	var counts [alphabetSize]int
	for i := 0; i < len(word); i++ {
		j := word[i] - 'a'
		if m.forbidden[j] {
			return false, nil
		}
		counts[j]++
	}

	for j, n := range m.minCount {
		if counts[j] < n {
			return false, nil
		}
	}

	for i, set := range m.yellow {
		if set.Has(word[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Filter returns the words that satisfy every constraint in cs, in input order.
// An empty result is a valid answer. Words whose length differs from the
// pattern, or that contain anything but a–z, fail with ErrInvalidInput.
func Filter(words []string, cs ConstraintSet) ([]string, error) {
	m := newMatcher(cs)
	out := make([]string, 0)
	for _, w := range words {
		ok, err := m.match(w)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// Satisfies reports whether a single word meets cs.
func Satisfies(word string, cs ConstraintSet) (bool, error) {
	return newMatcher(cs).match(word)
}
