// internal/rank/rank.go
//
// Candidate ordering for display.
// Responsibilities:
//   - Sort by descending real-world usage when a frequency oracle is available.
//   - Fall back to ascending lexical order when it is not.
//   - Cap the displayed list and report how many were left out.

package rank

import "sort"

// DefaultMaxShow is the display cap used when none is configured.
const DefaultMaxShow = 500

// Oracle looks up a usage score for a word (higher = more common).
// ok is false when the oracle has never seen the word.
type Oracle interface {
	Frequency(word string) (score float64, ok bool)
}

// Prober is implemented by oracles that can be present but empty,
// e.g. a corpus that was never imported.
type Prober interface {
	Available() bool
}

// ByFrequency returns a sorted copy of words. With a usable oracle the order is
// descending score (unknown words score 0, ties keep input order); otherwise
// it is ascending lexical order.
func ByFrequency(words []string, o Oracle) []string {
	out := make([]string, len(words))
	copy(out, words)
	if !usable(o) {
		sort.Strings(out)
		return out
	}
	scores := make(map[string]float64, len(out))
	for _, w := range out {
		if s, ok := o.Frequency(w); ok {
			scores[w] = s
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}

func usable(o Oracle) bool {
	if o == nil {
		return false
	}
	if p, ok := o.(Prober); ok {
		return p.Available()
	}
	return true
}

// Truncate caps words at max entries and returns how many were dropped.
// max <= 0 disables the cap.
func Truncate(words []string, max int) (shown []string, more int) {
	if max <= 0 || len(words) <= max {
		return words, 0
	}
	return words[:max], len(words) - max
}

// MapOracle is an in-memory Oracle keyed by word.
type MapOracle map[string]float64

func (m MapOracle) Frequency(word string) (float64, bool) {
	s, ok := m[word]
	return s, ok
}

// Available reports whether the map holds any scores.
func (m MapOracle) Available() bool { return len(m) > 0 }
