// internal/puzzle/score.go
//
// Feedback scoring for a guess against a known answer.
// Used by the simulate command and by tests that need realistic boards.
//
// Notes:
//   - Implements the classic two-pass algorithm so repeated letters are
//     marked the way the puzzle itself marks them.

package puzzle

import "fmt"

// Score compares guess against answer and returns one state per letter.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count remaining (non-correct) answer letters.
//
// Pass 2:
//   - For each remaining guess letter: if the answer still has an unused copy,
//     mark Present and consume it; otherwise Absent.
func Score(answer, guess string) ([]LetterState, error) {
	if len(answer) != len(guess) {
		return nil, fmt.Errorf("%w: guess %q and answer %q differ in length", ErrInvalidRow, guess, answer)
	}
	if Clean(answer) != answer || Clean(guess) != guess {
		return nil, fmt.Errorf("%w: guess and answer must be lowercase a–z", ErrInvalidRow)
	}

	n := len(guess)
	res := make([]LetterState, n)
	done := make([]bool, n)

	// Letter frequency for the non-correct positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = Correct
			done[i] = true
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if done[i] {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = Present
			counts[j]--
		} else {
			res[i] = Absent
		}
	}
	return res, nil
}

// ScoredRow builds a fully-populated row for guess with feedback against answer.
func ScoredRow(answer, guess string) (Row, error) {
	states, err := Score(answer, guess)
	if err != nil {
		return nil, err
	}
	row := NewRow(len(guess))
	row.SetWord(guess)
	for i, st := range states {
		row[i].State = st
	}
	return row, nil
}

// Solved reports whether every state is Correct.
func Solved(states []LetterState) bool {
	for _, s := range states {
		if s != Correct {
			return false
		}
	}
	return len(states) > 0
}
