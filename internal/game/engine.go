// internal/game/engine.go
//
// Guess evaluation for the Wordle game engine.
// Responsibilities:
//   - Score guesses using the classic two‑pass Wordle algorithm.
//   - Report whether a scored guess solves the round.
//
// Evaluation is pure: identical inputs always produce identical marks.
package game

import (
	"fmt"
	"strings"
)

// Evaluate compares guess against secret and returns one Mark per position.
// Comparison is case-insensitive. Both words must have the same length,
// otherwise ErrLengthMismatch is returned.
//
// Pass 1:
//   - Mark exact matches and consume those secret positions.
//   - Count the remaining (unconsumed) secret letters.
//
// Pass 2:
//   - Left to right over the non‑exact guess letters: if an unconsumed
//     occurrence of the letter remains, mark Present and consume it;
//     otherwise mark Absent.
//
// A repeated guess letter is therefore Present only as many times as it
// remains unconsumed in the secret.
func Evaluate(guess, secret string) ([]Mark, error) {
	g := []rune(strings.ToLower(guess))
	s := []rune(strings.ToLower(secret))
	if len(g) != len(s) {
		return nil, fmt.Errorf("%w: guess %q (%d), secret length %d", ErrLengthMismatch, guess, len(g), len(s))
	}

	n := len(g)
	res := make([]Mark, n)
	remaining := make(map[rune]int, n)

	for i := 0; i < n; i++ {
		if g[i] == s[i] {
			res[i] = MarkExact
		} else {
			remaining[s[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkExact {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = MarkPresent
			remaining[g[i]]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res, nil
}

// Solved returns true if all marks are MarkExact.
func Solved(marks []Mark) bool {
	if len(marks) == 0 {
		return false
	}
	for _, m := range marks {
		if m != MarkExact {
			return false
		}
	}
	return true
}
