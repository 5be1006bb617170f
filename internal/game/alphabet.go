package game

import "strings"

// Alphabet tracks what the player has learned about each letter a–z during
// one round. A letter known to be present is never downgraded to absent.
type Alphabet [26]LetterState

// Update folds one evaluated guess into the alphabet. Non a–z runes are ignored.
func (a *Alphabet) Update(guess string, marks []Mark) {
	for i, r := range []rune(strings.ToLower(guess)) {
		if i >= len(marks) {
			return
		}
		if r < 'a' || r > 'z' {
			continue
		}
		j := r - 'a'
		if a[j] == LetterPresent {
			continue
		}
		if marks[i] == MarkAbsent {
			a[j] = LetterAbsent
		} else {
			a[j] = LetterPresent
		}
	}
}

// State returns the state of letter r (case-insensitive); LetterUnknown for non-letters.
func (a *Alphabet) State(r rune) LetterState {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return LetterUnknown
	}
	return a[r-'a']
}
