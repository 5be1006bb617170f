// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - LetterState: what the player knows about a letter of the alphabet.
//   - Outcome: the result of a finished round.

package game

import "errors"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the secret but in a different position.
//   - "absent":  letter has no remaining correspondence in the secret.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// LetterState is the knowledge about one letter of the alphabet within a round.
type LetterState int

const (
	LetterUnknown LetterState = iota
	LetterPresent
	LetterAbsent
)

func (s LetterState) String() string {
	switch s {
	case LetterPresent:
		return "present"
	case LetterAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// Outcome is produced when a round ends and consumed by the statistics.
type Outcome struct {
	ID      string // Round identifier (uuid).
	Won     bool   // True if the secret was guessed within the limit.
	Guesses int    // Accepted guesses; equals the limit on a loss.
	Secret  string // The secret word (lowercase).
}

var (
	// ErrLengthMismatch is returned by Evaluate when guess and secret differ in length.
	ErrLengthMismatch = errors.New("length of guess and word to compare is not same")

	// ErrNotInWordList rejects a guess that is not a valid word.
	ErrNotInWordList = errors.New("invalid word")

	// ErrAlreadyGuessed rejects a guess repeated within the same round.
	ErrAlreadyGuessed = errors.New("already guessed")
)
