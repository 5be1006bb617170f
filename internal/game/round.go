// internal/game/round.go
//
// Round controller: drives a single round from secret selection to win/loss.
//
// State machine:
//   AwaitingGuess(n) → Evaluated(n) → AwaitingGuess(n+1) | Won | Lost
//
// Collaborators are injected so the round can run against a terminal or
// against scripted input in tests:
//   - Picker:     supplies the secret (normally the unused word pool).
//   - Dictionary: decides whether a guess is a valid word.
//   - Input:      blocking line source.
//   - Renderer:   receives render events after every step.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Input is a blocking line source, typically the terminal.
type Input interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Renderer receives the events of a round. Implementations decide on colors
// and layout; the round never writes to the terminal itself.
type Renderer interface {
	RoundStart(number, length int)
	Board(guess string, marks []Mark, alphabet *Alphabet)
	Reject(err error, alphabet *Alphabet)
	Finish(outcome Outcome, message string)
}

// Dictionary reports whether a word may be guessed.
type Dictionary interface {
	Contains(word string) bool
}

// Picker hands out secrets.
type Picker interface {
	Pick() (string, error)
}

// Round holds everything needed to play one round.
type Round struct {
	Number     int // 1-based round counter, for display only
	Limit      int // maximum number of accepted guesses
	Dictionary Dictionary
	Picker     Picker
	Input      Input
	Renderer   Renderer
	Rand       *rand.Rand // used for round-end messages; nil means time-seeded
}

// Play runs the round to completion.
//
// Errors from the Picker (e.g. an exhausted pool) and from the Input are
// returned unchanged. Rejected guesses never consume an attempt.
func (r *Round) Play(ctx context.Context) (Outcome, error) {
	if r.Limit <= 0 {
		return Outcome{}, fmt.Errorf("guess limit must be positive, got %d", r.Limit)
	}
	secret, err := r.Picker.Pick()
	if err != nil {
		return Outcome{}, err
	}
	secret = strings.ToLower(secret)

	o := Outcome{ID: uuid.NewString(), Secret: secret}
	logger := log.With().Int("round", r.Number).Str("roundId", o.ID).Logger()
	logger.Debug().Int("limit", r.Limit).Msg("round started")

	var alphabet Alphabet
	seen := make(map[string]struct{}, r.Limit)
	r.Renderer.RoundStart(r.Number, len([]rune(secret)))

	for attempt := 1; attempt <= r.Limit; attempt++ {
		guess, err := r.readGuess(ctx, attempt, seen, &alphabet)
		if err != nil {
			return o, err
		}
		marks, err := Evaluate(guess, secret)
		if err != nil {
			return o, err
		}
		seen[guess] = struct{}{}
		alphabet.Update(guess, marks)
		o.Guesses = attempt
		logger.Debug().Int("attempt", attempt).Str("guess", guess).Msg("guess evaluated")

		r.Renderer.Board(guess, marks, &alphabet)
		if Solved(marks) {
			o.Won = true
			break
		}
	}

	logger.Info().Bool("won", o.Won).Int("guesses", o.Guesses).Msg("round finished")
	r.Renderer.Finish(o, EndMessage(r.rng(), o, r.Limit))
	return o, nil
}

// readGuess prompts until an acceptable guess arrives.
func (r *Round) readGuess(ctx context.Context, attempt int, seen map[string]struct{}, alphabet *Alphabet) (string, error) {
	prompt := fmt.Sprintf("Guess %d: ", attempt)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line, err := r.Input.ReadLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		guess := strings.ToLower(strings.TrimSpace(line))
		if err := r.check(guess, seen); err != nil {
			r.Renderer.Reject(err, alphabet)
			continue
		}
		return guess, nil
	}
}

// check validates a normalized guess. Not-in-list takes precedence over a repeat.
func (r *Round) check(guess string, seen map[string]struct{}) error {
	if !r.Dictionary.Contains(guess) {
		return ErrNotInWordList
	}
	if _, ok := seen[guess]; ok {
		return ErrAlreadyGuessed
	}
	return nil
}

func (r *Round) rng() *rand.Rand {
	if r.Rand == nil {
		r.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r.Rand
}
