// internal/session/session.go
//
// A play session: a sequence of rounds sharing one word pool and one set of
// statistics, optionally resumed from and saved to a Store.
//
// Flow:
//   1. Offer to resume a saved session (declining clears it).
//   2. Intro.
//   3. Rounds until the player stops or the pool runs dry.
//   4. Statistics.
//   5. Offer to save.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termle/internal/game"
	"github.com/robalobadob/wordle/apps/termle/internal/stats"
	"github.com/robalobadob/wordle/apps/termle/internal/store"
	"github.com/robalobadob/wordle/apps/termle/internal/words"
)

// Prompter reads guesses and yes/no answers.
type Prompter interface {
	game.Input
	Confirm(ctx context.Context, question string) (bool, error)
}

// View is everything a session prints.
type View interface {
	game.Renderer
	Intro(limit, length int)
	Score(score int)
	Statistics(st *stats.Statistics)
	Message(msg string)
}

// Session wires the collaborators of one play session.
type Session struct {
	Words  *words.List
	Limit  int
	Store  store.Store
	Prompt Prompter
	View   View
	Rand   *rand.Rand // nil means time-seeded

	pool      *words.Pool
	stats     *stats.Statistics
	completed int
}

// Run plays the session to the end. Reaching end of input during a round
// ends the session without saving; it is not an error.
func (s *Session) Run(ctx context.Context) error {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if err := s.resume(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.View.Intro(s.Limit, s.Words.Length())

	interrupted, err := s.rounds(ctx)
	if err != nil {
		return err
	}

	s.View.Statistics(s.stats)
	if interrupted {
		return nil
	}
	return s.save(ctx)
}

// resume restores a saved session if the player wants it, else starts fresh.
func (s *Session) resume(ctx context.Context) error {
	s.pool = words.NewPool(s.Words, s.Rand)
	s.stats = stats.New(s.Limit)
	s.completed = 0

	snap, err := s.Store.Load(ctx)
	if errors.Is(err, store.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("saved session unreadable, starting fresh")
		return nil
	}

	ok, err := s.Prompt.Confirm(ctx, "Continue previous session?")
	if err != nil {
		return err
	}
	if !ok {
		if err := s.Store.Clear(ctx); err != nil {
			return fmt.Errorf("clear saved session: %w", err)
		}
		return nil
	}

	s.pool = words.RestorePool(s.Words, snap.Unused, s.Rand)
	st := snap.Stats
	if st.GuessLimit > 0 && st.GuessLimit != s.Limit {
		log.Info().Int("saved", st.GuessLimit).Int("configured", s.Limit).Msg("using guess limit of saved session")
		s.Limit = st.GuessLimit
	}
	st.GuessLimit = s.Limit
	s.stats = &st
	s.completed = snap.CompletedRounds
	log.Debug().Int("rounds", s.completed).Int("unused", s.pool.Len()).Msg("session resumed")
	return nil
}

// rounds plays until the player declines to continue or the pool is empty.
// interrupted is true when input ran out.
func (s *Session) rounds(ctx context.Context) (interrupted bool, err error) {
	for {
		r := game.Round{
			Number:     s.completed + 1,
			Limit:      s.Limit,
			Dictionary: s.Words,
			Picker:     s.pool,
			Input:      s.Prompt,
			Renderer:   s.View,
			Rand:       s.Rand,
		}
		o, err := r.Play(ctx)
		switch {
		case errors.Is(err, words.ErrExhausted):
			s.View.Message("Word list completed!")
			return false, nil
		case errors.Is(err, io.EOF):
			log.Debug().Int("round", r.Number).Msg("input closed mid-round")
			return true, nil
		case err != nil:
			return false, err
		}

		if err := s.stats.Record(o); err != nil {
			return false, err
		}
		s.completed++
		s.View.Score(s.stats.Score)

		if s.pool.Len() == 0 {
			s.View.Message("Word list completed!")
			return false, nil
		}
		more, err := s.Prompt.Confirm(ctx, "Continue?")
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if !more {
			return false, nil
		}
	}
}

func (s *Session) save(ctx context.Context) error {
	ok, err := s.Prompt.Confirm(ctx, "Save current session?")
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil || !ok {
		return err
	}
	if err := s.Store.Save(ctx, s.Snapshot()); err != nil {
		s.View.Message("Session data could not be saved!")
		return fmt.Errorf("save session: %w", err)
	}
	s.View.Message("Session data saved successfully!")
	return nil
}

// Snapshot captures the current session as plain data.
func (s *Session) Snapshot() *store.Snapshot {
	return &store.Snapshot{
		Version:         store.SnapshotVersion,
		Unused:          s.pool.Remaining(),
		Stats:           *s.stats,
		CompletedRounds: s.completed,
	}
}
