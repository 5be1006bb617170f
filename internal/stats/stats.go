// internal/stats/stats.go
//
// Session statistics: guess distribution, streaks and score across rounds.
//
// Histogram buckets run from 1 to GuessLimit+1; bucket GuessLimit+1 counts
// lost rounds. Statistics is plain data so it can be embedded in a session
// snapshot and serialized as JSON.

package stats

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/termle/internal/game"
)

// ErrNoRounds is returned by Summarize before any round was recorded.
var ErrNoRounds = errors.New("no rounds played yet")

// Statistics aggregates round outcomes for a session.
type Statistics struct {
	GuessLimit    int         `json:"guessLimit"`
	Histogram     map[int]int `json:"histogram"`
	CurrentStreak int         `json:"currentStreak"`
	BestStreak    int         `json:"bestStreak"`
	Score         int         `json:"score"`
}

// Summary is the read-only view printed at the end of a session.
type Summary struct {
	Played        int         `json:"played"`
	Wins          int         `json:"wins"`
	WinPercentage int         `json:"winPercentage"`
	CurrentStreak int         `json:"currentStreak"`
	BestStreak    int         `json:"bestStreak"`
	Score         int         `json:"score"`
	Histogram     map[int]int `json:"histogram"`
}

// New returns empty statistics for rounds of at most guessLimit guesses.
func New(guessLimit int) *Statistics {
	s := &Statistics{GuessLimit: guessLimit}
	s.ensure()
	return s
}

// ensure fills in missing buckets, e.g. after decoding an older snapshot.
func (s *Statistics) ensure() {
	if s.Histogram == nil {
		s.Histogram = make(map[int]int, s.GuessLimit+1)
	}
	for i := 1; i <= s.GuessLimit+1; i++ {
		if _, ok := s.Histogram[i]; !ok {
			s.Histogram[i] = 0
		}
	}
}

// Record folds one finished round into the statistics.
func (s *Statistics) Record(o game.Outcome) error {
	s.ensure()
	if !o.Won {
		s.Histogram[s.GuessLimit+1]++
		s.CurrentStreak = 0
		return nil
	}
	if o.Guesses < 1 || o.Guesses > s.GuessLimit {
		return fmt.Errorf("stats: won round with %d guesses outside 1..%d", o.Guesses, s.GuessLimit)
	}
	s.Histogram[o.Guesses]++
	s.CurrentStreak++
	s.BestStreak = max(s.BestStreak, s.CurrentStreak)
	s.Score++
	return nil
}

// Played is the number of recorded rounds.
func (s *Statistics) Played() int {
	n := 0
	for i := 1; i <= s.GuessLimit+1; i++ {
		n += s.Histogram[i]
	}
	return n
}

// Wins is the number of recorded rounds that were won.
func (s *Statistics) Wins() int {
	n := 0
	for i := 1; i <= s.GuessLimit; i++ {
		n += s.Histogram[i]
	}
	return n
}

// Summarize reports played rounds, win percentage (rounded up), streaks and
// a copy of the histogram. It returns ErrNoRounds when nothing was played.
func (s *Statistics) Summarize() (Summary, error) {
	played := s.Played()
	if played == 0 {
		return Summary{}, ErrNoRounds
	}
	wins := s.Wins()

	hist := make(map[int]int, s.GuessLimit+1)
	for i := 1; i <= s.GuessLimit+1; i++ {
		hist[i] = s.Histogram[i]
	}
	return Summary{
		Played:        played,
		Wins:          wins,
		WinPercentage: (100*wins + played - 1) / played,
		CurrentStreak: s.CurrentStreak,
		BestStreak:    s.BestStreak,
		Score:         s.Score,
		Histogram:     hist,
	}, nil
}
