package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/termle/internal/game"
)

func win(n int) game.Outcome { return game.Outcome{Won: true, Guesses: n, Secret: "plane"} }
func loss(limit int) game.Outcome {
	return game.Outcome{Won: false, Guesses: limit, Secret: "plane"}
}

func TestRecord_WinThenLoss(t *testing.T) {
	s := New(6)
	require.NoError(t, s.Record(win(3)))
	require.NoError(t, s.Record(loss(6)))

	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 1, s.BestStreak)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 1, s.Histogram[3])
	assert.Equal(t, 1, s.Histogram[7])

	sum, err := s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Played)
	assert.Equal(t, 1, sum.Wins)
	assert.Equal(t, 50, sum.WinPercentage)
	assert.Equal(t, 1, sum.BestStreak)
}

func TestRecord_Streaks(t *testing.T) {
	s := New(6)
	for _, o := range []game.Outcome{win(1), win(2), win(6), loss(6), win(4), win(5)} {
		require.NoError(t, s.Record(o))
	}
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, 3, s.BestStreak)
	assert.Equal(t, 5, s.Score)
}

func TestRecord_OutOfRange(t *testing.T) {
	s := New(6)
	assert.Error(t, s.Record(win(0)))
	assert.Error(t, s.Record(win(7)))
	assert.Equal(t, 0, s.Played())
}

func TestSummarize_NoRounds(t *testing.T) {
	_, err := New(6).Summarize()
	assert.ErrorIs(t, err, ErrNoRounds)
}

func TestSummarize_WinPercentageRoundsUp(t *testing.T) {
	tests := []struct {
		wins, losses int
		want         int
	}{
		{1, 2, 34},
		{2, 1, 67},
		{1, 0, 100},
		{0, 3, 0},
		{1, 99, 1},
	}
	for _, tt := range tests {
		s := New(6)
		for i := 0; i < tt.wins; i++ {
			require.NoError(t, s.Record(win(2)))
		}
		for i := 0; i < tt.losses; i++ {
			require.NoError(t, s.Record(loss(6)))
		}
		sum, err := s.Summarize()
		require.NoError(t, err)
		assert.Equal(t, tt.want, sum.WinPercentage, "%d wins / %d losses", tt.wins, tt.losses)
	}
}

func TestSummarize_HistogramIsCopy(t *testing.T) {
	s := New(6)
	require.NoError(t, s.Record(win(2)))
	sum, err := s.Summarize()
	require.NoError(t, err)

	sum.Histogram[2] = 99
	assert.Equal(t, 1, s.Histogram[2])
}

func TestStatistics_DecodedWithoutHistogram(t *testing.T) {
	var s Statistics
	require.NoError(t, json.Unmarshal([]byte(`{"guessLimit":6,"bestStreak":4}`), &s))
	require.NoError(t, s.Record(win(1)))
	assert.Equal(t, 1, s.Played())
	assert.Equal(t, 4, s.BestStreak)
	assert.Len(t, s.Histogram, 7)
}

func TestDistribution(t *testing.T) {
	s := New(6)
	for _, o := range []game.Outcome{win(3), win(3), win(3), win(3), win(4), loss(6)} {
		require.NoError(t, s.Record(o))
	}

	bars := s.Distribution(20)
	require.Len(t, bars, 7)
	assert.Equal(t, Bar{Label: "3", Count: 4, Width: 20, Modal: true}, bars[2])
	assert.Equal(t, Bar{Label: "4", Count: 1, Width: 5}, bars[3])
	assert.Equal(t, Bar{Label: "7+", Count: 1, Width: 5}, bars[6])
	assert.Equal(t, Bar{Label: "1"}, bars[0])
}

func TestDistribution_Empty(t *testing.T) {
	for _, b := range New(6).Distribution(20) {
		assert.Zero(t, b.Width)
		assert.False(t, b.Modal)
	}
}
