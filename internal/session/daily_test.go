package session

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/termle/assets"
	"github.com/robalobadob/wordle/apps/termle/internal/console"
	"github.com/robalobadob/wordle/apps/termle/internal/daily"
	"github.com/robalobadob/wordle/apps/termle/internal/render"
	"github.com/robalobadob/wordle/apps/termle/internal/store"
	"github.com/robalobadob/wordle/apps/termle/internal/words"
)

func newDaily(t *testing.T, input string) (*Daily, *bytes.Buffer, daily.Challenge) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "termle.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(context.Background(), db, assets.Migrations()))

	list, err := words.New([]string{"plane", "spade", "crane"}, allowed, 5)
	require.NoError(t, err)

	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	ch, err := daily.Today(now, "test_salt", list.Answers())
	require.NoError(t, err)

	var out bytes.Buffer
	d := &Daily{
		Words:   list,
		Limit:   6,
		Salt:    "test_salt",
		Player:  "ana",
		Results: daily.NewStore(db),
		View:    render.NewTerminal(&out, render.Options{}),
		Now:     func() time.Time { return now },
	}
	d.Input = console.NewReader(strings.NewReader(input+ch.Secret+"\n"), &out)
	return d, &out, ch
}

func TestDaily_RecordsResultOnce(t *testing.T) {
	ctx := context.Background()
	d, out, ch := newDaily(t, "")

	res, err := d.Run(ctx)
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, 1, res.Guesses)
	assert.Equal(t, "2026-10-19", res.Date)
	assert.Equal(t, ch.WordIndex, res.WordIndex)
	assert.NotEmpty(t, res.RoundID)
	assert.Contains(t, out.String(), "DAILY CHALLENGE 2026-10-19")

	board, err := d.Results.Leaderboard(ctx, "2026-10-19", 0)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "ana", board[0].Player)

	_, err = d.Run(ctx)
	assert.ErrorIs(t, err, ErrAlreadyPlayed)
	assert.Contains(t, out.String(), "ana already played the daily challenge for 2026-10-19.")
}

func TestDaily_InvalidGuessesDoNotCount(t *testing.T) {
	d, out, _ := newDaily(t, "zzzzz\n")

	res, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Guesses)
	assert.Contains(t, out.String(), "Invalid word. Try a new word!")
}
