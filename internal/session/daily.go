package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termle/internal/daily"
	"github.com/robalobadob/wordle/apps/termle/internal/game"
	"github.com/robalobadob/wordle/apps/termle/internal/words"
)

// ErrAlreadyPlayed is returned when the player has a result for today.
var ErrAlreadyPlayed = errors.New("daily challenge already played")

// Daily plays the one-round challenge of the day. It does not touch the
// regular session pool or statistics.
type Daily struct {
	Words   *words.List
	Limit   int
	Salt    string
	Player  string
	Results *daily.Store
	Input   game.Input
	View    View
	Rand    *rand.Rand
	Now     func() time.Time // nil means time.Now
}

func (d *Daily) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Run plays today's challenge and records the result.
func (d *Daily) Run(ctx context.Context) (daily.Result, error) {
	ch, err := daily.Today(d.now(), d.Salt, d.Words.Answers())
	if err != nil {
		return daily.Result{}, err
	}

	played, err := d.Results.AlreadyPlayed(ctx, d.Player, ch.Date)
	if err != nil {
		return daily.Result{}, fmt.Errorf("check daily result: %w", err)
	}
	if played {
		d.View.Message(fmt.Sprintf("%s already played the daily challenge for %s.", d.Player, ch.Date))
		return daily.Result{}, ErrAlreadyPlayed
	}

	d.View.Message("DAILY CHALLENGE " + ch.Date)
	start := d.now()
	r := game.Round{
		Number:     1,
		Limit:      d.Limit,
		Dictionary: d.Words,
		Picker:     ch,
		Input:      d.Input,
		Renderer:   d.View,
		Rand:       d.Rand,
	}
	o, err := r.Play(ctx)
	if err != nil {
		return daily.Result{}, err
	}

	res := daily.Result{
		RoundID:   o.ID,
		Player:    d.Player,
		Date:      ch.Date,
		WordIndex: ch.WordIndex,
		Guesses:   o.Guesses,
		Won:       o.Won,
		ElapsedMs: int(d.now().Sub(start).Milliseconds()),
	}
	if err := d.Results.InsertResult(ctx, res); err != nil {
		return res, err
	}
	log.Info().Str("player", res.Player).Str("date", res.Date).Bool("won", res.Won).Int("guesses", res.Guesses).Msg("daily result stored")
	return res, nil
}
