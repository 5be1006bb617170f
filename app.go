package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/termle/assets"
	"github.com/robalobadob/wordle/apps/termle/internal/console"
	"github.com/robalobadob/wordle/apps/termle/internal/daily"
	"github.com/robalobadob/wordle/apps/termle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/termle/internal/render"
	"github.com/robalobadob/wordle/apps/termle/internal/session"
	"github.com/robalobadob/wordle/apps/termle/internal/stats"
	"github.com/robalobadob/wordle/apps/termle/internal/store"
	"github.com/robalobadob/wordle/apps/termle/internal/words"
)

// logOut receives log output; stdout is reserved for the board.
var logOut io.Writer = os.Stderr

// stdin is the player's input.
var stdin io.Reader = os.Stdin

// setupLogging sends human-readable logs to logOut. An empty or unknown
// level means warn.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logOut, TimeFormat: time.Kitchen})
}

// openStore returns the session store and, when WORDLE_DB is set, the
// migrated database behind it. The caller closes db if non-nil.
func openStore(ctx context.Context) (store.Store, *sql.DB, error) {
	if cfg.DBPath == "" {
		log.Debug().Msg("WORDLE_DB empty, session kept in memory")
		return store.NewMemoryStore(), nil, nil
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err := store.Migrate(ctx, db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return store.NewSQLiteStore(db), db, nil
}

func loadWords() (*words.List, error) {
	list, err := words.Load(cfg.AnswersPath, cfg.AllowedPath, cfg.WordLength)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	return list, nil
}

func newTerminal() *render.Terminal {
	color := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	return render.NewTerminal(os.Stdout, render.Options{ShowAlphabet: cfg.ShowAlphabet, Color: color})
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	list, err := loadWords()
	if err != nil {
		return err
	}
	st, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	s := &session.Session{
		Words:  list,
		Limit:  cfg.GuessLimit,
		Store:  st,
		Prompt: console.NewReader(stdin, os.Stdout),
		View:   newTerminal(),
		Rand:   newRand(),
	}
	return s.Run(ctx)
}

func runDaily(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	list, err := loadWords()
	if err != nil {
		return err
	}
	_, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("daily challenge needs a database, set WORDLE_DB")
	}
	defer db.Close()

	d := &session.Daily{
		Words:   list,
		Limit:   cfg.GuessLimit,
		Salt:    cfg.DailySalt,
		Player:  cfg.Player,
		Results: daily.NewStore(db),
		Input:   console.NewReader(stdin, os.Stdout),
		View:    newTerminal(),
		Rand:    newRand(),
	}
	_, err = d.Run(ctx)
	if errors.Is(err, session.ErrAlreadyPlayed) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	snap, err := st.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNoSnapshot):
		newTerminal().Statistics(stats.New(cfg.GuessLimit))
		return nil
	case err != nil:
		return err
	}
	newTerminal().Statistics(&snap.Stats)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	list, err := loadWords()
	if err != nil {
		return err
	}
	st, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	opts := httpserver.Options{Sessions: st, Words: list, ClientOrigin: cfg.ClientOrigin}
	if db != nil {
		defer db.Close()
		opts.Results = daily.NewStore(db)
	}

	addr := serveAddr
	if addr == "" {
		addr = ":" + cfg.Port
	}
	return httpserver.New(opts).Start(ctx, addr)
}
