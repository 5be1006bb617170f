// termle: Wordle in the terminal.
//
//	termle          play a session (resume / rounds / statistics / save)
//	termle daily    play today's challenge once
//	termle stats    print the statistics of the saved session
//	termle serve    read-only HTTP view of statistics and the daily leaderboard
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/termle/internal/config"
)

var (
	cfg *config.Config

	// Flags
	showKeyboard bool
	answersFile  string
	allowedFile  string
	guessLimit   int
	serveAddr    string
)

var rootCmd = &cobra.Command{
	Use:   "termle",
	Short: "Wordle in the terminal",
	Long: `Guess the hidden word in a limited number of tries.

Each guess is colored per letter: green is the right letter in the right
place, yellow is in the word elsewhere, gray is not in the word.
Sessions can be saved and resumed later.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Level from the process environment until .env has been read.
		setupLogging(os.Getenv("LOG_LEVEL"))
		cfg = config.Load()
		applyFlags(cmd)
		setupLogging(cfg.LogLevel)
		return cfg.Validate()
	},
	RunE: runPlay,
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Play today's challenge (one round, once per day)",
	RunE:  runDaily,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics of the saved session",
	RunE:  runStats,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve saved statistics and the daily leaderboard over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&showKeyboard, "keyboard", "k", false, "Display the alphabet state after every guess")
	rootCmd.PersistentFlags().StringVar(&answersFile, "words", "", "Answers word list (default: embedded, or WORDS_ANSWERS_FILE)")
	rootCmd.PersistentFlags().StringVar(&allowedFile, "allowed", "", "Allowed guesses word list (default: embedded, or WORDS_ALLOWED_FILE)")
	rootCmd.PersistentFlags().IntVar(&guessLimit, "limit", 6, "Guesses per round (or WORDLE_GUESS_LIMIT)")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :PORT)")

	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("keyboard") {
		cfg.ShowAlphabet = showKeyboard
	}
	if flags.Changed("words") {
		cfg.AnswersPath = answersFile
	}
	if flags.Changed("allowed") {
		cfg.AllowedPath = allowedFile
	}
	if flags.Changed("limit") {
		cfg.GuessLimit = guessLimit
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		stop()
		os.Exit(130)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("termle exited")
	}
}
