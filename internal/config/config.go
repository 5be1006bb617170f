// internal/config/config.go
//
// Runtime configuration read from the environment (and a .env file when present).
//
// Environment variables:
//   WORDS_ANSWERS_FILE   answers word list (default: embedded list)
//   WORDS_ALLOWED_FILE   extra allowed guesses (default: embedded list)
//   WORDLE_WORD_LENGTH   letters per word (default 5)
//   WORDLE_GUESS_LIMIT   guesses per round (default 6)
//   WORDLE_DB            SQLite file for sessions and daily results; empty keeps everything in memory
//   WORDLE_PLAYER        name recorded with daily results (default $USER)
//   DAILY_SALT           salt for the daily word selection
//   LOG_LEVEL            zerolog level (default warn)
//   PORT                 port for `termle serve` (default 5175)
//   CLIENT_ORIGIN        origin allowed by CORS on `termle serve` (default http://localhost:5173)

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AnswersPath  string
	AllowedPath  string
	WordLength   int
	GuessLimit   int
	DBPath       string
	Player       string
	DailySalt    string
	LogLevel     string
	Port         string
	ClientOrigin string
	ShowAlphabet bool
}

// Load reads .env (if any) and the environment. The result is not validated;
// call Validate once flags have been applied.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, reading from environment")
	}

	cfg := &Config{
		AnswersPath:  os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedPath:  os.Getenv("WORDS_ALLOWED_FILE"),
		WordLength:   getEnvAsInt("WORDLE_WORD_LENGTH", 5),
		GuessLimit:   getEnvAsInt("WORDLE_GUESS_LIMIT", 6),
		DBPath:       getEnvRaw("WORDLE_DB", "./data/termle.db"),
		Player:       getEnv("WORDLE_PLAYER", getEnv("USER", "player")),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
	return cfg
}

// Validate checks the values flags may have overridden as well.
func (c *Config) Validate() error {
	if c.WordLength <= 0 {
		return fmt.Errorf("word length must be positive, got %d", c.WordLength)
	}
	if c.GuessLimit <= 0 {
		return fmt.Errorf("guess limit must be positive, got %d", c.GuessLimit)
	}
	return nil
}

// getEnv returns the value of key or defaultValue if unset/empty.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRaw is like getEnv but keeps an explicitly empty value.
func getEnvRaw(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Str("value", value).Msg("not an integer, using default")
	}
	return defaultValue
}
