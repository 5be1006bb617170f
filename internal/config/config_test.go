package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE", "WORDLE_WORD_LENGTH",
		"WORDLE_GUESS_LIMIT", "WORDLE_PLAYER", "DAILY_SALT", "LOG_LEVEL", "PORT", "CLIENT_ORIGIN"} {
		t.Setenv(k, "")
	}
	t.Setenv("USER", "ana")

	cfg := Load()
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, 6, cfg.GuessLimit)
	assert.Equal(t, "ana", cfg.Player)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "local_dev_salt", cfg.DailySalt)
	assert.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WORDLE_GUESS_LIMIT", "8")
	t.Setenv("WORDLE_WORD_LENGTH", "not-a-number")
	t.Setenv("WORDLE_DB", "")
	t.Setenv("WORDLE_PLAYER", "ben")

	cfg := Load()
	assert.Equal(t, 8, cfg.GuessLimit)
	assert.Equal(t, 5, cfg.WordLength)
	assert.Equal(t, "", cfg.DBPath, "an explicitly empty WORDLE_DB selects the memory store")
	assert.Equal(t, "ben", cfg.Player)
}

func TestValidate(t *testing.T) {
	t.Setenv("WORDLE_GUESS_LIMIT", "0")
	cfg := Load()
	assert.Equal(t, 0, cfg.GuessLimit, "Load leaves validation to the caller so flags can still fix it")
	assert.Error(t, cfg.Validate())

	cfg.GuessLimit = 6
	cfg.WordLength = 5
	assert.NoError(t, cfg.Validate())
	cfg.WordLength = -1
	assert.Error(t, cfg.Validate())
}
