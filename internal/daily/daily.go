package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Challenge is the daily puzzle for one date.
type Challenge struct {
	Date      string
	WordIndex int
	Secret    string
}

// Today selects the challenge for the date of now.
func Today(now time.Time, salt string, answers []string) (Challenge, error) {
	if len(answers) == 0 {
		return Challenge{}, errors.New("daily: no answers to choose from")
	}
	idx := WordIndex(now, salt, len(answers))
	return Challenge{Date: DateKey(now), WordIndex: idx, Secret: answers[idx]}, nil
}

// Pick hands out the day's secret; a challenge is a single-word picker.
func (c Challenge) Pick() (string, error) {
	return c.Secret, nil
}
