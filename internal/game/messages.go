package game

import (
	"math/rand"
	"strings"
)

var (
	lostMessages    = []string{"Uh-oh! It was ", ":| ", "... ", "Gotcha! The word is "}
	firstTry        = []string{"GODLIKE!", "SAVAGE!", "Feeling lucky?!"}
	fewTries        = []string{"Excellent!", "Superb!", "Impeccable!", "G3N1U5"}
	someTries       = []string{"Way to go!", "Good job!", "Impressive"}
	lastTryMessages = []string{"Phew!", ":)", "You made it!", "Living dangerously?!"}
)

// EndMessage picks a round-end message for the outcome. A lost round
// reveals the secret in uppercase.
func EndMessage(rng *rand.Rand, o Outcome, limit int) string {
	pick := func(choices []string) string { return choices[rng.Intn(len(choices))] }

	switch {
	case !o.Won:
		return pick(lostMessages) + strings.ToUpper(o.Secret)
	case o.Guesses == 1:
		return pick(firstTry)
	case o.Guesses <= 3:
		return pick(fewTries)
	case o.Guesses <= 5 && o.Guesses < limit:
		return pick(someTries)
	default:
		return pick(lastTryMessages)
	}
}
