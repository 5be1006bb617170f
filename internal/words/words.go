// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to the embedded defaults.
//   - Maintain a lookup set for valid guesses (answers ∪ allowed).
//
// Word Lists:
//   - "answers": candidate secrets, in file order, deduplicated.
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//   1. If both paths are set, answers come from the first and allowed guesses from the second.
//   2. If only one path is set, that file is used for both.
//   3. If neither is set, the embedded assets/answers.txt and assets/allowed.txt are used.
//
// Constraints:
//   • Words must be `length` alphabetic letters (a–z); other lines are skipped.
//   • Lists are normalized to lowercase.
//   • Blank lines and lines starting with '#' are ignored.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/termle/assets"
)

// ErrEmpty is returned when no usable answer survives loading.
var ErrEmpty = errors.New("words: answers list is empty")

// List is an immutable set of answers plus allowed guesses of one length.
type List struct {
	length    int
	answers   []string
	answerSet map[string]struct{}
	allowed   map[string]struct{}
}

// Load reads the answer and allowed lists described in the package comment.
func Load(answersPath, allowedPath string, length int) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case answersPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed: %w", err)
		}
	}

	l, err := New(ansList, allowList, length)
	if err != nil {
		return nil, err
	}
	a, g := l.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Int("length", length).Msg("word lists loaded")
	return l, nil
}

// New builds a List from raw words. Words of the wrong length or with
// non-letters are dropped; answers are deduplicated keeping first occurrence.
func New(answers, allowed []string, length int) (*List, error) {
	if length <= 0 {
		return nil, fmt.Errorf("words: invalid word length %d", length)
	}
	l := &List{
		length:    length,
		answerSet: make(map[string]struct{}, len(answers)),
		allowed:   make(map[string]struct{}, len(answers)+len(allowed)),
	}

	for _, w := range answers {
		w = normalize(w)
		if !l.valid(w) {
			continue
		}
		if _, dup := l.answerSet[w]; dup {
			continue
		}
		l.answers = append(l.answers, w)
		l.answerSet[w] = struct{}{}
		l.allowed[w] = struct{}{}
	}
	if len(l.answers) == 0 {
		return nil, ErrEmpty
	}

	for _, w := range allowed {
		if w = normalize(w); l.valid(w) {
			l.allowed[w] = struct{}{}
		}
	}
	return l, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return out, nil
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }

func (l *List) valid(w string) bool { return len(w) == l.length && isAlpha(w) }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is a valid guess (answers ∪ allowed).
func (l *List) Contains(w string) bool {
	_, ok := l.allowed[normalize(w)]
	return ok
}

// IsAnswer reports whether w is one of the answers.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answerSet[normalize(w)]
	return ok
}

// Answers returns a copy of the answers in load order.
func (l *List) Answers() []string { return append([]string(nil), l.answers...) }

// Length is the word length every entry shares.
func (l *List) Length() int { return l.length }

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}
