package words

import (
	"errors"
	"math/rand"
	"time"
)

// ErrExhausted is returned by Pick once every answer has been used.
var ErrExhausted = errors.New("word list completed")

// Pool is the set of answers not yet used as a secret in this session.
// Words leave the pool when picked and are never put back.
type Pool struct {
	unused []string
	rng    *rand.Rand
}

// NewPool returns a pool holding every answer of l. A nil rng is time-seeded.
func NewPool(l *List, rng *rand.Rand) *Pool {
	return &Pool{unused: l.Answers(), rng: seeded(rng)}
}

// RestorePool rebuilds a pool from a saved list of remaining words. Words
// that are no longer answers of l are dropped, as are duplicates.
func RestorePool(l *List, remaining []string, rng *rand.Rand) *Pool {
	p := &Pool{rng: seeded(rng)}
	seen := make(map[string]struct{}, len(remaining))
	for _, w := range remaining {
		w = normalize(w)
		if _, dup := seen[w]; dup || !l.IsAnswer(w) {
			continue
		}
		seen[w] = struct{}{}
		p.unused = append(p.unused, w)
	}
	return p
}

// Pick removes and returns a uniformly random unused answer.
func (p *Pool) Pick() (string, error) {
	n := len(p.unused)
	if n == 0 {
		return "", ErrExhausted
	}
	i := p.rng.Intn(n)
	w := p.unused[i]
	p.unused[i] = p.unused[n-1]
	p.unused = p.unused[:n-1]
	return w, nil
}

// Len is the number of unused answers.
func (p *Pool) Len() int { return len(p.unused) }

// Remaining returns a copy of the unused answers, for snapshots.
func (p *Pool) Remaining() []string { return append([]string(nil), p.unused...) }

func seeded(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
