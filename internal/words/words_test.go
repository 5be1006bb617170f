package words

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	l, err := Load("", "", 5)
	require.NoError(t, err)

	answers, allowed := l.Stats()
	assert.Greater(t, answers, 100)
	assert.GreaterOrEqual(t, allowed, answers)
	for _, w := range []string{"plane", "spade", "allow", "llama"} {
		assert.True(t, l.IsAnswer(w), w)
	}
	assert.True(t, l.Contains("HELLO"), "allowed-only words are valid guesses")
	assert.False(t, l.IsAnswer("hello"))
	assert.Equal(t, 5, l.Length())
}

func TestLoad_SingleFile(t *testing.T) {
	p := writeFile(t, "words.txt", "Plane\n# comment\n\nspade\nplane\nab\nsp4de\ncrane\nlonger\n")

	for _, tc := range []struct{ answers, allowed string }{{p, ""}, {"", p}} {
		l, err := Load(tc.answers, tc.allowed, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"plane", "spade", "crane"}, l.Answers())
		assert.False(t, l.Contains("longer"))
		assert.False(t, l.Contains("sp4de"))
	}
}

func TestLoad_SeparateAllowedFile(t *testing.T) {
	ans := writeFile(t, "answers.txt", "plane\n")
	all := writeFile(t, "allowed.txt", "fizzy\nspade\n")

	l, err := Load(ans, all, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"plane"}, l.Answers())
	assert.True(t, l.Contains("fizzy"))
	assert.True(t, l.Contains("plane"))
	a, g := l.Stats()
	assert.Equal(t, 1, a)
	assert.Equal(t, 3, g)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), "", 5)
	assert.Error(t, err)

	empty := writeFile(t, "empty.txt", "\n# nothing\nab\n")
	_, err = Load(empty, "", 5)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New([]string{"plane"}, nil, 0)
	assert.Error(t, err)
}

func TestNew_OtherLength(t *testing.T) {
	l, err := New([]string{"cat", "dog", "bird"}, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, l.Answers())
}

func TestPool_PickDrainsWithoutRepeats(t *testing.T) {
	l, err := New([]string{"plane", "spade", "crane", "allow"}, nil, 5)
	require.NoError(t, err)
	p := NewPool(l, rand.New(rand.NewSource(3)))

	var got []string
	for p.Len() > 0 {
		w, err := p.Pick()
		require.NoError(t, err)
		got = append(got, w)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"allow", "crane", "plane", "spade"}, got)

	_, err = p.Pick()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestPool_PickIsSpreadAcrossAnswers(t *testing.T) {
	l, err := New([]string{"plane", "spade", "crane"}, nil, 5)
	require.NoError(t, err)

	firsts := map[string]int{}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		w, err := NewPool(l, rng).Pick()
		require.NoError(t, err)
		firsts[w]++
	}
	assert.Len(t, firsts, 3)
	for w, n := range firsts {
		assert.Greater(t, n, 50, w)
	}
}

func TestRestorePool(t *testing.T) {
	l, err := New([]string{"plane", "spade", "crane"}, []string{"fizzy"}, 5)
	require.NoError(t, err)

	p := RestorePool(l, []string{"SPADE", "fizzy", "gone!", "spade", "crane"}, nil)
	remaining := p.Remaining()
	sort.Strings(remaining)
	assert.Equal(t, []string{"crane", "spade"}, remaining)

	// Remaining returns a copy.
	remaining[0] = "xxxxx"
	assert.NotContains(t, p.Remaining(), "xxxxx")
}
