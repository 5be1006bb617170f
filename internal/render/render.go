// internal/render/render.go
//
// Terminal presentation for the game.
// Responsibilities:
//   - Draw guesses as colored tiles (exact / present / absent).
//   - Draw the alphabet tracker when enabled (-k).
//   - Print intro, rejection messages, round results, score and statistics.
//
// Color is optional: without it tiles fall back to bracket markers so the
// board stays readable when output is piped.

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/termle/internal/game"
)

// Palette
var (
	exactColor   = lipgloss.Color("#6aaa64")
	presentColor = lipgloss.Color("#c9b458")
	absentColor  = lipgloss.Color("#787c7e")
	tileText     = lipgloss.Color("#ffffff")
)

// Options controls optional parts of the output.
type Options struct {
	ShowAlphabet bool // draw the alphabet tracker after each row
	Color        bool // use colored tiles instead of bracket markers
}

// Terminal renders game events to a writer. It implements game.Renderer.
type Terminal struct {
	w    io.Writer
	opts Options

	exact   lipgloss.Style
	present lipgloss.Style
	absent  lipgloss.Style
	bold    lipgloss.Style
}

func NewTerminal(w io.Writer, opts Options) *Terminal {
	r := lipgloss.NewRenderer(w)
	tile := r.NewStyle().Bold(true).Foreground(tileText)
	return &Terminal{
		w:       w,
		opts:    opts,
		exact:   tile.Background(exactColor),
		present: tile.Background(presentColor),
		absent:  tile.Background(absentColor),
		bold:    r.NewStyle().Bold(true),
	}
}

// tile draws one letter for a mark.
func (t *Terminal) tile(letter rune, m game.Mark) string {
	l := strings.ToUpper(string(letter))
	if !t.opts.Color {
		switch m {
		case game.MarkExact:
			return "[" + l + "]"
		case game.MarkPresent:
			return "(" + l + ")"
		default:
			return " " + l + " "
		}
	}
	switch m {
	case game.MarkExact:
		return t.exact.Render(" " + l + " ")
	case game.MarkPresent:
		return t.present.Render(" " + l + " ")
	default:
		return t.absent.Render(" " + l + " ")
	}
}

// Row draws a word as tiles.
func (t *Terminal) Row(word string, marks []game.Mark) string {
	var b strings.Builder
	for i, r := range []rune(word) {
		m := game.MarkAbsent
		if i < len(marks) {
			m = marks[i]
		}
		b.WriteString(t.tile(r, m))
	}
	return b.String()
}

// Alphabet draws a–z: unknown letters plain, present letters in brackets,
// absent letters blanked out.
func (t *Terminal) Alphabet(a *game.Alphabet) string {
	var b strings.Builder
	for i := 0; i < len(a); i++ {
		c := string(rune('a' + i))
		switch a[i] {
		case game.LetterPresent:
			b.WriteString("[" + c + "]")
		case game.LetterAbsent:
			b.WriteString("   ")
		case game.LetterUnknown:
			b.WriteString(" " + c + " ")
		}
	}
	return b.String()
}

func (t *Terminal) line(row string, a *game.Alphabet) {
	if t.opts.ShowAlphabet && a != nil {
		fmt.Fprintf(t.w, "%s  %s\n", row, t.Alphabet(a))
		return
	}
	fmt.Fprintln(t.w, row)
}

// strong emphasizes s when color is on.
func (t *Terminal) strong(s string) string {
	if !t.opts.Color {
		return s
	}
	return t.bold.Render(s)
}

func blankRow(length int) (string, []game.Mark) {
	marks := make([]game.Mark, length)
	for i := range marks {
		marks[i] = game.MarkAbsent
	}
	return strings.Repeat("-", length), marks
}

// RoundStart prints the round header and an empty row.
func (t *Terminal) RoundStart(number, length int) {
	fmt.Fprintf(t.w, "\n%s\n", t.strong(fmt.Sprintf("ROUND #%d", number)))
	word, marks := blankRow(length)
	var empty game.Alphabet
	t.line(t.Row(word, marks), &empty)
}

// Board prints an evaluated guess.
func (t *Terminal) Board(guess string, marks []game.Mark, a *game.Alphabet) {
	t.line(t.Row(guess, marks), a)
}

// Reject explains why a guess was not accepted.
func (t *Terminal) Reject(err error, a *game.Alphabet) {
	switch {
	case errors.Is(err, game.ErrNotInWordList):
		fmt.Fprintln(t.w, "Invalid word. Try a new word!")
	case errors.Is(err, game.ErrAlreadyGuessed):
		fmt.Fprintln(t.w, "Already guessed. Try a new word!")
	default:
		fmt.Fprintln(t.w, err.Error())
	}
	if t.opts.ShowAlphabet && a != nil {
		fmt.Fprintln(t.w, t.Alphabet(a))
	}
}

// Finish prints the round-end message.
func (t *Terminal) Finish(o game.Outcome, message string) {
	fmt.Fprintln(t.w, t.strong(message))
}

// Score prints the running session score.
func (t *Terminal) Score(score int) {
	fmt.Fprintf(t.w, "\nSCORE: %d\n", score)
}

// Message prints a free-text line.
func (t *Terminal) Message(msg string) {
	fmt.Fprintln(t.w, msg)
}
