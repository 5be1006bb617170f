package render

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/termle/internal/game"
)

const introWidth = 100

// Intro prints the title, the rules and a worked example.
func (t *Terminal) Intro(limit, length int) {
	rule := strings.Repeat("-", introWidth)
	e, p, a := game.MarkExact, game.MarkPresent, game.MarkAbsent

	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, t.Row("wordle", []game.Mark{e, p, a, e, a, a}))
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, rule)
	fmt.Fprintf(t.w, "Guess the Word in %d tries.\n", limit)
	fmt.Fprintf(t.w, " - Each guess must be a valid %d-letter word.\n", length)
	fmt.Fprintln(t.w, " - Color of guess tiles will change to show how close the guess is to the word.")
	fmt.Fprintln(t.w, "Example")
	fmt.Fprintln(t.w, "If word is PLANE and guess is SPADE then it appears as")
	fmt.Fprintln(t.w, t.Row("spade", []game.Mark{a, p, e, a, e}))
	fmt.Fprintln(t.w, "A and E are in the right position, P is in word but in the wrong position")
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, "Use command line flag -k to display keyboard")
	fmt.Fprintln(t.w, "Example")
	fmt.Fprintln(t.w, "If word is PLANE and guess is PILLS the keyboard shows")

	var kb game.Alphabet
	marks, _ := game.Evaluate("pills", "plane")
	kb.Update("pills", marks)
	fmt.Fprintln(t.w, t.Alphabet(&kb))
	fmt.Fprintln(t.w, "i and s are removed as they are not present in word")
	fmt.Fprintln(t.w, "l and p are shown in [] as they are present in word")
	fmt.Fprintln(t.w, rule)
}
