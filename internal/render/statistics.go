package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/termle/internal/stats"
)

const (
	colWidth   = 10
	tableWidth = colWidth*3 + 5
)

func center(s string, width int, fill string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s, lipgloss.WithWhitespaceChars(fill))
}

// Statistics prints the session summary and guess distribution, or a short
// note when no round has been played.
func (t *Terminal) Statistics(st *stats.Statistics) {
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, center("GAME STATISTICS", tableWidth, "*"))

	sum, err := st.Summarize()
	if errors.Is(err, stats.ErrNoRounds) {
		fmt.Fprintln(t.w, center("No rounds played yet.", tableWidth, " "))
		fmt.Fprintln(t.w, strings.Repeat("*", tableWidth))
		return
	}

	fmt.Fprintln(t.w, center("Played", colWidth, " ")+center("Win %", colWidth, " ")+center("Max Streak", colWidth, " "))
	fmt.Fprintln(t.w, center(strconv.Itoa(sum.Played), colWidth, " ")+
		center(strconv.Itoa(sum.WinPercentage), colWidth, " ")+
		center(strconv.Itoa(sum.BestStreak), colWidth, " "))

	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, center("Guess Distribution", tableWidth, " "))
	labelWidth := len(strconv.Itoa(st.GuessLimit+1)) + 2
	for _, bar := range st.Distribution(tableWidth - 2*labelWidth) {
		fmt.Fprintln(t.w, fmt.Sprintf("%-*s", labelWidth, bar.Label)+t.bar(bar)+strconv.Itoa(bar.Count))
	}
	fmt.Fprintln(t.w, strings.Repeat("*", tableWidth))
}

func (t *Terminal) bar(b stats.Bar) string {
	if !t.opts.Color {
		return strings.Repeat("#", b.Width) + " "
	}
	if b.Width == 0 {
		return ""
	}
	style := t.absent
	if b.Modal {
		style = t.exact
	}
	return style.Render(strings.Repeat(" ", b.Width))
}
