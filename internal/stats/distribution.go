package stats

import (
	"strconv"
)

// Bar is one row of the guess distribution chart.
type Bar struct {
	Label string // "1".."N", and "N+" for lost rounds
	Count int
	Width int  // cells to fill, 0..maxWidth
	Modal bool // true for the most frequent bucket
}

// Distribution lays out the histogram as bars at most maxWidth cells wide,
// scaled against the most frequent bucket (the first one wins ties). When
// every bucket is empty all widths are zero.
func (s *Statistics) Distribution(maxWidth int) []Bar {
	modal := 1
	for i := 2; i <= s.GuessLimit+1; i++ {
		if s.Histogram[i] > s.Histogram[modal] {
			modal = i
		}
	}
	top := s.Histogram[modal]

	bars := make([]Bar, 0, s.GuessLimit+1)
	for i := 1; i <= s.GuessLimit+1; i++ {
		label := strconv.Itoa(i)
		if i == s.GuessLimit+1 {
			label += "+"
		}
		count := s.Histogram[i]
		width := 0
		if top > 0 && maxWidth > 0 {
			width = (maxWidth*count + top - 1) / top
		}
		bars = append(bars, Bar{Label: label, Count: count, Width: width, Modal: top > 0 && i == modal})
	}
	return bars
}
