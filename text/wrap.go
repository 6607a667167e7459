package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// breakClass is a coarse UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
)

func classify(cluster string) breakClass {
	r, _ := utf8.DecodeRuneInString(cluster)
	switch r {
	case ' ', '\t':
		return breakSpace
	case '(', '[', '{':
		return breakOpen
	case ')', ']', '}', ',', ';', '.':
		return breakClose
	case '-':
		return breakHyphen
	}
	if isCJK(r) {
		return breakIdeographic
	}
	return breakOther
}

func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x3040 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0xFF00 && r <= 0xFFEF)
}

// canBreak reports whether a line may break between prev and cur.
func canBreak(prev, cur breakClass) bool {
	switch {
	case cur == breakSpace, cur == breakClose:
		return false
	case prev == breakSpace, prev == breakHyphen, prev == breakOpen:
		return true
	case prev == breakIdeographic, cur == breakIdeographic:
		return true
	}
	return false
}

// Wrap splits line into pieces no wider than maxWidth as reported by
// measure. It prefers breaking after spaces, hyphens and opening brackets,
// and falls back to grapheme boundaries inside words too long for a line.
// A single grapheme wider than maxWidth gets a piece of its own. Spaces at a
// break are dropped and leading indentation is kept; indentation too wide to
// share a piece with any text stays with the first grapheme after it. Wrap
// never returns an empty slice; with maxWidth <= 0 the line is returned
// whole.
func Wrap(line string, maxWidth float64, measure func(string) float64) []string {
	if maxWidth <= 0 || line == "" || measure(line) <= maxWidth {
		return []string{line}
	}

	// bounds[i] is the byte offset of grapheme i; bounds[n] == len(line).
	var bounds []int
	var classes []breakClass
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		from, _ := g.Positions()
		bounds = append(bounds, from)
		classes = append(classes, classify(g.Str()))
	}
	n := len(classes)
	bounds = append(bounds, len(line))

	fits := func(from, to int) bool {
		return measure(strings.TrimRightFunc(line[bounds[from]:bounds[to]], unicode.IsSpace)) <= maxWidth
	}

	var out []string
	start, lastBreak := 0, -1
	ink := false // a non-space grapheme lies in [start, i)
	for i := start + 1; i <= n; i++ {
		if !fits(start, i) && i-1 > start {
			cut := i - 1
			switch {
			case !ink:
				// Never emit a piece of bare indentation.
				cut = i
			case lastBreak > start:
				cut = lastBreak
			}
			out = append(out, strings.TrimRightFunc(line[bounds[start]:bounds[cut]], unicode.IsSpace))

			start = cut
			for start < n && classes[start] == breakSpace {
				start++
			}
			lastBreak = -1
			ink = false
			i = start
			continue
		}
		if classes[i-1] != breakSpace {
			ink = true
		}
		if ink && i < n && canBreak(classes[i-1], classes[i]) {
			lastBreak = i
		}
	}
	if start < n {
		out = append(out, line[bounds[start]:])
	}
	if len(out) == 0 {
		out = append(out, line)
	}
	return out
}
