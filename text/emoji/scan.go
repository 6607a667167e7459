package emoji

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// Kind tells text spans from emoji spans.
type Kind uint8

const (
	KindText Kind = iota
	KindEmoji
)

func (k Kind) String() string {
	if k == KindEmoji {
		return "emoji"
	}
	return "text"
}

// Span is a piece of a line. Emoji spans hold exactly one grapheme cluster;
// adjacent text graphemes are merged into a single text span.
type Span struct {
	Kind Kind
	Text string

	// Start and End are byte offsets into the scanned string.
	Start, End int

	// Runes holds the code points of an emoji span and is nil for text.
	Runes []rune
}

// Scan splits s into text and emoji spans along grapheme cluster
// boundaries. Concatenating the Text of every span yields s.
func Scan(s string) []Span {
	if s == "" {
		return nil
	}

	var spans []Span
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		start, end := g.Positions()
		runes := g.Runes()

		if _, ok := Classify(runes); ok {
			spans = append(spans, Span{
				Kind:  KindEmoji,
				Text:  s[start:end],
				Start: start,
				End:   end,
				Runes: runes,
			})
			continue
		}

		if n := len(spans); n > 0 && spans[n-1].Kind == KindText {
			spans[n-1].End = end
			spans[n-1].Text = s[spans[n-1].Start:end]
			continue
		}
		spans = append(spans, Span{Kind: KindText, Text: s[start:end], Start: start, End: end})
	}
	return spans
}

// HasEmoji reports whether s contains at least one emoji grapheme.
func HasEmoji(s string) bool {
	for _, sp := range Scan(s) {
		if sp.Kind == KindEmoji {
			return true
		}
	}
	return false
}

// Key returns the asset key for an emoji: its code points in lowercase hex
// joined by "-". U+FE0F is dropped unless the sequence contains a ZWJ, which
// matches the file naming of the Twemoji asset set.
func Key(runes []rune) string {
	keepVS := false
	for _, r := range runes {
		if r == zwj {
			keepVS = true
			break
		}
	}

	var b strings.Builder
	for _, r := range runes {
		if r == vs16 && !keepVS {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.FormatInt(int64(r), 16))
	}
	return b.String()
}
