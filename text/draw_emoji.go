package text

import (
	"context"
	"image"
	"math"

	"github.com/codyrobertson/codeshot/resolver"
	"github.com/codyrobertson/codeshot/text/emoji"
)

const (
	// EmojiScale is the emoji box edge relative to the font size.
	EmojiScale = 0.8

	// emojiCenter is the height above the baseline, relative to the font
	// size, that emoji boxes are centered on. It sits halfway up the
	// cap height of the Go fonts.
	emojiCenter = 0.35
)

// GlyphResolver turns an emoji grapheme into an image.
type GlyphResolver interface {
	Resolve(ctx context.Context, grapheme string) *resolver.Glyph
}

// EmojiRenderer draws lines that mix text and emoji. Text goes through the
// Surface; each emoji occupies a square box of EmojiSize(fontSize), whether
// its image resolved or not.
type EmojiRenderer struct {
	glyphs GlyphResolver
}

// NewEmojiRenderer returns a renderer resolving emoji through r. With a nil
// r every emoji is drawn as fallback text.
func NewEmojiRenderer(r GlyphResolver) *EmojiRenderer {
	return &EmojiRenderer{glyphs: r}
}

// EmojiSize returns the emoji box edge for a font size.
func EmojiSize(fontSize float64) float64 {
	return fontSize * EmojiScale
}

// Measure returns the width Draw would advance for text. It never resolves
// emoji.
func (e *EmojiRenderer) Measure(ctx context.Context, s Surface, text string, fontSize float64) float64 {
	var w float64
	for _, sp := range emoji.Scan(text) {
		if sp.Kind == emoji.KindEmoji {
			w += EmojiSize(fontSize)
			continue
		}
		w += s.MeasureString(sp.Text)
	}
	return w
}

// Draw paints text with its baseline origin at (x, y) and returns the
// advance, which equals Measure for the same arguments.
func (e *EmojiRenderer) Draw(ctx context.Context, s Surface, text string, x, y, fontSize float64) float64 {
	var w float64
	box := EmojiSize(fontSize)

	for _, sp := range emoji.Scan(text) {
		if sp.Kind == emoji.KindText {
			w += s.DrawString(sp.Text, x+w, y)
			continue
		}

		var g *resolver.Glyph
		if e.glyphs != nil {
			g = e.glyphs.Resolve(ctx, sp.Text)
		}
		if g != nil && g.Image != nil {
			top := y - emojiCenter*fontSize - box/2
			s.DrawImage(g.Image, image.Rect(
				round(x+w), round(top),
				round(x+w+box), round(top+box),
			))
		} else {
			s.DrawString(sp.Text, x+w, y)
		}
		w += box
	}
	return w
}

func round(v float64) int {
	return int(math.Round(v))
}
