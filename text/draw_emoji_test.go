package text

import (
	"context"
	"image"
	"image/color"
	"testing"
	"unicode/utf8"

	"github.com/codyrobertson/codeshot/resolver"
)

// recorder is a Surface that measures every rune as 10px and records calls.
type recorder struct {
	strings []string
	xs      []float64
	images  []image.Rectangle
}

func (r *recorder) MeasureString(s string) float64 {
	return 10 * float64(utf8.RuneCountInString(s))
}

func (r *recorder) DrawString(s string, x, y float64) float64 {
	r.strings = append(r.strings, s)
	r.xs = append(r.xs, x)
	return r.MeasureString(s)
}

func (r *recorder) DrawImage(img image.Image, rect image.Rectangle) {
	r.images = append(r.images, rect)
}

// stubResolver resolves every emoji except those in missing.
type stubResolver struct {
	missing map[string]bool
	calls   int
}

func (s *stubResolver) Resolve(_ context.Context, grapheme string) *resolver.Glyph {
	s.calls++
	if s.missing[grapheme] {
		return &resolver.Glyph{Text: grapheme}
	}
	return &resolver.Glyph{Text: grapheme, Image: image.NewUniform(color.White)}
}

func TestEmojiRendererMeasureMatchesDraw(t *testing.T) {
	tests := []string{
		"",
		"plain text",
		"🚀",
		"ship it 🚀 now",
		"👨‍👩‍👧🇺🇸1️⃣",
		"❤️ and ❤",
		"missing 🫠 glyph",
	}
	for _, line := range tests {
		for _, size := range []float64{12, 16, 33.5} {
			res := &stubResolver{missing: map[string]bool{"🫠": true}}
			e := NewEmojiRenderer(res)

			want := e.Measure(context.Background(), &recorder{}, line, size)
			got := e.Draw(context.Background(), &recorder{}, line, 5, 20, size)
			if got != want {
				t.Errorf("Draw(%q, %v) advance = %v, Measure = %v", line, size, got, want)
			}
		}
	}
}

func TestEmojiRendererPlainMatchesSurface(t *testing.T) {
	e := NewEmojiRenderer(nil)
	s := &recorder{}
	line := "for i := range 10 {"
	if got, want := e.Measure(context.Background(), s, line, 16), s.MeasureString(line); got != want {
		t.Errorf("Measure(%q) = %v, want %v", line, got, want)
	}
}

func TestEmojiRendererEmpty(t *testing.T) {
	res := &stubResolver{}
	e := NewEmojiRenderer(res)
	s := &recorder{}
	if w := e.Draw(context.Background(), s, "", 0, 0, 16); w != 0 {
		t.Errorf("Draw(\"\") = %v, want 0", w)
	}
	if len(s.strings)+len(s.images) != 0 || res.calls != 0 {
		t.Errorf("Draw(\"\") made %d string, %d image and %d resolve calls",
			len(s.strings), len(s.images), res.calls)
	}
}

func TestEmojiRendererPlacement(t *testing.T) {
	e := NewEmojiRenderer(&stubResolver{})
	s := &recorder{}
	e.Draw(context.Background(), s, "ab🚀c", 100, 50, 20)

	if len(s.images) != 1 {
		t.Fatalf("drew %d images, want 1", len(s.images))
	}
	// "ab" is 20px wide; the box is 16px and centered 7px above the baseline.
	want := image.Rect(120, 35, 136, 51)
	if s.images[0] != want {
		t.Errorf("emoji rect = %v, want %v", s.images[0], want)
	}
	if len(s.xs) != 2 || s.xs[0] != 100 || s.xs[1] != 136 {
		t.Errorf("text drawn at %v, want [100 136]", s.xs)
	}
}

func TestEmojiRendererFallbackDrawsText(t *testing.T) {
	e := NewEmojiRenderer(&stubResolver{missing: map[string]bool{"🫠": true}})
	s := &recorder{}
	w := e.Draw(context.Background(), s, "🫠x", 0, 10, 10)

	if len(s.images) != 0 {
		t.Errorf("drew %d images for a fallback glyph", len(s.images))
	}
	if len(s.strings) != 2 || s.strings[0] != "🫠" || s.xs[1] != 8 {
		t.Errorf("strings %q at %v, want fallback at 0 and x at 8", s.strings, s.xs)
	}
	if w != 18 {
		t.Errorf("advance = %v, want 18", w)
	}
}
