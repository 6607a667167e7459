package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// cluster is a run of text drawn at one pen position.
type cluster struct {
	text    string
	x       float64
	advance float64
}

// shaper positions text with HarfBuzz. It owns a font.Face, which is not
// safe for concurrent use, so each Face gets its own shaper.
type shaper struct {
	lib  *Library
	face *font.Face
	size fixed.Int26_6
}

func newShaper(lib *Library, f *font.Font, size float64) *shaper {
	if f == nil {
		return nil
	}
	return &shaper{lib: lib, face: font.NewFace(f), size: floatToFixed(size)}
}

// shape returns the clusters of s in visual order and the total advance.
func (s *shaper) shape(text string) ([]cluster, float64) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, 0
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      s.size,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.lib.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.lib.shapers.Put(hb)

	clusters := make([]cluster, 0, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		start := g.TextIndex()
		if i > 0 && start == out.Glyphs[i-1].TextIndex() {
			// Extra glyph of the previous cluster.
			clusters[len(clusters)-1].advance += adv
			pen += adv
			continue
		}
		clusters = append(clusters, cluster{
			text:    string(runes[start:clusterEnd(out.Glyphs, i, len(runes))]),
			x:       pen + fixedToFloat(g.XOffset),
			advance: adv,
		})
		pen += adv
	}
	return clusters, pen
}

// clusterEnd returns the rune index one past the cluster starting at glyph i.
func clusterEnd(glyphs []shaping.Glyph, i, n int) int {
	start := glyphs[i].TextIndex()
	for j := i + 1; j < len(glyphs); j++ {
		if next := glyphs[j].TextIndex(); next > start {
			return next
		}
	}
	return n
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
