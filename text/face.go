package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a font family at one pixel size.
type Face struct {
	family string
	size   float64
	glyphs font.Face
	shp    *shaper

	ascent, descent float64
}

func newFace(lib *Library, src *source, size float64) (*Face, error) {
	glyphs, err := opentype.NewFace(src.outl, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m := glyphs.Metrics()
	return &Face{
		family:  src.name,
		size:    size,
		glyphs:  glyphs,
		shp:     newShaper(lib, src.shaped, size),
		ascent:  fixedToFloat(m.Ascent),
		descent: fixedToFloat(m.Descent),
	}, nil
}

// Family returns the resolved family name.
func (f *Face) Family() string { return f.family }

// Size returns the size in pixels.
func (f *Face) Size() float64 { return f.size }

// Ascent returns the distance from the baseline to the top of the line.
func (f *Face) Ascent() float64 { return f.ascent }

// Descent returns the positive distance from the baseline to the bottom of
// the line.
func (f *Face) Descent() float64 { return f.descent }

// Advance returns the width of s in pixels.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	_, w := f.layout(s)
	return w
}

// Close releases the rasterizer state.
func (f *Face) Close() error {
	return f.glyphs.Close()
}

// draw paints s with its baseline origin at (x, y) and returns its advance.
func (f *Face) draw(dst draw.Image, s string, x, y float64, col color.Color) float64 {
	if s == "" {
		return 0
	}
	clusters, w := f.layout(s)
	d := font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: f.glyphs}
	for _, c := range clusters {
		d.Dot = fixed.Point26_6{X: floatToFixed(x + c.x), Y: floatToFixed(y)}
		d.DrawString(c.text)
	}
	return w
}

// layout shapes s, or measures it rune by rune when the family has no
// shaping data.
func (f *Face) layout(s string) ([]cluster, float64) {
	if f.shp != nil {
		if clusters, w := f.shp.shape(s); len(clusters) > 0 {
			return clusters, w
		}
	}

	clusters := make([]cluster, 0, len(s))
	var pen float64
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			pen += fixedToFloat(f.glyphs.Kern(prev, r))
		}
		adv, _ := f.glyphs.GlyphAdvance(r)
		clusters = append(clusters, cluster{text: string(r), x: pen, advance: fixedToFloat(adv)})
		pen += fixedToFloat(adv)
		prev = r
	}
	return clusters, pen
}
