package text

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Surface is the text primitive the emoji renderer draws through.
type Surface interface {
	// MeasureString returns the advance of s in pixels.
	MeasureString(s string) float64

	// DrawString draws s with its baseline origin at (x, y) and returns
	// the advance, which equals MeasureString(s).
	DrawString(s string, x, y float64) float64

	// DrawImage scales img into r.
	DrawImage(img image.Image, r image.Rectangle)
}

// Canvas is a Surface over a draw.Image. Drawing is clipped to Clip, or to
// the destination bounds when Clip is empty.
type Canvas struct {
	dst   draw.Image
	face  *Face
	color color.Color
	clip  image.Rectangle
}

// NewCanvas returns a canvas drawing text with face in col.
func NewCanvas(dst draw.Image, face *Face, col color.Color) *Canvas {
	return &Canvas{dst: dst, face: face, color: col, clip: dst.Bounds()}
}

// SetColor changes the text color for later DrawString calls.
func (c *Canvas) SetColor(col color.Color) { c.color = col }

// SetClip restricts drawing to r intersected with the destination bounds.
func (c *Canvas) SetClip(r image.Rectangle) { c.clip = r.Intersect(c.dst.Bounds()) }

// Face returns the face text is drawn with.
func (c *Canvas) Face() *Face { return c.face }

func (c *Canvas) MeasureString(s string) float64 {
	return c.face.Advance(s)
}

func (c *Canvas) DrawString(s string, x, y float64) float64 {
	return c.face.draw(c.target(), s, x, y, c.color)
}

func (c *Canvas) DrawImage(img image.Image, r image.Rectangle) {
	if img == nil || r.Empty() {
		return
	}
	xdraw.CatmullRom.Scale(c.target(), r, img, img.Bounds(), xdraw.Over, nil)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// target returns the clipped destination.
func (c *Canvas) target() draw.Image {
	if c.clip == c.dst.Bounds() {
		return c.dst
	}
	if si, ok := c.dst.(subImager); ok {
		if d, ok := si.SubImage(c.clip).(draw.Image); ok {
			return d
		}
	}
	return c.dst
}
