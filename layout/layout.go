// Package layout computes the geometry of a rendered code snippet.
//
// All computation happens in logical pixels and is multiplied by the device
// scale as the last step, so a scale of 2 produces a "retina" image with the
// same logical arrangement:
//
//	+------------------------------- canvas --------------------------------+
//	|   outer padding                                                       |
//	|   +---------------------------- window -----------------------------+ |
//	|   | chrome bar (optional)                                           | |
//	|   |   padding                                                       | |
//	|   |   +------------------------ content ------------------------+   | |
//	|   |   | line 1                                                  |   | |
//	|   |   | line 2                                                  |   | |
//	|   |   +---------------------------------------------------------+   | |
//	|   +-----------------------------------------------------------------+ |
//	+-----------------------------------------------------------------------+
package layout

import (
	"image"
	"math"
)

// ChromeBarHeight is the logical height of the simulated title bar.
const ChromeBarHeight = 36.0

// DefaultLineHeight is the line-height multiplier applied to the font size.
const DefaultLineHeight = 1.5

// Rect is an axis-aligned rectangle in device pixels.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// In reports whether r lies within s. Shared edges count as inside.
func (r Rect) In(s Rect) bool {
	return r.X >= s.X && r.Y >= s.Y && r.MaxX() <= s.MaxX() && r.MaxY() <= s.MaxY()
}

// StrictlyIn reports whether r lies within s without touching any edge of s.
func (r Rect) StrictlyIn(s Rect) bool {
	return r.X > s.X && r.Y > s.Y && r.MaxX() < s.MaxX() && r.MaxY() < s.MaxY()
}

// Scaled returns the rectangle with every field multiplied by k.
func (r Rect) Scaled(k float64) Rect {
	return Rect{X: r.X * k, Y: r.Y * k, W: r.W * k, H: r.H * k}
}

// Image returns the integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.MaxX())),
		int(math.Ceil(r.MaxY())),
	)
}

// Options are the inputs of Compute, in logical pixels.
type Options struct {
	// Width is the logical window width.
	Width float64

	// Padding separates the window edge (or chrome bar) from the content.
	Padding float64

	// OuterPadding separates the canvas edge from the window.
	OuterPadding float64

	// FontSize is the logical font size. Must be positive.
	FontSize float64

	// LineHeight is the multiplier applied to FontSize.
	// Zero selects DefaultLineHeight.
	LineHeight float64

	// ShowChrome adds the title bar above the content.
	ShowChrome bool

	// Scale is the device scale factor. Must be at least 1.
	Scale float64
}

// Metrics is the computed geometry of one render. Every rectangle is in
// device pixels.
type Metrics struct {
	Canvas    Rect
	Window    Rect
	ChromeBar Rect // zero when chrome is hidden
	Content   Rect

	// LineHeight is the vertical advance per line in device pixels.
	LineHeight float64

	// Scale is the device scale the metrics were computed with.
	Scale float64

	// Lines is the number of lines the content rectangle holds.
	Lines int
}

// CanvasSize returns the pixel size of the output image.
func (m Metrics) CanvasSize() image.Point {
	return image.Pt(int(math.Ceil(m.Canvas.W)), int(math.Ceil(m.Canvas.H)))
}

// Compute maps a line count and layout options to canvas, window and
// content rectangles. It is pure: equal inputs give equal metrics.
//
// A line count of zero is valid and yields an empty content rectangle inside
// a window that still renders.
func Compute(lineCount int, opts Options) (Metrics, error) {
	if err := opts.validate(lineCount); err != nil {
		return Metrics{}, err
	}

	lineMul := opts.LineHeight
	if lineMul == 0 {
		lineMul = DefaultLineHeight
	}

	lineHeight := opts.FontSize * lineMul
	contentW := opts.Width - 2*opts.Padding
	contentH := float64(lineCount) * lineHeight

	chromeH := 0.0
	if opts.ShowChrome {
		chromeH = ChromeBarHeight
	}

	windowW := opts.Width
	windowH := contentH + 2*opts.Padding + chromeH

	canvas := Rect{W: windowW + 2*opts.OuterPadding, H: windowH + 2*opts.OuterPadding}
	window := Rect{X: opts.OuterPadding, Y: opts.OuterPadding, W: windowW, H: windowH}
	content := Rect{
		X: opts.OuterPadding + opts.Padding,
		Y: opts.OuterPadding + chromeH + opts.Padding,
		W: contentW,
		H: contentH,
	}

	var bar Rect
	if opts.ShowChrome {
		bar = Rect{X: window.X, Y: window.Y, W: windowW, H: chromeH}
	}

	s := opts.Scale
	return Metrics{
		Canvas:     canvas.Scaled(s),
		Window:     window.Scaled(s),
		ChromeBar:  bar.Scaled(s),
		Content:    content.Scaled(s),
		LineHeight: lineHeight * s,
		Scale:      s,
		Lines:      lineCount,
	}, nil
}

func (o Options) validate(lineCount int) error {
	switch {
	case lineCount < 0:
		return &Error{Field: "lineCount", Value: float64(lineCount), Reason: "must not be negative"}
	case !(o.FontSize > 0):
		return &Error{Field: "FontSize", Value: o.FontSize, Reason: "must be positive"}
	case !(o.Scale >= 1):
		return &Error{Field: "Scale", Value: o.Scale, Reason: "must be at least 1"}
	case o.LineHeight < 0:
		return &Error{Field: "LineHeight", Value: o.LineHeight, Reason: "must not be negative"}
	case o.Padding < 0:
		return &Error{Field: "Padding", Value: o.Padding, Reason: "must not be negative"}
	case o.OuterPadding < 0:
		return &Error{Field: "OuterPadding", Value: o.OuterPadding, Reason: "must not be negative"}
	case !(o.Width > 2*o.Padding):
		return &Error{Field: "Width", Value: o.Width, Reason: "must exceed twice the padding"}
	}
	return nil
}
