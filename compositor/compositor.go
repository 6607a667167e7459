// Package compositor paints a code snippet onto a canvas.
//
// Composite draws, in order: the canvas background, an optional drop
// shadow, the rounded editor window, the optional title bar with its three status dots, the line
// number gutter and the highlighted lines. Emoji inside the code are drawn
// inline through a text.EmojiRenderer.
package compositor

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/codyrobertson/codeshot/filter"
	"github.com/codyrobertson/codeshot/highlight"
	"github.com/codyrobertson/codeshot/layout"
	"github.com/codyrobertson/codeshot/text"
	"github.com/codyrobertson/codeshot/theme"
)

// Logical sizes of the window decoration. They are multiplied by the
// device scale.
const (
	WindowRadius = 10.0
	DotRadius    = 6.0
	DotSpacing   = 20.0
	DotInset     = 20.0

	ShadowOffset = 8.0
	ShadowBlur   = 8.0
)

// ShadowColor tints the drop shadow under the window.
var ShadowColor = color.RGBA{0, 0, 0, 0x70}

// Status dot colors of the title bar.
var (
	DotRed    = color.RGBA{0xff, 0x5f, 0x56, 0xff}
	DotYellow = color.RGBA{0xff, 0xbd, 0x2e, 0xff}
	DotGreen  = color.RGBA{0x27, 0xc9, 0x3f, 0xff}
)

// Line is one visual line of code.
type Line struct {
	// Number is the source line number shown in the gutter. Zero marks a
	// wrapped continuation, which gets no number.
	Number int

	Spans []highlight.Span
}

// Job describes one composite.
type Job struct {
	Metrics layout.Metrics
	Lines   []Line
	Theme   *theme.Theme

	// Face draws code and line numbers at device size.
	Face *text.Face

	// Emoji draws each span; nil draws emoji as text.
	Emoji *text.EmojiRenderer

	// Gutter is the device width reserved for line numbers inside the
	// content rectangle. Zero hides line numbers.
	Gutter float64

	// Background overrides the theme background when non-nil.
	Background *color.RGBA

	// Shadow draws a blurred drop shadow below the window.
	Shadow bool
}

// Composite paints a job into a new buffer sized to the canvas.
func Composite(ctx context.Context, job Job) (*image.RGBA, error) {
	if job.Theme == nil {
		return nil, errors.New("compositor: no theme")
	}
	if job.Face == nil {
		return nil, errors.New("compositor: no font face")
	}
	size := job.Metrics.CanvasSize()
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New("compositor: empty canvas")
	}

	dst := image.NewRGBA(image.Rectangle{Max: size})
	bg := job.Theme.Background
	if job.Background != nil {
		bg = *job.Background
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	m := job.Metrics
	radius := WindowRadius * m.Scale
	if job.Shadow {
		drawShadow(dst, m, radius)
	}

	p := newPainter(dst)
	p.roundRect(m.Window, uniform(radius), job.Theme.Window)

	if !m.ChromeBar.Empty() && job.Theme.Chrome != theme.ChromeNone {
		drawChrome(p, m, job.Theme.ChromeBar, radius)
	}

	if err := drawLines(ctx, dst, job); err != nil {
		return nil, err
	}
	return dst, nil
}

func drawShadow(dst *image.RGBA, m layout.Metrics, radius float64) {
	mask := image.NewAlpha(dst.Bounds())
	newPainter(mask).roundRect(m.Window, uniform(radius), color.Opaque)
	offset := image.Pt(0, int(ShadowOffset*m.Scale+0.5))
	filter.DropShadow(dst, mask, offset, ShadowBlur*m.Scale, ShadowColor)
}

func drawChrome(p *painter, m layout.Metrics, bar color.RGBA, radius float64) {
	p.roundRect(m.ChromeBar, corners{tl: radius, tr: radius}, bar)

	cy := m.ChromeBar.Y + m.ChromeBar.H/2
	r := DotRadius * m.Scale
	for i, col := range []color.RGBA{DotRed, DotYellow, DotGreen} {
		cx := m.ChromeBar.X + (DotInset+float64(i)*DotSpacing)*m.Scale
		p.circle(cx, cy, r, col)
	}
}

func drawLines(ctx context.Context, dst *image.RGBA, job Job) error {
	m := job.Metrics
	face := job.Face
	canvas := text.NewCanvas(dst, face, job.Theme.Default)
	canvas.SetClip(m.Content.Image())

	emoji := job.Emoji
	if emoji == nil {
		emoji = text.NewEmojiRenderer(nil)
	}

	// Center the font's line box in each row.
	lead := (m.LineHeight - (face.Ascent() + face.Descent())) / 2
	numberColor := job.Theme.Color(highlight.LineNumber)
	gap := GutterGap(face)

	for i, line := range job.Lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		baseline := m.Content.Y + float64(i)*m.LineHeight + lead + face.Ascent()

		if job.Gutter > 0 && line.Number > 0 {
			num := strconv.Itoa(line.Number)
			canvas.SetColor(numberColor)
			canvas.DrawString(num, m.Content.X+job.Gutter-gap-face.Advance(num), baseline)
		}

		x := m.Content.X + job.Gutter
		for _, span := range line.Spans {
			if x >= m.Content.MaxX() {
				break
			}
			canvas.SetColor(job.Theme.Color(span.Class))
			x += emoji.Draw(ctx, canvas, span.Text, x, baseline, face.Size())
		}
	}
	return nil
}

// GutterWidth returns the device width of a gutter holding line numbers up
// to last, including the gap before the code.
func GutterWidth(face *text.Face, last int) float64 {
	if last < 1 {
		last = 1
	}
	return face.Advance(strconv.Itoa(last)) + GutterGap(face)
}

// GutterGap is the space between the widest line number and the code.
func GutterGap(face *text.Face) float64 {
	return face.Size()
}
