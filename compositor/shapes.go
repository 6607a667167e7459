package compositor

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/codyrobertson/codeshot/layout"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// corners holds per-corner radii, clockwise from top-left.
type corners struct {
	tl, tr, br, bl float64
}

func uniform(r float64) corners { return corners{r, r, r, r} }

// painter fills vector shapes onto a buffer: the canvas itself, or an
// alpha mask when only coverage is needed.
type painter struct {
	dst draw.Image
	z   *vector.Rasterizer
}

func newPainter(dst draw.Image) *painter {
	b := dst.Bounds()
	return &painter{dst: dst, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (p *painter) fill(col color.Color) {
	p.z.DrawOp = draw.Over
	p.z.Draw(p.dst, p.dst.Bounds(), image.NewUniform(col), image.Point{})
	b := p.dst.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
}

// roundRect fills r with rounded corners. Radii are clamped to half the
// shorter side.
func (p *painter) roundRect(r layout.Rect, c corners, col color.Color) {
	if r.Empty() {
		return
	}
	limit := min(r.W, r.H) / 2
	c.tl, c.tr, c.br, c.bl = min(c.tl, limit), min(c.tr, limit), min(c.br, limit), min(c.bl, limit)

	x0, y0, x1, y1 := r.X, r.Y, r.MaxX(), r.MaxY()
	z := p.z
	z.MoveTo(f32(x0+c.tl), f32(y0))
	z.LineTo(f32(x1-c.tr), f32(y0))
	p.arc(x1-c.tr, y0, x1, y0+c.tr, c.tr, true)
	z.LineTo(f32(x1), f32(y1-c.br))
	p.arc(x1, y1-c.br, x1-c.br, y1, c.br, false)
	z.LineTo(f32(x0+c.bl), f32(y1))
	p.arc(x0+c.bl, y1, x0, y1-c.bl, c.bl, true)
	z.LineTo(f32(x0), f32(y0+c.tl))
	p.arc(x0, y0+c.tl, x0+c.tl, y0, c.tl, false)
	z.ClosePath()
	p.fill(col)
}

// arc draws a quarter circle from (ax, ay) to (bx, by). horizontal tells
// whether the tangent at the start point is horizontal.
func (p *painter) arc(ax, ay, bx, by, r float64, horizontal bool) {
	if r <= 0 {
		p.z.LineTo(f32(bx), f32(by))
		return
	}
	k := kappa
	var c1x, c1y, c2x, c2y float64
	if horizontal {
		c1x, c1y = ax+(bx-ax)*k, ay
		c2x, c2y = bx, by-(by-ay)*k
	} else {
		c1x, c1y = ax, ay+(by-ay)*k
		c2x, c2y = bx-(bx-ax)*k, by
	}
	p.z.CubeTo(f32(c1x), f32(c1y), f32(c2x), f32(c2y), f32(bx), f32(by))
}

// circle fills a circle centered at (cx, cy).
func (p *painter) circle(cx, cy, r float64, col color.Color) {
	p.roundRect(layout.Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}, uniform(r), col)
}

func f32(v float64) float32 { return float32(v) }
