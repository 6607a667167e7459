package filter

import (
	"image"
	"image/color"
	"image/draw"
)

// DropShadow paints a blurred copy of shape, moved by offset, onto dst in
// col. Draw the shape itself afterwards so the shadow sits beneath it.
func DropShadow(dst *image.RGBA, shape *image.Alpha, offset image.Point, radius float64, col color.RGBA) {
	if dst == nil || shape == nil {
		return
	}
	blurred := BlurAlpha(shape, radius)
	blurred.Rect = blurred.Rect.Add(offset)
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, blurred, dst.Bounds().Min, draw.Over)
}
