package filter

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// halftonePitch is the logical grid cell edge.
	halftonePitch = 6.0

	// halftoneShade is how far the cell background moves toward black,
	// measured in Lab.
	halftoneShade = 0.82
)

// halftone replaces each grid cell with a dot whose radius follows the
// Rec. 709 luminance of the cell average. Dot pixels take the average
// color, the rest a darkened version of it.
func halftone(src *image.RGBA, p Params) *image.RGBA {
	b := src.Rect
	dst := image.NewRGBA(b)
	pitch := max(2, int(math.Round(halftonePitch*p.Scale)))
	black := colorful.Color{}

	for cy := b.Min.Y; cy < b.Max.Y; cy += pitch {
		for cx := b.Min.X; cx < b.Max.X; cx += pitch {
			cell := image.Rect(cx, cy, cx+pitch, cy+pitch).Intersect(b)
			avg := average(src, cell)

			c := colorful.Color{R: float64(avg[0]) / 255, G: float64(avg[1]) / 255, B: float64(avg[2]) / 255}
			lum := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
			radius := float64(pitch) * 0.6 * math.Sqrt(lum)

			dr, dg, db := c.BlendLab(black, halftoneShade).Clamped().RGB255()
			dark := [4]uint8{dr, dg, db, avg[3]}

			centerX := float64(cx) + float64(pitch)/2
			centerY := float64(cy) + float64(pitch)/2
			for y := cell.Min.Y; y < cell.Max.Y; y++ {
				for x := cell.Min.X; x < cell.Max.X; x++ {
					px := dark
					if math.Hypot(float64(x)+0.5-centerX, float64(y)+0.5-centerY) <= radius {
						px = avg
					}
					i := src.PixOffset(x, y)
					s := src.Pix[i : i+4 : i+4]
					d := dst.Pix[i : i+4 : i+4]
					for k := 0; k < 3; k++ {
						d[k] = mix(s[k], px[k], p.Intensity)
					}
					d[3] = s[3]
				}
			}
		}
	}
	return dst
}

// average returns the mean RGBA of r.
func average(img *image.RGBA, r image.Rectangle) [4]uint8 {
	var sum [4]int
	n := r.Dx() * r.Dy()
	if n == 0 {
		return [4]uint8{}
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			sum[0] += int(img.Pix[i])
			sum[1] += int(img.Pix[i+1])
			sum[2] += int(img.Pix[i+2])
			sum[3] += int(img.Pix[i+3])
			i += 4
		}
	}
	return [4]uint8{
		uint8((sum[0] + n/2) / n),
		uint8((sum[1] + n/2) / n),
		uint8((sum[2] + n/2) / n),
		uint8((sum[3] + n/2) / n),
	}
}
