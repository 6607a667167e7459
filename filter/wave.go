package filter

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	waveAmplitude  = 6.0
	waveLength     = 120.0
	gradientAlpha  = 0.18
	gradientHueLo  = 300.0 // magenta
	gradientHueHi  = 190.0 // cyan
	gradientChroma = 0.55
	gradientLight  = 0.65
)

// waveGradient shifts each row horizontally along a sine wave and lays a
// left-to-right hue gradient over the result. Samples past an edge repeat
// the edge pixel.
func waveGradient(src *image.RGBA, p Params) *image.RGBA {
	b := src.Rect
	dst := image.NewRGBA(b)
	w := b.Dx()

	amp := waveAmplitude * p.Scale * p.Intensity
	length := waveLength * p.Scale

	tint := make([][3]uint8, w)
	lo := colorful.Hcl(gradientHueLo, gradientChroma, gradientLight)
	hi := colorful.Hcl(gradientHueHi, gradientChroma, gradientLight)
	for x := range tint {
		t := 0.0
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		r, g, bl := lo.BlendHcl(hi, t).Clamped().RGB255()
		tint[x] = [3]uint8{r, g, bl}
	}
	alpha := gradientAlpha * p.Intensity

	for y := b.Min.Y; y < b.Max.Y; y++ {
		shift := amp * math.Sin(2*math.Pi*float64(y-b.Min.Y)/length)
		di := dst.PixOffset(b.Min.X, y)
		for x := 0; x < w; x++ {
			sx := clampInt(int(math.Round(float64(x)-shift)), 0, w-1)
			si := src.PixOffset(b.Min.X+sx, y)
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]
			for k := 0; k < 3; k++ {
				d[k] = mix(s[k], tint[x][k], alpha)
			}
			d[3] = s[3]
			di += 4
		}
	}
	return dst
}
