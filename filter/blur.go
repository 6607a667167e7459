package filter

import (
	"image"
	"math"
	"sync"

	"github.com/codyrobertson/codeshot/cache"
)

// GaussianKernel returns a normalized 1D Gaussian kernel with sigma equal
// to radius, covering three standard deviations on each side. A radius of
// zero or less gives the identity kernel.
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(radius * 3))
	kernel := make([]float32, 2*half+1)

	twoSigmaSq := 2 * radius * radius
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernels caches Gaussian kernels by radius in hundredths of a pixel.
// Shadow radii come from a handful of scale factors, so it stays small.
var kernels = cache.NewSharded[int, []float32](cache.IntHasher)

func cachedKernel(radius float64) []float32 {
	return kernels.GetOrCreate(int(radius*100), func() []float32 {
		return GaussianKernel(radius)
	})
}

// scratch pools the float rows used between the two blur passes.
var scratch = sync.Pool{
	New: func() any { return new([]float32) },
}

// BlurAlpha returns a Gaussian blurred copy of mask. The blur is separable:
// one horizontal pass into a float buffer, one vertical pass back. Samples
// past an edge repeat the edge value.
func BlurAlpha(mask *image.Alpha, radius float64) *image.Alpha {
	b := mask.Rect
	out := image.NewAlpha(b)
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return out
	}
	kernel := cachedKernel(radius)
	half := len(kernel) / 2

	bufp := scratch.Get().(*[]float32)
	defer scratch.Put(bufp)
	if cap(*bufp) < w*h {
		*bufp = make([]float32, w*h)
	}
	tmp := (*bufp)[:w*h]

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := 0; x < w; x++ {
			var acc float32
			for k, weight := range kernel {
				acc += float32(row[clampInt(x+k-half, 0, w-1)]) * weight
			}
			tmp[y*w+x] = acc
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float32
			for k, weight := range kernel {
				acc += tmp[clampInt(y+k-half, 0, h-1)*w+x] * weight
			}
			out.Pix[y*out.Stride+x] = clampUint8(acc)
		}
	}
	return out
}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
