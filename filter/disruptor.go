package filter

import (
	"encoding/binary"
	"image"
	"math"
	"math/rand/v2"

	"github.com/twmb/murmur3"
)

const (
	// disruptShift bounds a band offset as a fraction of the width.
	disruptShift = 0.04

	// disruptChance is the share of bands that are displaced.
	disruptChance = 0.45

	// disruptSplit is the logical red/blue channel separation.
	disruptSplit = 3.0
)

// disruptor cuts the image into horizontal bands of random height and
// shifts some of them sideways, splitting the color channels of half of
// those. The random sequence is seeded from the image size, so equal inputs
// give equal outputs.
func disruptor(src *image.RGBA, p Params) *image.RGBA {
	b := src.Rect
	dst := image.NewRGBA(b)
	w, h := b.Dx(), b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si, di := src.PixOffset(b.Min.X, y), dst.PixOffset(b.Min.X, y)
		copy(dst.Pix[di:di+4*w], src.Pix[si:si+4*w])
	}

	rng := rand.New(rand.NewPCG(seedFor(w, h)))

	maxShift := max(1, int(disruptShift*float64(w)*p.Intensity))
	split := max(1, int(math.Round(disruptSplit*p.Scale)))
	maxBand := max(3, h/12)

	moved := false
	for y := 0; y < h; {
		band := 2 + rng.IntN(maxBand)
		if rng.Float64() < disruptChance {
			off := 1 + rng.IntN(maxShift)
			if rng.IntN(2) == 0 {
				off = -off
			}
			splitBand := rng.Float64() < 0.5
			for row := y; row < min(y+band, h); row++ {
				shiftRow(src, dst, b.Min.Y+row, off, splitBand, split)
			}
			moved = true
		}
		y += band
	}
	// Small images can draw no displaced band at all; the effect always shows.
	if !moved {
		for row := h / 2; row < min(h/2+2, h); row++ {
			shiftRow(src, dst, b.Min.Y+row, maxShift, true, split)
		}
	}
	return dst
}

// shiftRow copies row y of src into dst moved right by off pixels. With
// split set, red is sampled further left and blue further right.
func shiftRow(src, dst *image.RGBA, y, off int, split bool, by int) {
	b := src.Rect
	w := b.Dx()
	sample := func(x, ch int) uint8 {
		return src.Pix[src.PixOffset(b.Min.X+clampInt(x, 0, w-1), y)+ch]
	}

	di := dst.PixOffset(b.Min.X, y)
	for x := 0; x < w; x++ {
		sx := x - off
		d := dst.Pix[di : di+4 : di+4]
		if split {
			d[0] = sample(sx-by, 0)
			d[1] = sample(sx, 1)
			d[2] = sample(sx+by, 2)
		} else {
			d[0], d[1], d[2] = sample(sx, 0), sample(sx, 1), sample(sx, 2)
		}
		d[3] = sample(sx, 3)
		di += 4
	}
}

// seedFor hashes the image dimensions into a PCG seed pair.
func seedFor(w, h int) (uint64, uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(w))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h))

	hash := murmur3.New64()
	hash.Write(buf[:])
	seed := hash.Sum64()
	return seed, seed ^ 0x9e3779b97f4a7c15
}
