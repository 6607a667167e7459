package codeshot

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"sync"
)

// encoderBuffers pools the zlib and row scratch of the PNG encoder across
// renders.
type encoderBuffers struct {
	pool sync.Pool
}

func (p *encoderBuffers) Get() *png.EncoderBuffer {
	b, _ := p.pool.Get().(*png.EncoderBuffer)
	return b
}

func (p *encoderBuffers) Put(b *png.EncoderBuffer) {
	p.pool.Put(b)
}

var encoder = png.Encoder{
	CompressionLevel: png.BestCompression,
	BufferPool:       &encoderBuffers{},
}

// Encode writes img as a PNG. Equal pixels give equal bytes.
func Encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes img as a PNG to w.
func EncodeTo(w io.Writer, img *image.RGBA) error {
	if img == nil || img.Rect.Empty() {
		return &RenderError{Stage: StageEncode, Err: errors.New("empty image")}
	}
	if err := encoder.Encode(w, img); err != nil {
		return &RenderError{Stage: StageEncode, Err: err}
	}
	return nil
}
