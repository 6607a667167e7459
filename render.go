package codeshot

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/codyrobertson/codeshot/compositor"
	"github.com/codyrobertson/codeshot/filter"
	"github.com/codyrobertson/codeshot/highlight"
	"github.com/codyrobertson/codeshot/layout"
	"github.com/codyrobertson/codeshot/resolver"
	"github.com/codyrobertson/codeshot/text"
	"github.com/codyrobertson/codeshot/theme"
)

// Renderer turns requests into images. It is safe for concurrent use; one
// Renderer per process shares the emoji cache between renders.
type Renderer struct {
	themes  *theme.Catalog
	fonts   *text.Library
	filters *filter.Registry
	glyphs  text.GlyphResolver
	emoji   *text.EmojiRenderer
	logger  *slog.Logger
}

// New returns a renderer with the built-in themes, the embedded Go fonts,
// the built-in shaders and an emoji resolver backed by the CDN.
func New(opts ...Option) *Renderer {
	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = Logger()
	}

	r := &Renderer{
		themes:  o.themes,
		fonts:   o.fonts,
		filters: o.filters,
		glyphs:  o.glyphs,
		logger:  logger,
	}
	if r.themes == nil {
		r.themes = theme.NewCatalog(logger)
	}
	if r.fonts == nil {
		r.fonts = text.NewLibrary(logger)
	}
	if r.filters == nil {
		r.filters = filter.NewRegistry(logger)
	}
	if !o.glyphsSet {
		ropts := []resolver.Option{
			resolver.WithLogger(logger),
			resolver.WithCacheDir(o.cacheDir),
			resolver.WithCDN(o.cdn),
			resolver.WithTimeout(o.fetchTimeout),
		}
		if o.offline {
			ropts = append(ropts, resolver.WithOffline())
		}
		r.glyphs = resolver.New(ropts...)
	}
	r.emoji = text.NewEmojiRenderer(r.glyphs)
	return r
}

// Themes returns the theme catalog.
func (r *Renderer) Themes() *theme.Catalog { return r.themes }

// Fonts returns the font library.
func (r *Renderer) Fonts() *text.Library { return r.fonts }

// EmojiStats returns the counters of the default emoji resolver. ok is
// false when the renderer was given its own resolver.
func (r *Renderer) EmojiStats() (s resolver.Stats, ok bool) {
	res, ok := r.glyphs.(*resolver.Resolver)
	if !ok || res == nil {
		return resolver.Stats{}, false
	}
	return res.Stats(), true
}

// Render runs the pipeline for req. Only an impossible layout, an
// unusable font, a canceled ctx or a compositing fault fail it; the error
// is then a *RenderError.
func (r *Renderer) Render(ctx context.Context, req Request) (*Image, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Stage: StageComposite, Err: err}
	}
	opts := req.Options

	lines, first := SelectLines(req.Code, req.LineRange)
	if len(lines) == 0 && strings.TrimSpace(req.LineRange) != "" {
		r.logger.Debug("codeshot: line range selects nothing", "range", req.LineRange)
	}
	for i := range lines {
		lines[i] = text.ExpandTabs(lines[i], opts.TabWidth)
	}

	// Validate the geometry before loading a font for it.
	if _, err := layout.Compute(len(lines), opts.layout()); err != nil {
		return nil, layoutError(err)
	}

	face, err := r.fonts.Face(opts.FontFamily, opts.FontSize*opts.Scale)
	if err != nil {
		return nil, &RenderError{Stage: StageFont, Input: "Options.FontFamily", Err: err}
	}
	defer face.Close()

	th, _ := r.themes.Resolve(req.Theme)

	var gutter float64
	if opts.ShowLineNumbers && len(lines) > 0 {
		gutter = compositor.GutterWidth(face, first+len(lines)-1)
	}

	spans := highlight.New(req.Language).HighlightAll(lines)
	visual := r.wrap(ctx, face, lines, spans, first, gutter, opts)

	m, err := layout.Compute(len(visual), opts.layout())
	if err != nil {
		return nil, layoutError(err)
	}

	job := compositor.Job{
		Metrics: m,
		Lines:   visual,
		Theme:   th,
		Face:    face,
		Emoji:   r.emoji,
		Gutter:  gutter,
		Shadow:  opts.Shadow,
	}
	if bg, ok := r.background(opts.Background); ok {
		job.Background = &bg
	}

	buf, err := compositor.Composite(ctx, job)
	if err != nil {
		return nil, &RenderError{Stage: StageComposite, Err: err}
	}

	buf = r.filters.Apply(buf, filter.Name(req.Shader), filter.Params{Scale: opts.Scale, Intensity: 1})

	r.logger.Debug("codeshot: rendered",
		"theme", th.Name,
		"lines", len(visual),
		"shader", req.Shader,
		"size", buf.Rect.Size(),
		"elapsed", time.Since(start))
	return &Image{buf: buf}, nil
}

// RenderPNG renders req and encodes the result.
func (r *Renderer) RenderPNG(ctx context.Context, req Request) ([]byte, error) {
	img, err := r.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return img.Encode()
}

// wrap turns source lines into visual lines. With wrapping off each source
// line is one visual line; otherwise lines are broken to fit the narrower of
// WrapWidth and the space right of the gutter, and continuation pieces carry
// no line number.
func (r *Renderer) wrap(ctx context.Context, face *text.Face, lines []string, spans [][]highlight.Span, first int, gutter float64, opts Options) []compositor.Line {
	out := make([]compositor.Line, 0, len(lines))

	var limit float64
	if opts.WrapWidth > 0 {
		limit = min(opts.WrapWidth*opts.Scale, (opts.Width-2*opts.Padding)*opts.Scale-gutter)
	}
	surface := measurer{face}
	measure := func(s string) float64 {
		return r.emoji.Measure(ctx, surface, s, face.Size())
	}

	for i, line := range lines {
		num := first + i
		if limit <= 0 {
			out = append(out, compositor.Line{Number: num, Spans: spans[i]})
			continue
		}
		cursor := 0
		for j, piece := range text.Wrap(line, limit, measure) {
			from := cursor + strings.Index(line[cursor:], piece)
			to := from + len(piece)
			n := num
			if j > 0 {
				n = 0
			}
			out = append(out, compositor.Line{Number: n, Spans: sliceSpans(spans[i], from, to)})
			cursor = to
		}
	}
	return out
}

// sliceSpans returns the parts of spans covering bytes [from, to) of the
// line they were cut from.
func sliceSpans(spans []highlight.Span, from, to int) []highlight.Span {
	var out []highlight.Span
	pos := 0
	for _, s := range spans {
		end := pos + len(s.Text)
		a, b := max(pos, from), min(end, to)
		if a < b {
			out = append(out, highlight.Span{Text: s.Text[a-pos : b-pos], Class: s.Class})
		}
		pos = end
	}
	return out
}

func (r *Renderer) background(hex string) (color.RGBA, bool) {
	if hex == "" {
		return color.RGBA{}, false
	}
	c, err := theme.Hex(hex)
	if err != nil {
		r.logger.Warn("codeshot: invalid background, using theme color", "background", hex, "err", err)
		return color.RGBA{}, false
	}
	return c, true
}

func (o Options) layout() layout.Options {
	return layout.Options{
		Width:        o.Width,
		Padding:      o.Padding,
		OuterPadding: o.OuterPadding,
		FontSize:     o.FontSize,
		LineHeight:   o.LineHeight,
		ShowChrome:   o.ShowChrome,
		Scale:        o.Scale,
	}
}

func layoutError(err error) error {
	re := &RenderError{Stage: StageLayout, Err: err}
	var le *layout.Error
	if errors.As(err, &le) {
		re.Input = "Options." + le.Field
	}
	return re
}

// measurer measures text with a face without a destination image.
type measurer struct {
	face *text.Face
}

func (m measurer) MeasureString(s string) float64 { return m.face.Advance(s) }

func (m measurer) DrawString(s string, _, _ float64) float64 { return m.face.Advance(s) }

func (measurer) DrawImage(image.Image, image.Rectangle) {}

// Image is a rendered snapshot. Its pixels are handed to the encoder once.
type Image struct {
	mu  sync.Mutex
	buf *image.RGBA
}

// Bounds returns the pixel bounds, or an empty rectangle once encoded.
func (img *Image) Bounds() image.Rectangle {
	img.mu.Lock()
	defer img.mu.Unlock()
	if img.buf == nil {
		return image.Rectangle{}
	}
	return img.buf.Rect
}

// Encode returns the image as PNG bytes and releases the pixels. Later
// calls return ErrConsumed.
func (img *Image) Encode() ([]byte, error) {
	buf, err := img.take()
	if err != nil {
		return nil, err
	}
	return Encode(buf)
}

// WriteTo encodes the image as PNG to w and releases the pixels. Later
// calls return ErrConsumed.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	buf, err := img.take()
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	err = EncodeTo(cw, buf)
	return cw.n, err
}

func (img *Image) take() (*image.RGBA, error) {
	img.mu.Lock()
	defer img.mu.Unlock()
	buf := img.buf
	if buf == nil {
		return nil, ErrConsumed
	}
	img.buf = nil
	return buf, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
