package codeshot

import (
	"log/slog"
	"time"

	"github.com/codyrobertson/codeshot/filter"
	"github.com/codyrobertson/codeshot/text"
	"github.com/codyrobertson/codeshot/theme"
)

// Options control the geometry and decoration of a render. Sizes are in
// logical pixels; the device scale multiplies all of them.
type Options struct {
	// Width is the editor window width.
	Width float64

	// Padding separates the window edge (or title bar) from the code.
	Padding float64

	// OuterPadding separates the canvas edge from the window.
	OuterPadding float64

	// FontSize is the code font size. Must be positive.
	FontSize float64

	// FontFamily names a family registered with the font library. Unknown
	// families fall back to Go Mono.
	FontFamily string

	// LineHeight multiplies FontSize. Zero selects 1.5.
	LineHeight float64

	// ShowLineNumbers adds a gutter with source line numbers.
	ShowLineNumbers bool

	// ShowChrome draws the title bar with its three status dots.
	ShowChrome bool

	// Shadow draws a drop shadow below the window.
	Shadow bool

	// WrapWidth soft-wraps lines wider than this. Zero disables wrapping;
	// overlong lines are then cut at the content edge.
	WrapWidth float64

	// Scale is the device scale factor. Must be at least 1.
	Scale float64

	// TabWidth is the tab stop distance in columns. Values below 1 select
	// text.DefaultTabWidth.
	TabWidth int

	// Background overrides the theme's canvas color with a #rrggbb value.
	// Invalid values are ignored.
	Background string
}

// DefaultOptions returns the options of a typical shareable snippet: an
// 800px window with chrome and shadow, 14px Go Mono, rendered at 2x.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Padding:      24,
		OuterPadding: 48,
		FontSize:     14,
		FontFamily:   text.DefaultFamily,
		LineHeight:   1.5,
		ShowChrome:   true,
		Shadow:       true,
		Scale:        2,
		TabWidth:     text.DefaultTabWidth,
	}
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r := codeshot.New(
//	    codeshot.WithLogger(logger),
//	    codeshot.WithCacheDir(dir),
//	)
type Option func(*rendererOptions)

type rendererOptions struct {
	logger       *slog.Logger
	themes       *theme.Catalog
	fonts        *text.Library
	filters      *filter.Registry
	glyphs       text.GlyphResolver
	glyphsSet    bool
	cacheDir     string
	cdn          string
	fetchTimeout time.Duration
	offline      bool
}

// WithLogger sets the logger of the renderer and of the components it
// creates. Without it the renderer uses Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) {
		o.logger = l
	}
}

// WithThemes replaces the theme catalog, for example one with themes loaded
// from a file.
func WithThemes(c *theme.Catalog) Option {
	return func(o *rendererOptions) {
		o.themes = c
	}
}

// WithFonts replaces the font library.
func WithFonts(l *text.Library) Option {
	return func(o *rendererOptions) {
		o.fonts = l
	}
}

// WithFilters replaces the shader registry.
func WithFilters(r *filter.Registry) Option {
	return func(o *rendererOptions) {
		o.filters = r
	}
}

// WithResolver sets the emoji resolver. A nil resolver draws every emoji as
// text. WithCacheDir, WithCDN, WithFetchTimeout and WithOffline only affect
// the default resolver and are ignored when a resolver is given.
func WithResolver(r text.GlyphResolver) Option {
	return func(o *rendererOptions) {
		o.glyphs = r
		o.glyphsSet = true
	}
}

// WithCacheDir enables the on-disk emoji cache under dir.
func WithCacheDir(dir string) Option {
	return func(o *rendererOptions) {
		o.cacheDir = dir
	}
}

// WithCDN sets the emoji URL template; "{key}" is replaced by the
// codepoint key, such as "1f680".
func WithCDN(urlTemplate string) Option {
	return func(o *rendererOptions) {
		o.cdn = urlTemplate
	}
}

// WithFetchTimeout bounds each emoji download.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *rendererOptions) {
		o.fetchTimeout = d
	}
}

// WithOffline disables emoji downloads; only cached emoji render as images.
func WithOffline() Option {
	return func(o *rendererOptions) {
		o.offline = true
	}
}
