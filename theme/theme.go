// Package theme provides the named palettes a snapshot is painted with.
//
// A Theme carries the canvas background, the editor window color, the
// window-chrome style and the per-token-class text colors. Themes are looked
// up through a Catalog, which never fails: unknown names resolve to the
// fallback theme so a screenshot is always produced.
package theme

import (
	"errors"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/codyrobertson/codeshot/highlight"
)

// ErrInvalidColor is returned when a theme color is not a #rrggbb hex value.
var ErrInvalidColor = errors.New("theme: invalid color")

// ChromeStyle selects how the window title bar is drawn.
type ChromeStyle uint8

const (
	// ChromeMac draws a title bar with red, yellow and green status dots.
	ChromeMac ChromeStyle = iota

	// ChromeNone draws no title bar even when chrome is requested.
	ChromeNone
)

// String returns the style name used in theme files.
func (s ChromeStyle) String() string {
	switch s {
	case ChromeMac:
		return "mac"
	case ChromeNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseChromeStyle maps a theme-file name to a chrome style.
// The empty string selects ChromeMac.
func ParseChromeStyle(s string) (ChromeStyle, bool) {
	switch s {
	case "", "mac":
		return ChromeMac, true
	case "none":
		return ChromeNone, true
	default:
		return ChromeMac, false
	}
}

// Theme is a read-only palette. A Theme obtained from a Catalog must not be
// modified; Clone it first.
type Theme struct {
	// Name is the unique catalog key.
	Name string

	// Background fills the whole canvas.
	Background color.RGBA

	// Window fills the editor window body.
	Window color.RGBA

	// Chrome selects the title bar style.
	Chrome ChromeStyle

	// ChromeBar is the title bar color.
	ChromeBar color.RGBA

	// Default is the text color for every class without an override.
	Default color.RGBA

	// Tokens overrides the text color per token class.
	Tokens map[highlight.Class]color.RGBA
}

// Color returns the text color for a token class, falling back to Default.
func (t *Theme) Color(c highlight.Class) color.RGBA {
	if col, ok := t.Tokens[c]; ok {
		return col
	}
	return t.Default
}

// Clone returns a deep copy that is safe to modify.
func (t *Theme) Clone() *Theme {
	c := *t
	c.Tokens = make(map[highlight.Class]color.RGBA, len(t.Tokens))
	for k, v := range t.Tokens {
		c.Tokens[k] = v
	}
	return &c
}

// Hex parses a "#rrggbb" (or "#rgb") color.
func Hex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Join(ErrInvalidColor, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// mustHex is Hex for the built-in palettes.
func mustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
