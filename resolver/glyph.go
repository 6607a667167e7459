// Package resolver turns emoji graphemes into images.
//
// A Resolver looks an emoji up in three tiers: an in-process map, a
// directory of PNG files, and a Twemoji-compatible CDN. Every outcome is
// remembered for the life of the Resolver, including failures, so an emoji
// is fetched and decoded at most once. Resolution never fails: when no image
// can be found the Glyph is a fallback and the grapheme is drawn as text.
package resolver

import "image"

// Glyph is a resolved emoji.
type Glyph struct {
	// Key is the asset name of the emoji, for example "1f680".
	Key string

	// Text is the grapheme the glyph was resolved from.
	Text string

	// Image is the decoded emoji bitmap, or nil for a fallback glyph.
	Image image.Image
}

// Fallback reports whether the glyph has no image.
func (g *Glyph) Fallback() bool {
	return g.Image == nil
}
