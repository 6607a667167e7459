// Package emoji finds emoji in text.
//
// Scan walks a string by grapheme cluster and returns alternating text and
// emoji spans; each emoji span is one complete sequence (ZWJ families, skin
// tones, flags, keycaps, subdivision tags). Key turns a sequence into the
// hyphenated code point name used to look up its image.
//
//	for _, sp := range emoji.Scan("ship it 🚀") {
//	    if sp.Kind == emoji.KindEmoji {
//	        key := emoji.Key(sp.Runes) // "1f680"
//	    }
//	}
//
// Classification follows Unicode Technical Report #51: characters whose
// default presentation is text (such as © or ❤) are only treated as emoji
// when followed by U+FE0F or joined into a larger sequence.
package emoji
