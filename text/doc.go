// Package text measures and draws lines of code.
//
// A Library holds parsed fonts keyed by family name; the embedded Go fonts
// are always available. Faces are cheap, sized views of a family: advances
// come from HarfBuzz shaping (go-text/typesetting) and glyphs are rasterized
// through golang.org/x/image/font.
//
//	lib := text.NewLibrary(nil)
//	face, err := lib.Face(text.FamilyMono, 16)
//	if err != nil {
//	    return err
//	}
//	defer face.Close()
//
//	canvas := text.NewCanvas(img, face, color.White)
//	r := text.NewEmojiRenderer(res)
//	width := r.Draw(ctx, canvas, "done 🎉", 32, 48, 16)
//
// Emoji never go through the font. EmojiRenderer splits a line with the
// emoji package and places each emoji image in a square box, so measurement
// and drawing always agree.
package text
