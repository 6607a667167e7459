// Package codeshot renders source-code snippets as PNG screenshots.
//
// # Overview
//
// A Renderer turns a Request into an image of the code inside a simulated
// editor window: syntax-colored text on a themed background, an optional
// title bar with status dots, optional line numbers and inline emoji. A
// post-processing shader can distort the finished image before it is
// encoded.
//
// # Quick Start
//
//	r := codeshot.New()
//
//	req := codeshot.Request{
//	    Code:     "package main\n\nfunc main() {}\n",
//	    Language: "go",
//	    Theme:    "dracula",
//	    Options:  codeshot.DefaultOptions(),
//	}
//	png, err := r.RenderPNG(ctx, req)
//
// # Pipeline
//
// Render runs the stages in order, each owning the pixel buffer until it
// hands it on:
//
//   - line selection (Request.LineRange) and tab expansion
//   - highlighting and optional soft wrap
//   - layout (package layout)
//   - compositing (package compositor), resolving emoji through the
//     shared resolver (package resolver)
//   - the optional shader (package filter)
//   - PNG encoding
//
// # Failure Model
//
// Only an impossible layout, an unusable font, a canceled context or an
// encoder fault fail a render; these come back as *RenderError. Anything
// cosmetic degrades instead: an unknown theme uses the fallback theme, an
// unknown shader is skipped, and an emoji that cannot be fetched is drawn as
// text. Degradations are logged at warn level.
//
// # Logging
//
// Renderers log through log/slog. By default nothing is logged; pass
// WithLogger, or call SetLogger to set the default for renderers created
// afterwards.
package codeshot
