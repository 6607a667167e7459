package theme

import (
	"image/color"

	"github.com/codyrobertson/codeshot/highlight"
)

// ID enumerates the built-in themes. New themes are added by extending this
// set and the builtins table.
type ID uint8

// Built-in themes.
const (
	Dracula ID = iota
	Monokai
	GitHubDark
	GitHubLight
	Nord
	OneDark
	SolarizedLight
	Synthwave

	idCount
)

// Fallback is the theme used for unknown names.
const Fallback = Dracula

var idNames = [...]string{
	Dracula:        "dracula",
	Monokai:        "monokai",
	GitHubDark:     "github-dark",
	GitHubLight:    "github-light",
	Nord:           "nord",
	OneDark:        "one-dark",
	SolarizedLight: "solarized-light",
	Synthwave:      "synthwave-84",
}

// String returns the catalog name of the theme.
func (id ID) String() string {
	if id < idCount {
		return idNames[id]
	}
	return "unknown"
}

// IDs returns every built-in theme in declaration order.
func IDs() []ID {
	out := make([]ID, 0, idCount)
	for id := ID(0); id < idCount; id++ {
		out = append(out, id)
	}
	return out
}

// palette is the compact source form of a built-in theme.
type palette struct {
	background, window, bar, text string
	chrome                        ChromeStyle
	tokens                        map[highlight.Class]string
}

var builtins = [...]palette{
	Dracula: {
		background: "#8be9fd", window: "#282a36", bar: "#21222c", text: "#f8f8f2",
		tokens: map[highlight.Class]string{
			highlight.Keyword:     "#ff79c6",
			highlight.String:      "#f1fa8c",
			highlight.Comment:     "#6272a4",
			highlight.Number:      "#bd93f9",
			highlight.Function:    "#50fa7b",
			highlight.Type:        "#8be9fd",
			highlight.Constant:    "#bd93f9",
			highlight.Operator:    "#ff79c6",
			highlight.Punctuation: "#f8f8f2",
			highlight.LineNumber:  "#6272a4",
		},
	},
	Monokai: {
		background: "#a6e22e", window: "#272822", bar: "#1e1f1c", text: "#f8f8f2",
		tokens: map[highlight.Class]string{
			highlight.Keyword:    "#f92672",
			highlight.String:     "#e6db74",
			highlight.Comment:    "#75715e",
			highlight.Number:     "#ae81ff",
			highlight.Function:   "#a6e22e",
			highlight.Type:       "#66d9ef",
			highlight.Constant:   "#ae81ff",
			highlight.Operator:   "#f92672",
			highlight.LineNumber: "#75715e",
		},
	},
	GitHubDark: {
		background: "#6e40c9", window: "#0d1117", bar: "#161b22", text: "#c9d1d9",
		tokens: map[highlight.Class]string{
			highlight.Keyword:    "#ff7b72",
			highlight.String:     "#a5d6ff",
			highlight.Comment:    "#8b949e",
			highlight.Number:     "#79c0ff",
			highlight.Function:   "#d2a8ff",
			highlight.Type:       "#ffa657",
			highlight.Constant:   "#79c0ff",
			highlight.Operator:   "#ff7b72",
			highlight.LineNumber: "#6e7681",
		},
	},
	GitHubLight: {
		background: "#d0d7de", window: "#ffffff", bar: "#f6f8fa", text: "#24292f",
		tokens: map[highlight.Class]string{
			highlight.Keyword:    "#cf222e",
			highlight.String:     "#0a3069",
			highlight.Comment:    "#6e7781",
			highlight.Number:     "#0550ae",
			highlight.Function:   "#8250df",
			highlight.Type:       "#953800",
			highlight.Constant:   "#0550ae",
			highlight.Operator:   "#cf222e",
			highlight.LineNumber: "#8c959f",
		},
	},
	Nord: {
		background: "#88c0d0", window: "#2e3440", bar: "#3b4252", text: "#d8dee9",
		tokens: map[highlight.Class]string{
			highlight.Keyword:    "#81a1c1",
			highlight.String:     "#a3be8c",
			highlight.Comment:    "#616e88",
			highlight.Number:     "#b48ead",
			highlight.Function:   "#88c0d0",
			highlight.Type:       "#8fbcbb",
			highlight.Constant:   "#81a1c1",
			highlight.Operator:   "#81a1c1",
			highlight.LineNumber: "#4c566a",
		},
	},
	OneDark: {
		background: "#61afef", window: "#282c34", bar: "#21252b", text: "#abb2bf",
		tokens: map[highlight.Class]string{
			highlight.Keyword:    "#c678dd",
			highlight.String:     "#98c379",
			highlight.Comment:    "#5c6370",
			highlight.Number:     "#d19a66",
			highlight.Function:   "#61afef",
			highlight.Type:       "#e5c07b",
			highlight.Constant:   "#d19a66",
			highlight.Operator:   "#56b6c2",
			highlight.LineNumber: "#4b5263",
		},
	},
	SolarizedLight: {
		background: "#eee8d5", window: "#fdf6e3", bar: "#eee8d5", text: "#657b83",
		chrome: ChromeNone,
		tokens: map[highlight.Class]string{
			highlight.Keyword:    "#859900",
			highlight.String:     "#2aa198",
			highlight.Comment:    "#93a1a1",
			highlight.Number:     "#d33682",
			highlight.Function:   "#268bd2",
			highlight.Type:       "#b58900",
			highlight.Constant:   "#cb4b16",
			highlight.Operator:   "#859900",
			highlight.LineNumber: "#93a1a1",
		},
	},
	Synthwave: {
		background: "#ff7edb", window: "#262335", bar: "#1e1a2b", text: "#f0eff1",
		tokens: map[highlight.Class]string{
			highlight.Keyword:    "#fede5d",
			highlight.String:     "#ff8b39",
			highlight.Comment:    "#848bbd",
			highlight.Number:     "#f97e72",
			highlight.Function:   "#36f9f6",
			highlight.Type:       "#fe4450",
			highlight.Constant:   "#f97e72",
			highlight.Operator:   "#fede5d",
			highlight.LineNumber: "#495495",
		},
	},
}

// Builtin returns a fresh copy of a built-in theme.
func Builtin(id ID) *Theme {
	if id >= idCount {
		id = Fallback
	}
	p := builtins[id]
	tokens := make(map[highlight.Class]color.RGBA, len(p.tokens))
	for class, hex := range p.tokens {
		tokens[class] = mustHex(hex)
	}
	return &Theme{
		Name:       id.String(),
		Background: mustHex(p.background),
		Window:     mustHex(p.window),
		Chrome:     p.chrome,
		ChromeBar:  mustHex(p.bar),
		Default:    mustHex(p.text),
		Tokens:     tokens,
	}
}
