package codeshot

// Request is one render. It is read-only to the renderer.
type Request struct {
	// Code is the snippet. Line endings may be \n or \r\n.
	Code string

	// Language selects the highlighting rules, such as "go" or "py".
	// Unknown languages get generic rules.
	Language string

	// Theme names a theme in the renderer's catalog. Unknown names render
	// with the fallback theme.
	Theme string

	// Shader names an optional post-processing effect: "halftone",
	// "wave-gradient" or "disruptor". Empty or unknown names apply none.
	Shader string

	// LineRange selects lines as "N" or "N-M", 1-indexed and inclusive.
	// Empty selects every line.
	LineRange string

	Options Options
}
