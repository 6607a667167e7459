// Package highlight classifies source lines into color-tagged spans.
//
// It is a lightweight lexer, not a parser: keywords, strings, comments,
// numbers and punctuation are recognized with per-language tables so the same
// construct always receives the same class. Exact grammar fidelity is not a
// goal.
package highlight

// Class is the semantic class of a span. Themes map classes to colors.
type Class uint8

// Token classes.
const (
	Plain Class = iota
	Keyword
	String
	Comment
	Number
	Function
	Type
	Constant
	Operator
	Punctuation
	LineNumber

	classCount
)

var classNames = [...]string{
	Plain:       "plain",
	Keyword:     "keyword",
	String:      "string",
	Comment:     "comment",
	Number:      "number",
	Function:    "function",
	Type:        "type",
	Constant:    "constant",
	Operator:    "operator",
	Punctuation: "punctuation",
	LineNumber:  "line-number",
}

// String returns the class name used in theme files.
func (c Class) String() string {
	if c < classCount {
		return classNames[c]
	}
	return "unknown"
}

// ParseClass maps a theme-file name back to its class.
func ParseClass(name string) (Class, bool) {
	for i, n := range classNames {
		if n == name {
			return Class(i), true
		}
	}
	return Plain, false
}

// Classes returns every class in declaration order.
func Classes() []Class {
	out := make([]Class, 0, classCount)
	for c := Plain; c < classCount; c++ {
		out = append(out, c)
	}
	return out
}

// Span is a run of line text sharing one class.
type Span struct {
	Text  string
	Class Class
}

// State carries multi-line constructs from one line to the next.
type State uint8

// Lexer states.
const (
	StateNormal State = iota
	StateBlockComment
	StateTripleDouble // inside """ ... """
	StateTripleSingle // inside ''' ... '''
	StateBacktick     // inside a multi-line `raw` string
)
