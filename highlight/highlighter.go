package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	operatorChars    = "+-*/%=<>!&|^~?:@"
	punctuationChars = "(){}[],.;"
)

// Highlighter tokenizes lines of one language. It holds no per-line state,
// so a Highlighter may be shared by concurrent renders.
type Highlighter struct {
	lang  *language
	words map[string]Class
}

// New returns a highlighter for the given language tag. The tag is advisory:
// unknown tags get a generic C-family/scripting lexer.
func New(languageTag string) *Highlighter {
	lang := lookupLanguage(languageTag)
	words := make(map[string]Class, len(lang.keywords)+len(lang.types)+len(lang.constants))
	for _, w := range lang.types {
		words[w] = Type
	}
	for _, w := range lang.constants {
		words[w] = Constant
	}
	for _, w := range lang.keywords {
		words[w] = Keyword
	}
	return &Highlighter{lang: lang, words: words}
}

// Language returns the canonical language name the highlighter lexes.
func (h *Highlighter) Language() string {
	return h.lang.name
}

// HighlightLine splits one line into spans that cover it exactly, left to
// right. prev is the state returned for the previous line; the returned
// state feeds the next one.
func (h *Highlighter) HighlightLine(line string, prev State) ([]Span, State) {
	l := lexer{line: line}
	i := 0

	if prev != StateNormal {
		end, closed := closeState(line, 0, prev)
		l.emit(0, end, stateClass(prev))
		if !closed {
			return l.spans, prev
		}
		i = end
	}

	state := StateNormal
	for i < len(line) {
		c := line[i]
		switch {
		case h.lineCommentAt(line, i):
			l.emit(i, len(line), Comment)
			i = len(line)

		case h.lang.blockComment && strings.HasPrefix(line[i:], "/*"):
			end, closed := closeState(line, i+2, StateBlockComment)
			l.emit(i, end, Comment)
			if !closed {
				state = StateBlockComment
			}
			i = end

		case h.lang.tripleQuotes && (strings.HasPrefix(line[i:], `"""`) || strings.HasPrefix(line[i:], `'''`)):
			st := StateTripleDouble
			if c == '\'' {
				st = StateTripleSingle
			}
			end, closed := closeState(line, i+3, st)
			l.emit(i, end, String)
			if !closed {
				state = st
			}
			i = end

		case c == '`' && h.lang.backtickRaw:
			end, closed := closeState(line, i+1, StateBacktick)
			l.emit(i, end, String)
			if !closed {
				state = StateBacktick
			}
			i = end

		case c == '"' || c == '\'' || c == '`':
			end := scanQuoted(line, i)
			l.emit(i, end, String)
			i = end

		case isDigit(c) || (c == '.' && i+1 < len(line) && isDigit(line[i+1])):
			end := scanNumber(line, i)
			l.emit(i, end, Number)
			i = end

		case strings.IndexByte(operatorChars, c) >= 0:
			l.emit(i, i+1, Operator)
			i++

		case strings.IndexByte(punctuationChars, c) >= 0:
			l.emit(i, i+1, Punctuation)
			i++

		default:
			r, size := utf8.DecodeRuneInString(line[i:])
			if isIdentStart(r) {
				end := scanIdent(line, i)
				l.emit(i, end, h.classifyWord(line, i, end))
				i = end
				continue
			}
			l.emit(i, i+size, Plain)
			i += size
		}
	}

	return l.spans, state
}

// HighlightAll tokenizes every line, carrying multi-line state.
func (h *Highlighter) HighlightAll(lines []string) [][]Span {
	out := make([][]Span, len(lines))
	state := StateNormal
	for i, line := range lines {
		out[i], state = h.HighlightLine(line, state)
	}
	return out
}

func (h *Highlighter) lineCommentAt(line string, i int) bool {
	for _, marker := range h.lang.lineComments {
		if strings.HasPrefix(line[i:], marker) {
			return true
		}
	}
	return false
}

func (h *Highlighter) classifyWord(line string, start, end int) Class {
	word := line[start:end]
	if c, ok := h.words[word]; ok {
		return c
	}

	rest := strings.TrimLeft(line[end:], " \t")
	if strings.HasPrefix(rest, "(") {
		return Function
	}

	if h.lang.capitalTypes {
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(first) {
			return Type
		}
	}
	return Plain
}

// lexer accumulates spans, merging neighbours of the same class.
type lexer struct {
	line  string
	spans []Span
}

func (l *lexer) emit(start, end int, class Class) {
	if end <= start {
		return
	}
	if n := len(l.spans); n > 0 && l.spans[n-1].Class == class {
		l.spans[n-1].Text += l.line[start:end]
		return
	}
	l.spans = append(l.spans, Span{Text: l.line[start:end], Class: class})
}

func stateClass(s State) Class {
	if s == StateBlockComment {
		return Comment
	}
	return String
}

// closeState searches line[from:] for the terminator of state. It returns
// the end offset of the construct and whether it was closed on this line.
func closeState(line string, from int, s State) (int, bool) {
	var marker string
	switch s {
	case StateBlockComment:
		marker = "*/"
	case StateTripleDouble:
		marker = `"""`
	case StateTripleSingle:
		marker = `'''`
	case StateBacktick:
		marker = "`"
	default:
		return from, true
	}

	if from > len(line) {
		from = len(line)
	}
	idx := strings.Index(line[from:], marker)
	if idx < 0 {
		return len(line), false
	}
	return from + idx + len(marker), true
}

// scanQuoted returns the end of a single-line quoted string starting at i.
// Unterminated strings run to the end of the line.
func scanQuoted(line string, i int) int {
	quote := line[i]
	j := i + 1
	for j < len(line) {
		switch line[j] {
		case '\\':
			j += 2
			continue
		case quote:
			return j + 1
		}
		j++
	}
	return len(line)
}

func scanNumber(line string, i int) int {
	j := i
	for j < len(line) {
		c := line[j]
		if !isDigit(c) && !isASCIILetter(c) && c != '.' && c != '_' {
			break
		}
		j++
	}
	return j
}

func scanIdent(line string, i int) int {
	j := i
	for j < len(line) {
		r, size := utf8.DecodeRuneInString(line[j:])
		if !isIdentStart(r) && !unicode.IsDigit(r) {
			break
		}
		j += size
	}
	return j
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
