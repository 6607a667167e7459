package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab stop interval in columns.
const DefaultTabWidth = 4

// ExpandTabs replaces each tab with spaces up to the next tab stop. Columns
// are display columns, so wide runes count twice and combining marks not at
// all. A tabWidth below 1 uses DefaultTabWidth.
func ExpandTabs(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}

	var b strings.Builder
	b.Grow(len(line) + 2*tabWidth)
	col := 0
	for _, r := range line {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
