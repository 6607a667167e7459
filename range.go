package codeshot

import (
	"strconv"
	"strings"
)

// SelectLines returns the lines of code picked by a range of the form "N"
// or "N-M" (1-indexed, inclusive) and the number of the first one. An empty
// range selects every line. A range that is malformed, reversed or starts
// past the last line selects nothing and returns first == 0; an end past
// the last line is clamped.
//
// A single trailing newline does not start another line.
func SelectLines(code, lineRange string) (lines []string, first int) {
	all := splitLines(code)

	lineRange = strings.TrimSpace(lineRange)
	if lineRange == "" {
		return all, 1
	}

	from, to, ok := parseRange(lineRange)
	if !ok || from > len(all) {
		return nil, 0
	}
	to = min(to, len(all))
	return all[from-1 : to], from
}

// SelectRange is SelectLines joined back into text.
func SelectRange(code, lineRange string) string {
	lines, _ := SelectLines(code, lineRange)
	return strings.Join(lines, "\n")
}

func splitLines(code string) []string {
	code = strings.ReplaceAll(code, "\r\n", "\n")
	code = strings.TrimSuffix(code, "\n")
	return strings.Split(code, "\n")
}

func parseRange(s string) (from, to int, ok bool) {
	lo, hi, isSpan := strings.Cut(s, "-")
	from, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil || from < 1 {
		return 0, 0, false
	}
	if !isSpan {
		return from, from, true
	}
	to, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil || to < from {
		return 0, 0, false
	}
	return from, to, true
}
