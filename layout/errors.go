package layout

import "strconv"

// Error reports an option that makes the geometry impossible to compute.
// It is fatal for a render.
type Error struct {
	Field  string
	Value  float64
	Reason string
}

func (e *Error) Error() string {
	return "layout: invalid " + e.Field + " " + strconv.FormatFloat(e.Value, 'g', -1, 64) + ": " + e.Reason
}
