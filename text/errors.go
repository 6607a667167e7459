package text

import "errors"

var (
	// ErrEmptyFontData is returned when registering a family without data.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for a face size that is not positive.
	ErrInvalidSize = errors.New("text: font size must be positive")
)
