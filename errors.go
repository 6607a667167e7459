package codeshot

import (
	"errors"
	"fmt"
)

// ErrConsumed is returned when an Image is encoded a second time.
var ErrConsumed = errors.New("codeshot: image already encoded")

// Stage names the pipeline step a RenderError comes from.
type Stage string

// Fatal pipeline stages.
const (
	StageLayout    Stage = "layout"
	StageFont      Stage = "font"
	StageComposite Stage = "composite"
	StageEncode    Stage = "encode"
)

// RenderError reports a render that produced no image.
type RenderError struct {
	Stage Stage

	// Input names the offending request field, if any.
	Input string

	Err error
}

func (e *RenderError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("codeshot: %s (%s): %v", e.Stage, e.Input, e.Err)
	}
	return fmt.Sprintf("codeshot: %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
