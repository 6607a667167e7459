package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ParseError reports a settings file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config: parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("config: parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var de *toml.DecodeError
	var sm *toml.StrictMissingError
	switch {
	case errors.As(err, &de):
		pe.Line, pe.Column = de.Position()
	case errors.As(err, &sm) && len(sm.Errors) > 0:
		pe.Line, pe.Column = sm.Errors[0].Position()
	}
	return pe
}
