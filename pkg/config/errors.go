package config

import "errors"

var (
	// ErrNilPointer indicates a nil configuration struct was passed
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrParsingConfig wraps environment parsing failures
	ErrParsingConfig = errors.New("config: failed to parse configuration")
)
