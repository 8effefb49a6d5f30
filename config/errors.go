package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the target struct.
	ErrParsingConfig = errors.New("config.parsing_failed")

	// ErrNilPointer is returned when Load receives a nil pointer.
	ErrNilPointer = errors.New("config.nil_pointer")
)
