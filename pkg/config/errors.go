package config

import "errors"

var (
	// ErrParsingConfig wraps caarlos0/env parse failures.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrNilPointer is returned when Load receives a nil pointer.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")
)
