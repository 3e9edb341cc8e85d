package tokencache

import "errors"

var (
	// ErrInvalidMaxSize indicates a capacity below one entry.
	ErrInvalidMaxSize = errors.New("tokencache: max size must be at least 1")

	// ErrInvalidTTL indicates a negative time-to-live.
	ErrInvalidTTL = errors.New("tokencache: ttl must not be negative")
)
