package match

import "errors"

// Error kinds returned by the extraction and scoring entry points.
// Everything downstream of a non-empty input is total: optional fields come
// back absent, never as errors.
var (
	// ErrParse — the extractor was given text it cannot work with (empty).
	ErrParse = errors.New("unparseable input")
	// ErrInvalidInput — a required argument is missing (empty job text).
	ErrInvalidInput = errors.New("invalid input")
)
