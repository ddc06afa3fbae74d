package analyses

import "errors"

var (
	// ErrInvalidInput indicates a request the pipeline cannot run on.
	ErrInvalidInput = errors.New("invalid input")
)
