package quickadd

import "errors"

// Domain-specific errors for the quickadd package.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrUnrecognized = errors.New("could not parse a date/time from the input")
	ErrNoBackend    = errors.New("no calendar backend configured")
)
