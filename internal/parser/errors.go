package parser

import "errors"

// ErrNoDateTime is returned when no recognizer produces a date/time for the
// input. Terminal, non-retryable.
var ErrNoDateTime = errors.New("no date/time recognized in input")

// errDegrade demotes the cascade to the generic recognizer when a specialized
// recognizer matched but could not build a valid date.
var errDegrade = errors.New("degrade to generic recognizer")
