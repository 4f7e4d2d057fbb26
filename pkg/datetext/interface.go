package datetext

import "time"

// IDates defines the generic date/time text-recognition interface.
// Implementations are safe for concurrent use.
type IDates interface {
	// ParseOne interprets the whole text as a single date/time expression,
	// preferring future interpretations relative to base.
	ParseOne(text string, base time.Time) (time.Time, bool)

	// SearchAll scans the text for date/time substrings and returns them in
	// order of appearance. The result may be empty.
	SearchAll(text string, base time.Time) []Match
}

// New creates a recognizer backed by the go-dateparser library.
func New() IDates {
	return &recognizer{}
}
