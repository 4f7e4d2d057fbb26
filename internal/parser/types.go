package parser

import "time"

// Result is the extraction engine's output for one phrase.
type Result struct {
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool

	// Matched holds the substrings consumed by recognition, in the order
	// they were captured. They feed the title cleaner.
	Matched []string

	// Trace holds human-readable parse diagnostics. Advisory only; the
	// caller decides whether to display them.
	Trace []string
}
