package datetext

import "time"

// Match pairs a recognized date/time substring with the moment it resolves to.
type Match struct {
	Text string
	Time time.Time
}
