package calendar

import "time"

// Event is the payload a backend turns into a real calendar entry.
type Event struct {
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool

	// ReminderMinutes is how long before Start a notification fires.
	// Zero means no reminder.
	ReminderMinutes int
}
