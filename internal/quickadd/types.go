package quickadd

import (
	"time"

	"quickcal/pkg/reminder"
)

// CreateInput is the input for quick-adding one event.
type CreateInput struct {
	RawText  string           // Natural language event description from the user
	Reminder *reminder.Offset // Optional reminder offset; nil means none
	DryRun   bool             // Extract and preview only, skip the calendar call
}

// CreateOutput is the result of a quick-add.
type CreateOutput struct {
	Title           string
	Start           time.Time
	End             time.Time
	AllDay          bool
	ReminderMinutes int

	// Summary is the user-facing confirmation line.
	Summary string
}
