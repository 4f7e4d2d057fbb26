package usecase

import (
	"fmt"

	"quickcal/internal/quickadd"
)

const (
	allDayDateFormat = "Monday, January 2, 2006"
	timedDateFormat  = "Monday, January 2 at 3:04 PM"
)

// buildSummary renders the user-facing confirmation line.
func buildSummary(out quickadd.CreateOutput, input quickadd.CreateInput) string {
	verb := "Added"
	if input.DryRun {
		verb = "Would add"
	}

	kind := "event"
	when := out.Start.Format(timedDateFormat)
	if out.AllDay {
		kind = "all-day event"
		when = out.Start.Format(allDayDateFormat)
	}

	summary := fmt.Sprintf("✅ %s %s: '%s' on %s", verb, kind, out.Title, when)
	if input.Reminder != nil {
		summary += fmt.Sprintf(" with %s reminder", input.Reminder)
	}
	return summary
}
