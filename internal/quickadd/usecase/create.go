package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"quickcal/internal/calendar"
	"quickcal/internal/quickadd"
)

// Create parses the raw text, builds the confirmation summary, and creates
// the event through the calendar backend unless DryRun is set.
func (uc *implUseCase) Create(ctx context.Context, input quickadd.CreateInput) (quickadd.CreateOutput, error) {
	text := strings.TrimSpace(input.RawText)
	if text == "" {
		return quickadd.CreateOutput{}, quickadd.ErrEmptyInput
	}

	traceID := uuid.NewString()

	res, err := uc.engine.Extract(text, uc.now())
	if err != nil {
		uc.l.Debugf(ctx, "quickadd [%s]: extraction failed for %q: %v", traceID, text, err)
		return quickadd.CreateOutput{}, fmt.Errorf("%w: %q", quickadd.ErrUnrecognized, text)
	}
	for _, line := range res.Trace {
		uc.l.Debugf(ctx, "quickadd [%s]: %s", traceID, line)
	}

	out := quickadd.CreateOutput{
		Title:  res.Title,
		Start:  res.Start,
		End:    res.End,
		AllDay: res.AllDay,
	}
	if input.Reminder != nil {
		out.ReminderMinutes = input.Reminder.Minutes
	}
	out.Summary = buildSummary(out, input)

	if input.DryRun {
		return out, nil
	}
	if uc.calendar == nil {
		return out, quickadd.ErrNoBackend
	}

	ev := calendar.Event{
		Title:           out.Title,
		Start:           out.Start,
		End:             out.End,
		AllDay:          out.AllDay,
		ReminderMinutes: out.ReminderMinutes,
	}
	if err := uc.calendar.Create(ctx, ev); err != nil {
		uc.l.Errorf(ctx, "quickadd [%s]: calendar backend failed: %v", traceID, err)
		return out, err
	}

	return out, nil
}
