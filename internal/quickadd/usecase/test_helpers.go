package usecase

import (
	"context"
	"time"

	"quickcal/internal/calendar"
	"quickcal/pkg/datetext"
)

// noopLogger satisfies pkg/log.Logger for tests.
type noopLogger struct{}

func (noopLogger) Debug(context.Context, ...any)          {}
func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, ...any)           {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, ...any)           {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, ...any)          {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// fakeCalendar records the event it was asked to create.
type fakeCalendar struct {
	created []calendar.Event
	err     error
}

func (f *fakeCalendar) Create(_ context.Context, ev calendar.Event) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, ev)
	return nil
}

// fakeDates stubs the generic date/time recognition library.
type fakeDates struct {
	parse  func(text string, base time.Time) (time.Time, bool)
	search func(text string, base time.Time) []datetext.Match
}

func (f fakeDates) ParseOne(text string, base time.Time) (time.Time, bool) {
	if f.parse == nil {
		return time.Time{}, false
	}
	return f.parse(text, base)
}

func (f fakeDates) SearchAll(text string, base time.Time) []datetext.Match {
	if f.search == nil {
		return nil
	}
	return f.search(text, base)
}
