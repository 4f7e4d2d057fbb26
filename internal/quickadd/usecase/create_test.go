package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickcal/internal/parser"
	"quickcal/internal/quickadd"
	"quickcal/pkg/datetext"
	"quickcal/pkg/reminder"
)

// Wednesday, March 4, 2026, 08:00 local.
var testNow = time.Date(2026, time.March, 4, 8, 0, 0, 0, time.Local)

func newTestUseCase(dates datetext.IDates, cal *fakeCalendar) *implUseCase {
	uc := New(noopLogger{}, parser.NewEngine(dates), nil)
	if cal != nil {
		uc.calendar = cal
	}
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestCreateTimedEventWithReminder(t *testing.T) {
	cal := &fakeCalendar{}
	uc := newTestUseCase(fakeDates{}, cal)

	off, err := reminder.Parse("1h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := uc.Create(context.Background(), quickadd.CreateInput{
		RawText:  "team meeting tomorrow at 2pm",
		Reminder: &off,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSummary := "✅ Added event: 'team meeting' on Thursday, March 5 at 2:00 PM with 1h reminder"
	if out.Summary != wantSummary {
		t.Errorf("summary = %q, want %q", out.Summary, wantSummary)
	}
	if out.ReminderMinutes != 60 {
		t.Errorf("reminder minutes = %d, want 60", out.ReminderMinutes)
	}

	if len(cal.created) != 1 {
		t.Fatalf("created %d events, want 1", len(cal.created))
	}
	ev := cal.created[0]
	if ev.Title != "team meeting" {
		t.Errorf("event title = %q, want %q", ev.Title, "team meeting")
	}
	wantStart := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.Local)
	if !ev.Start.Equal(wantStart) {
		t.Errorf("event start = %v, want %v", ev.Start, wantStart)
	}
	if !ev.End.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("event end = %v, want start+1h", ev.End)
	}
	if ev.AllDay {
		t.Error("event AllDay = true, want false")
	}
	if ev.ReminderMinutes != 60 {
		t.Errorf("event reminder minutes = %d, want 60", ev.ReminderMinutes)
	}
}

func TestCreateDryRunSkipsCalendar(t *testing.T) {
	cal := &fakeCalendar{}
	uc := newTestUseCase(fakeDates{}, cal)

	out, err := uc.Create(context.Background(), quickadd.CreateInput{
		RawText: "team meeting tomorrow at 2pm",
		DryRun:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSummary := "✅ Would add event: 'team meeting' on Thursday, March 5 at 2:00 PM"
	if out.Summary != wantSummary {
		t.Errorf("summary = %q, want %q", out.Summary, wantSummary)
	}
	if len(cal.created) != 0 {
		t.Errorf("created %d events during dry run, want 0", len(cal.created))
	}
}

func TestCreateAllDayEvent(t *testing.T) {
	dates := fakeDates{
		search: func(string, time.Time) []datetext.Match {
			return []datetext.Match{
				{Text: "may 18th", Time: time.Date(2026, time.May, 18, 0, 0, 0, 0, time.Local)},
			}
		},
	}
	cal := &fakeCalendar{}
	uc := newTestUseCase(dates, cal)

	out, err := uc.Create(context.Background(), quickadd.CreateInput{
		RawText: "kids birthday may 18th",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSummary := "✅ Added all-day event: 'kids birthday' on Monday, May 18, 2026"
	if out.Summary != wantSummary {
		t.Errorf("summary = %q, want %q", out.Summary, wantSummary)
	}
	if !out.AllDay {
		t.Error("AllDay = false, want true")
	}
	if len(cal.created) != 1 || !cal.created[0].AllDay {
		t.Fatalf("expected one all-day event, got %+v", cal.created)
	}
}

func TestCreateUnrecognizedInput(t *testing.T) {
	uc := newTestUseCase(fakeDates{}, &fakeCalendar{})

	_, err := uc.Create(context.Background(), quickadd.CreateInput{RawText: "buy milk"})
	if !errors.Is(err, quickadd.ErrUnrecognized) {
		t.Fatalf("error = %v, want ErrUnrecognized", err)
	}
}

func TestCreateEmptyInput(t *testing.T) {
	uc := newTestUseCase(fakeDates{}, &fakeCalendar{})

	_, err := uc.Create(context.Background(), quickadd.CreateInput{RawText: "   "})
	if !errors.Is(err, quickadd.ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestCreateSurfacesCalendarDiagnostic(t *testing.T) {
	diag := errors.New("calendar.app: permission denied")
	uc := newTestUseCase(fakeDates{}, &fakeCalendar{err: diag})

	_, err := uc.Create(context.Background(), quickadd.CreateInput{
		RawText: "team meeting tomorrow at 2pm",
	})
	if !errors.Is(err, diag) {
		t.Fatalf("error = %v, want the backend diagnostic", err)
	}
}

func TestCreateWithoutBackend(t *testing.T) {
	uc := newTestUseCase(fakeDates{}, nil)

	_, err := uc.Create(context.Background(), quickadd.CreateInput{
		RawText: "team meeting tomorrow at 2pm",
	})
	if !errors.Is(err, quickadd.ErrNoBackend) {
		t.Fatalf("error = %v, want ErrNoBackend", err)
	}
}
