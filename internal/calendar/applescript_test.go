package calendar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAppleScriptCreateRendersEvent(t *testing.T) {
	var captured string
	svc := NewAppleScript(`Work "Stuff"`)
	svc.run = func(_ context.Context, script string) ([]byte, error) {
		captured = script
		return nil, nil
	}

	ev := Event{
		Title:           `dentist "checkup"`,
		Start:           time.Date(2026, time.May, 15, 10, 0, 0, 0, time.Local),
		End:             time.Date(2026, time.May, 15, 11, 0, 0, 0, time.Local),
		ReminderMinutes: 60,
	}
	if err := svc.Create(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`tell calendar "Work \"Stuff\""`,
		`summary:"dentist \"checkup\""`,
		`start date:date "Friday, May 15, 2026 at 10:00:00 AM"`,
		`end date:date "Friday, May 15, 2026 at 11:00:00 AM"`,
		`trigger interval:-60`,
	} {
		if !strings.Contains(captured, want) {
			t.Errorf("script missing %q:\n%s", want, captured)
		}
	}
	if strings.Contains(captured, "allday event") {
		t.Errorf("timed event should not set allday property:\n%s", captured)
	}
}

func TestAppleScriptCreateAllDayWithoutReminder(t *testing.T) {
	var captured string
	svc := NewAppleScript("Home")
	svc.run = func(_ context.Context, script string) ([]byte, error) {
		captured = script
		return nil, nil
	}

	ev := Event{
		Title:  "kids birthday",
		Start:  time.Date(2026, time.May, 18, 0, 0, 0, 0, time.Local),
		End:    time.Date(2026, time.May, 19, 0, 0, 0, 0, time.Local),
		AllDay: true,
	}
	if err := svc.Create(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(captured, "allday event:true") {
		t.Errorf("script missing allday property:\n%s", captured)
	}
	if strings.Contains(captured, "display alarm") {
		t.Errorf("no reminder requested but alarm present:\n%s", captured)
	}
}

func TestAppleScriptCreateSurfacesDiagnostic(t *testing.T) {
	svc := NewAppleScript("Home")
	svc.run = func(context.Context, string) ([]byte, error) {
		return []byte("execution error: Calendar got an error (-1728)\n"), errors.New("exit status 1")
	}

	err := svc.Create(context.Background(), Event{Title: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Calendar got an error (-1728)") {
		t.Errorf("diagnostic not surfaced: %v", err)
	}
}
