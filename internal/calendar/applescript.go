package calendar

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"text/template"
)

// appleScriptDateFormat is the literal date form Calendar.app accepts.
const appleScriptDateFormat = "Monday, January 2, 2006 at 3:04:05 PM"

var appleScriptTemplate = template.Must(template.New("event").Parse(
	`tell application "Calendar"
	tell calendar "{{.Calendar}}"
		set newEvent to make new event with properties {summary:"{{.Title}}", start date:date "{{.Start}}", end date:date "{{.End}}"{{if .AllDay}}, allday event:true{{end}}}
{{- if .ReminderMinutes}}
		tell newEvent
			make new display alarm at end with properties {trigger interval:-{{.ReminderMinutes}}}
		end tell
{{- end}}
	end tell
end tell`))

type appleScriptData struct {
	Calendar        string
	Title           string
	Start           string
	End             string
	AllDay          bool
	ReminderMinutes int
}

// AppleScriptService adds events to macOS Calendar.app by rendering an
// AppleScript program and running it through osascript.
type AppleScriptService struct {
	calendarName string
	run          func(ctx context.Context, script string) ([]byte, error)
}

// NewAppleScript creates the osascript-backed calendar service targeting the
// named Calendar.app calendar.
func NewAppleScript(calendarName string) *AppleScriptService {
	return &AppleScriptService{
		calendarName: calendarName,
		run: func(ctx context.Context, script string) ([]byte, error) {
			return exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput()
		},
	}
}

// Create renders and runs the event-creation script. osascript's combined
// output is the diagnostic on failure.
func (s *AppleScriptService) Create(ctx context.Context, ev Event) error {
	script, err := s.renderScript(ev)
	if err != nil {
		return fmt.Errorf("applescript template: %w", err)
	}

	out, err := s.run(ctx, script)
	if err != nil {
		diag := strings.TrimSpace(string(out))
		if diag == "" {
			diag = err.Error()
		}
		return fmt.Errorf("calendar.app: %s", diag)
	}
	return nil
}

func (s *AppleScriptService) renderScript(ev Event) (string, error) {
	data := appleScriptData{
		Calendar:        escapeAppleScript(s.calendarName),
		Title:           escapeAppleScript(ev.Title),
		Start:           ev.Start.Format(appleScriptDateFormat),
		End:             ev.End.Format(appleScriptDateFormat),
		AllDay:          ev.AllDay,
		ReminderMinutes: ev.ReminderMinutes,
	}

	var buf bytes.Buffer
	if err := appleScriptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// escapeAppleScript protects embedded quotes and backslashes in string
// literals interpolated into the script.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
