package parser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"quickcal/pkg/datetext"
)

// allDayKeywords marks an event as all-day when present in the raw text and
// no explicit time was captured.
var allDayKeywords = []string{
	"birthday",
	"anniversary",
	"holiday",
	"vacation",
	"trip",
	"day off",
	"meeting all day",
	"all-day",
	"all day",
	"wedding",
}

// Engine turns a free-form phrase into a structured calendar event.
//
// Recognizers run in strict priority order; the first whose trigger pattern
// matches consumes the text. A specialized recognizer that matched but could
// not build a valid date demotes to the generic fallback.
type Engine struct {
	cascade []recognizer
	generic genericRecognizer
}

// NewEngine wires the recognizer cascade around the given date/time
// recognition library.
func NewEngine(dates datetext.IDates) *Engine {
	return &Engine{
		cascade: []recognizer{
			explicitDateRecognizer{},
			tomorrowRecognizer{},
			weekdayRecognizer{},
			nextWeekRecognizer{},
			bareTimeRecognizer{dates: dates},
		},
		generic: genericRecognizer{dates: dates},
	}
}

// Extract parses text relative to now. It returns ErrNoDateTime when no
// recognizer produces a result.
func (e *Engine) Extract(text string, now time.Time) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoDateTime
	}

	sel, trace := e.selectMatch(text, now)
	if sel == nil {
		return nil, ErrNoDateTime
	}

	start := sel.when
	// The generic library can misread ambiguous numeric tokens as
	// far-future years.
	if start.Year() > now.Year()+10 {
		trace = append(trace, fmt.Sprintf("clamping year %d back to %d", start.Year(), now.Year()))
		start = time.Date(now.Year(), start.Month(), start.Day(),
			start.Hour(), start.Minute(), start.Second(), 0, time.Local)
	}

	allDay := !sel.explicitTime && (isMidnight(start) || hasAllDayKeyword(text))

	var end time.Time
	if allDay {
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
		end = start.AddDate(0, 0, 1)
	} else {
		end = start.Add(time.Hour)
	}

	title := Clean(text, sel.consumed)
	trace = append(trace, fmt.Sprintf("title %q, all-day=%t, start=%s", title, allDay, start.Format(time.RFC3339)))

	return &Result{
		Title:   title,
		Start:   start,
		End:     end,
		AllDay:  allDay,
		Matched: sel.consumed,
		Trace:   trace,
	}, nil
}

// selectMatch walks the cascade; exactly one recognizer determines the
// output, with the documented degrade-to-generic exception.
func (e *Engine) selectMatch(text string, now time.Time) (*match, []string) {
	var trace []string

	for _, rec := range e.cascade {
		m, err := rec.tryMatch(text, now)
		if errors.Is(err, errDegrade) {
			trace = append(trace, "specialized recognizer matched but built an invalid date, degrading to generic")
			return e.tryGeneric(text, now, trace)
		}
		if m != nil {
			return m, appendMatchTrace(trace, m)
		}
	}

	return e.tryGeneric(text, now, trace)
}

func (e *Engine) tryGeneric(text string, now time.Time, trace []string) (*match, []string) {
	m, _ := e.generic.tryMatch(text, now)
	if m == nil {
		return nil, append(trace, "generic recognizer found nothing")
	}
	return m, appendMatchTrace(trace, m)
}

func appendMatchTrace(trace []string, m *match) []string {
	return append(trace, fmt.Sprintf("recognizer %q matched %v -> %s",
		m.recognizer, m.consumed, m.when.Format(time.RFC3339)))
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0
}

func hasAllDayKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range allDayKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
