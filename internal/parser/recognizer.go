package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"quickcal/pkg/datetext"
)

const (
	weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	clockAlt   = `(\d{1,2})(?::(\d{2}))?\s*(am|pm)`
)

var (
	timePattern         = regexp.MustCompile(`(?i)\b` + clockAlt + `\b`)
	explicitDatePattern = regexp.MustCompile(`(?i)\bon\s+([a-z]{3,9})\s+(\d{1,2})(?:st|nd|rd|th)?\s+at\s+` + clockAlt + `\b`)
	tomorrowAtPattern   = regexp.MustCompile(`(?i)\btomorrow\s+at\s+` + clockAlt + `\b`)
	weekdayPattern      = regexp.MustCompile(`(?i)\b(next\s+)?(` + weekdayAlt + `)\b(?:\s+at\s+` + clockAlt + `\b)?`)
	nextWeekPattern     = regexp.MustCompile(`(?i)\bnext\s+week\b`)
)

// match is the outcome of a successful recognizer attempt.
type match struct {
	recognizer   string
	when         time.Time
	consumed     []string
	explicitTime bool
}

// recognizer is one strategy in the priority cascade. It returns (nil, nil)
// when its trigger pattern does not apply, and errDegrade when it matched but
// could not produce a valid date.
type recognizer interface {
	tryMatch(text string, now time.Time) (*match, error)
}

// clock normalizes captured 12-hour components to 24-hour values.
func clock(hourStr, minuteStr, meridiem string) (int, int) {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}
	switch strings.ToLower(meridiem) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 12 {
			hour += 12
		}
	}
	return hour, minute
}

// withClock keeps the calendar date of t and replaces its time of day.
func withClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, time.Local)
}

var monthTable = []struct {
	name  string
	month time.Month
}{
	{"january", time.January},
	{"february", time.February},
	{"march", time.March},
	{"april", time.April},
	{"may", time.May},
	{"june", time.June},
	{"july", time.July},
	{"august", time.August},
	{"september", time.September},
	{"october", time.October},
	{"november", time.November},
	{"december", time.December},
}

// monthFromToken resolves a month fragment against the canonical table with a
// prefix rule in both directions, so "sep", "sept" and "september" all hit
// September. The longest canonical name wins; ties go to the earlier month.
// Tokens shorter than three letters never match.
func monthFromToken(token string) (time.Month, bool) {
	token = strings.ToLower(token)
	if len(token) < 3 {
		return 0, false
	}

	best := -1
	var bestMonth time.Month
	for _, entry := range monthTable {
		if !strings.HasPrefix(entry.name, token) && !strings.HasPrefix(token, entry.name) {
			continue
		}
		if len(entry.name) > best {
			best = len(entry.name)
			bestMonth = entry.month
		}
	}
	if best < 0 {
		return 0, false
	}
	return bestMonth, true
}

// buildDate constructs a local date and rejects impossible day-of-month
// values, which time.Date would otherwise silently normalize.
func buildDate(year int, month time.Month, day, hour, minute int) (time.Time, bool) {
	if day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, hour, minute, 0, 0, time.Local)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// weekdayOrdinal maps Monday=0 .. Sunday=6.
func weekdayOrdinal(d time.Weekday) int {
	return (int(d) + 6) % 7
}

var weekdayOrdinals = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// explicitDateRecognizer handles "on <month> <day>[st/nd/rd/th] at <time>".
type explicitDateRecognizer struct{}

func (explicitDateRecognizer) tryMatch(text string, now time.Time) (*match, error) {
	m := explicitDatePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	month, ok := monthFromToken(m[1])
	if !ok {
		return nil, errDegrade
	}
	day, _ := strconv.Atoi(m[2])
	hour, minute := clock(m[3], m[4], m[5])

	when, ok := buildDate(now.Year(), month, day, hour, minute)
	if !ok {
		return nil, errDegrade
	}
	if when.Before(now) {
		when, ok = buildDate(now.Year()+1, month, day, hour, minute)
		if !ok {
			return nil, errDegrade
		}
	}

	return &match{
		recognizer:   "explicit month-day-time",
		when:         when,
		consumed:     []string{m[0]},
		explicitTime: true,
	}, nil
}

// tomorrowRecognizer handles "tomorrow at <time>".
type tomorrowRecognizer struct{}

func (tomorrowRecognizer) tryMatch(text string, now time.Time) (*match, error) {
	m := tomorrowAtPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	hour, minute := clock(m[1], m[2], m[3])
	when := withClock(now.AddDate(0, 0, 1), hour, minute)

	return &match{
		recognizer:   "tomorrow at time",
		when:         when,
		consumed:     []string{m[0]},
		explicitTime: true,
	}, nil
}

// weekdayRecognizer handles weekday mentions with or without "next" and with
// an optional time ("next friday", "friday at 3pm", "friday").
type weekdayRecognizer struct{}

func (weekdayRecognizer) tryMatch(text string, now time.Time) (*match, error) {
	m := weekdayPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	target := weekdayOrdinals[strings.ToLower(m[2])]
	offset := (target - weekdayOrdinal(now.Weekday()) + 7) % 7
	// A zero offset (today is the named day) or an explicit "next" always
	// jumps a full week ahead, never today.
	if offset == 0 || m[1] != "" {
		offset = 7
	}

	hour, minute := 9, 0
	explicit := false
	if m[3] != "" {
		hour, minute = clock(m[3], m[4], m[5])
		explicit = true
	}

	when := withClock(now.AddDate(0, 0, offset), hour, minute)
	return &match{
		recognizer:   "weekday mention",
		when:         when,
		consumed:     []string{m[0]},
		explicitTime: explicit,
	}, nil
}

// nextWeekRecognizer handles "next week" with no weekday: next Monday 09:00.
type nextWeekRecognizer struct{}

func (nextWeekRecognizer) tryMatch(text string, now time.Time) (*match, error) {
	consumed := nextWeekPattern.FindString(text)
	if consumed == "" {
		return nil, nil
	}

	offset := (7 - weekdayOrdinal(now.Weekday())) % 7
	if offset == 0 {
		offset = 7
	}

	when := withClock(now.AddDate(0, 0, offset), 9, 0)
	return &match{
		recognizer: "next week",
		when:       when,
		consumed:   []string{consumed},
	}, nil
}

// bareTimeRecognizer handles inputs that carry an explicit clock time but no
// structural date pattern. The generic library supplies the date; the
// explicitly parsed hour/minute overwrite whatever time it inferred.
type bareTimeRecognizer struct {
	dates datetext.IDates
}

func (r bareTimeRecognizer) tryMatch(text string, now time.Time) (*match, error) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	hour, minute := clock(m[1], m[2], m[3])
	consumed := []string{m[0]}

	if t, ok := r.dates.ParseOne(text, now); ok {
		return &match{
			recognizer:   "explicit time with parsed date",
			when:         withClock(t, hour, minute),
			consumed:     consumed,
			explicitTime: true,
		}, nil
	}

	matches := r.dates.SearchAll(text, now)
	if len(matches) == 0 {
		return nil, nil
	}
	last := matches[len(matches)-1]
	consumed = append(consumed, last.Text)

	return &match{
		recognizer:   "explicit time with searched date",
		when:         withClock(last.Time, hour, minute),
		consumed:     consumed,
		explicitTime: true,
	}, nil
}

// genericRecognizer is the pattern-free fallback: the generic library over
// the full text, then its substring-search mode taking the last match.
type genericRecognizer struct {
	dates datetext.IDates
}

func (r genericRecognizer) tryMatch(text string, now time.Time) (*match, error) {
	var (
		when     time.Time
		consumed []string
	)

	if t, ok := r.dates.ParseOne(text, now); ok {
		when = t
	} else {
		matches := r.dates.SearchAll(text, now)
		if len(matches) == 0 {
			return nil, nil
		}
		last := matches[len(matches)-1]
		when = last.Time
		consumed = append(consumed, last.Text)
	}

	res := &match{recognizer: "generic", when: when, consumed: consumed}

	// An explicit clock time in the raw text always wins over whatever
	// time component the library inferred.
	if m := timePattern.FindStringSubmatch(text); m != nil {
		hour, minute := clock(m[1], m[2], m[3])
		res.when = withClock(when, hour, minute)
		res.consumed = append(res.consumed, m[0])
		res.explicitTime = true
	}

	return res, nil
}
