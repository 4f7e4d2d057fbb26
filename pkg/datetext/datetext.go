package datetext

import (
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

type recognizer struct{}

func (r *recognizer) configuration(base time.Time) *dps.Configuration {
	return &dps.Configuration{
		CurrentTime:         base,
		PreferredDateSource: dps.Future,
		Languages:           []string{"en"},
	}
}

func (r *recognizer) ParseOne(text string, base time.Time) (time.Time, bool) {
	dt, err := dps.Parse(r.configuration(base), text)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, false
	}
	return naive(dt.Time), true
}

func (r *recognizer) SearchAll(text string, base time.Time) []Match {
	_, entries, err := dps.Search(r.configuration(base), text)
	if err != nil || len(entries) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(entries))
	for _, e := range entries {
		matches = append(matches, Match{Text: e.Text, Time: naive(e.Date.Time)})
	}
	return matches
}

// naive discards whatever zone the library attached and keeps the wall-clock
// fields in local time. All downstream reasoning is zone-free.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
}
