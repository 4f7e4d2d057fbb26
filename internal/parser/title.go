package parser

import (
	"regexp"
	"strings"
)

const (
	monthAlt    = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`
	bareTimeAlt = `\d{1,2}(?::\d{2})?\s*(?:am|pm)`
)

// structuralTitlePatterns capture the event title as the prefix before a known
// date/time phrasing. First match wins and short-circuits generic removal.
var structuralTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)\s+on\s+(?:` + monthAlt + `)\s+\d{1,2}(?:st|nd|rd|th)?\s+at\s+` + bareTimeAlt + `\b`),
	regexp.MustCompile(`(?i)^(.+?)\s+tomorrow\s+at\s+` + bareTimeAlt + `\b`),
	regexp.MustCompile(`(?i)^(.+?)\s+next\s+(?:` + weekdayAlt + `)(?:\s+at\s+` + bareTimeAlt + `)?\b`),
	regexp.MustCompile(`(?i)^(.+?)\s+next\s+week\b`),
	regexp.MustCompile(`(?i)^(.+?)\s+on\s+(?:` + weekdayAlt + `)\b`),
	regexp.MustCompile(`(?i)^(.+?)\s+(?:` + weekdayAlt + `)(?:\s+at\s+` + bareTimeAlt + `)?\b`),
	regexp.MustCompile(`(?i)^(.+?)\s+all\s+day\b`),
}

// removalPatterns is the fixed battery of date/time sub-patterns stripped in
// the generic pass, ordered so composite phrases go before their parts.
var removalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bon\s+(?:` + monthAlt + `)\s+\d{1,2}(?:st|nd|rd|th)?\b`),
	regexp.MustCompile(`(?i)\bon\s+(?:` + weekdayAlt + `)\b`),
	regexp.MustCompile(`(?i)\bat\s+` + bareTimeAlt + `\b`),
	regexp.MustCompile(`(?i)\b` + bareTimeAlt + `\b`),
	regexp.MustCompile(`(?i)\b(?:` + weekdayAlt + `)\b`),
	regexp.MustCompile(`(?i)\b(?:tomorrow|today|tonight|yesterday)\b`),
	regexp.MustCompile(`(?i)\b(?:next|this)\s+(?:week|month|year)\b`),
	regexp.MustCompile(`(?i)\b(?:` + monthAlt + `)\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)\b`),
}

var (
	whitespacePattern   = regexp.MustCompile(`\s+`)
	trailingPrepPattern = regexp.MustCompile(`(?i)\s+(?:at|on|in|for)$`)
	trailingNextPattern = regexp.MustCompile(`(?i)\s+(?:next|this)$`)
)

// Clean derives a human-readable title by stripping the date/time phrasing
// out of text. It never fails: if stripping would leave nothing, the original
// text comes back unchanged.
func Clean(text string, matched []string) string {
	trimmed := strings.TrimSpace(text)

	for _, re := range structuralTitlePatterns {
		m := re.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if prefix := strings.TrimSpace(m[1]); prefix != "" {
			return prefix
		}
	}

	out := trimmed
	for _, sub := range matched {
		if sub != "" {
			out = strings.ReplaceAll(out, sub, " ")
		}
	}
	for _, re := range removalPatterns {
		out = re.ReplaceAllString(out, " ")
	}

	out = whitespacePattern.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)
	out = strings.TrimRight(out, ",.;:!-")
	out = trailingPrepPattern.ReplaceAllString(out, "")
	out = trailingNextPattern.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)

	if out == "" {
		return trimmed
	}
	return out
}
