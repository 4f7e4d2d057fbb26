package parser_test

import (
	"testing"

	"quickcal/internal/parser"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		matched []string
		want    string
	}{
		{
			name: "Month day time phrasing",
			text: "conference call on May 15th at 10am",
			want: "conference call",
		},
		{
			name: "Tomorrow at time",
			text: "team meeting tomorrow at 2pm",
			want: "team meeting",
		},
		{
			name: "Next weekday",
			text: "dinner next friday",
			want: "dinner",
		},
		{
			name: "Next weekday with time",
			text: "dinner next friday at 8pm",
			want: "dinner",
		},
		{
			name: "Next week",
			text: "planning next week",
			want: "planning",
		},
		{
			name: "On weekday",
			text: "lunch on friday",
			want: "lunch",
		},
		{
			name: "Bare weekday with time",
			text: "gym friday at 6pm",
			want: "gym",
		},
		{
			name: "Non-month word after on stays in the title",
			text: "drinks on deck 5 at 6pm",
			want: "drinks on deck 5",
		},
		{
			name: "All day reference",
			text: "picnic all day tomorrow",
			want: "picnic",
		},
		{
			name:    "Generic removal of matched substrings",
			text:    "kids birthday may 18th",
			matched: []string{"may 18th"},
			want:    "kids birthday",
		},
		{
			name:    "Verbatim matched substring outside the battery",
			text:    "dentist 10/12/2026",
			matched: []string{"10/12/2026"},
			want:    "dentist",
		},
		{
			name: "Trailing preposition and punctuation",
			text: "call mom at 5pm.",
			want: "call mom",
		},
		{
			name: "Dangling trailing next",
			text: "catch up next",
			want: "catch up",
		},
		{
			name: "No date content is untouched",
			text: "buy groceries",
			want: "buy groceries",
		},
		{
			name: "Never returns empty",
			text: "tomorrow at 3pm",
			want: "tomorrow at 3pm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Clean(tt.text, tt.matched)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Cleaning an already-clean title changes nothing.
func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"team meeting tomorrow at 2pm",
		"kids birthday may 18th",
		"quarterly review",
	}
	for _, text := range inputs {
		once := parser.Clean(text, nil)
		twice := parser.Clean(once, nil)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", text, once, twice)
		}
	}
}
