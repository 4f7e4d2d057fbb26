package reminder

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a reminder token is not {digits}{m|h|d}.
var ErrInvalidFormat = errors.New("invalid reminder format, expected <number><m|h|d> (e.g. 15m, 1h, 2d)")

// Offset is the number of minutes before an event's start at which a
// notification should fire.
type Offset struct {
	Minutes int
	token   string
}

var tokenPattern = regexp.MustCompile(`^(\d+)([mhd])$`)

// Parse converts a token like "30m", "1h" or "2d" into an Offset.
func Parse(token string) (Offset, error) {
	m := tokenPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(token)))
	if m == nil {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidFormat, token)
	}

	count, err := strconv.Atoi(m[1])
	if err != nil || count <= 0 {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidFormat, token)
	}

	minutes := count
	switch m[2] {
	case "h":
		minutes = count * 60
	case "d":
		minutes = count * 60 * 24
	}

	return Offset{Minutes: minutes, token: m[1] + m[2]}, nil
}

// String returns the original normalized token, e.g. "1h".
func (o Offset) String() string {
	return o.token
}
