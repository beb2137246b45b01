package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockMinutes parses an HH:mm clock string into minutes since midnight.
func ClockMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time out of range %q", s)
	}
	return h*60 + m, nil
}

// TimeRange is a half-open [Start, End) window in minutes since midnight.
type TimeRange struct {
	Start int
	End   int
}

// ParseRange builds a TimeRange from two HH:mm clock strings.
func ParseRange(start, end string) (TimeRange, error) {
	s, err := ClockMinutes(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ClockMinutes(end)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: s, End: e}, nil
}

// Overlaps reports whether two half-open ranges intersect.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// WeekStart returns local midnight of the Sunday beginning the week that
// contains t.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// SameDay reports whether two instants fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
