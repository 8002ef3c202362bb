package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts either a plain date ("2006-01-02") or a full RFC3339
// timestamp, which is what browser Date objects serialize to.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DayCount returns ceil((end-start) / 24h). Equal dates yield 0.
func DayCount(start, end time.Time) int {
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// HourOf parses the hour out of an "HH:MM" slot string.
// Malformed input sorts first rather than failing the request.
func HourOf(slot string) int {
	h, _, ok := strings.Cut(slot, ":")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	return n
}
