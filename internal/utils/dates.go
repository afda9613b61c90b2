package utils

import (
	"fmt"
	"time"
)

// ParseDate accepts ISO 8601 dates in YYYY-MM-DD or RFC3339 form.
func ParseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", v)
}

// FormatDate renders a timestamp as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
