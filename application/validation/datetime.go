package validation

import (
	"errors"
	"strings"
	"time"
)

// dateTimeLayouts are tried in order. Values without a zone are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var ErrInvalidDateTime = errors.New("invalid date-time")

// ParseDateTime parses a calendar date-time in one of the accepted layouts.
// Out-of-range components such as February 30 are rejected.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDateTime
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
