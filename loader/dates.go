package loader

import (
	"strings"
	"time"

	"github.com/wirvsvirus/measures-dashboard/utils"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05Z07:00",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"02.01.2006",
	"2.1.2006",
	"02.01.2006 15:04",
	"02.01.06",
}

// ParseDate parses a calendar day in any of the layouts found in the source
// data. Unparsable input yields the zero time and false; it never fails.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return utils.Day(t), true
		}
	}
	return time.Time{}, false
}

// ParseTimestamp is like ParseDate but keeps the time of day, in UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
