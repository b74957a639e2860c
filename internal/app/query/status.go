// Package query implements the in-memory filter, sort and statistics engine
// behind the activities, gallery and team listings. Every query pass works on
// a single "now" snapshot taken by the caller so that one pass sees a
// consistent upcoming/completed partition.
package query

import (
	"strings"
	"time"
)

// dateLayout is the calendar-date format used by the datasets
const dateLayout = "2006-01-02"

// ParseDate parses a record's calendar date. The second return value reports
// whether the date was present and well formed; callers treat a failed parse
// as "completed/unknown" instead of propagating an error, so one malformed
// record never fails a whole query pass.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		// Some records carry a full timestamp
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

// IsUpcoming reports whether a record dated `date` is still upcoming at the
// given instant. The comparison is strict: a record dated exactly "now" is
// not upcoming. Missing or malformed dates are never upcoming.
func IsUpcoming(date string, now time.Time) bool {
	t, ok := ParseDate(date)
	if !ok {
		return false
	}
	return t.After(now)
}

// IsFree reports whether a fee field designates a free activity. A missing
// fee classifies as paid rather than incorrectly advertising free.
func IsFree(fee string) bool {
	return strings.EqualFold(strings.TrimSpace(fee), "free")
}

// matchesSearch reports whether the search term is a case-insensitive
// substring of any of the given fields. An empty term matches everything.
func matchesSearch(term string, fields []string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
