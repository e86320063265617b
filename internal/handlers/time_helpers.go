package handlers

import (
	"time"

	"github.com/BruksfildServices01/moving-backoffice/internal/timezone"
)

// dayStartIn parses an ISO date filter as midnight in tz.
func dayStartIn(tz, dateStr string) (time.Time, bool) {
	t, err := timezone.ParseDate(tz, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dayEndIn is the exclusive end of the given day in tz.
func dayEndIn(tz, dateStr string) (time.Time, bool) {
	t, ok := dayStartIn(tz, dateStr)
	if !ok {
		return time.Time{}, false
	}
	return t.AddDate(0, 0, 1), true
}
