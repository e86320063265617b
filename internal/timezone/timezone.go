package timezone

import (
	"strings"
	"time"
)

const (
	DefaultTimezone = "Europe/Oslo"

	// DateLayout is the ISO date the backend uses for scheduleDate.
	DateLayout = "2006-01-02"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate accepts an ISO date, or an ISO timestamp whose date part is used,
// and returns midnight of that day in tz.
func ParseDate(tz, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		s = s[:len(DateLayout)]
	}
	return time.ParseInLocation(DateLayout, s, Location(tz))
}

// NormalizeDate re-renders s as YYYY-MM-DD.
func NormalizeDate(tz, s string) (string, error) {
	t, err := ParseDate(tz, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}
