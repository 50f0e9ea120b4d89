package utils

import (
	"time"

	"court-reservation-api/core/constants"
)

// LoadLocation falls back to UTC when the zone database has no entry for name.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate accepts YYYY-MM-DD or DD-MM-YYYY and returns midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateLayout, value, loc)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation(constants.DateLayoutDMY, value, loc)
}

func Period(t time.Time) string {
	return t.Format(constants.PeriodLayout)
}
