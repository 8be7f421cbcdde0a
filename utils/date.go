package utils

import (
	"fmt"
	"time"
)

// DayStart normalizes an instant to local midnight in loc. Every "today" and
// date-range boundary in the service goes through here, so the day boundary
// is the same at every call site.
func DayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayRange returns [midnight, next midnight) around t.
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := DayStart(t, loc)
	return start, start.AddDate(0, 0, 1)
}

// WeekRange returns the Monday-to-Sunday week containing t as
// [monday midnight, next monday midnight).
func WeekRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := DayStart(t, loc)
	offset := int(start.Weekday()-time.Monday+7) % 7
	start = start.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// MonthRange returns the calendar month containing t as
// [first day midnight, first day of next month midnight).
func MonthRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// ParseISOTime accepts RFC3339 timestamps plus the bare local formats the
// admin screens submit.
func ParseISOTime(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t, nil
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}
