package domain

import (
	"fmt"
	"time"
)

// DayKey identifies a calendar day, e.g. 2024-01-01.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey identifies an ISO 8601 week, e.g. 2024-W01.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ShiftWeekday returns the weekday n days after day (n may be negative).
func ShiftWeekday(day time.Weekday, n int) time.Weekday {
	return time.Weekday(((int(day)+n)%7 + 7) % 7)
}
