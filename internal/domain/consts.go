package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DefaultEventDay is the weekday the game happens on
const DefaultEventDay = Monday

// DefaultLeadDays is how many days before the event the attendance
// confirmation reminder goes out (Friday for a Monday game).
const DefaultLeadDays = 3

// SlashCommand is the command registered in the Slack app
const SlashCommand = "/attendance"

// UnspecifiedReason is shown for members skipping without a note
const UnspecifiedReason = "Unspecified"

// ToWeekday converts an ISO 8601 weekday number to time.Weekday
func ToWeekday(iso int) time.Weekday {
	return time.Weekday(iso % 7)
}

// ISOWeekday converts a time.Weekday to its ISO 8601 number
func ISOWeekday(day time.Weekday) int {
	if day == time.Sunday {
		return Sunday
	}
	return int(day)
}

// ValidISOWeekday reports whether n is in 1..7
func ValidISOWeekday(n int) bool {
	_, ok := WeekdayNames[n]
	return ok
}
