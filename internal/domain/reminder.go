package domain

import (
	"fmt"
	"time"
)

type ReminderKind string

const (
	ReminderNone     ReminderKind = ""
	ReminderCanceled ReminderKind = "canceled"
	ReminderTonight  ReminderKind = "tonight"
	ReminderConfirm  ReminderKind = "confirm"
)

// WeeklySchedule describes the single recurring event the bot tracks.
type WeeklySchedule struct {
	EventDay time.Weekday
	LeadDays int
}

// ResetDay is the day after the event, when attendance starts over.
func (w WeeklySchedule) ResetDay() time.Weekday {
	return ShiftWeekday(w.EventDay, 1)
}

// LeadDay is the day the attendance confirmation reminder goes out.
func (w WeeklySchedule) LeadDay() time.Weekday {
	return ShiftWeekday(w.EventDay, -w.LeadDays)
}

// EventDayName returns the English name of the event day.
func (w WeeklySchedule) EventDayName() string {
	return WeekdayNames[ISOWeekday(w.EventDay)]
}

// ReminderFor applies the reminder rule table for the given day.
func (w WeeklySchedule) ReminderFor(day time.Weekday, canceled bool) ReminderKind {
	switch {
	case day == w.EventDay && canceled:
		return ReminderCanceled
	case day == w.EventDay:
		return ReminderTonight
	case day == w.LeadDay() && !canceled:
		return ReminderConfirm
	default:
		return ReminderNone
	}
}

// ReminderText renders the broadcast message for a reminder kind.
func (w WeeklySchedule) ReminderText(kind ReminderKind) string {
	switch kind {
	case ReminderCanceled:
		return fmt.Sprintf("REMINDER: The bot has been told that %s's game has been canceled.\n\n"+
			"Have a good week everyone.", w.EventDayName())
	case ReminderTonight:
		return "REMINDER: The bot believes that there is a game tonight!"
	case ReminderConfirm:
		return fmt.Sprintf("REMINDER: The bot believes that there is a game scheduled for %s.\n"+
			"To signal attendance: `%s attending`\n"+
			"To signal missing: `%s skipping [note]`\n"+
			"To see attendance status: `%s rollcall`",
			w.EventDayName(), SlashCommand, SlashCommand, SlashCommand)
	default:
		return ""
	}
}
