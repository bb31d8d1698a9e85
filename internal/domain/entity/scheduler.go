package entity

import "time"

// SchedulerState holds the watermarks of the reminder scheduler.
type SchedulerState struct {
	LastResetWeek   string
	LastReminderDay string
	UpdatedAt       time.Time
}
