package entity

import "time"

type AttendanceStatus string

const (
	StatusAttending AttendanceStatus = "attending"
	StatusSkipping  AttendanceStatus = "skipping"
)

// Tally is a roll-call view of the current cycle.
type Tally struct {
	Attending   []string
	Skipping    map[string]string
	Unaccounted []string
}

// AttendanceSnapshot is a consistent copy of the registry state.
type AttendanceSnapshot struct {
	Version   uint64
	Attending []string
	Skipping  map[string]string
	Canceled  bool
}

// MemberStatus is one persisted row of the current cycle.
type MemberStatus struct {
	MemberID  string
	Status    AttendanceStatus
	Reason    string
	UpdatedAt time.Time
}

type AttendanceState struct {
	Canceled  bool
	Version   uint64
	UpdatedAt time.Time
}
