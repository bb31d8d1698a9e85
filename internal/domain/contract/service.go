package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/attendance-bot/internal/domain/entity"
)

// AttendanceService is what the command layer calls once permissions are settled
type AttendanceService interface {
	MarkAttending(memberID string)
	MarkSkipping(memberID, reason string)
	Cancel()
	Reinstate()
	ClearAttendance()
	Rollcall(ctx context.Context) (*entity.Tally, error)
}

// Directory resolves the player roster and the GM permission predicate
type Directory interface {
	Roster(ctx context.Context) ([]string, error)
	IsGM(ctx context.Context, userID string) (bool, error)
}

// Notifier delivers a reminder text to a broadcast destination
type Notifier interface {
	Send(ctx context.Context, destination, text string) error
}
