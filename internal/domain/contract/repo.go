package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/attendance-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Attendance() AttendanceRepo
	Scheduler() SchedulerRepo
}

// AttendanceRepo defines the contract for the current cycle's attendance
type AttendanceRepo interface {
	DeleteMembers(ctx context.Context) error
	InsertMember(ctx context.Context, member *entity.MemberStatus) error
	GetMembers(ctx context.Context) ([]*entity.MemberStatus, error)
	SaveState(ctx context.Context, state *entity.AttendanceState) error
	GetState(ctx context.Context) (*entity.AttendanceState, error)
}

// SchedulerRepo defines the contract for the reminder scheduler watermarks
type SchedulerRepo interface {
	GetState(ctx context.Context) (*entity.SchedulerState, error)
	SaveState(ctx context.Context, state *entity.SchedulerState) error
}
