package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/attendance-bot/internal/domain"
	"github.com/diegoclair/attendance-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-bot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockAttendanceRepo *mocks.MockAttendanceRepo
	mockSchedulerRepo  *mocks.MockSchedulerRepo
	mockSlackClient    *mocks.MockSlackClient
	mockDirectory      *mocks.MockDirectory
	mockNotifier       *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	attendanceRepo := mocks.NewMockAttendanceRepo(ctrl)
	dm.EXPECT().Attendance().Return(attendanceRepo).AnyTimes()

	schedulerRepo := mocks.NewMockSchedulerRepo(ctrl)
	dm.EXPECT().Scheduler().Return(schedulerRepo).AnyTimes()

	// transactions run against the same mocked repositories
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockAttendanceRepo: attendanceRepo,
		mockSchedulerRepo:  schedulerRepo,
		mockSlackClient:    mocks.NewMockSlackClient(ctrl),
		mockDirectory:      mocks.NewMockDirectory(ctrl),
		mockNotifier:       mocks.NewMockNotifier(ctrl),
	}

	// validate service creation
	attendance := newAttendance(NewRegistry(nil), m.mockDirectory, zerolog.Nop())
	require.NotNil(t, attendance)

	return
}

// mondayGame is the default weekly event: Monday game, Friday reminder,
// Tuesday reset.
var mondayGame = domain.WeeklySchedule{EventDay: time.Monday, LeadDays: domain.DefaultLeadDays}

func newTestScheduler(m allMocks, registry *Registry) *scheduler {
	return newScheduler(
		registry,
		m.mockNotifier,
		m.mockSchedulerRepo,
		func(ctx context.Context) error { return nil },
		SchedulerConfig{
			Schedule:    mondayGame,
			Location:    time.UTC,
			TickSpec:    "@every 1h",
			Destination: "C123456789",
			SendTimeout: time.Second,
		},
		zerolog.Nop(),
	)
}
