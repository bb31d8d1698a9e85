package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/attendance-bot/internal/config"
	"github.com/diegoclair/attendance-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-bot/internal/logger"
	"github.com/diegoclair/attendance-bot/internal/metrics"
)

type Instance struct {
	Registry   *Registry
	Attendance *attendanceService
	Directory  *slackDirectory
	Scheduler  *scheduler
}

// NewInstance wires the services and restores the current cycle from dm.
func NewInstance(ctx context.Context, cfg *config.Config, dm contract.DataManager, slackClient contract.SlackClient) (*Instance, error) {
	persister := newSnapshotPersister(dm, logger.WithComponent("persistence"))

	registry := NewRegistry(func(snap entity.AttendanceSnapshot) {
		persister.Persist(snap)
		metrics.ObserveAttendance(snap)
	})

	snap, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore attendance: %w", err)
	}
	registry.Restore(snap)
	metrics.ObserveAttendance(snap)

	directory := newSlackDirectory(slackClient, cfg.PlayersGroupID, cfg.GMsGroupID)
	gate := newReadinessGate(slackClient, cfg.ReadyPollInterval, logger.WithComponent("readiness"))

	sched := newScheduler(
		registry,
		newSlackNotifier(slackClient),
		dm.Scheduler(),
		gate.Wait,
		SchedulerConfig{
			Schedule:    cfg.Schedule(),
			Location:    cfg.Location(),
			TickSpec:    cfg.TickSpec,
			Destination: cfg.BroadcastChannel,
			SendTimeout: cfg.SendTimeout,
		},
		logger.WithComponent("scheduler"),
	)

	return &Instance{
		Registry:   registry,
		Attendance: newAttendance(registry, directory, logger.WithComponent("attendance")),
		Directory:  directory,
		Scheduler:  sched,
	}, nil
}
