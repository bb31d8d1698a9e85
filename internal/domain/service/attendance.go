package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/attendance-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

type attendanceService struct {
	registry  *Registry
	directory contract.Directory
	log       zerolog.Logger
}

func newAttendance(registry *Registry, directory contract.Directory, log zerolog.Logger) *attendanceService {
	return &attendanceService{
		registry:  registry,
		directory: directory,
		log:       log,
	}
}

func (s *attendanceService) MarkAttending(memberID string) {
	s.registry.MarkAttending(memberID)
	s.log.Debug().Str("member", memberID).Msg("member is attending")
}

func (s *attendanceService) MarkSkipping(memberID, reason string) {
	s.registry.MarkSkipping(memberID, reason)
	s.log.Debug().Str("member", memberID).Str("reason", reason).Msg("member is skipping")
}

// Cancel flags this cycle's game as canceled and drops all reservations.
func (s *attendanceService) Cancel() {
	s.registry.SetCanceled(true)
	s.registry.Clear()
	s.log.Debug().Msg("game canceled")
}

// Reinstate puts the game back on after a cancellation.
func (s *attendanceService) Reinstate() {
	s.registry.SetCanceled(false)
	s.log.Debug().Msg("game scheduled")
}

func (s *attendanceService) ClearAttendance() {
	s.registry.Clear()
	s.log.Debug().Msg("attendance cleared")
}

func (s *attendanceService) Rollcall(ctx context.Context) (*entity.Tally, error) {
	roster, err := s.directory.Roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	return s.registry.Tally(roster), nil
}
