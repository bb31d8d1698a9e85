package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/diegoclair/attendance-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

// snapshotPersister mirrors registry snapshots into the database. Snapshots
// can arrive out of order from concurrent mutations; anything not newer than
// the last saved version is dropped.
type snapshotPersister struct {
	dm  contract.DataManager
	log zerolog.Logger

	mu    sync.Mutex
	saved uint64
}

func newSnapshotPersister(dm contract.DataManager, log zerolog.Logger) *snapshotPersister {
	return &snapshotPersister{dm: dm, log: log}
}

func (p *snapshotPersister) Persist(snap entity.AttendanceSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if snap.Version <= p.saved {
		return
	}

	if err := p.save(context.Background(), snap); err != nil {
		p.log.Error().Err(err).Uint64("version", snap.Version).Msg("failed to persist attendance")
		return
	}
	p.saved = snap.Version
}

func (p *snapshotPersister) save(ctx context.Context, snap entity.AttendanceSnapshot) error {
	return p.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Attendance().DeleteMembers(ctx); err != nil {
			return fmt.Errorf("failed to delete members: %w", err)
		}

		for _, member := range snap.Attending {
			err := tx.Attendance().InsertMember(ctx, &entity.MemberStatus{
				MemberID: member,
				Status:   entity.StatusAttending,
			})
			if err != nil {
				return fmt.Errorf("failed to insert attending member: %w", err)
			}
		}

		for _, member := range sortedKeys(snap.Skipping) {
			err := tx.Attendance().InsertMember(ctx, &entity.MemberStatus{
				MemberID: member,
				Status:   entity.StatusSkipping,
				Reason:   snap.Skipping[member],
			})
			if err != nil {
				return fmt.Errorf("failed to insert skipping member: %w", err)
			}
		}

		err := tx.Attendance().SaveState(ctx, &entity.AttendanceState{
			Canceled: snap.Canceled,
			Version:  snap.Version,
		})
		if err != nil {
			return fmt.Errorf("failed to save attendance state: %w", err)
		}

		return nil
	})
}

// Load reads the last persisted snapshot and marks it as saved.
func (p *snapshotPersister) Load(ctx context.Context) (entity.AttendanceSnapshot, error) {
	snap := entity.AttendanceSnapshot{Skipping: map[string]string{}}

	members, err := p.dm.Attendance().GetMembers(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to get members: %w", err)
	}

	state, err := p.dm.Attendance().GetState(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to get attendance state: %w", err)
	}

	for _, m := range members {
		switch m.Status {
		case entity.StatusAttending:
			snap.Attending = append(snap.Attending, m.MemberID)
		case entity.StatusSkipping:
			snap.Skipping[m.MemberID] = m.Reason
		}
	}
	if state != nil {
		snap.Canceled = state.Canceled
		snap.Version = state.Version
	}

	p.mu.Lock()
	p.saved = snap.Version
	p.mu.Unlock()

	return snap, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
