package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/attendance-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-bot/internal/domain/entity"
)

type schedulerRepository struct {
	db dbConn
}

func newSchedulerRepo(db dbConn) contract.SchedulerRepo {
	return &schedulerRepository{db: db}
}

func (r *schedulerRepository) GetState(ctx context.Context) (*entity.SchedulerState, error) {
	state := &entity.SchedulerState{}
	query := `
		SELECT last_reset_week, last_reminder_day, updated_at
		FROM scheduler_state
		WHERE id = 1
	`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&state.LastResetWeek,
		&state.LastReminderDay,
		&state.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduler state: %w", err)
	}

	return state, nil
}

func (r *schedulerRepository) SaveState(ctx context.Context, state *entity.SchedulerState) error {
	query := `
		INSERT INTO scheduler_state (id, last_reset_week, last_reminder_day, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_reset_week = excluded.last_reset_week,
			last_reminder_day = excluded.last_reminder_day,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		state.LastResetWeek,
		state.LastReminderDay,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save scheduler state: %w", err)
	}

	return nil
}
