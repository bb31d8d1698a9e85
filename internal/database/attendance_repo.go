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

type attendanceRepository struct {
	db dbConn
}

func newAttendanceRepo(db dbConn) contract.AttendanceRepo {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) DeleteMembers(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM attendance_members`)
	if err != nil {
		return fmt.Errorf("failed to delete members: %w", err)
	}

	return nil
}

func (r *attendanceRepository) InsertMember(ctx context.Context, member *entity.MemberStatus) error {
	query := `
		INSERT INTO attendance_members (member_id, status, reason, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(member_id) DO UPDATE SET
			status = excluded.status,
			reason = excluded.reason,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		member.MemberID,
		string(member.Status),
		member.Reason,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

func (r *attendanceRepository) GetMembers(ctx context.Context) ([]*entity.MemberStatus, error) {
	query := `
		SELECT member_id, status, reason, updated_at
		FROM attendance_members
		ORDER BY member_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*entity.MemberStatus
	for rows.Next() {
		member := &entity.MemberStatus{}
		var status string
		err := rows.Scan(
			&member.MemberID,
			&status,
			&member.Reason,
			&member.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		member.Status = entity.AttendanceStatus(status)
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

func (r *attendanceRepository) SaveState(ctx context.Context, state *entity.AttendanceState) error {
	query := `
		INSERT INTO attendance_state (id, canceled, version, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			canceled = excluded.canceled,
			version = excluded.version,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, state.Canceled, int64(state.Version), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save attendance state: %w", err)
	}

	return nil
}

func (r *attendanceRepository) GetState(ctx context.Context) (*entity.AttendanceState, error) {
	state := &entity.AttendanceState{}
	query := `
		SELECT canceled, version, updated_at
		FROM attendance_state
		WHERE id = 1
	`

	var version int64
	err := r.db.QueryRowContext(ctx, query).Scan(
		&state.Canceled,
		&version,
		&state.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance state: %w", err)
	}
	state.Version = uint64(version)

	return state, nil
}
