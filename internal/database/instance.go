package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/attendance-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	attendanceRepo contract.AttendanceRepo
	schedulerRepo  contract.SchedulerRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:             db,
		attendanceRepo: newAttendanceRepo(db.conn),
		schedulerRepo:  newSchedulerRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		attendanceRepo: newAttendanceRepo(db),
		schedulerRepo:  newSchedulerRepo(db),
	}
}

// Attendance returns the attendance repository
func (i *instance) Attendance() contract.AttendanceRepo {
	return i.attendanceRepo
}

// Scheduler returns the scheduler state repository
func (i *instance) Scheduler() contract.SchedulerRepo {
	return i.schedulerRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
