package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/schedule"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// GetDetailsByScheduleID implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) GetDetailsByScheduleID(ctx context.Context, workScheduleID string) ([]schedule.ScheduleDetail, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, work_schedule_id, weekday, shift_id, created_at, updated_at
		FROM work_schedule_details
		WHERE work_schedule_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, workScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule details for schedule %s: %w", workScheduleID, err)
	}
	defer rows.Close()

	var details []schedule.ScheduleDetail
	for rows.Next() {
		var d schedule.ScheduleDetail
		err := rows.Scan(&d.ID, &d.WorkScheduleID, &d.Weekday, &d.ShiftID, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule detail: %w", err)
		}
		details = append(details, d)
	}

	return details, nil
}

// GetShiftByID implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) GetShiftByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, standard_hours, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var sh schedule.Shift
	err := q.QueryRow(ctx, query, id).Scan(&sh.ID, &sh.Name, &sh.StandardHours, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, fmt.Errorf("failed to get shift with id %s: %w", id, err)
	}

	return sh, nil
}
