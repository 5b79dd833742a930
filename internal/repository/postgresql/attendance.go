package postgresql

import (
	"context"
	"fmt"

	"github.com/lachong-labs/payroll-backend-go/internal/domain/attendance"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// GetByEmployeeAndMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, hours_worked, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.HoursWorked, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// GetOvertimeByEmployeeAndMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetOvertimeByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Overtime, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, overtime_hours, created_at, updated_at
		FROM overtimes
		WHERE employee_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtimes for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var records []attendance.Overtime
	for rows.Next() {
		var rec attendance.Overtime
		err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.OvertimeHours, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
