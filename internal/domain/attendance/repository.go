package attendance

import "context"

// AttendanceRepository defines data access methods for attendance and
// overtime records.
type AttendanceRepository interface {
	// GetByEmployeeAndMonth retrieves all attendance records of an employee
	// within one calendar month, ordered by date
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)

	// GetOvertimeByEmployeeAndMonth retrieves all overtime records of an
	// employee within one calendar month, ordered by date
	GetOvertimeByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]Overtime, error)
}
