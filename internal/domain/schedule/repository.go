package schedule

import "context"

// ScheduleRepository defines the data access the payroll engine needs from
// work schedules: the weekday/shift bindings of a schedule and the shifts
// they reference.
type ScheduleRepository interface {
	// GetDetailsByScheduleID retrieves the weekday/shift bindings of a
	// schedule in insertion order
	GetDetailsByScheduleID(ctx context.Context, workScheduleID string) ([]ScheduleDetail, error)

	// GetShiftByID retrieves a shift by ID
	GetShiftByID(ctx context.Context, id string) (Shift, error)
}
