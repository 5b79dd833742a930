package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one day of recorded work for an employee. The store enforces
// at most one record per employee per date.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	HoursWorked decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Overtime is one day of recorded overtime for an employee, at most one per
// employee per date.
type Overtime struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	OvertimeHours decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
