package employee

import "time"

type Employee struct {
	ID             string
	EmployeeCode   string
	FullName       string
	WorkScheduleID *string // nil means the employee is not payroll-eligible
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
