package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetActive retrieves all active employees
	GetActive(ctx context.Context) ([]Employee, error)
}
