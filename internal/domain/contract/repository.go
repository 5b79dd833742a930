package contract

import (
	"context"
	"time"
)

// ContractRepository defines data access methods for contract histories and
// dependants.
type ContractRepository interface {
	// GetActiveByEmployeeAndPeriod retrieves the contract history whose
	// validity window covers the given date. Returns ErrContractNotFound
	// when the employee has no contract active at that date.
	GetActiveByEmployeeAndPeriod(ctx context.Context, employeeID string, at time.Time) (ContractHistory, error)

	// GetDependantsByEmployee retrieves all dependants of an employee
	GetDependantsByEmployee(ctx context.Context, employeeID string) ([]Dependant, error)
}
