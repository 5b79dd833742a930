package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
// CreatePayrollRecord must enforce the one-record-per-(employee, contract,
// month, year) invariant and return ErrPayrollRecordAlreadyExists on a
// uniqueness violation; the check-then-create in the service has a race
// window and the constraint is the correctness backstop.
type PayrollRepository interface {
	CreatePayrollRecord(ctx context.Context, record PayrollManagement) (PayrollManagement, error)
	GetPayrollRecordByID(ctx context.Context, id string) (PayrollManagement, error)
	GetPayrollRecordByEmployeePeriod(ctx context.Context, employeeID, contractHistoryID string, month, year int) (PayrollManagement, error)
	ListPayrollRecords(ctx context.Context, filter Filter) ([]PayrollManagement, int64, error)
	DeletePayrollRecord(ctx context.Context, id string) error
}
