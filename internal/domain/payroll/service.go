package payroll

import "context"

// PayrollService defines business logic for payroll operations. The actor is
// threaded explicitly from the authenticated caller and stamped on every
// record the run creates.
type PayrollService interface {
	// GeneratePayroll runs the engine for the requested period, for the
	// requested employees or for every active employee. Employees without a
	// schedule or active contract are reported as not eligible; periods that
	// already have a payslip are silently skipped. A hard failure aborts the
	// remaining batch and is surfaced in the report.
	GeneratePayroll(ctx context.Context, actorID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error)

	// GetPayrollRecord retrieves a single payslip by ID
	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)

	// ListPayrollRecords retrieves payslips with filters and pagination
	ListPayrollRecords(ctx context.Context, filter Filter) (ListPayrollRecordResponse, error)

	// DeletePayrollRecord removes a payslip; recreation by a later run is
	// the supported correction path
	DeletePayrollRecord(ctx context.Context, id string) error
}
