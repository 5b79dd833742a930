package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrInvalidPeriod              = errors.New("invalid payroll period")
	ErrInvalidContractTerms       = errors.New("contract standard days and standard hours must be greater than zero")
)
