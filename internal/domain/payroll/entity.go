package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollManagement is the engine's sole output record: one payslip per
// (employee, contract history, month, year). It carries every intermediate
// figure for audit and display and is never mutated after creation; deleting
// the row is the only correction path.
type PayrollManagement struct {
	ID                string
	EmployeeID        string
	ContractHistoryID string
	PeriodMonth       int
	PeriodYear        int

	AdequateHours decimal.Decimal
	UnderHours    decimal.Decimal
	Rate15Hours   decimal.Decimal
	Rate20Hours   decimal.Decimal

	BasicSalary    decimal.Decimal
	WorkDaysSalary decimal.Decimal
	Rate15Salary   decimal.Decimal
	Rate20Salary   decimal.Decimal

	MealBenefitSalary            decimal.Decimal
	TransportationBenefitSalary  decimal.Decimal
	HousingBenefitSalary         decimal.Decimal
	ToxicBenefitSalary           decimal.Decimal
	PhoneBenefitSalary           decimal.Decimal
	AttendanceBonusBenefitSalary decimal.Decimal
	BenefitSalary                decimal.Decimal

	GrossIncome       decimal.Decimal
	EmployeeInsurance decimal.Decimal
	CompanyInsurance  decimal.Decimal
	NoTaxSalary       decimal.Decimal
	DependantCount    int
	TaxableIncome     decimal.Decimal
	Tax               decimal.Decimal
	TotalDeduction    decimal.Decimal
	NetIncome         decimal.Decimal

	CreatedBy string
	CreatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// AttendanceSummary is the monthly aggregation of attendance records against
// the scheduled shift lengths. UnderHours is informational only: shortfalls
// never reduce pay automatically, they are surfaced for manual review.
type AttendanceSummary struct {
	AdequateHours decimal.Decimal
	UnderHours    decimal.Decimal
}

// OvertimeSummary is the monthly aggregation of overtime hours split by
// multiplier class: ordinary days earn 1.5x, the designated rest day
// (Sunday) earns 2.0x.
type OvertimeSummary struct {
	Rate15Hours decimal.Decimal
	Rate20Hours decimal.Decimal
}

// BenefitSummary holds the prorated amount of each fixed monthly allowance
// for the month.
type BenefitSummary struct {
	Meal            decimal.Decimal
	Transportation  decimal.Decimal
	Housing         decimal.Decimal
	Toxic           decimal.Decimal
	Phone           decimal.Decimal
	AttendanceBonus decimal.Decimal
}

// Total sums every prorated allowance into the month's benefit salary.
func (b BenefitSummary) Total() decimal.Decimal {
	return b.Meal.
		Add(b.Transportation).
		Add(b.Housing).
		Add(b.Toxic).
		Add(b.Phone).
		Add(b.AttendanceBonus)
}

// RunStatus is the terminal state of one employee's payroll run.
type RunStatus string

const (
	// RunStatusCreated - a new payslip was computed and persisted
	RunStatusCreated RunStatus = "created"
	// RunStatusAlreadyExists - a payslip for the period already existed, run skipped
	RunStatusAlreadyExists RunStatus = "already_exists"
	// RunStatusNotEligible - no schedule or no active contract, no payslip produced
	RunStatusNotEligible RunStatus = "not_eligible"
	// RunStatusFailed - the computation failed hard; the batch aborts here
	RunStatusFailed RunStatus = "failed"
)

// RunResult is one entry of a batch report.
type RunResult struct {
	EmployeeID string
	Status     RunStatus
	Payslip    *PayrollManagement
	Reason     string
}
