package payroll

import (
	"time"

	"github.com/lachong-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATE DTOs ==========

type GeneratePayrollRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
	// EmployeeIDs limits the run; empty means every active employee.
	EmployeeIDs       []string `json:"employee_ids,omitempty"`
	WithInsurance     bool     `json:"with_insurance"`
	InsurancePolicyID *string  `json:"insurance_policy_id,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 || r.PeriodYear > 2100 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be a valid year"})
	}
	if r.WithInsurance && (r.InsurancePolicyID == nil || *r.InsurancePolicyID == "") {
		errs = append(errs, validator.ValidationError{Field: "insurance_policy_id", Message: "is required when with_insurance is true"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RECORD DTOs ==========

type Filter struct {
	EmployeeID  *string
	PeriodMonth *int
	PeriodYear  *int
	Page        int
	Limit       int
}

type PayrollRecordResponse struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employee_id"`
	ContractHistoryID string `json:"contract_history_id"`
	PeriodMonth       int    `json:"period_month"`
	PeriodYear        int    `json:"period_year"`

	AdequateHours decimal.Decimal `json:"adequate_hours"`
	UnderHours    decimal.Decimal `json:"under_hours"`
	Rate15Hours   decimal.Decimal `json:"overtime_1_5x_hours"`
	Rate20Hours   decimal.Decimal `json:"overtime_2_0x_hours"`

	BasicSalary    decimal.Decimal `json:"basic_salary"`
	WorkDaysSalary decimal.Decimal `json:"work_days_salary"`
	Rate15Salary   decimal.Decimal `json:"overtime_1_5x_salary"`
	Rate20Salary   decimal.Decimal `json:"overtime_2_0x_salary"`

	MealBenefitSalary            decimal.Decimal `json:"meal_benefit_salary"`
	TransportationBenefitSalary  decimal.Decimal `json:"transportation_benefit_salary"`
	HousingBenefitSalary         decimal.Decimal `json:"housing_benefit_salary"`
	ToxicBenefitSalary           decimal.Decimal `json:"toxic_benefit_salary"`
	PhoneBenefitSalary           decimal.Decimal `json:"phone_benefit_salary"`
	AttendanceBonusBenefitSalary decimal.Decimal `json:"attendance_bonus_benefit_salary"`
	BenefitSalary                decimal.Decimal `json:"benefit_salary"`

	GrossIncome       decimal.Decimal `json:"gross_income"`
	EmployeeInsurance decimal.Decimal `json:"employee_insurance"`
	CompanyInsurance  decimal.Decimal `json:"company_insurance"`
	NoTaxSalary       decimal.Decimal `json:"no_tax_salary"`
	DependantCount    int             `json:"dependant_count"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	Tax               decimal.Decimal `json:"tax"`
	TotalDeduction    decimal.Decimal `json:"total_deduction"`
	NetIncome         decimal.Decimal `json:"net_income"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
}

type ListPayrollRecordResponse struct {
	Records    []PayrollRecordResponse `json:"records"`
	TotalItems int64                   `json:"total_items"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// ========== RUN REPORT DTOs ==========

type RunResultResponse struct {
	EmployeeID string                 `json:"employee_id"`
	Status     string                 `json:"status"`
	Payslip    *PayrollRecordResponse `json:"payslip,omitempty"`
	Reason     string                 `json:"reason,omitempty"`
}

type GeneratePayrollResponse struct {
	PeriodMonth int                 `json:"period_month"`
	PeriodYear  int                 `json:"period_year"`
	Results     []RunResultResponse `json:"results"`
}
