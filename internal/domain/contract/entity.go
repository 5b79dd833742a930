package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractHistory holds the active compensation terms of an employee for a
// validity window: basic salary, the six fixed monthly allowances, and the
// standard working time the proration arithmetic divides by.
type ContractHistory struct {
	ID                       string
	EmployeeID               string
	BasicSalary              decimal.Decimal
	MealAllowance            decimal.Decimal
	TransportationAllowance  decimal.Decimal
	HousingAllowance         decimal.Decimal
	ToxicAllowance           decimal.Decimal
	PhoneAllowance           decimal.Decimal
	AttendanceBonusAllowance decimal.Decimal
	StandardDays             decimal.Decimal // standard working days per month
	StandardHours            decimal.Decimal // standard working hours per day
	EffectiveFrom            time.Time
	EffectiveTo              *time.Time // nil means open-ended
	IsProbation              bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// Dependant contributes one fixed tax deduction unit for every month fully
// covered by its deduction window.
type Dependant struct {
	ID            string
	EmployeeID    string
	FullName      string
	DeductionFrom time.Time
	DeductionTo   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
