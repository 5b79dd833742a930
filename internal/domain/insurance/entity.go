package insurance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy carries the employee-side and company-side contribution rates
// applied to the contractual basic salary.
type Policy struct {
	ID              string
	Name            string
	EmployeePercent decimal.Decimal
	CompanyPercent  decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
