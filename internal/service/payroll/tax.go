package payroll

import "github.com/shopspring/decimal"

// Monthly personal income tax constants, VND. The deduction amounts follow
// the current statutory schedule: one personal deduction per taxpayer and
// one fixed unit per registered dependant.
var (
	PersonalDeduction  = decimal.NewFromInt(11000000)
	DependantDeduction = decimal.NewFromInt(4400000)
)

type taxBracket struct {
	threshold decimal.Decimal
	rate      decimal.Decimal
	baseTax   decimal.Decimal
}

// Progressive monthly brackets, highest threshold first. baseTax is the
// accumulated tax of all lower brackets at the threshold, so the schedule is
// continuous at every boundary.
var taxBrackets = []taxBracket{
	{decimal.NewFromInt(80000000), decimal.RequireFromString("0.35"), decimal.NewFromInt(18150000)},
	{decimal.NewFromInt(52000000), decimal.RequireFromString("0.30"), decimal.NewFromInt(9750000)},
	{decimal.NewFromInt(32000000), decimal.RequireFromString("0.25"), decimal.NewFromInt(4750000)},
	{decimal.NewFromInt(18000000), decimal.RequireFromString("0.20"), decimal.NewFromInt(1950000)},
	{decimal.NewFromInt(10000000), decimal.RequireFromString("0.15"), decimal.NewFromInt(750000)},
	{decimal.NewFromInt(5000000), decimal.RequireFromString("0.10"), decimal.NewFromInt(250000)},
}

var flatRate = decimal.RequireFromString("0.05")

// TaxCalculator applies the progressive bracket schedule to taxable income.
type TaxCalculator struct{}

func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{}
}

// Calculate returns the monthly tax for the given taxable income. Callers
// clamp taxable income at zero before calling; the result is never negative
// for non-negative input.
func (c *TaxCalculator) Calculate(taxableIncome decimal.Decimal) decimal.Decimal {
	for _, b := range taxBrackets {
		if taxableIncome.GreaterThan(b.threshold) {
			return b.baseTax.Add(taxableIncome.Sub(b.threshold).Mul(b.rate))
		}
	}
	return taxableIncome.Mul(flatRate)
}
