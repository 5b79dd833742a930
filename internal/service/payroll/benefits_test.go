package payroll

import (
	"testing"

	"github.com/lachong-labs/payroll-backend-go/internal/domain/contract"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProrateBenefit(t *testing.T) {
	allowance := decimal.NewFromInt(1040000)
	days := decimal.NewFromInt(26)
	hours := decimal.NewFromInt(8)

	// Zero credit earns nothing.
	assert.True(t, ProrateBenefit(allowance, days, hours, decimal.Zero).IsZero())

	// A full month of credit reproduces the allowance exactly.
	full := ProrateBenefit(allowance, days, hours, days.Mul(hours))
	assert.True(t, allowance.Equal(full), "full credit = %s", full)

	// Linear in the credited hours.
	half := ProrateBenefit(allowance, days, hours, decimal.NewFromInt(104))
	assert.True(t, decimal.NewFromInt(520000).Equal(half), "half credit = %s", half)

	double := ProrateBenefit(allowance, days, hours, decimal.NewFromInt(208))
	assert.True(t, half.Mul(decimal.NewFromInt(2)).Equal(double))
}

func standardTerms() contract.ContractHistory {
	return contract.ContractHistory{
		BasicSalary:              decimal.NewFromInt(10000000),
		MealAllowance:            decimal.NewFromInt(1040000),
		TransportationAllowance:  decimal.NewFromInt(520000),
		HousingAllowance:         decimal.NewFromInt(2080000),
		ToxicAllowance:           decimal.NewFromInt(208000),
		PhoneAllowance:           decimal.NewFromInt(104000),
		AttendanceBonusAllowance: decimal.NewFromInt(500000),
		StandardDays:             decimal.NewFromInt(26),
		StandardHours:            decimal.NewFromInt(8),
	}
}

func TestBenefitProrator_FullMonth(t *testing.T) {
	prorator := NewBenefitProrator()
	att := payroll.AttendanceSummary{AdequateHours: decimal.NewFromInt(208), UnderHours: decimal.Zero}
	ot := payroll.OvertimeSummary{Rate15Hours: decimal.Zero, Rate20Hours: decimal.Zero}

	summary := prorator.Prorate(standardTerms(), att, ot, 26)

	assert.True(t, decimal.NewFromInt(1040000).Equal(summary.Meal))
	assert.True(t, decimal.NewFromInt(520000).Equal(summary.Transportation))
	assert.True(t, decimal.NewFromInt(2080000).Equal(summary.Housing))
	assert.True(t, decimal.NewFromInt(208000).Equal(summary.Toxic))
	assert.True(t, decimal.NewFromInt(104000).Equal(summary.Phone))
	// Perfect month: the bonus is paid in full.
	assert.True(t, decimal.NewFromInt(500000).Equal(summary.AttendanceBonus))

	total := summary.Total()
	assert.True(t, decimal.NewFromInt(4452000).Equal(total), "total = %s", total)
}

// Only rest-day overtime extends the meal credit; the other allowances stay
// on adequate hours alone.
func TestBenefitProrator_MealCreditsRestDayOvertime(t *testing.T) {
	prorator := NewBenefitProrator()
	att := payroll.AttendanceSummary{AdequateHours: decimal.NewFromInt(208)}
	ot := payroll.OvertimeSummary{
		Rate15Hours: decimal.NewFromInt(12),
		Rate20Hours: decimal.NewFromInt(10),
	}

	summary := prorator.Prorate(standardTerms(), att, ot, 26)

	// 1,040,000 * 218 / 208
	assert.True(t, decimal.NewFromInt(1090000).Equal(summary.Meal), "meal = %s", summary.Meal)
	assert.True(t, decimal.NewFromInt(520000).Equal(summary.Transportation))
}

func TestBenefitProrator_AttendanceBonusIsBinary(t *testing.T) {
	prorator := NewBenefitProrator()
	ot := payroll.OvertimeSummary{}

	// One short day: 25 full days plus 6 recorded hours under standard.
	att := payroll.AttendanceSummary{
		AdequateHours: decimal.NewFromInt(200),
		UnderHours:    decimal.NewFromInt(6),
	}
	summary := prorator.Prorate(standardTerms(), att, ot, 26)
	assert.True(t, summary.AttendanceBonus.IsZero(), "bonus must be zero after any shortfall")

	// The bonus is all or nothing, never prorated.
	att = payroll.AttendanceSummary{AdequateHours: decimal.NewFromInt(208)}
	summary = prorator.Prorate(standardTerms(), att, ot, 26)
	assert.True(t, decimal.NewFromInt(500000).Equal(summary.AttendanceBonus))
}
