package payroll

import (
	"github.com/lachong-labs/payroll-backend-go/internal/domain/contract"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ProrateBenefit converts a fixed monthly allowance into the amount earned
// by the hours actually credited in the month:
//
//	allowance / standardDays / standardHoursPerDay * creditedHours
//
// computed as allowance * credited / (days * hours) so that a full month of
// credit reproduces the allowance exactly under decimal division. Callers
// validate the denominators.
func ProrateBenefit(allowance, standardDays, standardHoursPerDay, creditedHours decimal.Decimal) decimal.Decimal {
	return allowance.Mul(creditedHours).Div(standardDays.Mul(standardHoursPerDay))
}

// BenefitProrator derives the month's prorated allowance amounts from the
// contract terms and the hour aggregates.
type BenefitProrator struct{}

func NewBenefitProrator() *BenefitProrator {
	return &BenefitProrator{}
}

// Prorate applies the proration to every fixed allowance. Transportation,
// housing, toxic and phone credit adequate hours only; meal additionally
// credits rest-day overtime hours. The attendance bonus is binary: paid in
// full only when the employee covered every scheduled working day of the
// month, zero otherwise.
func (p *BenefitProrator) Prorate(
	terms contract.ContractHistory,
	att payroll.AttendanceSummary,
	ot payroll.OvertimeSummary,
	scheduledWorkDays int,
) payroll.BenefitSummary {
	mealCredit := att.AdequateHours.Add(ot.Rate20Hours)

	summary := payroll.BenefitSummary{
		Meal:            ProrateBenefit(terms.MealAllowance, terms.StandardDays, terms.StandardHours, mealCredit),
		Transportation:  ProrateBenefit(terms.TransportationAllowance, terms.StandardDays, terms.StandardHours, att.AdequateHours),
		Housing:         ProrateBenefit(terms.HousingAllowance, terms.StandardDays, terms.StandardHours, att.AdequateHours),
		Toxic:           ProrateBenefit(terms.ToxicAllowance, terms.StandardDays, terms.StandardHours, att.AdequateHours),
		Phone:           ProrateBenefit(terms.PhoneAllowance, terms.StandardDays, terms.StandardHours, att.AdequateHours),
		AttendanceBonus: decimal.Zero,
	}

	adequateDays := att.AdequateHours.Div(terms.StandardHours)
	if decimal.NewFromInt(int64(scheduledWorkDays)).Equal(adequateDays) {
		summary.AttendanceBonus = terms.AttendanceBonusAllowance
	}

	return summary
}
