package payroll

import (
	"context"
	"fmt"

	"github.com/lachong-labs/payroll-backend-go/internal/domain/insurance"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// InsuranceCalculator applies a policy's contribution percentages to the
// contractual basic salary.
type InsuranceCalculator struct {
	insuranceRepo insurance.InsuranceRepository
}

func NewInsuranceCalculator(insuranceRepo insurance.InsuranceRepository) *InsuranceCalculator {
	return &InsuranceCalculator{insuranceRepo: insuranceRepo}
}

// Calculate returns the employee-side and company-side contributions for the
// run. Without participation both are zero. A policy id that does not
// resolve is a hard failure surfaced to the caller.
func (c *InsuranceCalculator) Calculate(ctx context.Context, basicSalary decimal.Decimal, withInsurance bool, policyID *string) (employeeAmount, companyAmount decimal.Decimal, err error) {
	if !withInsurance || policyID == nil {
		return decimal.Zero, decimal.Zero, nil
	}

	policy, err := c.insuranceRepo.GetPolicyByID(ctx, *policyID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to resolve insurance policy %s: %w", *policyID, err)
	}

	employeeAmount = basicSalary.Mul(policy.EmployeePercent).Div(oneHundred)
	companyAmount = basicSalary.Mul(policy.CompanyPercent).Div(oneHundred)
	return employeeAmount, companyAmount, nil
}
