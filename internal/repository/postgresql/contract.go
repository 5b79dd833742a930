package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/contract"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

// GetActiveByEmployeeAndPeriod implements contract.ContractRepository.
func (c *contractRepositoryImpl) GetActiveByEmployeeAndPeriod(ctx context.Context, employeeID string, at time.Time) (contract.ContractHistory, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, basic_salary, meal_allowance, transportation_allowance,
			housing_allowance, toxic_allowance, phone_allowance, attendance_bonus_allowance,
			standard_days, standard_hours, effective_from, effective_to, is_probation,
			created_at, updated_at
		FROM contract_histories
		WHERE employee_id = $1
			AND effective_from <= $2
			AND (effective_to IS NULL OR effective_to >= $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var ct contract.ContractHistory
	err := q.QueryRow(ctx, query, employeeID, at).Scan(
		&ct.ID, &ct.EmployeeID, &ct.BasicSalary, &ct.MealAllowance, &ct.TransportationAllowance,
		&ct.HousingAllowance, &ct.ToxicAllowance, &ct.PhoneAllowance, &ct.AttendanceBonusAllowance,
		&ct.StandardDays, &ct.StandardHours, &ct.EffectiveFrom, &ct.EffectiveTo, &ct.IsProbation,
		&ct.CreatedAt, &ct.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.ContractHistory{}, contract.ErrContractNotFound
		}
		return contract.ContractHistory{}, fmt.Errorf("failed to get active contract for employee %s: %w", employeeID, err)
	}

	return ct, nil
}

// GetDependantsByEmployee implements contract.ContractRepository.
func (c *contractRepositoryImpl) GetDependantsByEmployee(ctx context.Context, employeeID string) ([]contract.Dependant, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, full_name, deduction_from, deduction_to, created_at, updated_at
		FROM dependants
		WHERE employee_id = $1
		ORDER BY deduction_from
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependants for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var dependants []contract.Dependant
	for rows.Next() {
		var d contract.Dependant
		err := rows.Scan(&d.ID, &d.EmployeeID, &d.FullName, &d.DeductionFrom, &d.DeductionTo, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dependant: %w", err)
		}
		dependants = append(dependants, d)
	}

	return dependants, nil
}
