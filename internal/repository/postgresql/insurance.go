package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/insurance"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/database"
)

type insuranceRepositoryImpl struct {
	db *database.DB
}

func NewInsuranceRepository(db *database.DB) insurance.InsuranceRepository {
	return &insuranceRepositoryImpl{db: db}
}

// GetPolicyByID implements insurance.InsuranceRepository.
func (i *insuranceRepositoryImpl) GetPolicyByID(ctx context.Context, id string) (insurance.Policy, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT id, name, employee_percent, company_percent, created_at, updated_at
		FROM insurance_policies
		WHERE id = $1
	`

	var p insurance.Policy
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.EmployeePercent, &p.CompanyPercent, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return insurance.Policy{}, insurance.ErrPolicyNotFound
		}
		return insurance.Policy{}, fmt.Errorf("failed to get insurance policy with id %s: %w", id, err)
	}

	return p, nil
}
