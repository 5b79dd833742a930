package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollManagementColumns = `pm.id, pm.employee_id, pm.contract_history_id, pm.period_month, pm.period_year,
	pm.adequate_hours, pm.under_hours, pm.rate_15_hours, pm.rate_20_hours,
	pm.basic_salary, pm.work_days_salary, pm.rate_15_salary, pm.rate_20_salary,
	pm.meal_benefit_salary, pm.transportation_benefit_salary, pm.housing_benefit_salary,
	pm.toxic_benefit_salary, pm.phone_benefit_salary, pm.attendance_bonus_benefit_salary,
	pm.benefit_salary, pm.gross_income, pm.employee_insurance, pm.company_insurance,
	pm.no_tax_salary, pm.dependant_count, pm.taxable_income, pm.tax, pm.total_deduction,
	pm.net_income, pm.created_by, pm.created_at`

func scanPayrollManagement(row pgx.Row, rec *payroll.PayrollManagement, withEmployee bool) error {
	dest := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.ContractHistoryID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.AdequateHours, &rec.UnderHours, &rec.Rate15Hours, &rec.Rate20Hours,
		&rec.BasicSalary, &rec.WorkDaysSalary, &rec.Rate15Salary, &rec.Rate20Salary,
		&rec.MealBenefitSalary, &rec.TransportationBenefitSalary, &rec.HousingBenefitSalary,
		&rec.ToxicBenefitSalary, &rec.PhoneBenefitSalary, &rec.AttendanceBonusBenefitSalary,
		&rec.BenefitSalary, &rec.GrossIncome, &rec.EmployeeInsurance, &rec.CompanyInsurance,
		&rec.NoTaxSalary, &rec.DependantCount, &rec.TaxableIncome, &rec.Tax, &rec.TotalDeduction,
		&rec.NetIncome, &rec.CreatedBy, &rec.CreatedAt,
	}
	if withEmployee {
		dest = append(dest, &rec.EmployeeName, &rec.EmployeeCode)
	}
	return row.Scan(dest...)
}

// CreatePayrollRecord implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) CreatePayrollRecord(ctx context.Context, record payroll.PayrollManagement) (payroll.PayrollManagement, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_managements (
			id, employee_id, contract_history_id, period_month, period_year,
			adequate_hours, under_hours, rate_15_hours, rate_20_hours,
			basic_salary, work_days_salary, rate_15_salary, rate_20_salary,
			meal_benefit_salary, transportation_benefit_salary, housing_benefit_salary,
			toxic_benefit_salary, phone_benefit_salary, attendance_bonus_benefit_salary,
			benefit_salary, gross_income, employee_insurance, company_insurance,
			no_tax_salary, dependant_count, taxable_income, tax, total_deduction,
			net_income, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30
		)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.ContractHistoryID, record.PeriodMonth, record.PeriodYear,
		record.AdequateHours, record.UnderHours, record.Rate15Hours, record.Rate20Hours,
		record.BasicSalary, record.WorkDaysSalary, record.Rate15Salary, record.Rate20Salary,
		record.MealBenefitSalary, record.TransportationBenefitSalary, record.HousingBenefitSalary,
		record.ToxicBenefitSalary, record.PhoneBenefitSalary, record.AttendanceBonusBenefitSalary,
		record.BenefitSalary, record.GrossIncome, record.EmployeeInsurance, record.CompanyInsurance,
		record.NoTaxSalary, record.DependantCount, record.TaxableIncome, record.Tax, record.TotalDeduction,
		record.NetIncome, record.CreatedBy,
	).Scan(&record.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollManagement{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollManagement{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// GetPayrollRecordByID implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetPayrollRecordByID(ctx context.Context, id string) (payroll.PayrollManagement, error) {
	q := GetQuerier(ctx, p.db)

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name, e.employee_code
		FROM payroll_managements pm
		JOIN employees e ON pm.employee_id = e.id
		WHERE pm.id = $1
	`, payrollManagementColumns)

	var rec payroll.PayrollManagement
	err := scanPayrollManagement(q.QueryRow(ctx, query, id), &rec, true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollManagement{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollManagement{}, fmt.Errorf("failed to get payroll record with id %s: %w", id, err)
	}

	return rec, nil
}

// GetPayrollRecordByEmployeePeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetPayrollRecordByEmployeePeriod(ctx context.Context, employeeID, contractHistoryID string, month, year int) (payroll.PayrollManagement, error) {
	q := GetQuerier(ctx, p.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_managements pm
		WHERE pm.employee_id = $1 AND pm.contract_history_id = $2
			AND pm.period_month = $3 AND pm.period_year = $4
	`, payrollManagementColumns)

	var rec payroll.PayrollManagement
	err := scanPayrollManagement(q.QueryRow(ctx, query, employeeID, contractHistoryID, month, year), &rec, false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollManagement{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollManagement{}, fmt.Errorf("failed to get payroll record for employee %s: %w", employeeID, err)
	}

	return rec, nil
}

// ListPayrollRecords implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListPayrollRecords(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollManagement, int64, error) {
	q := GetQuerier(ctx, p.db)

	baseQuery := `
		FROM payroll_managements pm
		JOIN employees e ON pm.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pm.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodMonth != nil {
		baseQuery += fmt.Sprintf(" AND pm.period_month = $%d", argIdx)
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		baseQuery += fmt.Sprintf(" AND pm.period_year = $%d", argIdx)
		args = append(args, *filter.PeriodYear)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name, e.employee_code
		%s
		ORDER BY pm.period_year DESC, pm.period_month DESC, e.employee_code
		LIMIT $%d OFFSET $%d
	`, payrollManagementColumns, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollManagement
	for rows.Next() {
		var rec payroll.PayrollManagement
		if err := scanPayrollManagement(rows, &rec, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, nil
}

// DeletePayrollRecord implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) DeletePayrollRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	query := `DELETE FROM payroll_managements WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to delete payroll record with id %s: %w", id, err)
	}

	return nil
}
