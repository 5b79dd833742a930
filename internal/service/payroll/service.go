package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	attendanceDomain "github.com/lachong-labs/payroll-backend-go/internal/domain/attendance"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/contract"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/employee"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/insurance"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

var (
	rate15   = decimal.RequireFromString("1.5")
	rate20   = decimal.NewFromInt(2)
	thousand = decimal.NewFromInt(1000)
)

// TxManager runs a function inside one transaction scope. The postgres
// implementation opens a pgx transaction and threads it through the context;
// tests run the function directly.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type PayrollServiceImpl struct {
	tx             TxManager
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	scheduleRepo   schedule.ScheduleRepository
	attendanceRepo attendanceDomain.AttendanceRepository
	contractRepo   contract.ContractRepository
	insuranceCalc  *InsuranceCalculator
	prorator       *BenefitProrator
	taxCalc        *TaxCalculator
}

func NewPayrollService(
	tx TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	attendanceRepo attendanceDomain.AttendanceRepository,
	contractRepo contract.ContractRepository,
	insuranceRepo insurance.InsuranceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		contractRepo:   contractRepo,
		insuranceCalc:  NewInsuranceCalculator(insuranceRepo),
		prorator:       NewBenefitProrator(),
		taxCalc:        NewTaxCalculator(),
	}
}

func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, actorID string, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	employees, err := s.resolveEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	response := payroll.GeneratePayrollResponse{
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
	}

	for _, emp := range employees {
		result := s.runForEmployee(ctx, actorID, emp, req)

		entry := payroll.RunResultResponse{
			EmployeeID: result.EmployeeID,
			Status:     string(result.Status),
			Reason:     result.Reason,
		}
		if result.Payslip != nil {
			resp := toRecordResponse(*result.Payslip)
			entry.Payslip = &resp
		}
		response.Results = append(response.Results, entry)

		// A hard failure aborts the remaining batch; the report carries
		// the failed entry so callers see where it stopped.
		if result.Status == payroll.RunStatusFailed {
			slog.Error("payroll batch aborted",
				"employee_id", emp.ID,
				"period_month", req.PeriodMonth,
				"period_year", req.PeriodYear,
				"reason", result.Reason,
			)
			break
		}
	}

	return response, nil
}

func (s *PayrollServiceImpl) resolveEmployees(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get active employees: %w", err)
		}
		return employees, nil
	}

	employees := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get employee %s: %w", id, err)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// runForEmployee executes the full computation for one employee and month
// inside its own transaction scope. Its terminal states are the four run
// statuses; only RunStatusFailed carries an error.
func (s *PayrollServiceImpl) runForEmployee(ctx context.Context, actorID string, emp employee.Employee, req payroll.GeneratePayrollRequest) payroll.RunResult {
	result := payroll.RunResult{EmployeeID: emp.ID}

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		// Without an assigned schedule the employee is not payroll-eligible
		// this month. Not an error.
		if emp.WorkScheduleID == nil {
			result.Status = payroll.RunStatusNotEligible
			result.Reason = "no work schedule assigned"
			return nil
		}

		lastDay := lastDayOfMonth(req.PeriodMonth, req.PeriodYear)

		terms, err := s.contractRepo.GetActiveByEmployeeAndPeriod(ctx, emp.ID, lastDay)
		if err != nil {
			if errors.Is(err, contract.ErrContractNotFound) {
				result.Status = payroll.RunStatusNotEligible
				result.Reason = "no active contract for the period"
				return nil
			}
			return fmt.Errorf("failed to get contract history: %w", err)
		}

		// Duplicate periods are skipped silently so bulk re-runs stay
		// idempotent.
		_, err = s.payrollRepo.GetPayrollRecordByEmployeePeriod(ctx, emp.ID, terms.ID, req.PeriodMonth, req.PeriodYear)
		if err == nil {
			result.Status = payroll.RunStatusAlreadyExists
			return nil
		}
		if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return fmt.Errorf("failed to check existing payroll record: %w", err)
		}

		if !terms.StandardDays.IsPositive() || !terms.StandardHours.IsPositive() {
			return payroll.ErrInvalidContractTerms
		}

		record, err := s.computePayslip(ctx, emp, terms, req, lastDay)
		if err != nil {
			return err
		}
		record.CreatedBy = actorID

		created, err := s.payrollRepo.CreatePayrollRecord(ctx, *record)
		if err != nil {
			// The unique constraint is the backstop for the race window in
			// check-then-create; a violation means another run won.
			if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
				result.Status = payroll.RunStatusAlreadyExists
				return nil
			}
			return fmt.Errorf("failed to create payroll record: %w", err)
		}

		result.Status = payroll.RunStatusCreated
		result.Payslip = &created
		return nil
	})
	if err != nil {
		result.Status = payroll.RunStatusFailed
		result.Reason = err.Error()
	}

	return result
}

// computePayslip derives every figure of the payslip from the month's
// aggregates and the contract terms.
func (s *PayrollServiceImpl) computePayslip(ctx context.Context, emp employee.Employee, terms contract.ContractHistory, req payroll.GeneratePayrollRequest, lastDay time.Time) (*payroll.PayrollManagement, error) {
	details, err := s.scheduleRepo.GetDetailsByScheduleID(ctx, *emp.WorkScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule details: %w", err)
	}
	resolver := NewScheduleResolver(details)

	shiftHours := make(map[string]decimal.Decimal)
	for _, shiftID := range resolver.ShiftIDs() {
		shift, err := s.scheduleRepo.GetShiftByID(ctx, shiftID)
		if err != nil {
			return nil, fmt.Errorf("failed to get shift %s: %w", shiftID, err)
		}
		shiftHours[shiftID] = shift.StandardHours
	}

	attRecords, err := s.attendanceRepo.GetByEmployeeAndMonth(ctx, emp.ID, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}
	att := NewAttendanceAggregator(resolver, shiftHours).Aggregate(attRecords)

	otRecords, err := s.attendanceRepo.GetOvertimeByEmployeeAndMonth(ctx, emp.ID, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime records: %w", err)
	}
	ot := AggregateOvertime(otRecords)

	benefits := s.prorator.Prorate(terms, att, ot, resolver.ScheduledWorkDays(req.PeriodMonth, req.PeriodYear))
	benefitSalary := benefits.Total()

	// Straight-time rate for one hour of work under the contract terms.
	standardMonthHours := terms.StandardDays.Mul(terms.StandardHours)
	hourlyRate := terms.BasicSalary.Div(standardMonthHours)

	workDaysSalary := terms.BasicSalary.Mul(att.AdequateHours).Div(standardMonthHours)
	rate15Salary := terms.BasicSalary.Mul(rate15).Mul(ot.Rate15Hours).Div(standardMonthHours)
	rate20Salary := terms.BasicSalary.Mul(rate20).Mul(ot.Rate20Hours).Div(standardMonthHours)

	grossIncome := workDaysSalary.Add(rate15Salary).Add(rate20Salary).Add(benefitSalary)

	employeeInsurance, companyInsurance, err := s.insuranceCalc.Calculate(ctx, terms.BasicSalary, req.WithInsurance, req.InsurancePolicyID)
	if err != nil {
		return nil, err
	}

	// The tax-exempt part of pay: the meal allowance plus the overtime
	// premium above straight-time.
	straightTimeOvertime := hourlyRate.Mul(ot.Rate15Hours.Add(ot.Rate20Hours))
	noTaxSalary := benefits.Meal.Add(rate15Salary.Add(rate20Salary).Sub(straightTimeOvertime))

	dependants, err := s.contractRepo.GetDependantsByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dependants: %w", err)
	}
	dependantCount := 0
	for _, dep := range dependants {
		// A dependant counts only when its deduction window still covers
		// the last day of the target month.
		if !dep.DeductionTo.Before(lastDay) {
			dependantCount++
		}
	}

	taxableIncome := grossIncome.
		Sub(employeeInsurance).
		Sub(noTaxSalary).
		Sub(PersonalDeduction).
		Sub(DependantDeduction.Mul(decimal.NewFromInt(int64(dependantCount))))
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	tax := s.taxCalc.Calculate(taxableIncome)
	totalDeduction := employeeInsurance.Add(tax)
	netIncome := roundToThousand(grossIncome.Sub(totalDeduction))

	return &payroll.PayrollManagement{
		ID:                uuid.NewString(),
		EmployeeID:        emp.ID,
		ContractHistoryID: terms.ID,
		PeriodMonth:       req.PeriodMonth,
		PeriodYear:        req.PeriodYear,

		AdequateHours: att.AdequateHours,
		UnderHours:    att.UnderHours,
		Rate15Hours:   ot.Rate15Hours,
		Rate20Hours:   ot.Rate20Hours,

		BasicSalary:    terms.BasicSalary,
		WorkDaysSalary: workDaysSalary,
		Rate15Salary:   rate15Salary,
		Rate20Salary:   rate20Salary,

		MealBenefitSalary:            benefits.Meal,
		TransportationBenefitSalary:  benefits.Transportation,
		HousingBenefitSalary:         benefits.Housing,
		ToxicBenefitSalary:           benefits.Toxic,
		PhoneBenefitSalary:           benefits.Phone,
		AttendanceBonusBenefitSalary: benefits.AttendanceBonus,
		BenefitSalary:                benefitSalary,

		GrossIncome:       grossIncome,
		EmployeeInsurance: employeeInsurance,
		CompanyInsurance:  companyInsurance,
		NoTaxSalary:       noTaxSalary,
		DependantCount:    dependantCount,
		TaxableIncome:     taxableIncome,
		Tax:               tax,
		TotalDeduction:    totalDeduction,
		NetIncome:         netIncome,
	}, nil
}

func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, filter payroll.Filter) (payroll.ListPayrollRecordResponse, error) {
	if filter.PeriodMonth != nil && (*filter.PeriodMonth < 1 || *filter.PeriodMonth > 12) {
		return payroll.ListPayrollRecordResponse{}, payroll.ErrInvalidPeriod
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.payrollRepo.ListPayrollRecords(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toRecordResponse(record))
	}

	return payroll.ListPayrollRecordResponse{
		Records:    responses,
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) DeletePayrollRecord(ctx context.Context, id string) error {
	return s.payrollRepo.DeletePayrollRecord(ctx, id)
}

// roundToThousand rounds to the nearest thousand, half to even. Banker's
// rounding at that magnitude matches the established payslip figures at
// exact halfway points.
func roundToThousand(v decimal.Decimal) decimal.Decimal {
	return v.Div(thousand).RoundBank(0).Mul(thousand)
}

func lastDayOfMonth(month, year int) time.Time {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

func toRecordResponse(r payroll.PayrollManagement) payroll.PayrollRecordResponse {
	return payroll.PayrollRecordResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		ContractHistoryID: r.ContractHistoryID,
		PeriodMonth:       r.PeriodMonth,
		PeriodYear:        r.PeriodYear,

		AdequateHours: r.AdequateHours,
		UnderHours:    r.UnderHours,
		Rate15Hours:   r.Rate15Hours,
		Rate20Hours:   r.Rate20Hours,

		BasicSalary:    r.BasicSalary,
		WorkDaysSalary: r.WorkDaysSalary,
		Rate15Salary:   r.Rate15Salary,
		Rate20Salary:   r.Rate20Salary,

		MealBenefitSalary:            r.MealBenefitSalary,
		TransportationBenefitSalary:  r.TransportationBenefitSalary,
		HousingBenefitSalary:         r.HousingBenefitSalary,
		ToxicBenefitSalary:           r.ToxicBenefitSalary,
		PhoneBenefitSalary:           r.PhoneBenefitSalary,
		AttendanceBonusBenefitSalary: r.AttendanceBonusBenefitSalary,
		BenefitSalary:                r.BenefitSalary,

		GrossIncome:       r.GrossIncome,
		EmployeeInsurance: r.EmployeeInsurance,
		CompanyInsurance:  r.CompanyInsurance,
		NoTaxSalary:       r.NoTaxSalary,
		DependantCount:    r.DependantCount,
		TaxableIncome:     r.TaxableIncome,
		Tax:               r.Tax,
		TotalDeduction:    r.TotalDeduction,
		NetIncome:         r.NetIncome,

		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,

		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
	}
}
