package payroll

import (
	"context"
	"testing"
	"time"

	attendanceDomain "github.com/lachong-labs/payroll-backend-go/internal/domain/attendance"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/contract"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/employee"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/insurance"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// March 2026 has five Sundays (1, 8, 15, 22, 29) and 26 other days, which
// matches the standard 26-day contract month exactly.
const (
	testMonth = 3
	testYear  = 2026
)

type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memStore implements every repository interface the engine reads from and
// writes to, backed by plain maps and slices.
type memStore struct {
	employees  map[string]employee.Employee
	activeIDs  []string
	contracts  []contract.ContractHistory
	dependants []contract.Dependant
	details    map[string][]schedule.ScheduleDetail
	shifts     map[string]schedule.Shift
	attendance []attendanceDomain.Attendance
	overtime   []attendanceDomain.Overtime
	policies   map[string]insurance.Policy
	payrolls   map[string]payroll.PayrollManagement
}

func newMemStore() *memStore {
	return &memStore{
		employees: make(map[string]employee.Employee),
		details:   make(map[string][]schedule.ScheduleDetail),
		shifts:    make(map[string]schedule.Shift),
		policies:  make(map[string]insurance.Policy),
		payrolls:  make(map[string]payroll.PayrollManagement),
	}
}

func (s *memStore) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *memStore) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range s.activeIDs {
		out = append(out, s.employees[id])
	}
	return out, nil
}

func (s *memStore) GetActiveByEmployeeAndPeriod(ctx context.Context, employeeID string, at time.Time) (contract.ContractHistory, error) {
	for _, ct := range s.contracts {
		if ct.EmployeeID != employeeID {
			continue
		}
		if ct.EffectiveFrom.After(at) {
			continue
		}
		if ct.EffectiveTo != nil && ct.EffectiveTo.Before(at) {
			continue
		}
		return ct, nil
	}
	return contract.ContractHistory{}, contract.ErrContractNotFound
}

func (s *memStore) GetDependantsByEmployee(ctx context.Context, employeeID string) ([]contract.Dependant, error) {
	var out []contract.Dependant
	for _, dep := range s.dependants {
		if dep.EmployeeID == employeeID {
			out = append(out, dep)
		}
	}
	return out, nil
}

func (s *memStore) GetDetailsByScheduleID(ctx context.Context, workScheduleID string) ([]schedule.ScheduleDetail, error) {
	return s.details[workScheduleID], nil
}

func (s *memStore) GetShiftByID(ctx context.Context, id string) (schedule.Shift, error) {
	shift, ok := s.shifts[id]
	if !ok {
		return schedule.Shift{}, schedule.ErrShiftNotFound
	}
	return shift, nil
}

func (s *memStore) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]attendanceDomain.Attendance, error) {
	var out []attendanceDomain.Attendance
	for _, rec := range s.attendance {
		if rec.EmployeeID == employeeID && int(rec.Date.Month()) == month && rec.Date.Year() == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *memStore) GetOvertimeByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]attendanceDomain.Overtime, error) {
	var out []attendanceDomain.Overtime
	for _, rec := range s.overtime {
		if rec.EmployeeID == employeeID && int(rec.Date.Month()) == month && rec.Date.Year() == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *memStore) GetPolicyByID(ctx context.Context, id string) (insurance.Policy, error) {
	policy, ok := s.policies[id]
	if !ok {
		return insurance.Policy{}, insurance.ErrPolicyNotFound
	}
	return policy, nil
}

func (s *memStore) CreatePayrollRecord(ctx context.Context, record payroll.PayrollManagement) (payroll.PayrollManagement, error) {
	for _, existing := range s.payrolls {
		if existing.EmployeeID == record.EmployeeID &&
			existing.ContractHistoryID == record.ContractHistoryID &&
			existing.PeriodMonth == record.PeriodMonth &&
			existing.PeriodYear == record.PeriodYear {
			return payroll.PayrollManagement{}, payroll.ErrPayrollRecordAlreadyExists
		}
	}
	record.CreatedAt = time.Now()
	s.payrolls[record.ID] = record
	return record, nil
}

func (s *memStore) GetPayrollRecordByID(ctx context.Context, id string) (payroll.PayrollManagement, error) {
	record, ok := s.payrolls[id]
	if !ok {
		return payroll.PayrollManagement{}, payroll.ErrPayrollRecordNotFound
	}
	return record, nil
}

func (s *memStore) GetPayrollRecordByEmployeePeriod(ctx context.Context, employeeID, contractHistoryID string, month, year int) (payroll.PayrollManagement, error) {
	for _, record := range s.payrolls {
		if record.EmployeeID == employeeID &&
			record.ContractHistoryID == contractHistoryID &&
			record.PeriodMonth == month &&
			record.PeriodYear == year {
			return record, nil
		}
	}
	return payroll.PayrollManagement{}, payroll.ErrPayrollRecordNotFound
}

func (s *memStore) ListPayrollRecords(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollManagement, int64, error) {
	var out []payroll.PayrollManagement
	for _, record := range s.payrolls {
		out = append(out, record)
	}
	return out, int64(len(out)), nil
}

func (s *memStore) DeletePayrollRecord(ctx context.Context, id string) error {
	if _, ok := s.payrolls[id]; !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	delete(s.payrolls, id)
	return nil
}

func newTestService(store *memStore) payroll.PayrollService {
	return NewPayrollService(passthroughTx{}, store, store, store, store, store, store)
}

// seedStandardEmployee configures the standard fixture: basic salary
// 10,000,000 under a 26-day, 8-hour contract, a Monday-Saturday schedule,
// and a perfect month of attendance (208 adequate hours).
func seedStandardEmployee(store *memStore) {
	scheduleID := "sched-1"
	store.employees["emp-1"] = employee.Employee{
		ID:             "emp-1",
		EmployeeCode:   "E001",
		FullName:       "Nguyen Van A",
		WorkScheduleID: &scheduleID,
		IsActive:       true,
	}
	store.activeIDs = append(store.activeIDs, "emp-1")

	store.shifts["shift-8h"] = schedule.Shift{
		ID:            "shift-8h",
		Name:          "Day shift",
		StandardHours: decimal.NewFromInt(8),
	}
	for _, weekday := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"} {
		store.details[scheduleID] = append(store.details[scheduleID], schedule.ScheduleDetail{
			WorkScheduleID: scheduleID,
			Weekday:        weekday,
			ShiftID:        "shift-8h",
		})
	}

	store.contracts = append(store.contracts, contract.ContractHistory{
		ID:            "ct-1",
		EmployeeID:    "emp-1",
		BasicSalary:   decimal.NewFromInt(10000000),
		StandardDays:  decimal.NewFromInt(26),
		StandardHours: decimal.NewFromInt(8),
		EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	first := time.Date(testYear, testMonth, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		store.attendance = append(store.attendance, attendanceDomain.Attendance{
			EmployeeID:  "emp-1",
			Date:        d,
			HoursWorked: decimal.NewFromInt(8),
		})
	}
}

func generateReq() payroll.GeneratePayrollRequest {
	return payroll.GeneratePayrollRequest{
		PeriodMonth: testMonth,
		PeriodYear:  testYear,
		EmployeeIDs: []string{"emp-1"},
	}
}

func requireDecimalEqual(t *testing.T, expected, actual decimal.Decimal, name string) {
	t.Helper()
	require.True(t, expected.Equal(actual), "%s: expected %s, got %s", name, expected, actual)
}

func TestGeneratePayroll_FullMonthNoExtras(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	svc := newTestService(store)

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.Equal(t, string(payroll.RunStatusCreated), result.Status)
	require.NotNil(t, result.Payslip)

	slip := result.Payslip
	requireDecimalEqual(t, decimal.NewFromInt(208), slip.AdequateHours, "adequate hours")
	requireDecimalEqual(t, decimal.Zero, slip.UnderHours, "under hours")
	requireDecimalEqual(t, decimal.NewFromInt(10000000), slip.WorkDaysSalary, "work days salary")
	requireDecimalEqual(t, decimal.NewFromInt(10000000), slip.GrossIncome, "gross income")
	requireDecimalEqual(t, decimal.Zero, slip.TaxableIncome, "taxable income")
	requireDecimalEqual(t, decimal.Zero, slip.Tax, "tax")
	requireDecimalEqual(t, decimal.NewFromInt(10000000), slip.NetIncome, "net income")
	assert.Equal(t, "admin-1", slip.CreatedBy)
}

func TestGeneratePayroll_RestDayOvertime(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	// 10 hours on Sunday March 8th, the designated rest day.
	store.overtime = append(store.overtime, attendanceDomain.Overtime{
		EmployeeID:    "emp-1",
		Date:          time.Date(testYear, testMonth, 8, 0, 0, 0, 0, time.UTC),
		OvertimeHours: decimal.NewFromInt(10),
	})
	svc := newTestService(store)

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	require.NotNil(t, resp.Results[0].Payslip)
	slip := resp.Results[0].Payslip

	requireDecimalEqual(t, decimal.NewFromInt(10), slip.Rate20Hours, "2.0x hours")
	requireDecimalEqual(t, decimal.Zero, slip.Rate15Hours, "1.5x hours")

	// 10,000,000 / 26 / 8 * 2 * 10
	requireDecimalEqual(t, decimal.RequireFromString("961538.46"), slip.Rate20Salary.Round(2), "2.0x salary")
	requireDecimalEqual(t, decimal.RequireFromString("10961538.46"), slip.GrossIncome.Round(2), "gross income")

	// The overtime premium above straight-time pay is tax-exempt.
	requireDecimalEqual(t, decimal.RequireFromString("480769.23"), slip.NoTaxSalary.Round(2), "no tax salary")
	requireDecimalEqual(t, decimal.Zero, slip.TaxableIncome, "taxable income")
	requireDecimalEqual(t, decimal.NewFromInt(10962000), slip.NetIncome, "net income")
}

func TestGeneratePayroll_MealAllowanceCreditsRestDayOvertime(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	store.contracts[0].MealAllowance = decimal.NewFromInt(2080000)
	store.overtime = append(store.overtime, attendanceDomain.Overtime{
		EmployeeID:    "emp-1",
		Date:          time.Date(testYear, testMonth, 8, 0, 0, 0, 0, time.UTC),
		OvertimeHours: decimal.NewFromInt(10),
	})
	svc := newTestService(store)

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	require.NotNil(t, resp.Results[0].Payslip)

	// 2,080,000 * (208 + 10) / 208
	requireDecimalEqual(t, decimal.NewFromInt(2180000), resp.Results[0].Payslip.MealBenefitSalary, "meal benefit")
}

func TestGeneratePayroll_Idempotent(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	svc := newTestService(store)

	first, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusCreated), first.Results[0].Status)

	second, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusAlreadyExists), second.Results[0].Status)
	assert.Nil(t, second.Results[0].Payslip)

	assert.Len(t, store.payrolls, 1)
}

func TestGeneratePayroll_NoScheduleNotEligible(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	emp := store.employees["emp-1"]
	emp.WorkScheduleID = nil
	store.employees["emp-1"] = emp
	svc := newTestService(store)

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusNotEligible), resp.Results[0].Status)
	assert.Empty(t, store.payrolls)
}

func TestGeneratePayroll_NoContractNotEligible(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	store.contracts = nil
	svc := newTestService(store)

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusNotEligible), resp.Results[0].Status)
	assert.Empty(t, store.payrolls)
}

func TestGeneratePayroll_WithInsurance(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	store.policies["pol-1"] = insurance.Policy{
		ID:              "pol-1",
		Name:            "Social insurance",
		EmployeePercent: decimal.RequireFromString("8"),
		CompanyPercent:  decimal.RequireFromString("17.5"),
	}
	svc := newTestService(store)

	req := generateReq()
	req.WithInsurance = true
	policyID := "pol-1"
	req.InsurancePolicyID = &policyID

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", req)
	require.NoError(t, err)
	require.NotNil(t, resp.Results[0].Payslip)
	slip := resp.Results[0].Payslip

	requireDecimalEqual(t, decimal.NewFromInt(800000), slip.EmployeeInsurance, "employee insurance")
	requireDecimalEqual(t, decimal.NewFromInt(1750000), slip.CompanyInsurance, "company insurance")
	requireDecimalEqual(t, decimal.NewFromInt(800000), slip.TotalDeduction, "total deduction")
	requireDecimalEqual(t, decimal.NewFromInt(9200000), slip.NetIncome, "net income")
}

func TestGeneratePayroll_DeductionsExceedingGrossGoNegative(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	store.policies["pol-heavy"] = insurance.Policy{
		ID:              "pol-heavy",
		Name:            "Misconfigured policy",
		EmployeePercent: decimal.RequireFromString("150"),
		CompanyPercent:  decimal.RequireFromString("17.5"),
	}
	svc := newTestService(store)

	req := generateReq()
	req.WithInsurance = true
	policyID := "pol-heavy"
	req.InsurancePolicyID = &policyID

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", req)
	require.NoError(t, err)
	require.NotNil(t, resp.Results[0].Payslip)
	slip := resp.Results[0].Payslip

	// Net income is not clamped: the record surfaces the shortfall for
	// manual review instead of hiding it behind a zero.
	requireDecimalEqual(t, decimal.NewFromInt(15000000), slip.EmployeeInsurance, "employee insurance")
	requireDecimalEqual(t, decimal.Zero, slip.Tax, "tax")
	requireDecimalEqual(t, decimal.NewFromInt(-5000000), slip.NetIncome, "net income")
	assert.True(t, slip.NetIncome.IsNegative())
}

func TestGeneratePayroll_MissingInsurancePolicyFails(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	svc := newTestService(store)

	req := generateReq()
	req.WithInsurance = true
	policyID := "pol-missing"
	req.InsurancePolicyID = &policyID

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", req)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusFailed), resp.Results[0].Status)
	assert.Contains(t, resp.Results[0].Reason, "insurance policy")
	assert.Empty(t, store.payrolls)
}

func TestGeneratePayroll_ZeroStandardHoursFailsLoudly(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	store.contracts[0].StandardHours = decimal.Zero
	svc := newTestService(store)

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusFailed), resp.Results[0].Status)
	assert.Contains(t, resp.Results[0].Reason, "standard days and standard hours")
	assert.Empty(t, store.payrolls)
}

func TestGeneratePayroll_FailureAbortsRemainingBatch(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)

	// Second employee shares the schedule but carries unusable contract terms.
	scheduleID := "sched-1"
	store.employees["emp-2"] = employee.Employee{
		ID:             "emp-2",
		EmployeeCode:   "E002",
		FullName:       "Tran Thi B",
		WorkScheduleID: &scheduleID,
		IsActive:       true,
	}
	store.contracts = append(store.contracts, contract.ContractHistory{
		ID:            "ct-2",
		EmployeeID:    "emp-2",
		BasicSalary:   decimal.NewFromInt(9000000),
		StandardDays:  decimal.Zero,
		StandardHours: decimal.NewFromInt(8),
		EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	svc := newTestService(store)

	req := generateReq()
	req.EmployeeIDs = []string{"emp-2", "emp-1"}

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", req)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "emp-2", resp.Results[0].EmployeeID)
	assert.Equal(t, string(payroll.RunStatusFailed), resp.Results[0].Status)
	assert.Empty(t, store.payrolls)
}

func TestGeneratePayroll_DependantWindowBoundary(t *testing.T) {
	lastDay := time.Date(testYear, testMonth, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		deductionTo time.Time
		wantCount   int
	}{
		{"covers last day", lastDay, 1},
		{"ends day before last", lastDay.AddDate(0, 0, -1), 0},
		{"open far future", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStore()
			seedStandardEmployee(store)
			store.dependants = append(store.dependants, contract.Dependant{
				EmployeeID:    "emp-1",
				FullName:      "Nguyen Van C",
				DeductionFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				DeductionTo:   tc.deductionTo,
			})
			svc := newTestService(store)

			resp, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
			require.NoError(t, err)
			require.NotNil(t, resp.Results[0].Payslip)
			assert.Equal(t, tc.wantCount, resp.Results[0].Payslip.DependantCount)
		})
	}
}

func TestGeneratePayroll_AllActiveWhenNoIDsGiven(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	svc := newTestService(store)

	req := generateReq()
	req.EmployeeIDs = nil

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", req)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "emp-1", resp.Results[0].EmployeeID)
}

func TestGeneratePayroll_InvalidPeriodRejected(t *testing.T) {
	svc := newTestService(newMemStore())

	req := payroll.GeneratePayrollRequest{PeriodMonth: 13, PeriodYear: 2026}
	_, err := svc.GeneratePayroll(context.Background(), "admin-1", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period_month")
}

func TestGetPayrollRecord_RoundTrip(t *testing.T) {
	store := newMemStore()
	seedStandardEmployee(store)
	svc := newTestService(store)

	resp, err := svc.GeneratePayroll(context.Background(), "admin-1", generateReq())
	require.NoError(t, err)
	require.NotNil(t, resp.Results[0].Payslip)
	created := resp.Results[0].Payslip

	got, err := svc.GetPayrollRecord(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "emp-1", got.EmployeeID)
	requireDecimalEqual(t, created.NetIncome, got.NetIncome, "net income")

	_, err = svc.GetPayrollRecord(context.Background(), "pay-missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestListPayrollRecords_InvalidPeriodRejected(t *testing.T) {
	svc := newTestService(newMemStore())

	month := 13
	_, err := svc.ListPayrollRecords(context.Background(), payroll.Filter{PeriodMonth: &month})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
