package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lachong-labs/payroll-backend-go/internal/domain/payroll"
)

// PayrollJobs runs the monthly payroll batch without an operator. Each tick
// targets the previous calendar month; runs for months that already have
// payslips are skipped by the engine, so overlapping ticks are harmless.
type PayrollJobs struct {
	payrollService payroll.PayrollService
	systemActor    string
}

func NewPayrollJobs(payrollService payroll.PayrollService, systemActor string) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		systemActor:    systemActor,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("generate_monthly_payroll", interval, j.GenerateMonthlyPayroll)
}

// GenerateMonthlyPayroll runs the engine for every active employee for the
// previous month. Insurance is left off: policy selection needs an operator.
func (j *PayrollJobs) GenerateMonthlyPayroll(ctx context.Context) error {
	now := time.Now()
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	req := payroll.GeneratePayrollRequest{
		PeriodMonth: int(prev.Month()),
		PeriodYear:  prev.Year(),
	}

	result, err := j.payrollService.GeneratePayroll(ctx, j.systemActor, req)
	if err != nil {
		return fmt.Errorf("monthly payroll run for %d-%02d failed: %w", req.PeriodYear, req.PeriodMonth, err)
	}

	var created, skipped, notEligible, failed int
	for _, r := range result.Results {
		switch payroll.RunStatus(r.Status) {
		case payroll.RunStatusCreated:
			created++
		case payroll.RunStatusAlreadyExists:
			skipped++
		case payroll.RunStatusNotEligible:
			notEligible++
		case payroll.RunStatusFailed:
			failed++
		}
	}
	slog.Info("Monthly payroll run finished",
		"period_month", req.PeriodMonth,
		"period_year", req.PeriodYear,
		"created", created,
		"already_exists", skipped,
		"not_eligible", notEligible,
		"failed", failed,
	)

	return nil
}
