package payroll

import (
	"time"

	"github.com/lachong-labs/payroll-backend-go/internal/domain/attendance"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// restDay is the designated weekly rest day; overtime worked on it earns the
// 2.0x multiplier instead of 1.5x.
const restDay = time.Sunday

// AttendanceAggregator sums a month of attendance records against the
// scheduled shift lengths.
type AttendanceAggregator struct {
	resolver   *ScheduleResolver
	shiftHours map[string]decimal.Decimal
}

func NewAttendanceAggregator(resolver *ScheduleResolver, shiftHours map[string]decimal.Decimal) *AttendanceAggregator {
	return &AttendanceAggregator{resolver: resolver, shiftHours: shiftHours}
}

// Aggregate splits worked hours into adequate and under accumulators. A day
// whose weekday has no shift is skipped entirely. A full day contributes the
// shift's standard hours to the adequate bucket regardless of any excess; a
// short day contributes the recorded hours to the under bucket.
func (a *AttendanceAggregator) Aggregate(records []attendance.Attendance) payroll.AttendanceSummary {
	summary := payroll.AttendanceSummary{
		AdequateHours: decimal.Zero,
		UnderHours:    decimal.Zero,
	}

	for _, rec := range records {
		shiftID, ok := a.resolver.ShiftFor(rec.Date.Weekday())
		if !ok {
			continue
		}
		standard, ok := a.shiftHours[shiftID]
		if !ok {
			continue
		}

		if rec.HoursWorked.GreaterThanOrEqual(standard) {
			summary.AdequateHours = summary.AdequateHours.Add(standard)
		} else {
			summary.UnderHours = summary.UnderHours.Add(rec.HoursWorked)
		}
	}

	return summary
}

// AggregateOvertime splits a month of overtime hours by multiplier class:
// the rest day feeds the 2.0x bucket, every other weekday the 1.5x bucket.
func AggregateOvertime(records []attendance.Overtime) payroll.OvertimeSummary {
	summary := payroll.OvertimeSummary{
		Rate15Hours: decimal.Zero,
		Rate20Hours: decimal.Zero,
	}

	for _, rec := range records {
		if rec.Date.Weekday() == restDay {
			summary.Rate20Hours = summary.Rate20Hours.Add(rec.OvertimeHours)
		} else {
			summary.Rate15Hours = summary.Rate15Hours.Add(rec.OvertimeHours)
		}
	}

	return summary
}
