package payroll

import (
	"time"

	"github.com/lachong-labs/payroll-backend-go/internal/domain/schedule"
)

// ScheduleResolver answers which shift applies to each weekday of one work
// schedule. When a schedule binds more than one shift to the same weekday the
// last detail iterated wins; the source data allows this and downstream
// arithmetic depends on a single standard-hours value per weekday.
type ScheduleResolver struct {
	shiftByWeekday map[string]string
}

func NewScheduleResolver(details []schedule.ScheduleDetail) *ScheduleResolver {
	shiftByWeekday := make(map[string]string)
	for _, d := range details {
		// last wins
		shiftByWeekday[d.Weekday] = d.ShiftID
	}
	return &ScheduleResolver{shiftByWeekday: shiftByWeekday}
}

// ShiftFor returns the shift bound to the weekday, or false when the
// schedule has no entry for it (a non-working day).
func (r *ScheduleResolver) ShiftFor(weekday time.Weekday) (string, bool) {
	shiftID, ok := r.shiftByWeekday[weekday.String()]
	return shiftID, ok
}

// ShiftIDs returns the distinct shift ids the schedule references.
func (r *ScheduleResolver) ShiftIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, shiftID := range r.shiftByWeekday {
		if !seen[shiftID] {
			seen[shiftID] = true
			ids = append(ids, shiftID)
		}
	}
	return ids
}

// ScheduledWorkDays counts the days of the calendar month that fall on a
// weekday the schedule assigns a shift to.
func (r *ScheduleResolver) ScheduledWorkDays(month, year int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if _, ok := r.ShiftFor(d.Weekday()); ok {
			days++
		}
	}
	return days
}
