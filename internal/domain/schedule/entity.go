package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkSchedule struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleDetail binds a shift to one weekday of a work schedule. A schedule
// may carry more than one detail for the same weekday; resolution keeps the
// last one iterated.
type ScheduleDetail struct {
	ID             string
	WorkScheduleID string
	Weekday        string // time.Weekday.String() form: "Monday" ... "Sunday"
	ShiftID        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Shift struct {
	ID            string
	Name          string
	StandardHours decimal.Decimal // working hours of one scheduled instance
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
