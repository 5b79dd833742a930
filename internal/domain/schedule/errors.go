package schedule

import "errors"

var (
	ErrWorkScheduleNotFound = errors.New("work schedule not found")
	ErrShiftNotFound        = errors.New("shift not found")
)
