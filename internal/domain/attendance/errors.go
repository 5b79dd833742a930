package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrOvertimeNotFound   = errors.New("overtime record not found")
)
