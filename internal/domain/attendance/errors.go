package attendance

import "errors"

// Attendance domain errors
var (
	// Lifecycle state-machine violations
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNotCheckedIn      = errors.New("cannot check out without check-in")

	// Storage-level uniqueness violation on (employee_id, date). The
	// lifecycle service translates this to ErrAlreadyCheckedIn before it
	// reaches a caller.
	ErrDuplicateAttendance = errors.New("attendance record already exists for this employee and date")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
