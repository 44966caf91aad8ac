package attendance

import "context"

// AttendanceService defines business logic for the attendance lifecycle.
type AttendanceService interface {
	// CheckIn records the employee's first activity of the day. Fails with
	// ErrAlreadyCheckedIn on a repeat call; the original check-in timestamp
	// is never overwritten.
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes today's record. Fails with ErrNotCheckedIn when no
	// check-in happened, ErrAlreadyCheckedOut on a repeat call.
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin/HR)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// UpdateAttendance corrects a record (admin/HR); only allow-listed
	// fields are written.
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a record (admin/HR)
	DeleteAttendance(ctx context.Context, id string) error
}
