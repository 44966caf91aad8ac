package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. Returns
	// ErrDuplicateAttendance when a record already exists for the same
	// (employee, date) pair; the unique index decides races between a
	// manual check-in and the reconciliation job.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDateRange retrieves the employee's record whose date
	// falls inside [start, end]. Dates are stored as full timestamps, so
	// "today's record" is matched by range rather than exact equality.
	// Returns (nil, nil) when no record exists.
	GetByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByEmployee retrieves all records for one employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// CountByStatus groups records whose date falls inside [start, end] by
	// status. employeeID narrows the grouping to one employee when non-nil.
	// Statuses with no records are simply missing from the map.
	CountByStatus(ctx context.Context, employeeID *string, start, end time.Time) (map[string]int, error)
}
