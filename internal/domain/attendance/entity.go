package attendance

import "time"

// Attendance is one employee's record for one calendar day. At most one
// record may exist per (EmployeeID, Date) pair; the attendances table
// enforces this with a unique index.
type Attendance struct {
	ID         string
	EmployeeID string

	// Date is the record's working day, truncated to local midnight. It is
	// the natural key together with EmployeeID.
	Date time.Time

	CheckIn  *time.Time // set once on first check-in of the day
	CheckOut *time.Time // settable only after CheckIn, at most once

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined from employees for list/report responses.
	EmployeeName *string
}

// Attendance statuses. Reconciliation creates records as absent; check-in
// derives present or late; check-out may demote to half-day.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusHalfDay = "half-day"
	StatusAbsent  = "absent"
)

// Statuses lists all valid status values, in summary output order.
var Statuses = []string{StatusPresent, StatusLate, StatusHalfDay, StatusAbsent}
