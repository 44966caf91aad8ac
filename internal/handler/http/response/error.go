package response

import (
	"errors"
	"net/http"

	"github.com/devrolin/ems-backend-go/internal/domain/attendance"
	"github.com/devrolin/ems-backend-go/internal/domain/employee"
	"github.com/devrolin/ems-backend-go/internal/domain/report"
	"github.com/devrolin/ems-backend-go/internal/domain/user"
	"github.com/devrolin/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every failure that
// reaches a caller goes through this switch; storage errors never escape
// unclassified.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance lifecycle state-machine violations
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Cannot check out without check-in")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance record already exists for this day")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "You can only manage your own attendance")

	// Not found
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, report.ErrNoAttendanceRecords):
		NotFound(w, "No attendance record found for this employee")

	// Auth
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, "Admin or HR role required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
