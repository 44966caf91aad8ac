package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/devrolin/ems-backend-go/internal/domain/attendance"
	"github.com/devrolin/ems-backend-go/internal/domain/employee"
	"github.com/devrolin/ems-backend-go/internal/domain/user"
	"github.com/devrolin/ems-backend-go/internal/pkg/utils"
	"github.com/go-chi/jwtauth/v5"
)

// Policy holds the status derivation thresholds.
type Policy struct {
	LateAfter    string        // wall-clock "15:04"; check-in after this is late
	HalfDayUnder time.Duration // worked less than this demotes to half-day
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc        *time.Location
	lateHour   int
	lateMinute int
	policy     Policy

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
	policy Policy,
) (attendance.AttendanceService, error) {
	lateAfter, err := time.Parse("15:04", policy.LateAfter)
	if err != nil {
		return nil, fmt.Errorf("invalid late-after time %q: %w", policy.LateAfter, err)
	}

	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		loc:                  loc,
		lateHour:             lateAfter.Hour(),
		lateMinute:           lateAfter.Minute(),
		policy:               policy,
		now:                  time.Now,
	}, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

type actor struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

func actorFromContext(ctx context.Context) (actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return actor{}, fmt.Errorf("role claim is missing or invalid")
	}

	act := actor{Role: user.Role(role)}
	if userID, ok := claims["user_id"].(string); ok {
		act.UserID = userID
	}
	if employeeID, ok := claims["employee_id"].(string); ok {
		act.EmployeeID = employeeID
	}
	return act, nil
}

// deriveCheckInStatus marks a check-in after the configured cutoff as late.
func (a *AttendanceServiceImpl) deriveCheckInStatus(checkIn time.Time) string {
	local := checkIn.In(a.loc)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), a.lateHour, a.lateMinute, 0, 0, a.loc)
	if local.After(cutoff) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// deriveCheckOutStatus demotes a worked day shorter than the half-day
// threshold. A late mark sticks unless the day collapses to a half-day.
func (a *AttendanceServiceImpl) deriveCheckOutStatus(att attendance.Attendance, checkOut time.Time) string {
	if att.CheckIn == nil {
		return att.Status
	}
	if checkOut.Sub(*att.CheckIn) < a.policy.HalfDayUnder {
		return attendance.StatusHalfDay
	}
	return att.Status
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Employees only check themselves in; admin/HR may act for anyone.
	if !act.Role.IsStaff() && act.EmployeeID != employeeID {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	now := a.now()
	start, end := utils.DayWindow(now, a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDateRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	if existing != nil {
		if existing.CheckIn != nil {
			// Never silently overwrite the first check-in of the day.
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}

		// The reconciliation job already created an absent placeholder for
		// today; claim it instead of inserting a second row.
		existing.CheckIn = &now
		existing.Status = a.deriveCheckInStatus(now)
		if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		existing.EmployeeName = &emp.FullName
		return mapAttendanceToResponse(*existing), nil
	}

	record := attendance.Attendance{
		EmployeeID: employeeID,

		// Date is the working day key, not a timestamp of the event.
		Date: start,

		CheckIn: &now,
		Status:  a.deriveCheckInStatus(now),
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateAttendance) {
			// Lost a race against the reconciliation job or a concurrent
			// check-in; to the caller both read as "already checked in".
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	created.EmployeeName = &emp.FullName
	return mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !act.Role.IsStaff() && act.EmployeeID != employeeID {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	now := a.now()

	// Same truncation rule as check-in, so both resolve the same record.
	start, end := utils.DayWindow(now, a.loc)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDateRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	if existing == nil || existing.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	existing.CheckOut = &now
	existing.Status = a.deriveCheckOutStatus(*existing, now)

	if err := a.AttendanceRepository.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(*existing), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// UpdateAttendance implements attendance.AttendanceService.
// Administrative correction: only the allow-listed request fields are
// written, never an arbitrary field merge.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if req.Date != nil && *req.Date != "" {
		parsed, _ := time.ParseInLocation("2006-01-02", *req.Date, a.loc)
		att.Date = parsed
	}
	if req.CheckIn != nil && *req.CheckIn != "" {
		parsed, _ := time.Parse(time.RFC3339, *req.CheckIn)
		att.CheckIn = &parsed
	}
	if req.CheckOut != nil && *req.CheckOut != "" {
		parsed, _ := time.Parse(time.RFC3339, *req.CheckOut)
		att.CheckOut = &parsed
	}
	if req.Status != nil && *req.Status != "" {
		att.Status = *req.Status
	}

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: employeeName,
		Date:         att.Date.Format("2006-01-02"),
		CheckIn:      timePtrToString(att.CheckIn),
		CheckOut:     timePtrToString(att.CheckOut),
		Status:       att.Status,
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.Format(time.RFC3339),
	}
}
