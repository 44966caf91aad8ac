package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devrolin/ems-backend-go/internal/domain/attendance"
	"github.com/devrolin/ems-backend-go/internal/domain/employee"
	"github.com/devrolin/ems-backend-go/internal/pkg/utils"
)

// AttendanceJobs holds the daily absence reconciliation job: every active
// employee must end the day with exactly one attendance record, absent by
// default when nothing else created one.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location

	now func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// RegisterJobs registers the reconciliation job at the configured local
// wall-clock time ("15:04" format).
func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, at string) error {
	return scheduler.AddDailyJob("mark_absent_employees", at, j.loc, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees walks the active roster and inserts an absent record
// for every employee with no attendance activity today. Existing records
// are never touched, so running the job twice in a day is a no-op, and an
// employee who checked in before the job fires is skipped.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	slog.Info("Cron: Starting mark absent employees job")

	// Same day window as check-in/check-out, so all three agree on "today".
	start, end := utils.DayWindow(j.now(), j.loc)

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch employee roster: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		existing, err := j.attendanceRepo.GetByEmployeeAndDateRange(ctx, emp.ID, start, end)
		if err != nil {
			slog.Error("Cron: Failed to look up attendance",
				"employee_id", emp.ID,
				"error", err)
			continue
		}
		if existing != nil {
			// Already has a record for today, absent or otherwise.
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       start,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrDuplicateAttendance) {
				// An employee checked in between our lookup and the insert;
				// the unique index already settled the race.
				continue
			}
			slog.Error("Cron: Failed to create absence record",
				"employee_id", emp.ID,
				"error", err)
			continue
		}

		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked, "date", start.Format("2006-01-02"))
	return nil
}
