package report

import (
	"context"
	"testing"
	"time"

	"github.com/devrolin/ems-backend-go/internal/domain/attendance"
	"github.com/devrolin/ems-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAttendanceRepo answers the two aggregation queries the report service
// issues and records the windows it was asked for.
type stubAttendanceRepo struct {
	attendance.AttendanceRepository

	counts  map[string]int
	records []attendance.Attendance

	lastEmployeeID *string
	lastStart      time.Time
	lastEnd        time.Time
}

func (s *stubAttendanceRepo) CountByStatus(ctx context.Context, employeeID *string, start, end time.Time) (map[string]int, error) {
	s.lastEmployeeID = employeeID
	s.lastStart = start
	s.lastEnd = end
	return s.counts, nil
}

func (s *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return s.records, nil
}

func record(status string, day time.Time) attendance.Attendance {
	return attendance.Attendance{
		ID:         "rec-" + status + day.Format("0102"),
		EmployeeID: "emp-1",
		Date:       day,
		Status:     status,
	}
}

func TestReportService_DailySummary_AllCategoriesPresent(t *testing.T) {
	repo := &stubAttendanceRepo{counts: map[string]int{
		attendance.StatusPresent: 12,
		attendance.StatusLate:    3,
	}}
	svc := NewReportService(repo, time.UTC)

	result, err := svc.DailySummary(context.Background(), report.DailySummaryRequest{Date: "2026-03-02"})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", result.Date)
	assert.Equal(t, 12, result.Summary.Present)
	assert.Equal(t, 3, result.Summary.Late)

	// Categories without records report zero rather than disappearing.
	assert.Equal(t, 0, result.Summary.HalfDay)
	assert.Equal(t, 0, result.Summary.Absent)
	assert.Equal(t, 15, result.Summary.Total())
}

func TestReportService_DailySummary_WindowCoversWholeDay(t *testing.T) {
	repo := &stubAttendanceRepo{counts: map[string]int{}}
	svc := NewReportService(repo, time.UTC)

	_, err := svc.DailySummary(context.Background(), report.DailySummaryRequest{Date: "2026-03-02"})

	require.NoError(t, err)
	assert.Nil(t, repo.lastEmployeeID, "daily summary spans the whole roster")
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), repo.lastStart)
	assert.True(t, repo.lastEnd.After(time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC)))
	assert.True(t, repo.lastEnd.Before(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)))
}

func TestReportService_DailySummary_MissingDate(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, time.UTC)

	_, err := svc.DailySummary(context.Background(), report.DailySummaryRequest{})

	assert.Error(t, err)
}

func TestReportService_MonthlySummary_WindowCoversCalendarMonth(t *testing.T) {
	repo := &stubAttendanceRepo{counts: map[string]int{attendance.StatusAbsent: 2}}
	svc := NewReportService(repo, time.UTC)

	result, err := svc.MonthlySummary(context.Background(), report.MonthlySummaryRequest{
		EmployeeID: "emp-1",
		Year:       2026,
		Month:      2,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Summary.Absent)
	require.NotNil(t, repo.lastEmployeeID)
	assert.Equal(t, "emp-1", *repo.lastEmployeeID)

	// 2026 is not a leap year; the window must stop at Feb 28.
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), repo.lastStart)
	assert.True(t, repo.lastEnd.After(time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.True(t, repo.lastEnd.Before(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestReportService_MonthlySummary_DecemberRollsIntoNextYear(t *testing.T) {
	repo := &stubAttendanceRepo{counts: map[string]int{}}
	svc := NewReportService(repo, time.UTC)

	_, err := svc.MonthlySummary(context.Background(), report.MonthlySummaryRequest{
		EmployeeID: "emp-1",
		Year:       2025,
		Month:      12,
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), repo.lastStart)
	assert.True(t, repo.lastEnd.Before(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, repo.lastEnd.After(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestReportService_MonthlySummary_InvalidMonth(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, time.UTC)

	_, err := svc.MonthlySummary(context.Background(), report.MonthlySummaryRequest{
		EmployeeID: "emp-1",
		Year:       2026,
		Month:      13,
	})

	assert.Error(t, err)
}

func TestReportService_EmployeeReport_Percentage(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	var records []attendance.Attendance
	for i := 0; i < 7; i++ {
		records = append(records, record(attendance.StatusPresent, day.AddDate(0, 0, i)))
	}
	records = append(records,
		record(attendance.StatusLate, day.AddDate(0, 0, 7)),
		record(attendance.StatusAbsent, day.AddDate(0, 0, 8)),
		record(attendance.StatusHalfDay, day.AddDate(0, 0, 9)),
	)
	svc := NewReportService(&stubAttendanceRepo{records: records}, time.UTC)

	result, err := svc.EmployeeReport(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, 10, result.TotalDays)
	assert.Equal(t, 7, result.PresentDays)
	assert.Equal(t, "70.00%", result.Percentage)
	assert.Len(t, result.Records, 10)
}

func TestReportService_EmployeeReport_RepeatingDecimal(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		record(attendance.StatusPresent, day),
		record(attendance.StatusLate, day.AddDate(0, 0, 1)),
		record(attendance.StatusAbsent, day.AddDate(0, 0, 2)),
	}
	svc := NewReportService(&stubAttendanceRepo{records: records}, time.UTC)

	result, err := svc.EmployeeReport(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "33.33%", result.Percentage)
}

func TestReportService_EmployeeReport_NoRecords(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, time.UTC)

	_, err := svc.EmployeeReport(context.Background(), "emp-1")

	assert.ErrorIs(t, err, report.ErrNoAttendanceRecords)
}
