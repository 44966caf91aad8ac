package report

import "context"

// ReportService aggregates attendance records into summaries.
type ReportService interface {
	// DailySummary counts records of one calendar day by status; all four
	// categories are always present in the result.
	DailySummary(ctx context.Context, req DailySummaryRequest) (DailySummaryResponse, error)

	// MonthlySummary counts one employee's records over a calendar month.
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)

	// EmployeeReport returns the employee's full history plus the present
	// percentage. Fails with ErrNoAttendanceRecords when the employee has
	// no records at all.
	EmployeeReport(ctx context.Context, employeeID string) (EmployeeReportResponse, error)
}
