package report

import (
	"context"
	"fmt"
	"time"

	"github.com/devrolin/ems-backend-go/internal/domain/attendance"
	"github.com/devrolin/ems-backend-go/internal/domain/report"
	"github.com/devrolin/ems-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
	}
}

// DailySummary implements report.ReportService.
func (r *ReportServiceImpl) DailySummary(ctx context.Context, req report.DailySummaryRequest) (report.DailySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DailySummaryResponse{}, err
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, r.loc)
	if err != nil {
		return report.DailySummaryResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	start, end := utils.DayWindow(day, r.loc)

	counts, err := r.AttendanceRepository.CountByStatus(ctx, nil, start, end)
	if err != nil {
		return report.DailySummaryResponse{}, fmt.Errorf("failed to aggregate daily summary: %w", err)
	}

	return report.DailySummaryResponse{
		Date:    req.Date,
		Summary: report.FromStatusMap(counts),
	}, nil
}

// MonthlySummary implements report.ReportService.
func (r *ReportServiceImpl) MonthlySummary(ctx context.Context, req report.MonthlySummaryRequest) (report.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	start, end := utils.MonthWindow(req.Year, time.Month(req.Month), r.loc)

	counts, err := r.AttendanceRepository.CountByStatus(ctx, &req.EmployeeID, start, end)
	if err != nil {
		return report.MonthlySummaryResponse{}, fmt.Errorf("failed to aggregate monthly summary: %w", err)
	}

	return report.MonthlySummaryResponse{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		Summary:    report.FromStatusMap(counts),
	}, nil
}

// EmployeeReport implements report.ReportService.
func (r *ReportServiceImpl) EmployeeReport(ctx context.Context, employeeID string) (report.EmployeeReportResponse, error) {
	records, err := r.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return report.EmployeeReportResponse{}, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	if len(records) == 0 {
		return report.EmployeeReportResponse{}, report.ErrNoAttendanceRecords
	}

	totalDays := len(records)
	presentDays := 0
	for _, rec := range records {
		if rec.Status == attendance.StatusPresent {
			presentDays++
		}
	}

	// totalDays > 0 is guaranteed by the emptiness check above.
	percentage := decimal.NewFromInt(int64(presentDays) * 100).
		Div(decimal.NewFromInt(int64(totalDays))).
		StringFixed(2)

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecord(rec))
	}

	var employeeName string
	if records[0].EmployeeName != nil {
		employeeName = *records[0].EmployeeName
	}

	return report.EmployeeReportResponse{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		TotalDays:    totalDays,
		PresentDays:  presentDays,
		Percentage:   percentage + "%",
		Records:      responses,
	}, nil
}

func mapRecord(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: employeeName,
		Date:         att.Date.Format("2006-01-02"),
		Status:       att.Status,
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.Format(time.RFC3339),
	}
	if att.CheckIn != nil {
		v := att.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if att.CheckOut != nil {
		v := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
