package report

import (
	"fmt"
	"time"

	"github.com/devrolin/ems-backend-go/internal/domain/attendance"
	"github.com/devrolin/ems-backend-go/internal/pkg/validator"
)

// ========================================
// DAILY ATTENDANCE SUMMARY
// ========================================

type DailySummaryRequest struct {
	Date string `json:"date"` // "2006-01-02"
}

func (r *DailySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SummaryCounts always carries all four categories; a category with no
// records reports 0 rather than disappearing from the payload.
type SummaryCounts struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	HalfDay int `json:"half-day"`
	Absent  int `json:"absent"`
}

// FromStatusMap fills the four fixed categories from a status→count map.
func FromStatusMap(counts map[string]int) SummaryCounts {
	return SummaryCounts{
		Present: counts[attendance.StatusPresent],
		Late:    counts[attendance.StatusLate],
		HalfDay: counts[attendance.StatusHalfDay],
		Absent:  counts[attendance.StatusAbsent],
	}
}

// Total sums all four categories.
func (s SummaryCounts) Total() int {
	return s.Present + s.Late + s.HalfDay + s.Absent
}

type DailySummaryResponse struct {
	Date    string        `json:"date"`
	Summary SummaryCounts `json:"summary"`
}

// ========================================
// MONTHLY ATTENDANCE SUMMARY
// ========================================

type MonthlySummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"` // 1-indexed
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlySummaryResponse struct {
	EmployeeID string        `json:"employee_id"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Summary    SummaryCounts `json:"summary"`
}

// ========================================
// PER-EMPLOYEE ATTENDANCE REPORT
// ========================================

type EmployeeReportResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TotalDays    int    `json:"total_days"`
	PresentDays  int    `json:"present_days"`

	// Percentage is present/total*100, fixed to two decimals with a
	// trailing percent sign, e.g. "70.00%".
	Percentage string `json:"percentage"`

	Records []attendance.AttendanceResponse `json:"records"`
}
