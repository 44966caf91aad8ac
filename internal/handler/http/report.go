package http

import (
	"net/http"
	"strconv"

	"github.com/devrolin/ems-backend-go/internal/domain/report"
	"github.com/devrolin/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	DailySummary(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	EmployeeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DailySummary implements ReportHandler.
func (h *reportHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	req := report.DailySummaryRequest{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.reportService.DailySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummary implements ReportHandler.
func (h *reportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlySummaryRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}
	// Non-numeric values fall through as zero and fail request validation.
	if y := r.URL.Query().Get("year"); y != "" {
		req.Year, _ = strconv.Atoi(y)
	}
	if m := r.URL.Query().Get("month"); m != "" {
		req.Month, _ = strconv.Atoi(m)
	}

	result, err := h.reportService.MonthlySummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeReport implements ReportHandler.
func (h *reportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.reportService.EmployeeReport(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
