package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/devrolin/ems-backend-go/internal/config"
	appHTTP "github.com/devrolin/ems-backend-go/internal/handler/http"
	"github.com/devrolin/ems-backend-go/internal/pkg/cron"
	"github.com/devrolin/ems-backend-go/internal/pkg/database"
	"github.com/devrolin/ems-backend-go/internal/pkg/jwt"
	"github.com/devrolin/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/devrolin/ems-backend-go/internal/service/attendance"
	reportService "github.com/devrolin/ems-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc, err := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		loc,
		attendanceService.Policy{
			LateAfter:    cfg.Attendance.LateAfter,
			HalfDayUnder: cfg.Attendance.HalfDayUnder,
		},
	)
	if err != nil {
		fmt.Println("Error initializing attendance service:", err)
		return
	}
	reportSvc := reportService.NewReportService(attendanceRepo, loc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		attendanceHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, employeeRepo, loc)
	if err := attendanceJobs.RegisterJobs(scheduler, cfg.Attendance.ReconcileAt); err != nil {
		fmt.Println("Error registering attendance jobs:", err)
		return
	}
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
