package main

import (
	"fmt"
	"net/http"

	"github.com/lachong-labs/payroll-backend-go/internal/config"
	appHTTP "github.com/lachong-labs/payroll-backend-go/internal/handler/http"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/cron"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/database"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/lachong-labs/payroll-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/lachong-labs/payroll-backend-go/internal/service/auth"
	payrollService "github.com/lachong-labs/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	insuranceRepo := postgresql.NewInsuranceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	payrollSvc := payrollService.NewPayrollService(
		txManager,
		payrollRepo,
		employeeRepo,
		scheduleRepo,
		attendanceRepo,
		contractRepo,
		insuranceRepo,
	)

	authHandler := appHTTP.NewAuthHandler(authService)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, authHandler, payrollHandler)

	if cfg.Payroll.AutoRunEnabled {
		scheduler := cron.NewScheduler()
		payrollJobs := cron.NewPayrollJobs(payrollSvc, cfg.Payroll.SystemActor)
		payrollJobs.RegisterJobs(scheduler, cfg.Payroll.AutoRunInterval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
