package main

import (
	"fmt"
	"net/http"

	"github.com/presensia/presensia-backend-go/internal/config"
	appHTTP "github.com/presensia/presensia-backend-go/internal/handler/http"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
	"github.com/presensia/presensia-backend-go/internal/pkg/jwt"
	"github.com/presensia/presensia-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presensia/presensia-backend-go/internal/service/attendance"
	authService "github.com/presensia/presensia-backend-go/internal/service/auth"
	employeeService "github.com/presensia/presensia-backend-go/internal/service/employee"
	leaveService "github.com/presensia/presensia-backend-go/internal/service/leave"
	masterService "github.com/presensia/presensia-backend-go/internal/service/master"
	payrollService "github.com/presensia/presensia-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	divisionRepo := postgresql.NewDivisionRepository(db)
	shiftRepo := postgresql.NewWorkShiftRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, jwtService, userRepo, refreshTokenRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, divisionRepo, shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, leaveRequestRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo)
	masterSvc := masterService.NewMasterService(divisionRepo, shiftRepo, deviceRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, leaveRequestRepo, shiftRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Environment:    cfg.App.Env,
		},
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		masterHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
