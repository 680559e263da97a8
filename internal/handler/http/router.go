package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/presensia/presensia-backend-go/internal/handler/http/middleware"
	"github.com/presensia/presensia-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AllowedOrigins []string
	Environment    string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presensia-backend"),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)
				r.Get("/employee/{id}", attendanceHandler.ListByEmployee)
				r.Post("/", attendanceHandler.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", attendanceHandler.Update)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Get("/{id}", leaveHandler.Get)
				r.Post("/", leaveHandler.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/divisions", func(r chi.Router) {
				r.Get("/", masterHandler.ListDivisions)
				r.Get("/{id}", masterHandler.GetDivision)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateDivision)
					r.Put("/{id}", masterHandler.UpdateDivision)
					r.Delete("/{id}", masterHandler.DeleteDivision)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", masterHandler.ListShifts)
				r.Get("/{id}", masterHandler.GetShift)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateShift)
					r.Put("/{id}", masterHandler.UpdateShift)
					r.Delete("/{id}", masterHandler.DeleteShift)
				})
			})

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", masterHandler.ListDevices)
				r.Get("/{id}", masterHandler.GetDevice)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateDevice)
					r.Put("/{id}", masterHandler.UpdateDevice)
					r.Delete("/{id}", masterHandler.DeleteDevice)
				})
			})

			// Payroll is admin territory end to end
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", payrollHandler.GetSettings)
					r.Put("/", payrollHandler.UpdateSettings)
				})

				r.Route("/calculations", func(r chi.Router) {
					r.Post("/", payrollHandler.Calculate)
					r.Get("/", payrollHandler.ListCalculations)
					r.Get("/{id}", payrollHandler.GetCalculation)
					r.Post("/finalize", payrollHandler.Finalize)
					r.Post("/pay", payrollHandler.MarkPaid)
				})

				r.Get("/summary", payrollHandler.GetSummary)
			})
		})
	})

	return r
}
