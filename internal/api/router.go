package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/medibook/appointment-portal/docs"
	"github.com/medibook/appointment-portal/internal/api/handler"
	"github.com/medibook/appointment-portal/internal/api/middleware"
	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/navigation"
	"github.com/medibook/appointment-portal/internal/core/ports"
	"github.com/medibook/appointment-portal/internal/core/state"
)

// Dependencies is everything the gateway dispatches to.
type Dependencies struct {
	Store  *state.Store
	Routes *navigation.Table

	Auth         ports.AuthService
	Doctors      ports.DoctorService
	Patients     ports.PatientService
	Appointments ports.AppointmentService
	Admin        ports.AdminService
	Chat         ports.ChatService

	Backend   ports.KeepAliveAPI
	ChatStore ports.ChatSessionStore

	// Registry receives the gateway's HTTP metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(deps.Registry)))

	sessions := deps.Store.Auth

	// --- Ops (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Backend, deps.ChatStore)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are backend and chat store up?
	e.GET("/metrics", metricsHandler(deps.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session ---
	sessionHandler := handler.NewSessionHandler(deps.Auth, sessions)
	e.GET("/session", sessionHandler.Current)
	e.POST("/auth/login", sessionHandler.Login)
	e.POST("/auth/register", sessionHandler.Register)
	e.POST("/auth/logout", sessionHandler.Logout)
	e.DELETE("/auth/error", sessionHandler.ClearError)

	// --- Guarded views ---
	views := handler.NewViewHandler(deps.Store, deps.Doctors, deps.Patients, deps.Appointments, deps.Admin)
	guard := middleware.View(deps.Routes, sessions)
	for _, route := range deps.Routes.Routes() {
		e.GET(route.Path, views.Render(route.Path), guard)
	}

	// --- Actions ---
	auth := middleware.Auth(sessions)

	doctorHandler := handler.NewDoctorHandler(deps.Doctors, deps.Appointments, deps.Store)
	e.GET("/doctors", doctorHandler.Directory)

	doctor := e.Group("/doctor", auth, middleware.RBAC(domain.RoleDoctor))
	doctor.POST("/profile", doctorHandler.CreateProfile)
	doctor.POST("/slots", doctorHandler.CreateSlot)
	doctor.DELETE("/slots/:id", doctorHandler.DeleteSlot)
	doctor.PATCH("/appointments/:id/status", doctorHandler.UpdateAppointmentStatus)

	patientHandler := handler.NewPatientHandler(deps.Patients, deps.Appointments, deps.Store)
	patient := e.Group("/patient", auth, middleware.RBAC(domain.RolePatient))
	patient.POST("/profile", patientHandler.CreateProfile)
	patient.POST("/appointments", patientHandler.Book)
	patient.POST("/appointments/:id/cancel", patientHandler.Cancel)

	adminHandler := handler.NewAdminHandler(deps.Admin, deps.Appointments, deps.Store)
	admin := e.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/doctors", adminHandler.ListDoctors)
	admin.POST("/doctors", adminHandler.CreateDoctor)
	admin.PATCH("/doctors/:id", adminHandler.UpdateDoctor)
	admin.DELETE("/doctors/:id", adminHandler.DeleteDoctor)
	admin.GET("/patients", adminHandler.ListPatients)
	admin.POST("/patients", adminHandler.CreatePatient)
	admin.PATCH("/patients/:id", adminHandler.UpdatePatient)
	admin.DELETE("/patients/:id", adminHandler.DeletePatient)
	admin.GET("/appointments", adminHandler.Appointments)

	errorsHandler := handler.NewErrorsHandler(deps.Store)
	e.DELETE("/errors/:slice", errorsHandler.Clear, auth)

	// --- Chat (open to everyone) ---
	chatHandler := handler.NewChatHandler(deps.Chat)
	e.GET("/chat", chatHandler.Transcript)
	e.POST("/chat/messages", chatHandler.Send)
	e.DELETE("/chat", chatHandler.Reset)

	return e
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "portal_gateway"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
