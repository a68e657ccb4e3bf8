package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/kazimashinani/jobboard/docs"
	"github.com/kazimashinani/jobboard/internal/api/handler"
	"github.com/kazimashinani/jobboard/internal/api/middleware"
	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
	"github.com/kazimashinani/jobboard/internal/infrastructure/http/handlers"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Log          zerolog.Logger
	Auth         ports.AuthService
	Gate         middleware.Authenticator
	Jobs         ports.JobService
	Applications ports.ApplicationService
	// Views may be nil; job reads are then not counted.
	Views       handler.ViewEnqueuer
	Checks      []handlers.Check
	CORSOrigins []string
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	registerer, gatherer := d.Registerer, d.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "kazi",
		Registerer: registerer,
	}))

	// --- Operations ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewHealthDependenciesHandler(d.Checks...).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(d.Auth)
	jobHandler := handler.NewJobHandler(d.Jobs, d.Views)
	applicationHandler := handler.NewApplicationHandler(d.Applications)

	authed := middleware.Auth(d.Gate, d.Log)
	employerOnly := middleware.RBAC(domain.RoleEmployer)
	employeeOnly := middleware.RBAC(domain.RoleEmployee)

	g := e.Group("/api")

	// --- Auth routes ---
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)
	g.GET("/auth/me", authHandler.Me, authed)

	// --- Job routes ---
	g.GET("/jobs", jobHandler.List)
	g.GET("/jobs/:id", jobHandler.Get)
	g.POST("/jobs", jobHandler.Create, authed, employerOnly)
	g.PUT("/jobs/:id", jobHandler.Update, authed)
	g.DELETE("/jobs/:id", jobHandler.Delete, authed)
	g.GET("/my-jobs", jobHandler.Mine, authed)

	// --- Application routes ---
	g.POST("/jobs/:id/apply", applicationHandler.Apply, authed, employeeOnly)
	g.GET("/jobs/:id/applications", applicationHandler.ListForJob, authed)
	g.GET("/my-applications", applicationHandler.Mine, authed)
	g.PATCH("/applications/:id", applicationHandler.UpdateStatus, authed)

	return e
}
