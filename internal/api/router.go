package api

import (
	"slices"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/workforcepro/terceirizacao-api/internal/api/handler"
	"github.com/workforcepro/terceirizacao-api/internal/api/middleware"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

// Services are the operations the router exposes.
type Services struct {
	Companies    handler.CompanyService
	Clients      handler.ClientService
	Roles        handler.RoleService
	Employees    handler.EmployeeService
	Attendance   handler.AttendanceService
	Certificates handler.CertificateService
	Leaves       handler.LeaveService
	Dashboard    ports.DashboardService
}

// Options tune the transport around the services.
type Options struct {
	// CORSOrigins is the allow list; empty means "*". Credentials are only
	// allowed when every origin is named explicitly.
	CORSOrigins []string
	// Dependencies are pinged by /health/ready.
	Dependencies []handler.Dependency
	// Registry receives the HTTP metrics; nil means the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowCredentials: !slices.Contains(origins, "*"),
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
	}))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.Dependencies...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Records API ---
	companies := handler.NewCompanyHandler(svc.Companies)
	clients := handler.NewClientHandler(svc.Clients)
	roles := handler.NewRoleHandler(svc.Roles)
	employees := handler.NewEmployeeHandler(svc.Employees)
	attendance := handler.NewAttendanceHandler(svc.Attendance)
	certificates := handler.NewCertificateHandler(svc.Certificates)
	leaves := handler.NewLeaveHandler(svc.Leaves)
	dashboard := handler.NewDashboardHandler(svc.Dashboard)

	g := e.Group("/api")
	g.GET("/", handler.Root)
	g.GET("/dashboard", dashboard.Stats)

	g.POST("/empresas", companies.Create)
	g.GET("/empresas", companies.List)

	g.POST("/clientes", clients.Create)
	g.GET("/clientes", clients.List)

	g.POST("/funcoes", roles.Create)
	g.GET("/funcoes", roles.List)

	g.POST("/funcionarios", employees.Create)
	g.GET("/funcionarios", employees.List)
	g.GET("/funcionarios/:id", employees.Get)

	g.POST("/presenca", attendance.Create)
	g.GET("/presenca", attendance.List)

	g.POST("/atestados", certificates.Create)
	g.GET("/atestados", certificates.List)

	g.POST("/licencas", leaves.Create)
	g.GET("/licencas", leaves.List)

	return e
}
