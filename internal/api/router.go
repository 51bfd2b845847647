package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/proposaldesk/intake-api/internal/api/handler"
	"github.com/proposaldesk/intake-api/internal/api/middleware"
	"github.com/proposaldesk/intake-api/internal/core/ports"
)

// uploadField is the multipart field carrying a proposal attachment.
const uploadField = "file"

// Deps carries everything the router wires into handlers. The services are
// built once at startup and shared by every request.
type Deps struct {
	Users        ports.UserService
	Testimonials ports.TestimonialService
	Proposals    ports.ProposalService
	Files        ports.FileStore
	// UploadDir is served read-only under /uploads.
	UploadDir string
	// Checks are pinged by the readiness probe, keyed by dependency name.
	Checks map[string]handler.Pinger
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLog(d.Log))
	e.Use(middleware.Metrics())

	users := handler.NewUserHandler(d.Users)
	testimonials := handler.NewTestimonialHandler(d.Testimonials)
	proposals := handler.NewProposalHandler(d.Proposals)
	health := handler.NewHealthHandler(d.Checks)

	// --- Users ---
	e.POST("/users", users.Create)
	e.PUT("/users", users.Upsert)
	e.GET("/users/:email", users.AdminFlag)
	e.GET("/users/phone/:email", users.Phone)
	e.POST("/users/:email", users.UpdateProfile)

	// --- Testimonials ---
	e.POST("/testimonial", testimonials.Create)
	e.GET("/testimonialapprove/:email", testimonials.Pending)
	e.PUT("/testimonialapprove", testimonials.Approve)
	e.DELETE("/testimonialapprove", testimonials.Delete)

	// --- Proposals ---
	e.POST("/makeproposal", proposals.Create, middleware.Upload(d.Files, uploadField, d.Log))
	e.GET("/makeproposal", proposals.ListAll)
	e.GET("/makeproposal/:email", proposals.ListByEmail)

	// --- Files, probes, docs ---
	e.Static("/uploads", d.UploadDir)
	e.GET("/", health.Root)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
