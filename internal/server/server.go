package server

import (
	"context"
	"log"
	"strings"

	"brand-dashboard-be/internal/bootstrap"
	"brand-dashboard-be/internal/config"
	"brand-dashboard-be/internal/pkg/metrics"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/pkg/storage"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:   "brand-dashboard-be",
		BodyLimit: storage.MaxUploadSize + 1024*1024,
		// Errors raised before the error middleware runs, such as an oversized body.
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return serverutils.WriteError(ctx, err, container.Logger)
		},
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		// Fiber refuses credentials with a wildcard origin.
		AllowCredentials: allowCredentials(cfg.App.CorsAllowedOrigins),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition, X-Request-ID",
	}))
	app.Use(metrics.Middleware())

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"dataSource": container.DataSource}))
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Static("/uploads", container.UploadDir)

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s (data source: %s)", s.cfg.App.Port, s.container.DataSource)
	return s.app.Listen(":" + s.cfg.App.Port)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	api := app.Group("/api", rateLimit(cfg.RateLimit), serverutils.MockLatency(c.MockLatency))
	auth := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret, c.Authenticate)

	c.AuthController.RegisterRoutes(api, auth)
	c.PaymentController.RegisterRoutes(api)
	c.UploadController.RegisterRoutes(api, auth)

	c.CampaignController.RegisterRoutes(api, auth)
	c.EnrollmentController.RegisterRoutes(api, auth)
	c.WalletController.RegisterRoutes(api, auth)
	c.InvoiceController.RegisterRoutes(api, auth)
	c.TeamController.RegisterRoutes(api, auth)
	c.OrganizationController.RegisterRoutes(api, auth)
	c.DashboardController.RegisterRoutes(api, auth)

	c.NotificationHandler.RegisterRoutes(api, auth)
}

func allowCredentials(origins string) bool {
	origins = strings.TrimSpace(origins)
	return origins != "" && origins != "*"
}

// rateLimit is a per-IP fixed window. A non-positive max disables it.
func rateLimit(cfg config.RateLimitConfig) fiber.Handler {
	if cfg.Max <= 0 {
		return func(ctx *fiber.Ctx) error { return ctx.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		LimitReached: func(ctx *fiber.Ctx) error {
			return serverutils.NewAppError(fiber.StatusTooManyRequests, "Too many requests, please slow down")
		},
	})
}
