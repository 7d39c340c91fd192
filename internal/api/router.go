package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/primelabel/labelview/internal/api/handler"
	"github.com/primelabel/labelview/internal/api/middleware"
	"github.com/primelabel/labelview/internal/core/ports"
	"github.com/primelabel/labelview/internal/gateway"
	"github.com/primelabel/labelview/internal/infrastructure/config"
	"github.com/primelabel/labelview/internal/session"
	"github.com/primelabel/labelview/internal/speech"
	"github.com/primelabel/labelview/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is nil when sessions live in memory.
func NewRouter(cfg *config.Config, upstream *gateway.Client, labels ports.LabelService, auth ports.AuthService, sessions *session.Manager, speaker *speech.Speaker, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = handler.NewTemplateRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("labelview"))
	e.Use(middleware.Session(sessions))

	// --- Handlers ---
	lookupHandler := handler.NewLookupHandler(labels, cfg.SupportEmail)
	labelHandler := handler.NewLabelHandler(labels, cfg.SupportEmail)
	authHandler := handler.NewAuthHandler(auth, upstream, sessions, cfg.FrontendBaseURL, cfg.SupportEmail, log)
	speechHandler := handler.NewSpeechHandler(labels, speaker)
	pagesHandler := handler.NewPagesHandler(cfg.FrontendBaseURL, cfg.SupportEmail)

	// --- Pages ---
	e.GET("/", pagesHandler.Landing)
	e.GET("/lookup", lookupHandler.Show)
	e.POST("/lookup", lookupHandler.Submit)
	e.GET("/demo", pagesHandler.Demo)
	e.GET("/demo/qr", pagesHandler.DemoQR)

	// --- Auth ---
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/signup", authHandler.ShowSignup)
	e.POST("/signup", authHandler.Signup)
	e.GET("/logout", authHandler.Logout)
	e.GET("/oauth/callback", authHandler.OAuthCallback)

	// --- Read-aloud API ---
	e.GET("/api/speech", speechHandler.State)
	e.POST("/api/speech", speechHandler.Start)
	e.DELETE("/api/speech", speechHandler.Stop)

	// --- Health probes and metrics (no session needed) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(upstream, rdb)

	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- QR deep links, registered last so static routes keep precedence ---
	e.GET("/:identifierCode", labelHandler.ByIdentifier)
	e.GET("/:sponsorName/:trialIdentifier/batch/:batchNumber", labelHandler.ByBatch)
	e.GET("/:sponsorName/:trialIdentifier/kit/:kitNumber", labelHandler.ByKit)

	return e
}
