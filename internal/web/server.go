// Package web exposes the chatbot over a JSON HTTP API. It owns session
// identification (cookie or request field), per-session rate limiting,
// and the health and metrics endpoints.
package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/unanda-ft/faqbot/internal/config"
	"github.com/unanda-ft/faqbot/internal/dialog"
	"github.com/unanda-ft/faqbot/internal/logger"
	"github.com/unanda-ft/faqbot/internal/metrics"
	"github.com/unanda-ft/faqbot/internal/nlu"
	"github.com/unanda-ft/faqbot/internal/ratelimit"
	"github.com/unanda-ft/faqbot/internal/session"
)

// sessionCookie carries the session id between requests from browser clients.
// API clients may instead send the id in the request body.
const sessionCookie = "faqbot_session"

// ServerConfig holds the dependencies for the HTTP layer.
type ServerConfig struct {
	Config     *config.Config
	Manager    *dialog.Manager
	Store      session.Store
	Classifier *nlu.Chain
	Limiter    *ratelimit.PerKeyLimiter
	Registry   *prometheus.Registry
	Logger     *logger.Logger
	Metrics    *metrics.Metrics

	// SentryEnabled attaches the Sentry Gin middleware when true.
	SentryEnabled bool
}

// Server is the HTTP surface of the chatbot.
type Server struct {
	cfg        *config.Config
	manager    *dialog.Manager
	store      session.Store
	classifier *nlu.Chain
	limiter    *ratelimit.PerKeyLimiter
	registry   *prometheus.Registry
	logger     *logger.Logger
	metrics    *metrics.Metrics
	sentry     bool
	startedAt  time.Time
}

// NewServer creates the HTTP server around an initialized dialogue manager.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		cfg:        cfg.Config,
		manager:    cfg.Manager,
		store:      cfg.Store,
		classifier: cfg.Classifier,
		limiter:    cfg.Limiter,
		registry:   cfg.Registry,
		logger:     cfg.Logger.WithModule("web"),
		metrics:    cfg.Metrics,
		sentry:     cfg.SentryEnabled,
		startedAt:  time.Now(),
	}
}

// Router builds the Gin engine with all middleware and routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if s.sentry {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(s.logger))

	router.GET("/", s.handleRoot)
	router.HEAD("/", s.handleRoot)

	router.GET("/healthz", s.handleHealthz)
	router.HEAD("/healthz", s.handleHealthz)
	router.GET("/ready", s.handleReady)
	router.HEAD("/ready", s.handleReady)

	api := router.Group("/api")
	{
		api.POST("/chat", s.handleChat)
		api.POST("/forget-name", s.handleForgetName)
		api.POST("/reset", s.handleReset)
	}

	router.GET("/metrics",
		metricsAuthMiddleware(s.cfg.MetricsUsername, s.cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	return router
}

// HTTPServer wraps the router in an http.Server with the chat-tuned timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Router(),
		ReadHeaderTimeout: config.HTTPRead,
		ReadTimeout:       config.HTTPRead,
		WriteTimeout:      config.HTTPWrite,
		IdleTimeout:       config.HTTPIdle,
	}
}
