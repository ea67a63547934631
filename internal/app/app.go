// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/aurabyshenoi/portfolio-api/internal/config"
	"github.com/aurabyshenoi/portfolio-api/internal/contact"
	contactpostgres "github.com/aurabyshenoi/portfolio-api/internal/contact/postgres"
	"github.com/aurabyshenoi/portfolio-api/internal/gallery"
	gallerypostgres "github.com/aurabyshenoi/portfolio-api/internal/gallery/postgres"
	"github.com/aurabyshenoi/portfolio-api/internal/mailer"
	"github.com/aurabyshenoi/portfolio-api/internal/newsletter"
	newsletterpostgres "github.com/aurabyshenoi/portfolio-api/internal/newsletter/postgres"
	"github.com/aurabyshenoi/portfolio-api/internal/pkg/ctxlog"
	"github.com/aurabyshenoi/portfolio-api/internal/pkg/httputil"
	"github.com/aurabyshenoi/portfolio-api/internal/pkg/metrics"
	"github.com/aurabyshenoi/portfolio-api/internal/pkg/postgres"
	"github.com/aurabyshenoi/portfolio-api/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// healthProbeTimeout bounds the database ping issued by the health endpoint.
const healthProbeTimeout = 2 * time.Second

// App represents the application instance.
type App struct {
	config        *config.Config
	logger        *slog.Logger
	db            *pgxpool.Pool
	server        *http.Server
	metricsServer *http.Server
	metricsCancel context.CancelFunc
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	logger := initLogger(cfg.Log)
	slog.SetDefault(logger)

	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer connectCancel()

	db, err := postgres.Connect(connectCtx, postgres.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnectAttempts: cfg.Database.ConnectAttempts,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	metricsCtx, metricsCancel := context.WithCancel(context.Background())

	app := &App{
		config:        cfg,
		logger:        logger,
		db:            db,
		metricsCancel: metricsCancel,
	}

	go app.collectDBMetrics(metricsCtx)

	router, err := app.setupRouter()
	if err != nil {
		db.Close()
		metricsCancel()
		return nil, fmt.Errorf("setup router: %w", err)
	}

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Metrics server on separate port
	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())

	app.metricsServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.MetricsPort),
		Handler:           metricsRouter,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return app, nil
}

// Run starts the HTTP servers.
func (a *App) Run() error {
	go func() {
		a.logger.Info("starting metrics server",
			"host", a.config.Server.Host,
			"port", a.config.Server.MetricsPort,
		)
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("metrics server error", "error", err)
		}
	}()

	a.logger.Info("starting server",
		"host", a.config.Server.Host,
		"port", a.config.Server.Port,
	)

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down servers")

	a.metricsCancel()

	var wg sync.WaitGroup
	var errs []error
	var mu sync.Mutex

	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := a.server.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
			mu.Unlock()
		}
	}()

	go func() {
		defer wg.Done()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			mu.Lock()
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
			mu.Unlock()
		}
	}()

	wg.Wait()

	a.db.Close()

	return errors.Join(errs...)
}

// Router returns the HTTP handler for testing.
func (a *App) Router() http.Handler {
	return a.server.Handler
}

func (a *App) collectDBMetrics(ctx context.Context) {
	metrics.RecordDBPoolMetrics(a.db)

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			metrics.RecordDBPoolMetrics(a.db)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) setupRouter() (*chi.Mux, error) {
	r := chi.NewRouter()

	// Metrics middleware must be first to measure full request time
	r.Use(httputil.MetricsMiddleware)

	// CORS must be early to handle preflight requests before other middleware
	r.Use(httputil.CORSMiddleware(a.config.CORS.AllowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(httputil.RequestLoggerMiddleware(a.logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", a.rootHandler)
	r.Get("/health", a.healthHandler)
	r.Get("/version", a.versionHandler)

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		http.ServeFile(w, r, "api/openapi/openapi.yaml")
	})

	m, err := mailer.New(mailer.Config{
		Enabled:       a.config.Mailer.Enabled,
		SMTPHost:      a.config.Mailer.SMTPHost,
		SMTPPort:      a.config.Mailer.SMTPPort,
		SMTPUser:      a.config.Mailer.SMTPUser,
		SMTPPassword:  a.config.Mailer.SMTPPassword,
		FromAddress:   a.config.Mailer.FromAddress,
		NotifyAddress: a.config.Mailer.NotifyAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}

	newsletterRepo := newsletterpostgres.NewRepository(a.db)
	newsletterService := newsletter.NewService(newsletterRepo, m)
	newsletterHandler := newsletter.NewHandler(newsletterService)

	contactRepo := contactpostgres.NewRepository(a.db)
	contactService := contact.NewService(contactRepo, m)
	contactHandler := contact.NewHandler(contactService)

	galleryRepo := gallerypostgres.NewRepository(a.db)
	galleryService := gallery.NewService(galleryRepo)
	galleryHandler := gallery.NewHandler(galleryService)

	r.Route("/api", func(r chi.Router) {
		galleryHandler.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			if a.config.RateLimit.Enabled {
				limiter := httputil.NewRateLimiter(a.config.RateLimit.RPS, a.config.RateLimit.Burst)
				r.Use(limiter.Middleware)
			}

			newsletterHandler.RegisterRoutes(r)
			contactHandler.RegisterRoutes(r)
		})
	})

	return r, nil
}

func (a *App) rootHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"message": "AuraByShenoi API",
		"status":  "running",
	})
}

// healthPayload is the advisory health report. The endpoint always answers
// 200; a failed probe is reported inside the payload, not as a status code.
type healthPayload struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
	defer cancel()

	payload := healthPayload{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := a.db.Ping(ctx); err != nil {
		ctxlog.FromContext(r.Context()).Error("health probe failed", "error", err)
		payload.Status = "unhealthy"
		payload.Database = "disconnected"
		payload.Error = err.Error()
	}

	httputil.JSON(w, http.StatusOK, payload)
}

func (a *App) versionHandler(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"commit":     version.GitCommit,
		"build_date": version.BuildDate,
	})
}

func initLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
