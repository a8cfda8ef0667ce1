package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Anderson413366/anderson-cleaning-sub001/clients/resend"
	"github.com/Anderson413366/anderson-cleaning-sub001/config"
	"github.com/Anderson413366/anderson-cleaning-sub001/controllers"
	"github.com/Anderson413366/anderson-cleaning-sub001/database"
	appmw "github.com/Anderson413366/anderson-cleaning-sub001/middleware"
	"github.com/Anderson413366/anderson-cleaning-sub001/observe"
	"github.com/Anderson413366/anderson-cleaning-sub001/ratelimit"
	"github.com/Anderson413366/anderson-cleaning-sub001/repositories"
	"github.com/Anderson413366/anderson-cleaning-sub001/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Error sink: Sentry when a DSN is configured, otherwise a no-op
	var sink observe.Sink = observe.NopSink{}
	if cfg.SentryDSN != "" {
		sentrySink, err := observe.NewSentrySink(cfg.SentryDSN)
		if err != nil {
			logger.Fatal("failed to initialize Sentry", zap.Error(err))
		}
		defer sentrySink.Close()
		sink = sentrySink
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Rate limiter: shared Redis counters when configured, otherwise
	// process-local memory (single-instance deployments only)
	var limits ratelimit.Store
	if cfg.RedisAddr != "" {
		limits = ratelimit.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
		logger.Info("rate limiting via Redis", zap.String("addr", cfg.RedisAddr))
	} else {
		memory := ratelimit.NewMemoryStore()
		memory.StartJanitor(ctx, 2*time.Minute, 15*time.Minute)
		limits = memory
	}

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	emailClient := resend.NewClient(cfg.ResendAPIKey, cfg.EmailSendsPerSecond)
	srvs := services.NewServices(repos, emailClient, cfg.EmailFrom, cfg.NotificationEmail, limits, sink, logger)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, repos)

	r := setupRouter(ctrl, cfg, sink, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("submission service starting",
			zap.String("port", cfg.Port),
			zap.String("database", cfg.DatabasePath),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config, sink observe.Sink, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(appmw.Recover(sink, logger))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "healthy", "service": "submission-service"}`))
	})

	// PUBLIC FORM ROUTES
	r.Route("/api", func(r chi.Router) {
		r.Use(appmw.CORS(cfg.SiteURL))

		r.Post("/quick-quote", ctrl.Forms.QuickQuote)
		r.Post("/contact", ctrl.Forms.Contact)
		r.Post("/quote", ctrl.Forms.Quote)
		r.Post("/feedback", ctrl.Forms.Feedback)
		r.Post("/newsletter", ctrl.Forms.Newsletter)

		// ADMIN ROUTES (bearer token required)
		r.Route("/admin", func(r chi.Router) {
			r.Use(appmw.RequireAdmin(cfg.AdminJWTSecret))

			r.Get("/submissions", ctrl.Admin.Submissions)
			r.Get("/submissions/stats", ctrl.Admin.Stats)
		})
	})

	return r
}
