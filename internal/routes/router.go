package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"pilotbid/bidboard/internal/api"
	"pilotbid/bidboard/internal/config"
	"pilotbid/bidboard/internal/db"
	"pilotbid/bidboard/internal/logging"
	"pilotbid/bidboard/internal/metrics"
	"pilotbid/bidboard/internal/middleware"
	"pilotbid/bidboard/internal/workers"
)

// RegisterRoutes builds the chi router, wires dependencies, and starts
// the refresh worker.
func RegisterRoutes(ctx context.Context, cfg *config.Config, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, deps.Services.Cache, upSince))

	go workers.StartRefreshWorker(ctx, deps.Services.Bid)

	RegisterAPIRoutes(r, deps)

	return r
}
