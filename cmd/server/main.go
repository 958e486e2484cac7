package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/tair/supplychain-dashboard/internal/app"
	"github.com/tair/supplychain-dashboard/internal/seed"
	"github.com/tair/supplychain-dashboard/pkg/config"
	"github.com/tair/supplychain-dashboard/pkg/logger"
	"github.com/tair/supplychain-dashboard/pkg/metrics"
	"github.com/tair/supplychain-dashboard/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting supply chain dashboard")

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Initialize the application with Wire DI
	application, err := app.InitializeApp()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if cfg.SeedDemoData {
		repos := seed.Repositories{
			Suppliers:     application.Suppliers,
			Products:      application.Products,
			Orders:        application.Orders,
			Notifications: application.Notifications,
		}
		if err := seed.Load(repos, time.Now()); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	// Evaluate stock once at boot so seeded low-stock products without a
	// warning are alerted before the first mutation arrives
	if err := application.StockMonitor.CheckStockLevels(context.Background()); err != nil {
		logger.Logger.Error().Err(err).Msg("Initial stock level check failed")
	}

	go startHTTPServer(application, cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(application *app.App, port string) {
	// Setup router
	router := mux.NewRouter()
	router.Use(metrics.NewHTTPMetrics().Middleware)

	// Register routes
	application.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	handler := c.Handler(tracing.Middleware("http-request", router))

	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}
