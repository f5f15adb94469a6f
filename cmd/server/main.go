/*
main.go - Application entry point

PURPOSE:
  Starts the pay engine HTTP server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load configuration (defaults, config.yaml, PAYROLL_* variables)
  3. Build the logger and the employee factory
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config  Path to config.yaml (default: searched in ., config, ../config)
  -port    HTTP server port, overrides the configured one when non-zero

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (http.timeouts.shutdown)
  3. Exit

EXAMPLES:
  ./server -config=./config/config.yaml
  PAYROLL_PAY_STRICT=true ./server -port=3000

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration sources
*/
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/warp/pay-engine/api"
	"github.com/warp/pay-engine/config"
	"github.com/warp/pay-engine/factory"
	"github.com/warp/pay-engine/logs"
)

func main() {
	// Flags
	configPath := flag.String("config", "", "Path to config.yaml")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	logger, err := logs.New(cfg.Env.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// Initialize handler
	handler := api.NewHandler(factory.NewConfiguredFactory(cfg.Pay), logger)
	handler.MaxBodyBytes = cfg.HTTP.MaxBodyBytes

	// Create router
	router := api.NewRouter(handler, api.RouterOptions{AllowedOrigins: cfg.HTTP.AllowedOrigins})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.Timeouts.Read,
		WriteTimeout: cfg.HTTP.Timeouts.Write,
		IdleTimeout:  cfg.HTTP.Timeouts.Idle,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.Env.Name),
			zap.String("currency", cfg.Pay.Currency),
			zap.Bool("strict", cfg.Pay.Strict))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return errors.Wrap(err, "listen")
	case sig := <-quit:
		logger.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeouts.Shutdown)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "forced shutdown")
	}

	logger.Info("server stopped")
	return nil
}
