package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "upiscan/docs"
	"upiscan/internal/clipboard"
	"upiscan/internal/config"
	"upiscan/internal/decoder/zxing"
	"upiscan/internal/dialer"
	"upiscan/internal/handler"
	"upiscan/internal/router"
	"upiscan/internal/service"
)

// @title UPI Scan API
// @version 1.0
// @description Extracts UPI payee addresses from scanned QR payloads.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize adapters
	clip, err := clipboard.New(&cfg.Clipboard)
	if err != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	dial, err := dialer.New(&cfg.Dialer)
	if err != nil {
		return fmt.Errorf("failed to initialize dialer: %w", err)
	}
	decoder := zxing.NewQRDecoder(true)

	// Initialize services
	scanSvc := service.NewScanService(decoder, clip, dial, &cfg.Scan)

	// Initialize handlers
	scanH := handler.NewScanHandler(scanSvc)
	healthH := handler.NewHealthHandler(scanSvc)

	// Setup router
	r := router.Setup(cfg, scanH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (environment=%s)", cfg.Server.Port, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
