// Command calc_api serves the infix calculator over HTTP and records every
// evaluation in the configured history store.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DjordjeVuckovic/rpncalc/internal/api/router"
	"github.com/DjordjeVuckovic/rpncalc/internal/api/server"
	"github.com/DjordjeVuckovic/rpncalc/internal/calc"
	"github.com/DjordjeVuckovic/rpncalc/internal/history/factory"
	"github.com/DjordjeVuckovic/rpncalc/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/rpncalc/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	// the store is created before the server so a bad backend fails fast
	setupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := factory.NewStore(setupCtx, cfg.HistoryConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create history store", "type", cfg.HistoryConfig.Type, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	healthChecker := pkgserver.NewPingHealthChecker(store, 2*time.Second)

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "rpncalc API is running")
	})

	calcRouter := router.NewCalcRouter(s.Echo, calc.New(), store)
	calcRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	slog.Info("Starting calc API", "port", sCfg.Port, "history", cfg.HistoryConfig.Type)
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		store.Close()
		os.Exit(1)
	}
}
