package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pocket-notes/config"
	"pocket-notes/config/setup"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	store, closeStore, err := setup.InitStore(config.AppConfig, logger)
	if err != nil {
		logger.Error("failed to open record store", "backend", config.AppConfig.StoreBackend, "error", err)
		os.Exit(1)
	}

	application := setup.InitApp(store, config.AppConfig, logger)

	app := setup.NewFiberApp(logger)
	setup.ApplyMiddleware(app, logger)
	setup.RegisterRoutes(app, application)

	addr := net.JoinHostPort(config.AppConfig.Host, config.AppConfig.Port)
	logger.Info("starting server",
		"addr", addr,
		"env", config.AppConfig.Env,
		"store", config.AppConfig.StoreBackend,
	)

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// Pending saves are flushed before the store goes away.
	setup.Shutdown(application, closeStore, logger)

	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
