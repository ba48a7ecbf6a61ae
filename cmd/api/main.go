package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/service"
	"github.com/vaultpass/passgen/internal/widget"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	gen := generator.New(nil)

	w, err := widget.New(gen, clipboard.System{},
		widget.WithNotifier(clipboard.NotifierFunc(func(res clipboard.Result) {
			slog.Info(res.Message(), "outcome", res.Outcome.String())
		})),
	)
	if err != nil {
		slog.Error("widget init failed", "error", err)
		os.Exit(1)
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(gen))
	widgetHandler := handler.NewWidgetHandler(service.NewWidgetService(w), cfg.ClipboardTimeout)

	stop := make(chan struct{})
	defer close(stop)
	limit := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, stop)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(genHandler, widgetHandler, limit),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
