package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitrine-url-api/internal/app"
	"vitrine-url-api/internal/config"
	"vitrine-url-api/internal/handler"
)

func main() {
	// Carregar config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("falha ao carregar configuracao", "error", err)
		os.Exit(1)
	}

	// Logger estruturado
	logger := config.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	slog.Info("iniciando vitrine-url-api")

	// Motor de URLs
	engine, err := app.New(cfg, logger)
	if err != nil {
		slog.Error("falha ao iniciar motor de URLs", "error", err)
		os.Exit(1)
	}
	defer engine.Close()

	// Handlers
	router := handler.NewRouter(handler.Handlers{
		Health:  handler.NewHealthHandler(engine.Service),
		URL:     handler.NewURLHandler(engine.Service, engine.Runner, cfg.Batch.MaxVehicles),
		Padrao:  handler.NewPadraoHandler(engine.Service),
		Sitemap: handler.NewSitemapHandler(engine.Service),
	}, cfg.Server.RequestTimeout)

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.APIPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("servidor iniciado", "port", cfg.Server.APIPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("erro no servidor", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("encerrando servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("erro ao encerrar servidor", "error", err)
	}

	slog.Info("servidor encerrado")
}
