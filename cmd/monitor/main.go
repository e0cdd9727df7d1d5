// cmd/monitor/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/api"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/config"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sensor"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sim"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/storage"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/websocket"
)

func main() {
	configPath := flag.String("config", ".", "Path to the configuration file directory")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stdout, nil))
	log.Info("environmental monitor starting")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config error", "err", err)
		os.Exit(1)
	}

	// --- Initialize Components ---
	gen := sensor.NewGenerator()
	store := storage.Connect(cfg.Database.Path, gen, log)
	hub := websocket.NewHub(store, cfg.History.DefaultWindowHours, log)
	scheduler := sim.NewScheduler(gen, store, hub, cfg.TickInterval(), log)

	apiHandler := api.NewAPIHandler(gen, store, hub, log)
	router := api.SetupRouter(apiHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.Start(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown error", "err", err)
	}

	scheduler.Stop()
	if err := store.Close(); err != nil {
		log.Warn("store close error", "err", err)
	}
	log.Info("shutdown complete")
}
