package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/go-model-eval/config"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/bootstrap"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/service"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/logger"
)

const serviceName = "model-eval"

func main() {
	log := logger.New(serviceName)

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Level.SetByName(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	stores, err := bootstrap.OpenStores(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open stores", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	runs := service.NewRunService(stores.Runs, stores.Summaries, service.Options{
		Strategy:    cfg.Eval.Strategy,
		GED:         cfg.Eval.GED,
		GEDMaxNodes: cfg.Eval.GEDMaxNodes,
		GEDTimeout:  cfg.Eval.GEDTimeout,
		Workers:     cfg.Eval.Workers,
	}, log)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		RateLimit:   cfg.Server.RateLimit,
		Log:         log,
		Stores:      stores,
		Runner:      runs,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", server.Addr, "env", cfg.App.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
}
