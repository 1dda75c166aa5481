package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/app"
	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/observability"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, flushLogs, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	logging.SetDefault(logger)

	stopTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof", "error", err)
		os.Exit(1)
	}

	var (
		metrics  *observability.Metrics
		recorder usecase.MetricsRecorder
	)
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics(observability.WithRuntimeCollectors())
		recorder = metrics
	}

	assistant, err := app.NewAssistant(cfg, logger, recorder)
	if err != nil {
		logger.Error("build assistant", "error", err)
		os.Exit(1)
	}

	srv, err := app.NewHTTPServer(cfg, assistant, logger, metrics)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	if cfg.AcquireOnStart {
		go func() {
			snap, err := assistant.RequestAcquisition(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "initial acquisition failed", "error", err)
				return
			}
			logger.InfoContext(ctx, "initial acquisition finished", "status", string(snap.Status), "events", len(snap.Events))
		}()
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if err := observability.StopPprofServer(pprofSrv, logger, shutdownTimeout); err != nil {
		logger.Error("stop pprof failed", "error", err)
	}
	if err := stopProfiling(); err != nil {
		logger.Error("stop pyroscope failed", "error", err)
	}
	if err := stopTracing(shutdownCtx); err != nil {
		logger.Error("stop uptrace failed", "error", err)
	}

	logger.Info("http server stopped")
	if err := flushLogs(shutdownCtx); err != nil {
		os.Exit(1)
	}
}
