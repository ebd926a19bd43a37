package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/launch-score-service/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/launch-score-service/internal/adapter/kafka"
	"github.com/couchcryptid/launch-score-service/internal/adapter/openweather"
	"github.com/couchcryptid/launch-score-service/internal/adapter/sample"
	"github.com/couchcryptid/launch-score-service/internal/catalog"
	"github.com/couchcryptid/launch-score-service/internal/config"
	"github.com/couchcryptid/launch-score-service/internal/observability"
	"github.com/couchcryptid/launch-score-service/internal/service"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	if cfg.OpenWeatherAPIKey == "" {
		logger.Warn("OPENWEATHER_API_KEY not set; live requests will fail, use_sample=true still works")
	}
	live := openweather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.OpenWeatherTimeout, metrics, logger)

	// Score events are feature-flagged via KAFKA_ENABLED.
	var publisher service.ScorePublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("score events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaScoreTopic)
	} else {
		logger.Info("score events disabled")
	}

	sites, launches := catalog.Directories()
	svc := service.New(
		sites,
		launches,
		service.Sources{Live: live, Sample: sample.NewSource(clock)},
		publisher,
		clock,
		logger,
		metrics,
	)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, cfg.CORSAllowedOrigins, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
