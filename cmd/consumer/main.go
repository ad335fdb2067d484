package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gomoto/config"
	"gomoto/di"
	"gomoto/infras/metrics"
	"gomoto/shared/logger"

	"github.com/rs/zerolog/log"
)

const readHeaderTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	logFile := logger.SetOutput(cfg)
	defer logFile.Close()

	if !cfg.Kafka.Enable {
		log.Fatal().Msg("kafka is disabled, set KAFKA_ENABLE=true to run the consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enable {
		go serveMetrics(cfg)
	}

	consumer := di.InitializeConsumer()
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close booking consumer")
		}
	}()

	consumer.Start(ctx)

	log.Info().Msg("booking consumer stopped")
}

func serveMetrics(cfg *config.Config) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Metrics.Port),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("addr", server.Addr).Msg("consumer metrics listening")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("consumer metrics server stopped")
	}
}
