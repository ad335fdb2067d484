package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"gomoto/config"
	"gomoto/infras/metrics"
	"gomoto/shared/constant"
	"gomoto/transport/http/middleware"
	"gomoto/transport/http/response"
	"gomoto/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "gomoto/docs" // swagger spec
)

const readHeaderTimeout = 10 * time.Second

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config        *config.Config
	Router        router.Router
	AppMiddleware middleware.AppMiddleware
	AuthRole      middleware.AuthRole

	state  atomic.Int32
	once   sync.Once
	mux    *chi.Mux
	server *http.Server
}

func New(cfg *config.Config, r router.Router, app middleware.AppMiddleware, authRole middleware.AuthRole) *HTTP {
	return &HTTP{
		Config:        cfg,
		Router:        r,
		AppMiddleware: app,
		AuthRole:      authRole,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve blocks until the server has shut down.
func (h *HTTP) Serve() {
	h.once.Do(h.setupRoutes)

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	done := make(chan struct{})
	h.setupGracefulShutdown(done)
	h.state.Store(int32(ServerStateReady))

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-done
}

// ServeHTTP serves a single request, for serverless hosts that own the listener.
func (h *HTTP) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.once.Do(func() {
		h.setupRoutes()
		h.state.Store(int32(ServerStateReady))
	})

	h.mux.ServeHTTP(writer, request)
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.RequestID, chiMiddleware.Recoverer)

	if corsCfg := h.Config.App.CORS; corsCfg.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins,
			AllowedMethods:   corsCfg.AllowedMethods,
			AllowedHeaders:   corsCfg.AllowedHeaders,
			AllowCredentials: corsCfg.AllowCredentials,
			MaxAge:           corsCfg.MaxAgeSeconds,
		}))
	}

	mux.Use(h.AppMiddleware.Tracing, h.AppMiddleware.Metrics)

	mux.Get("/health", h.health)
	mux.Method(http.MethodGet, "/metrics", metrics.Handler())

	if h.Config.App.Swagger && !h.Config.IsProduction() {
		mux.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	mux.Group(func(api chi.Router) {
		api.Use(h.AppMiddleware.RateLimit, h.AuthRole.APIKey, h.AuthRole.Auth, h.AuthRole.RBAC)
		h.Router.SetupRoutes(api)
	})

	h.mux = mux
}

// health reports 503 as soon as shutdown starts so load balancers drain the pod.
func (h *HTTP) health(writer http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(writer, http.StatusOK, "OK")
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(writer)
	default:
		response.WithUnhealthy(writer)
	}
}

func (h *HTTP) setupGracefulShutdown(done chan struct{}) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(signals, done)
}

func (h *HTTP) respondToSigterm(signals chan os.Signal, done chan struct{}) {
	<-signals

	defer close(done)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Received SIGTERM. Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))
		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to drain HTTP connections")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
