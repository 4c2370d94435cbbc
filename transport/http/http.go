package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
	"tourcrm/config"
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/shared/constant"
	"tourcrm/transport/http/middleware"
	"tourcrm/transport/http/response"
	"tourcrm/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
	healthPingTimeout = 2 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	DB         *postgres.Connection
	Otel       otel.Otel

	state atomic.Int32
	once  sync.Once
	mux   *chi.Mux
}

func New(cfg *config.Config, r router.Router, m middleware.AppMiddleware, db *postgres.Connection, ot otel.Otel) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: m,
		DB:         db,
		Otel:       ot,
	}
}

// Serve listens until a termination signal has been handled.
func (h *HTTP) Serve() {
	h.setup()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	done := make(chan struct{})

	go h.setupGracefulShutdown(server, done)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-done
}

// ServeHTTP lets the service run behind another server, such as a serverless
// function entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	if h.Config.App.TrustProxy {
		mux.Use(chiMiddleware.RealIP)
	}

	mux.Use(h.Middleware.RequestID)
	mux.Use(h.Middleware.Recover)
	mux.Use(h.Middleware.Tracing)

	if h.Config.App.Metrics.Enable {
		mux.Use(h.Middleware.Metrics)
	}

	mux.Use(chiMiddleware.CleanPath)

	if h.Config.App.CORS.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			ExposedHeaders:   []string{constant.RequestHeaderRequestID},
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	mux.Use(h.serverState)
	mux.Use(h.Middleware.RateLimit())

	// With a client bundle configured "/" belongs to the bundle; the
	// welcome message stays reachable under /api.
	if h.Config.App.StaticDir == "" {
		mux.Get("/", h.welcome)
	}

	mux.Get("/health", h.health)

	if h.Config.App.Metrics.Enable {
		mux.Handle(h.Config.App.Metrics.Path, h.Middleware.MetricsHandler())
	}

	h.Router.SetupRoutes(mux, h.welcome)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.WithNotFoundRoute(w)
	})

	if h.Config.App.StaticDir != "" {
		mux.NotFound(h.static(notFound))
	} else {
		mux.NotFound(notFound)
	}

	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
	})

	h.mux = mux
}

// serverState rejects new requests once shutdown has started.
func (h *HTTP) serverState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() != ServerStateReady {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) welcome(w http.ResponseWriter, _ *http.Request) {
	response.WithMessage(w, http.StatusOK, constant.ResponseWelcome)
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
}

// static serves the client bundle. Paths without a matching file fall back
// to index.html so client-side routes survive a reload; unknown /api paths
// still get the JSON 404.
func (h *HTTP) static(notFound http.Handler) http.HandlerFunc {
	root := http.Dir(h.Config.App.StaticDir)
	files := http.FileServer(root)

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" ||
			(r.Method != http.MethodGet && r.Method != http.MethodHead) {
			notFound.ServeHTTP(w, r)

			return
		}

		if f, err := root.Open(r.URL.Path); err == nil {
			stat, statErr := f.Stat()
			f.Close()

			if statErr == nil && !stat.IsDir() {
				files.ServeHTTP(w, r)

				return
			}
		}

		http.ServeFile(w, r, h.Config.App.StaticDir+"/index.html")
	}
}

func (h *HTTP) setupGracefulShutdown(server *http.Server, done chan struct{}) {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	<-serverStateCh

	h.respondToSigterm()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server gracefully")
	}

	h.DB.Close()
	otel.Shutdown(ctx, h.Otel)

	log.Info().Msg("Cleaning up completed. Shutting down now.")

	close(done)
}

func (h *HTTP) respondToSigterm() {
	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)
}
