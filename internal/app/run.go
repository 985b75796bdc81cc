package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Flarenzy/subnet-practice/internal/auth"
	"github.com/Flarenzy/subnet-practice/internal/domain"
	apihttp "github.com/Flarenzy/subnet-practice/internal/http"
	"github.com/Flarenzy/subnet-practice/internal/metrics"
	"github.com/Flarenzy/subnet-practice/internal/store"
	"github.com/Flarenzy/subnet-practice/internal/subnet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Port            string
	LogLevel        slog.Level
	AuthEnabled     bool
	AuthIssuer      string
	AuthAudience    string
	AuthJWKSURL     string
	SessionCapacity int
	PlanSize        int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		LogLevel:        slog.LevelInfo,
		AuthIssuer:      os.Getenv("AUTH_ISSUER"),
		AuthAudience:    os.Getenv("AUTH_AUDIENCE"),
		AuthJWKSURL:     os.Getenv("AUTH_JWKS_URL"),
		SessionCapacity: store.DefaultCapacity,
		PlanSize:        subnet.DefaultPlanSize,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("AUTH_ENABLED: %w", err)
		}
		cfg.AuthEnabled = enabled
	}

	var err error
	if cfg.SessionCapacity, err = positiveIntEnv("SESSION_CAPACITY", cfg.SessionCapacity); err != nil {
		return Config{}, err
	}
	if cfg.PlanSize, err = positiveIntEnv("PLAN_SIZE", cfg.PlanSize); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func positiveIntEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}

func newLogger(cfg Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		JWKSURL:  cfg.AuthJWKSURL,
		Audience: cfg.AuthAudience,
	})
}

func newRegistry(collector *metrics.Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve runs the API on listener until ctx is cancelled. The listener is
// closed when the server shuts down.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := newLogger(cfg)

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}
	if authenticator != nil {
		logger.InfoContext(ctx, "auth enabled", "issuer", cfg.AuthIssuer, "audience", cfg.AuthAudience)
	}

	sessions := store.NewSessionRepository(cfg.SessionCapacity)
	generator := domain.NewRandomGenerator(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	collector := metrics.NewCollector()

	var service domain.PracticeService
	service = domain.NewPracticeService(sessions, generator, domain.WithPlanSize(cfg.PlanSize), domain.WithOwner(auth.SubjectFromContext))
	service = metrics.NewInstrumentedPracticeService(collector, service)
	service = domain.NewLoggingPracticeService(logger, service)

	api := apihttp.NewAPI(logger, sessions, service, authenticator)
	api.Metrics = promhttp.HandlerFor(newRegistry(collector), promhttp.HandlerOpts{})

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "serving", "addr", listener.Addr().String())
		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
