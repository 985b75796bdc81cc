package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestNewAuthenticatorDisabledReturnsNil(t *testing.T) {
	authenticator, err := newAuthenticator(context.Background(), Config{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if authenticator != nil {
		t.Fatal("expected nil authenticator when auth is disabled")
	}
}

func TestNewAuthenticatorEnabledWithoutIssuerFails(t *testing.T) {
	_, err := newAuthenticator(context.Background(), Config{AuthEnabled: true})
	if err == nil {
		t.Fatal("expected error when auth is enabled without issuer")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "AUTH_ENABLED", "AUTH_ISSUER", "AUTH_AUDIENCE", "AUTH_JWKS_URL", "SESSION_CAPACITY", "PLAN_SIZE"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != "4040" || cfg.LogLevel != slog.LevelInfo || cfg.AuthEnabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionCapacity != 256 || cfg.PlanSize != 5 {
		t.Fatalf("unexpected sizes: capacity=%d plan=%d", cfg.SessionCapacity, cfg.PlanSize)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_ISSUER", "http://keycloak.local/realms/subnet-practice")
	t.Setenv("SESSION_CAPACITY", "16")
	t.Setenv("PLAN_SIZE", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != slog.LevelDebug || !cfg.AuthEnabled {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SessionCapacity != 16 || cfg.PlanSize != 3 {
		t.Fatalf("unexpected sizes: capacity=%d plan=%d", cfg.SessionCapacity, cfg.PlanSize)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"LOG_LEVEL":        "loud",
		"AUTH_ENABLED":     "maybe",
		"SESSION_CAPACITY": "0",
		"PLAN_SIZE":        "five",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), key) {
				t.Fatalf("expected %s error, got %v", key, err)
			}
		})
	}
}

func TestServeReturnsAuthErrorBeforeStartingServer(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer func() {
		if closeErr := listener.Close(); closeErr != nil {
			t.Fatalf("close: %v", closeErr)
		}
	}()

	err = Serve(context.Background(), Config{AuthEnabled: true}, listener)
	if err == nil {
		t.Fatal("expected serve to fail")
	}
}

func TestServeAnswersAndShutsDown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, Config{
			LogLevel:        slog.LevelError,
			SessionCapacity: 8,
			PlanSize:        5,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
		}, listener)
	}()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 2 * time.Second}
	base := "http://" + listener.Addr().String()

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp, err := client.Get(base + path)
		if err != nil {
			cancel()
			t.Fatalf("GET %s: %v", path, err)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			cancel()
			t.Fatalf("GET %s: expected %d, got %d", path, http.StatusOK, resp.StatusCode)
		}
	}

	resp, err := client.Post(base+"/api/v1/sessions/subnet", "application/json", nil)
	if err != nil {
		cancel()
		t.Fatalf("new session: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		cancel()
		t.Fatalf("new session: expected %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	transport.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
