package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/subnet-practice/internal/auth"
	"github.com/Flarenzy/subnet-practice/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	Metrics       http.Handler
	health        HealthChecker
	service       domain.PracticeService
	authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.PracticeService, authenticator auth.Authenticator) *API {
	return &API{
		Logger:        logger,
		health:        health,
		service:       service,
		authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.HandleFunc("POST /api/v1/derive", a.handleDerive)
	mux.HandleFunc("POST /api/v1/plan", a.handlePlan)
	mux.HandleFunc("POST /api/v1/sessions/subnet", a.handleNewSubnetSession)
	mux.HandleFunc("POST /api/v1/sessions/plan", a.handleNewPlanSession)
	mux.HandleFunc("GET /api/v1/sessions/{id}", a.handleGetSession)
	mux.HandleFunc("POST /api/v1/sessions/{id}/check", a.handleCheckSession)
	mux.HandleFunc("GET /api/v1/sessions/{id}/answers", a.handleRevealSession)
	mux.HandleFunc("DELETE /api/v1/sessions/{id}", a.handleDeleteSession)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	if a.Metrics != nil {
		mux.Handle("GET /metrics", a.Metrics)
	}

	return a.authMiddleware(mux)
}
