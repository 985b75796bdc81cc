package http

import (
	"errors"
	"net/http"

	"github.com/Flarenzy/subnet-practice/internal/domain"
	"github.com/Flarenzy/subnet-practice/internal/subnet"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "session store unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.health != nil {
		if err := a.health.Ping(ctx); err != nil {
			a.Logger.ErrorContext(ctx, "session store ping failed", "err", err.Error())
			http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Derive a subnet
// @Description Network, first and last host, broadcast and next subnet of an IPv4 network.
// @Tags compute
// @Accept json
// @Produce json
// @Param payload body DeriveRequest true "Address with prefix length"
// @Success 200 {object} DeriveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/derive [post]
func (a *API) handleDerive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[DeriveRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling derive request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	answers, err := a.service.Derive(ctx, req.CIDR)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, answersToResponse(answers))
}

// @Summary Plan subnets
// @Description Allocates one aligned subnet per host requirement inside base, in order.
// @Tags compute
// @Accept json
// @Produce json
// @Param payload body PlanRequest true "Base network and host requirements"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/plan [post]
func (a *API) handlePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[PlanRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling plan request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	report, err := a.service.Plan(ctx, req.toInput())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	coverage, err := subnet.Coverage(report.Records)
	if err != nil {
		a.Logger.ErrorContext(ctx, "merging planned subnets", "err", err.Error())
		a.respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	a.respond(w, r, http.StatusOK, reportToResponse(report, coverage))
}

// @Summary New single-subnet problem
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sessions/subnet [post]
func (a *API) handleNewSubnetSession(w http.ResponseWriter, r *http.Request) {
	session, err := a.service.NewSubnetSession(r.Context())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusCreated, sessionToResponse(session))
}

// @Summary New subnet allocation problem
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sessions/plan [post]
func (a *API) handleNewPlanSession(w http.ResponseWriter, r *http.Request) {
	session, err := a.service.NewPlanSession(r.Context())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusCreated, sessionToResponse(session))
}

// @Summary Get a problem
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (a *API) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := a.service.GetSession(r.Context(), domain.SessionID(r.PathValue("id")))
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, sessionToResponse(session))
}

// @Summary Check answers
// @Description Single-subnet problems take answers keyed by network, first_host, last_host, broadcast and next_subnet. Plan problems take subnets in order.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body CheckRequest true "Typed answers"
// @Success 200 {object} CheckResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/check [post]
func (a *API) handleCheckSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[CheckRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling check request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	input, err := req.toInput()
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	result, err := a.service.Check(ctx, domain.SessionID(r.PathValue("id")), input)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, checkToResponse(result))
}

// @Summary Reveal answers
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SolutionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/answers [get]
func (a *API) handleRevealSession(w http.ResponseWriter, r *http.Request) {
	solution, err := a.service.Reveal(r.Context(), domain.SessionID(r.PathValue("id")))
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, solutionToResponse(solution))
}

// @Summary Discard a problem
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (a *API) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteSession(r.Context(), domain.SessionID(r.PathValue("id"))); err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	resp := ErrorResponse{Error: "internal server error"}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		resp = ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp = ErrorResponse{Error: "session not found"}
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		resp = ErrorResponse{Error: err.Error()}
	default:
		a.Logger.ErrorContext(r.Context(), "uncaught service error", "path", r.URL.Path, "err", err.Error())
	}

	a.respond(w, r, status, resp)
}
