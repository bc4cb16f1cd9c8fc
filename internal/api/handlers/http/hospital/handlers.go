package hospital

import (
	"context"
	"log/slog"
	"net/http"

	"lifesaver/internal/domain"
	"lifesaver/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RequestDesk interface {
	List(ctx context.Context, hospitalID uuid.UUID, scope domain.RequestScope) ([]domain.EmergencyRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
}

type Handler struct {
	logger   *slog.Logger
	Requests RequestDesk
}

func NewHandler(logger *slog.Logger, requests RequestDesk) *Handler {
	return &Handler{logger: logger, Requests: requests}
}

func (h *Handler) HospitalRequestList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HospitalRequestList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	hospitalID, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid hospital id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	scope := domain.RequestScope(r.URL.Query().Get("scope"))
	if scope == "" {
		scope = domain.ScopeActive
	}

	requests, err := h.Requests.List(r.Context(), hospitalID, scope)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("requests listed", slog.String("hospital_id", hospitalID.String()), slog.Int("count", len(requests)))
	h.writeJSON(w, http.StatusOK, domain.ListHospitalRequests{Requests: requests, Scope: scope})
}

func (h *Handler) HospitalRequestStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HospitalRequestStatus", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateRequestStatus
	if err := middleware.BindJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Requests.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
