package responder

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"lifesaver/internal/auth"
	"lifesaver/internal/domain"
	"lifesaver/internal/middleware"
	"lifesaver/pkg/e"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertDesk interface {
	Nearby(ctx context.Context, responderID uuid.UUID, at domain.Coordinate) ([]domain.NearbyAlert, error)
	UpdateStatus(ctx context.Context, id, responderID uuid.UUID, status domain.AlertStatus) error
}

type Handler struct {
	logger *slog.Logger
	Alerts AlertDesk
}

func NewHandler(logger *slog.Logger, alerts AlertDesk) *Handler {
	return &Handler{logger: logger, Alerts: alerts}
}

func (h *Handler) ResponderAlerts(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ResponderAlerts", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	responderID, ok := auth.UserID(r.Context())
	if !ok {
		h.handleError(w, r, e.ErrNotAuthenticated)
		return
	}

	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		l.Warn("invalid coordinates", slog.String("lat", q.Get("lat")), slog.String("lng", q.Get("lng")))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required numbers"})
		return
	}

	alerts, err := h.Alerts.Nearby(r.Context(), responderID, domain.Coordinate{Latitude: lat, Longitude: lng})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alerts listed", slog.Int("count", len(alerts)))
	h.writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

// ResponderAlertStatus acts on behalf of the caller identified by X-User-ID.
func (h *Handler) ResponderAlertStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ResponderAlertStatus", slog.String("remote", r.RemoteAddr))

	responderID, ok := auth.UserID(r.Context())
	if !ok {
		h.handleError(w, r, e.ErrNotAuthenticated)
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateAlertStatus
	if err := middleware.BindJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.Alerts.UpdateStatus(r.Context(), id, responderID, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
