package public

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"lifesaver/internal/domain"
	"lifesaver/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// writeResult always answers with the SOS result shape. "No provider" is a
// 200 with success=false; errors pick the status.
func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, res domain.SOSResult, err error) {
	if err == nil {
		h.writeJSON(w, http.StatusOK, res)
		return
	}

	var status int
	switch {
	case errors.Is(err, e.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrProviderFetchFailed), errors.Is(err, e.ErrPersistAssignmentFailed):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		h.log(r).Error("sos failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}

	res.Success = false
	h.writeJSON(w, status, res)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
