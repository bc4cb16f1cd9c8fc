package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"lifesaver/internal/domain"
	"lifesaver/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DispatchStats, error)
}

type Handler struct {
	logger *slog.Logger
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Stats:  stats,
	}
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	req := domain.StatsRequest{Minutes: minutes}
	if err != nil || validator.ValidateStruct(req) != nil {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, stats)
}
