package public

import (
	"context"
	"log/slog"
	"net/http"

	"lifesaver/internal/domain"
	"lifesaver/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type SOSSender interface {
	Send(ctx context.Context, req domain.SOSRequest) (domain.SOSResult, error)
}

type Handler struct {
	logger    *slog.Logger
	SOSSender SOSSender
}

func NewHandler(logger *slog.Logger, sender SOSSender) *Handler {
	return &Handler{
		logger:    logger,
		SOSSender: sender,
	}
}

type sosBody struct {
	EmergencyType domain.EmergencyType `json:"emergency_type" validate:"omitempty,emergency_type"`
	Latitude      *float64             `json:"latitude" validate:"required,lat"`
	Longitude     *float64             `json:"longitude" validate:"required,lng"`
}

type emergencyBody struct {
	EmergencyType domain.EmergencyType `json:"emergency_type" validate:"omitempty,emergency_type"`
	Latitude      *float64             `json:"latitude" validate:"required,lat"`
	Longitude     *float64             `json:"longitude" validate:"required,lng"`
	Description   string               `json:"description" validate:"max=1000"`
}

// PublicSOS handles the one-tap SOS: fixed description, nearest provider.
func (h *Handler) PublicSOS(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PublicSOS", slog.String("remote", r.RemoteAddr))

	var body sosBody
	if err := middleware.BindJSON(w, r, &body); err != nil {
		l.Warn("invalid sos body", slog.String("error", err.Error()))
		h.writeResult(w, r, domain.SOSResult{Success: false, Error: "Invalid emergency request"}, err)
		return
	}

	h.send(w, r, domain.SOSRequest{
		EmergencyType: body.EmergencyType,
		Latitude:      *body.Latitude,
		Longitude:     *body.Longitude,
	})
}

// PublicEmergency is PublicSOS with a caller-supplied description.
func (h *Handler) PublicEmergency(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PublicEmergency", slog.String("remote", r.RemoteAddr))

	var body emergencyBody
	if err := middleware.BindJSON(w, r, &body); err != nil {
		l.Warn("invalid emergency body", slog.String("error", err.Error()))
		h.writeResult(w, r, domain.SOSResult{Success: false, Error: "Invalid emergency request"}, err)
		return
	}

	h.send(w, r, domain.SOSRequest{
		EmergencyType: body.EmergencyType,
		Latitude:      *body.Latitude,
		Longitude:     *body.Longitude,
		Description:   body.Description,
	})
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request, req domain.SOSRequest) {
	res, err := h.SOSSender.Send(r.Context(), req)
	if err == nil {
		h.log(r).Info("sos handled", slog.Bool("success", res.Success), slog.String("type", string(res.Type)))
	}
	h.writeResult(w, r, res, err)
}
