package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"lifesaver/internal/domain"
	"lifesaver/internal/geo"
	"lifesaver/pkg/e"

	"github.com/google/uuid"
)

const DefaultResponderRadiusKm = 50.0

type AlertDesk struct {
	repo     AlertRepository
	logger   *slog.Logger
	radiusKm float64
}

func NewAlertService(repo AlertRepository, logger *slog.Logger, radiusKm float64) *AlertDesk {
	if radiusKm <= 0 {
		radiusKm = DefaultResponderRadiusKm
	}
	return &AlertDesk{repo: repo, logger: logger, radiusKm: radiusKm}
}

// Nearby lists the responder's open alerts within the visibility radius of
// at, nearest first.
func (s *AlertDesk) Nearby(ctx context.Context, responderID uuid.UUID, at domain.Coordinate) ([]domain.NearbyAlert, error) {
	if responderID == uuid.Nil {
		return nil, e.ErrNotAuthenticated
	}
	if !at.Valid() {
		return nil, e.ErrInvalidCoordinates
	}

	alerts, err := s.repo.ListByResponder(ctx, responderID)
	if err != nil {
		return nil, err
	}

	nearby := make([]domain.NearbyAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Status == domain.AlertCompleted {
			continue
		}
		d := geo.DistanceKm(at.Latitude, at.Longitude, a.LocationLat, a.LocationLng)
		if d <= s.radiusKm {
			nearby = append(nearby, domain.NearbyAlert{EmergencyAlert: a, DistanceKm: d})
		}
	}
	slices.SortStableFunc(nearby, func(x, y domain.NearbyAlert) int {
		return cmp.Compare(x.DistanceKm, y.DistanceKm)
	})

	s.logger.Debug("nearby alerts",
		slog.String("responder_id", responderID.String()),
		slog.Int("assigned", len(alerts)),
		slog.Int("nearby", len(nearby)),
		slog.Float64("radius_km", s.radiusKm),
	)
	return nearby, nil
}

// UpdateStatus moves one of the responder's alerts along its lifecycle.
// Acknowledging or responding claims an unassigned alert; completed is
// terminal. Alerts held by another responder report ErrNotFound.
func (s *AlertDesk) UpdateStatus(ctx context.Context, id, responderID uuid.UUID, status domain.AlertStatus) error {
	if !status.Valid() {
		return fmt.Errorf("status %q: %w", status, e.ErrInvalidInput)
	}
	if responderID == uuid.Nil {
		return fmt.Errorf("alert %s: %w", id, e.ErrNotAuthenticated)
	}

	alert, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if alert.ResponderID != nil && *alert.ResponderID != responderID {
		return fmt.Errorf("alert %s: %w", id, e.ErrNotFound)
	}
	if alert.Status == domain.AlertCompleted && status != domain.AlertCompleted {
		return fmt.Errorf("%s -> %s: %w", alert.Status, status, e.ErrInvalidTransition)
	}

	var claim *uuid.UUID
	if status.ClaimsResponder() {
		claim = &responderID
	}

	if err := s.repo.UpdateStatus(ctx, id, status, claim); err != nil {
		return err
	}
	s.logger.Info("alert status updated",
		slog.String("id", id.String()),
		slog.String("from", string(alert.Status)),
		slog.String("to", string(status)),
		slog.String("responder_id", responderID.String()),
	)
	return nil
}
