package service

import (
	"context"

	"lifesaver/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) Send(ctx context.Context, req domain.SOSRequest) (domain.SOSResult, error) {
	return s.SOSService.Send(ctx, req)
}

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DispatchStats, error) {
	return s.StatsService.GetStats(ctx, req)
}

func (s *Service) ListRequests(ctx context.Context, hospitalID uuid.UUID, scope domain.RequestScope) ([]domain.EmergencyRequest, error) {
	return s.RequestService.List(ctx, hospitalID, scope)
}

func (s *Service) NearbyAlerts(ctx context.Context, responderID uuid.UUID, at domain.Coordinate) ([]domain.NearbyAlert, error) {
	return s.AlertService.Nearby(ctx, responderID, at)
}
