package service

import (
	"context"

	"lifesaver/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DispatchStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	hospitals, err := s.repo.CountHospitalRequests(ctx, minutes)
	if err != nil {
		return nil, err
	}

	responders, err := s.repo.CountResponderAlerts(ctx, minutes)
	if err != nil {
		return nil, err
	}

	unique, err := s.repo.CountUniqueRequesters(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.DispatchStats{
		HospitalRequests: hospitals,
		ResponderAlerts:  responders,
		UniqueRequesters: unique,
		Minutes:          minutes,
	}, nil
}
