package service

import (
	"context"
	"fmt"
	"log/slog"

	"lifesaver/internal/domain"
	"lifesaver/pkg/e"

	"github.com/google/uuid"
)

type RequestDesk struct {
	repo   RequestRepository
	logger *slog.Logger
}

func NewRequestService(repo RequestRepository, logger *slog.Logger) *RequestDesk {
	return &RequestDesk{repo: repo, logger: logger}
}

// List returns the hospital's requests for one dashboard tab, newest first as
// stored. Resolved and dismissed requests belong to history.
func (s *RequestDesk) List(ctx context.Context, hospitalID uuid.UUID, scope domain.RequestScope) ([]domain.EmergencyRequest, error) {
	if scope == "" {
		scope = domain.ScopeActive
	}
	if scope != domain.ScopeActive && scope != domain.ScopeHistory {
		return nil, fmt.Errorf("scope %q: %w", scope, e.ErrInvalidInput)
	}

	items, err := s.repo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.EmergencyRequest, 0, len(items))
	for _, r := range items {
		if r.Status.Closed() == (scope == domain.ScopeHistory) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RequestDesk) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	if !status.Valid() {
		return fmt.Errorf("status %q: %w", status, e.ErrInvalidInput)
	}

	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Status == status {
		return nil
	}
	if req.Status.Closed() {
		return fmt.Errorf("%s -> %s: %w", req.Status, status, e.ErrInvalidTransition)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.logger.Info("request status updated",
		slog.String("id", id.String()),
		slog.String("from", string(req.Status)),
		slog.String("to", string(status)),
	)
	return nil
}
