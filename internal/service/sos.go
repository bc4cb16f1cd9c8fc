package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lifesaver/internal/auth"
	"lifesaver/internal/domain"
	"lifesaver/pkg/e"
)

const (
	msgNotAuthenticated = "User not authenticated"
	msgNoProvider       = "No hospital or responder available"
	msgFetchFailed      = "Failed to fetch hospitals or responders"
	msgPersistFailed    = "Failed to create emergency request"
	msgInvalidRequest   = "Invalid emergency request"
	msgUnexpected       = "An unexpected error occurred"
)

type sosService struct {
	engine Dispatcher
	queue  NotificationQueue
	logger *slog.Logger
	now    func() time.Time
}

// NewSOSService wires the dispatch boundary. queue may be nil when
// assignment notifications are disabled.
func NewSOSService(engine Dispatcher, queue NotificationQueue, logger *slog.Logger) SOSService {
	return &sosService{
		engine: engine,
		queue:  queue,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sosService) Send(ctx context.Context, req domain.SOSRequest) (domain.SOSResult, error) {
	s.logger.Info("sos START",
		slog.String("emergency_type", string(req.EmergencyType)),
		slog.Float64("lat", req.Latitude),
		slog.Float64("lng", req.Longitude),
	)

	if _, ok := auth.UserID(ctx); !ok {
		s.logger.Warn("anonymous sos rejected")
		err := fmt.Errorf("sos: %w", e.ErrNotAuthenticated)
		return FailureResult(err), err
	}

	at := req.Coordinate()
	if !at.Valid() {
		s.logger.Warn("invalid coordinates", slog.Float64("lat", req.Latitude), slog.Float64("lng", req.Longitude))
		return FailureResult(e.ErrInvalidCoordinates), e.ErrInvalidCoordinates
	}

	emergencyType := req.EmergencyType
	if emergencyType == "" {
		emergencyType = domain.EmergencyMedical
	}
	if !emergencyType.Valid() {
		err := fmt.Errorf("emergency type %q: %w", emergencyType, e.ErrInvalidInput)
		return FailureResult(err), err
	}

	decision, err := s.engine.Dispatch(ctx, at, emergencyType, req.Description)
	if err != nil {
		s.logger.Error("dispatch failed", slog.Any("error", err))
		return FailureResult(err), err
	}

	if !decision.Assigned() {
		s.logger.Info("sos END", slog.String("kind", string(domain.DecisionNone)))
		return domain.SOSResult{Success: false, Error: msgNoProvider}, nil
	}

	s.notify(ctx, req, emergencyType, decision)

	s.logger.Info("sos END",
		slog.String("kind", string(decision.Kind)),
		slog.String("provider_id", decision.CandidateID.String()),
	)
	return domain.SOSResult{Success: true, Type: decision.Kind}, nil
}

// notify is best effort: the assignment is already persisted.
func (s *sosService) notify(ctx context.Context, req domain.SOSRequest, t domain.EmergencyType, d domain.AssignmentDecision) {
	if s.queue == nil {
		return
	}
	n := domain.AssignmentNotification{
		Kind:          d.Kind,
		ProviderID:    d.CandidateID,
		EmergencyType: t,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		DistanceKm:    d.DistanceKm,
		AssignedAt:    s.now().UTC(),
	}
	if id, ok := auth.UserID(ctx); ok {
		n.UserID = id
	}
	if err := s.queue.Enqueue(ctx, n); err != nil {
		s.logger.Error("enqueue assignment notification failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("assignment notification enqueued", slog.String("provider_id", d.CandidateID.String()))
}

// FailureResult renders a dispatch error for callers, keeping "no provider"
// (not an error) apart from system failures.
func FailureResult(err error) domain.SOSResult {
	var msg string
	switch {
	case errors.Is(err, e.ErrNotAuthenticated):
		msg = msgNotAuthenticated
	case errors.Is(err, e.ErrProviderFetchFailed):
		msg = msgFetchFailed
	case errors.Is(err, e.ErrPersistAssignmentFailed):
		msg = msgPersistFailed
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		msg = msgInvalidRequest
	default:
		msg = msgUnexpected
	}
	return domain.SOSResult{Success: false, Error: msg}
}
