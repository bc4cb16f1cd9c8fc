package service

import (
	"context"

	"lifesaver/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type ProviderRepository interface {
	// GetAuthenticatedRequester returns nil, nil when no identity is attached.
	GetAuthenticatedRequester(ctx context.Context) (*domain.RequesterProfile, error)
	FetchAvailableHospitals(ctx context.Context) ([]domain.HospitalCandidate, error)
	FetchOnDutyVerifiedResponders(ctx context.Context) ([]domain.ResponderCandidate, error)
	PersistHospitalAssignment(ctx context.Context, rec domain.AssignmentRecord) error
	PersistResponderAssignment(ctx context.Context, rec domain.AssignmentRecord) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, at domain.Coordinate, emergencyType domain.EmergencyType, description string) (domain.AssignmentDecision, error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.AssignmentNotification) error
}

type RequestRepository interface {
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]domain.EmergencyRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
}

type AlertRepository interface {
	ListByResponder(ctx context.Context, responderID uuid.UUID) ([]domain.EmergencyAlert, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyAlert, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AlertStatus, responderID *uuid.UUID) error
}

type StatsRepository interface {
	CountHospitalRequests(ctx context.Context, minutes int) (int64, error)
	CountResponderAlerts(ctx context.Context, minutes int) (int64, error)
	CountUniqueRequesters(ctx context.Context, minutes int) (int64, error)
}

// SOS use-cases
type SOSService interface {
	Send(ctx context.Context, req domain.SOSRequest) (domain.SOSResult, error)
}

// Hospital dashboard
type RequestService interface {
	List(ctx context.Context, hospitalID uuid.UUID, scope domain.RequestScope) ([]domain.EmergencyRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
}

// Responder dashboard
type AlertService interface {
	Nearby(ctx context.Context, responderID uuid.UUID, at domain.Coordinate) ([]domain.NearbyAlert, error)
	UpdateStatus(ctx context.Context, id, responderID uuid.UUID, status domain.AlertStatus) error
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DispatchStats, error)
}

type Service struct {
	SOSService     SOSService
	RequestService RequestService
	AlertService   AlertService
	StatsService   StatsService
}

func NewService(
	sosService SOSService,
	requestService RequestService,
	alertService AlertService,
	statsService StatsService,
) *Service {
	return &Service{
		SOSService:     sosService,
		RequestService: requestService,
		AlertService:   alertService,
		StatsService:   statsService,
	}
}
