package storage

import (
	"context"
	"errors"
	"log/slog"

	"lifesaver/internal/auth"
	"lifesaver/internal/domain"
	"lifesaver/pkg/e"

	"github.com/google/uuid"
)

type ProviderStore interface {
	ListAvailableHospitals(ctx context.Context) ([]domain.HospitalCandidate, error)
	ListOnDutyResponders(ctx context.Context) ([]domain.ResponderCandidate, error)
	CreateHospitalRequest(ctx context.Context, rec domain.AssignmentRecord) error
	CreateResponderAlert(ctx context.Context, rec domain.AssignmentRecord) error
}

type ProfileStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.RequesterProfile, error)
}

type ProfileCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.RequesterProfile, error)
	Set(ctx context.Context, p domain.RequesterProfile) error
}

// Providers is the data access the assignment engine runs against. Provider
// lists are read fresh on every call; only requester profiles are cached.
type Providers struct {
	store    ProviderStore
	profiles ProfileStore
	cache    ProfileCache
	logger   *slog.Logger
}

// NewProviders wires the repository. cache may be nil.
func NewProviders(store ProviderStore, profiles ProfileStore, cache ProfileCache, logger *slog.Logger) *Providers {
	return &Providers{store: store, profiles: profiles, cache: cache, logger: logger}
}

// GetAuthenticatedRequester returns nil, nil when the context carries no
// identity. A known identity without a profile row yields a bare profile so
// the name and phone fall back to their defaults.
func (p *Providers) GetAuthenticatedRequester(ctx context.Context) (*domain.RequesterProfile, error) {
	id, ok := auth.UserID(ctx)
	if !ok {
		return nil, nil
	}

	if p.cache != nil {
		cached, err := p.cache.Get(ctx, id)
		if err != nil {
			p.logger.Warn("profile cache read failed", slog.String("user_id", id.String()), slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	prof, err := p.profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return &domain.RequesterProfile{ID: id}, nil
		}
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, *prof); err != nil {
			p.logger.Warn("profile cache write failed", slog.String("user_id", id.String()), slog.Any("error", err))
		}
	}
	return prof, nil
}

func (p *Providers) FetchAvailableHospitals(ctx context.Context) ([]domain.HospitalCandidate, error) {
	return p.store.ListAvailableHospitals(ctx)
}

func (p *Providers) FetchOnDutyVerifiedResponders(ctx context.Context) ([]domain.ResponderCandidate, error) {
	return p.store.ListOnDutyResponders(ctx)
}

func (p *Providers) PersistHospitalAssignment(ctx context.Context, rec domain.AssignmentRecord) error {
	return p.store.CreateHospitalRequest(ctx, rec)
}

func (p *Providers) PersistResponderAssignment(ctx context.Context, rec domain.AssignmentRecord) error {
	return p.store.CreateResponderAlert(ctx, rec)
}
