package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"lifesaver/internal/domain"
	"lifesaver/internal/geo"
	"lifesaver/pkg/e"
)

// HospitalRadiusKm is the maximum distance at which a hospital is preferred
// over a responder.
const HospitalRadiusKm = 5.0

// AssignmentEngine picks the provider for one emergency: the nearest available
// hospital within HospitalRadiusKm, otherwise the nearest on-duty responder at
// any distance. It is greedy per call and keeps no state between calls, so two
// concurrent dispatches may select the same provider.
type AssignmentEngine struct {
	repo   ProviderRepository
	logger *slog.Logger
}

func NewAssignmentEngine(repo ProviderRepository, logger *slog.Logger) *AssignmentEngine {
	return &AssignmentEngine{repo: repo, logger: logger}
}

func (a *AssignmentEngine) Dispatch(
	ctx context.Context,
	at domain.Coordinate,
	emergencyType domain.EmergencyType,
	description string,
) (domain.AssignmentDecision, error) {
	const op = "service.AssignmentEngine.Dispatch"
	none := domain.AssignmentDecision{Kind: domain.DecisionNone}

	requester, err := a.repo.GetAuthenticatedRequester(ctx)
	if err != nil {
		return none, fmt.Errorf("%s: resolve requester: %w", op, err)
	}
	if requester == nil {
		return none, fmt.Errorf("%s: %w", op, e.ErrNotAuthenticated)
	}
	if description == "" {
		description = domain.DefaultDescription
	}

	log := a.logger.With(
		slog.String("user_id", requester.ID.String()),
		slog.String("emergency_type", string(emergencyType)),
	)

	hospitals, err := a.repo.FetchAvailableHospitals(ctx)
	if err != nil {
		log.Error("fetch hospitals failed", slog.Any("error", err))
		return none, e.Join(op+".hospitals", e.ErrProviderFetchFailed, err)
	}

	ranked := Rank(HospitalCandidates(hospitals), at)
	log.Debug("hospital tier ranked", slog.Int("fetched", len(hospitals)), slog.Int("ranked", len(ranked)))

	if best, ok := Nearest(ranked, HospitalRadiusKm); ok {
		rec := newRecord(*requester, at, emergencyType, description, best)
		if err := a.repo.PersistHospitalAssignment(ctx, rec); err != nil {
			log.Error("persist hospital assignment failed",
				slog.String("hospital_id", best.ID.String()),
				slog.Any("error", err),
			)
			return none, e.Join(op+".hospital", e.ErrPersistAssignmentFailed, err)
		}
		log.Info("assigned hospital",
			slog.String("hospital_id", best.ID.String()),
			slog.Float64("distance_km", best.DistanceKm),
		)
		return decisionFor(domain.DecisionHospital, best), nil
	}

	responders, err := a.repo.FetchOnDutyVerifiedResponders(ctx)
	if err != nil {
		log.Error("fetch responders failed", slog.Any("error", err))
		return none, e.Join(op+".responders", e.ErrProviderFetchFailed, err)
	}

	ranked = Rank(ResponderCandidates(responders), at)
	log.Debug("responder tier ranked", slog.Int("fetched", len(responders)), slog.Int("ranked", len(ranked)))

	if best, ok := Nearest(ranked, math.Inf(1)); ok {
		rec := newRecord(*requester, at, emergencyType, description, best)
		if err := a.repo.PersistResponderAssignment(ctx, rec); err != nil {
			log.Error("persist responder assignment failed",
				slog.String("responder_id", best.ID.String()),
				slog.Any("error", err),
			)
			return none, e.Join(op+".responder", e.ErrPersistAssignmentFailed, err)
		}
		log.Info("assigned responder",
			slog.String("responder_id", best.ID.String()),
			slog.Float64("distance_km", best.DistanceKm),
		)
		return decisionFor(domain.DecisionResponder, best), nil
	}

	log.Warn("no provider available")
	return none, nil
}

func HospitalCandidates(hospitals []domain.HospitalCandidate) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(hospitals))
	for _, h := range hospitals {
		c := domain.Candidate{ID: h.ID, Kind: domain.ProviderHospital, Location: domain.LocationUnparseable}
		if h.Coordinate != nil {
			c.Coordinate = *h.Coordinate
			c.Location = domain.LocationResolved
		}
		out = append(out, c)
	}
	return out
}

func ResponderCandidates(responders []domain.ResponderCandidate) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(responders))
	for _, r := range responders {
		c := domain.Candidate{ID: r.ID, Kind: domain.ProviderResponder, Location: domain.LocationUnparseable}
		if coord, ok := geo.ParseLocation(r.RawLocation); ok {
			c.Coordinate = coord
			c.Location = domain.LocationResolved
		}
		out = append(out, c)
	}
	return out
}

// Rank scores eligible candidates by distance from at, ascending. The sort is
// stable: equal distances keep input order.
func Rank(candidates []domain.Candidate, at domain.Coordinate) []domain.RankedCandidate {
	ranked := make([]domain.RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Eligible() {
			continue
		}
		ranked = append(ranked, domain.RankedCandidate{
			Candidate:  c,
			DistanceKm: geo.Distance(at, c.Coordinate),
		})
	}
	slices.SortStableFunc(ranked, func(x, y domain.RankedCandidate) int {
		return cmp.Compare(x.DistanceKm, y.DistanceKm)
	})
	return ranked
}

// Nearest returns the first ranked candidate if it lies within maxKm. A NaN
// distance never qualifies.
func Nearest(ranked []domain.RankedCandidate, maxKm float64) (domain.RankedCandidate, bool) {
	if len(ranked) == 0 || !(ranked[0].DistanceKm <= maxKm) {
		return domain.RankedCandidate{}, false
	}
	return ranked[0], true
}

func newRecord(
	requester domain.RequesterProfile,
	at domain.Coordinate,
	emergencyType domain.EmergencyType,
	description string,
	best domain.RankedCandidate,
) domain.AssignmentRecord {
	return domain.AssignmentRecord{
		Requester:     requester,
		Coordinate:    at,
		EmergencyType: emergencyType,
		Description:   description,
		ProviderID:    best.ID,
	}
}

func decisionFor(kind domain.DecisionKind, best domain.RankedCandidate) domain.AssignmentDecision {
	return domain.AssignmentDecision{Kind: kind, CandidateID: best.ID, DistanceKm: best.DistanceKm}
}
