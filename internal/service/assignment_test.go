package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"lifesaver/internal/domain"
	"lifesaver/internal/service"
	mock_service "lifesaver/internal/service/mocks"
	"lifesaver/pkg/e"
)

// --- helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func coordPtr(lat, lng float64) *domain.Coordinate {
	return &domain.Coordinate{Latitude: lat, Longitude: lng}
}

func strPtr(s string) *string { return &s }

func requester() *domain.RequesterProfile {
	return &domain.RequesterProfile{
		ID:        uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		FirstName: "Asha",
		LastName:  "Rao",
		Phone:     "+91 98450 00000",
	}
}

var bengaluru = domain.Coordinate{Latitude: 12.90, Longitude: 77.60}

// --- dispatch ---

// A hospital within 5 km wins and responders are never fetched.
func TestDispatch_HospitalWithinThreshold(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)

	hospitalID := uuid.New()
	var got domain.AssignmentRecord

	gomock.InOrder(
		repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1),
		repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return([]domain.HospitalCandidate{
			{ID: hospitalID, Name: "St. John's", Coordinate: coordPtr(12.92, 77.61)},
		}, nil).Times(1),
		repo.EXPECT().PersistHospitalAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec domain.AssignmentRecord) error {
				got = rec
				return nil
			}).Times(1),
	)
	// FetchOnDutyVerifiedResponders must not be called.

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	decision, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if decision.Kind != domain.DecisionHospital || decision.CandidateID != hospitalID {
		t.Fatalf("unexpected decision: %+v", decision)
	}
	if decision.DistanceKm <= 0 || decision.DistanceKm > service.HospitalRadiusKm {
		t.Fatalf("unexpected distance: %v", decision.DistanceKm)
	}

	if got.ProviderID != hospitalID {
		t.Fatalf("persisted provider mismatch: %s", got.ProviderID)
	}
	if got.Description != domain.DefaultDescription {
		t.Fatalf("expected default description, got %q", got.Description)
	}
	if got.Coordinate != bengaluru || got.EmergencyType != domain.EmergencyMedical {
		t.Fatalf("record mismatch: %+v", got)
	}
	if got.Requester.ID != requester().ID {
		t.Fatalf("requester mismatch: %+v", got.Requester)
	}
}

// The only hospital is outside 5 km, so the nearest responder wins.
func TestDispatch_FallsBackToResponder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)

	responderID := uuid.New()

	gomock.InOrder(
		repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1),
		repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return([]domain.HospitalCandidate{
			{ID: uuid.New(), Coordinate: coordPtr(13.50, 78.00)},
		}, nil).Times(1),
		repo.EXPECT().FetchOnDutyVerifiedResponders(gomock.Any()).Return([]domain.ResponderCandidate{
			{ID: responderID, RawLocation: strPtr("(77.65,12.95)")},
		}, nil).Times(1),
		repo.EXPECT().PersistResponderAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec domain.AssignmentRecord) error {
				if rec.ProviderID != responderID {
					t.Fatalf("persisted responder mismatch: %s", rec.ProviderID)
				}
				if rec.Description != "trapped in lift" {
					t.Fatalf("description not passed: %q", rec.Description)
				}
				return nil
			}).Times(1),
	)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	decision, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencySafety, "trapped in lift")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if decision.Kind != domain.DecisionResponder || decision.CandidateID != responderID {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

// Nobody available is a decision, not an error.
func TestDispatch_NoProviderAvailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
	repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().FetchOnDutyVerifiedResponders(gomock.Any()).Return([]domain.ResponderCandidate{}, nil).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	decision, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyGeneral, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if decision.Kind != domain.DecisionNone || decision.Assigned() {
		t.Fatalf("expected none, got %+v", decision)
	}
}

// Equal distances resolve to the first hospital in fetch order.
func TestDispatch_TieGoesToFirstFetched(t *testing.T) {
	t.Parallel()

	origin := domain.Coordinate{Latitude: 0, Longitude: 0}
	north := domain.HospitalCandidate{ID: uuid.New(), Coordinate: coordPtr(0.01, 0)}
	south := domain.HospitalCandidate{ID: uuid.New(), Coordinate: coordPtr(-0.01, 0)}

	cases := []struct {
		name  string
		input []domain.HospitalCandidate
		want  uuid.UUID
	}{
		{"north_first", []domain.HospitalCandidate{north, south}, north.ID},
		{"south_first", []domain.HospitalCandidate{south, north}, south.ID},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for run := 0; run < 10; run++ {
				ctrl := gomock.NewController(t)

				repo := mock_service.NewMockProviderRepository(ctrl)
				repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
				repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return(c.input, nil).Times(1)
				repo.EXPECT().PersistHospitalAssignment(gomock.Any(), gomock.Any()).Return(nil).Times(1)

				engine := service.NewAssignmentEngine(repo, newTestLogger())
				decision, err := engine.Dispatch(context.Background(), origin, domain.EmergencyMedical, "")
				if err != nil {
					t.Fatalf("run %d: unexpected err: %v", run, err)
				}
				if decision.CandidateID != c.want {
					t.Fatalf("run %d: expected %s got %s", run, c.want, decision.CandidateID)
				}
				ctrl.Finish()
			}
		})
	}
}

// An unparseable responder location is skipped, not fatal.
func TestDispatch_UnparseableResponderExcluded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)

	broken := uuid.New()
	valid := uuid.New()

	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
	repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return([]domain.HospitalCandidate{}, nil).Times(1)
	repo.EXPECT().FetchOnDutyVerifiedResponders(gomock.Any()).Return([]domain.ResponderCandidate{
		// would be the nearest if it parsed
		{ID: broken, RawLocation: strPtr("invalid-format")},
		{ID: uuid.New(), RawLocation: nil},
		{ID: valid, RawLocation: strPtr(`{"lat":12.0,"lng":77.0}`)},
	}, nil).Times(1)
	repo.EXPECT().PersistResponderAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.AssignmentRecord) error {
			if rec.ProviderID != valid {
				t.Fatalf("expected %s got %s", valid, rec.ProviderID)
			}
			return nil
		}).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	decision, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if decision.Kind != domain.DecisionResponder || decision.CandidateID != valid {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestDispatch_ResponderTierHasNoDistanceLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	far := uuid.New()

	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
	repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().FetchOnDutyVerifiedResponders(gomock.Any()).Return([]domain.ResponderCandidate{
		{ID: far, RawLocation: strPtr("(-0.1276,51.5072)")}, // London
	}, nil).Times(1)
	repo.EXPECT().PersistResponderAssignment(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	decision, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if decision.CandidateID != far || decision.DistanceKm < 7000 {
		t.Fatalf("unexpected decision: %+v", decision)
	}
}

func TestDispatch_HospitalWithoutCoordinateIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	located := uuid.New()

	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
	repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return([]domain.HospitalCandidate{
		{ID: uuid.New(), Coordinate: nil},
		{ID: located, Coordinate: coordPtr(12.91, 77.60)},
	}, nil).Times(1)
	repo.EXPECT().PersistHospitalAssignment(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	decision, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if decision.CandidateID != located {
		t.Fatalf("expected %s got %s", located, decision.CandidateID)
	}
}

// --- failures ---

func TestDispatch_NotAuthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(nil, nil).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	_, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if !errors.Is(err, e.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestDispatch_RequesterLookupError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	wantErr := errors.New("profiles down")
	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(nil, wantErr).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	_, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestDispatch_HospitalFetchFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	cause := errors.New("db down")
	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
	repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return(nil, cause).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	decision, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if !errors.Is(err, e.ErrProviderFetchFailed) || !errors.Is(err, cause) {
		t.Fatalf("expected ErrProviderFetchFailed wrapping cause, got %v", err)
	}
	if decision.Assigned() {
		t.Fatalf("no assignment expected on failure: %+v", decision)
	}
}

func TestDispatch_ResponderFetchFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
	repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().FetchOnDutyVerifiedResponders(gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	_, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if !errors.Is(err, e.ErrProviderFetchFailed) {
		t.Fatalf("expected ErrProviderFetchFailed, got %v", err)
	}
}

func TestDispatch_PersistFailedIsNotRetried(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
	repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return([]domain.HospitalCandidate{
		{ID: uuid.New(), Coordinate: coordPtr(12.92, 77.61)},
	}, nil).Times(1)
	repo.EXPECT().PersistHospitalAssignment(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	_, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if !errors.Is(err, e.ErrPersistAssignmentFailed) {
		t.Fatalf("expected ErrPersistAssignmentFailed, got %v", err)
	}
}

func TestDispatch_ResponderPersistFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockProviderRepository(ctrl)
	repo.EXPECT().GetAuthenticatedRequester(gomock.Any()).Return(requester(), nil).Times(1)
	repo.EXPECT().FetchAvailableHospitals(gomock.Any()).Return(nil, nil).Times(1)
	repo.EXPECT().FetchOnDutyVerifiedResponders(gomock.Any()).Return([]domain.ResponderCandidate{
		{ID: uuid.New(), RawLocation: strPtr("(77.65,12.95)")},
	}, nil).Times(1)
	repo.EXPECT().PersistResponderAssignment(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)

	engine := service.NewAssignmentEngine(repo, newTestLogger())

	_, err := engine.Dispatch(context.Background(), bengaluru, domain.EmergencyMedical, "")
	if !errors.Is(err, e.ErrPersistAssignmentFailed) {
		t.Fatalf("expected ErrPersistAssignmentFailed, got %v", err)
	}
}

// --- ranking ---

func TestRank_SkipsUnparseableAndSortsStable(t *testing.T) {
	t.Parallel()

	a := domain.Candidate{ID: uuid.New(), Coordinate: domain.Coordinate{Latitude: 0, Longitude: 0.02}}
	b := domain.Candidate{ID: uuid.New(), Coordinate: domain.Coordinate{Latitude: 0, Longitude: 0.01}}
	c := domain.Candidate{ID: uuid.New(), Coordinate: domain.Coordinate{Latitude: 0, Longitude: -0.01}}
	bad := domain.Candidate{ID: uuid.New(), Location: domain.LocationUnparseable}

	ranked := service.Rank([]domain.Candidate{a, bad, b, c}, domain.Coordinate{})
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked, got %d", len(ranked))
	}
	want := []uuid.UUID{b.ID, c.ID, a.ID}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Fatalf("position %d: expected %s got %s", i, id, ranked[i].ID)
		}
	}
}

func TestNearest_ThresholdIsInclusive(t *testing.T) {
	t.Parallel()

	ranked := []domain.RankedCandidate{{DistanceKm: service.HospitalRadiusKm}}
	if _, ok := service.Nearest(ranked, service.HospitalRadiusKm); !ok {
		t.Fatalf("candidate at exactly the radius must qualify")
	}

	ranked[0].DistanceKm = service.HospitalRadiusKm + 0.001
	if _, ok := service.Nearest(ranked, service.HospitalRadiusKm); ok {
		t.Fatalf("candidate beyond the radius must not qualify")
	}

	if _, ok := service.Nearest(nil, service.HospitalRadiusKm); ok {
		t.Fatalf("empty ranking must not qualify")
	}
}

func TestNearest_NaNNeverQualifies(t *testing.T) {
	t.Parallel()

	ranked := []domain.RankedCandidate{{DistanceKm: math.NaN()}}
	if _, ok := service.Nearest(ranked, service.HospitalRadiusKm); ok {
		t.Fatalf("NaN distance must not qualify for the hospital tier")
	}
	if _, ok := service.Nearest(ranked, math.Inf(1)); ok {
		t.Fatalf("NaN distance must not qualify for the responder tier")
	}
}

func TestRank_AntipodalHospitalLosesToNearOne(t *testing.T) {
	t.Parallel()

	at := domain.Coordinate{Latitude: 18.83885183633153, Longitude: 158.58327169620446}
	antipode := domain.Candidate{
		ID:         uuid.New(),
		Coordinate: domain.Coordinate{Latitude: -at.Latitude, Longitude: at.Longitude - 180},
	}
	near := domain.Candidate{
		ID:         uuid.New(),
		Coordinate: domain.Coordinate{Latitude: at.Latitude + 0.009, Longitude: at.Longitude},
	}

	ranked := service.Rank([]domain.Candidate{antipode, near}, at)
	for _, r := range ranked {
		if math.IsNaN(r.DistanceKm) {
			t.Fatalf("NaN distance for %s", r.ID)
		}
	}

	best, ok := service.Nearest(ranked, service.HospitalRadiusKm)
	if !ok || best.ID != near.ID {
		t.Fatalf("expected near hospital %s, got %+v (ok=%v)", near.ID, best, ok)
	}
	if best.DistanceKm > 1.1 {
		t.Fatalf("expected ~1 km, got %v", best.DistanceKm)
	}
	if ranked[1].DistanceKm < 20000 {
		t.Fatalf("expected antipode ~20015 km, got %v", ranked[1].DistanceKm)
	}
}
