package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"lifesaver/internal/api/handlers/http/system"
	"lifesaver/internal/auth"
	"lifesaver/internal/config"
	"lifesaver/internal/domain"
	"lifesaver/internal/service"
	mock_service "lifesaver/internal/service/mocks"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type routerDeps struct {
	sos   *mock_service.MockSOSService
	req   *mock_service.MockRequestService
	alert *mock_service.MockAlertService
	stats *mock_service.MockStatsService
}

func newTestServer(t *testing.T, checks map[string]system.Pinger) (*httptest.Server, routerDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := routerDeps{
		sos:   mock_service.NewMockSOSService(ctrl),
		req:   mock_service.NewMockRequestService(ctrl),
		alert: mock_service.NewMockAlertService(ctrl),
		stats: mock_service.NewMockStatsService(ctrl),
	}
	svc := service.NewService(d.sos, d.req, d.alert, d.stats)

	cfg := &config.Config{APIKey: "test-key"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewServer(cfg, logger, svc, checks)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts, d
}

func do(t *testing.T, method, url string, body string, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestRouter_SOSCarriesIdentity(t *testing.T) {
	ts, d := newTestServer(t, nil)

	userID := uuid.New()
	d.sos.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.SOSRequest) (domain.SOSResult, error) {
			got, ok := auth.UserID(ctx)
			if !ok || got != userID {
				t.Errorf("expected user %s in context, got %s (ok=%v)", userID, got, ok)
			}
			return domain.SOSResult{Success: true, Type: domain.DecisionHospital}, nil
		}).
		Times(1)

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/sos",
		`{"emergency_type":"medical","latitude":12.97,"longitude":77.59}`,
		map[string]string{"X-User-ID": userID.String()})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
}

func TestRouter_MalformedIdentityRejected(t *testing.T) {
	ts, d := newTestServer(t, nil)
	d.sos.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/emergency",
		`{"latitude":1,"longitude":2}`,
		map[string]string{"X-User-ID": "not-a-uuid"})

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
}

func TestRouter_AdminRequiresAPIKey(t *testing.T) {
	ts, d := newTestServer(t, nil)

	d.stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.DispatchStats{Minutes: 60}, nil).
		Times(1)

	if resp := do(t, http.MethodGet, ts.URL+"/api/v1/admin/stats", "", nil); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodGet, ts.URL+"/api/v1/admin/stats", "", map[string]string{"X-API-Key": "test-key"}); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d", resp.StatusCode)
	}
}

func TestRouter_DashboardRoutes(t *testing.T) {
	ts, d := newTestServer(t, nil)

	hospitalID := uuid.New()
	alertID := uuid.New()
	responderID := uuid.New()

	d.req.EXPECT().List(gomock.Any(), hospitalID, domain.ScopeActive).Return(nil, nil).Times(1)
	d.alert.EXPECT().UpdateStatus(gomock.Any(), alertID, responderID, domain.AlertAcknowledged).Return(nil).Times(1)

	if resp := do(t, http.MethodGet, ts.URL+"/api/v1/hospitals/"+hospitalID.String()+"/requests", "", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	resp := do(t, http.MethodPatch, ts.URL+"/api/v1/alerts/"+alertID.String()+"/status",
		`{"status":"acknowledged"}`,
		map[string]string{"X-User-ID": responderID.String()})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.StatusCode)
	}
}

func TestRouter_Probes(t *testing.T) {
	ts, _ := newTestServer(t, map[string]system.Pinger{
		"postgres": stubPinger{},
		"redis":    stubPinger{err: errors.New("dial tcp: refused")},
	})

	if resp := do(t, http.MethodGet, ts.URL+"/api/v1/health", "", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	if resp := do(t, http.MethodGet, ts.URL+"/api/v1/ready", "", nil); resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.StatusCode)
	}
}
