package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"lifesaver/internal/config"
	"lifesaver/internal/domain"
	"lifesaver/internal/service"
	"lifesaver/pkg/e"
)

type fakeSource struct {
	mu    sync.Mutex
	items []domain.AssignmentNotification
}

func (f *fakeSource) BRPop(ctx context.Context, _ time.Duration) (domain.AssignmentNotification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == 0 {
		select {
		case <-ctx.Done():
			return domain.AssignmentNotification{}, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
		return domain.AssignmentNotification{}, e.ErrWebHookEmpty
	}
	n := f.items[0]
	f.items = f.items[1:]
	return n, nil
}

func TestWebhookSender_DeliversQueuedNotification(t *testing.T) {
	t.Parallel()

	n := domain.AssignmentNotification{
		UserID:        uuid.New(),
		Kind:          domain.DecisionResponder,
		ProviderID:    uuid.New(),
		EmergencyType: domain.EmergencySafety,
		Latitude:      12.9,
		Longitude:     77.6,
		DistanceKm:    3.4,
		AssignedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	received := make(chan domain.AssignmentNotification, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		var got domain.AssignmentNotification
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
		received <- got
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := service.NewWebhookSender(newTestLogger(), config.WebhookConfig{URL: srv.URL}, &fakeSource{
		items: []domain.AssignmentNotification{n},
	})

	done := make(chan struct{})
	go func() {
		sender.Run(ctx)
		close(done)
	}()

	select {
	case got := <-received:
		if got.ProviderID != n.ProviderID || got.Kind != n.Kind || !got.AssignedAt.Equal(n.AssignedAt) {
			t.Fatalf("unexpected payload: %+v", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("webhook not delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("sender did not stop after cancel")
	}
}
