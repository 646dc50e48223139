package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/engine"
)

var _ core.RenderObserver = (*Recorder)(nil)

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	switch {
	case out.Counter != nil:
		return out.GetCounter().GetValue()
	case out.Gauge != nil:
		return out.GetGauge().GetValue()
	case out.Histogram != nil:
		return float64(out.GetHistogram().GetSampleCount())
	}
	t.Fatalf("unsupported metric %T", m)
	return 0
}

func TestObservePatch(t *testing.T) {
	r := New()
	r.ObservePatch("app", 3*time.Millisecond, engine.Stats{Created: 4, Removed: 1})
	r.ObservePatch("app", time.Millisecond, engine.Stats{Patched: 2})

	if got := value(t, r.patchesTotal.WithLabelValues("app")); got != 2 {
		t.Errorf("patches_total = %v, want 2", got)
	}
	if got := value(t, r.nodesTotal.WithLabelValues("created")); got != 4 {
		t.Errorf("nodes_total{created} = %v, want 4", got)
	}
	if got := value(t, r.nodesTotal.WithLabelValues("patched")); got != 2 {
		t.Errorf("nodes_total{patched} = %v, want 2", got)
	}
	obs := r.patchDuration.WithLabelValues("app").(prometheus.Metric)
	if n := value(t, obs); n != 2 {
		t.Errorf("patch_duration samples = %v, want 2", n)
	}
}

func TestObserveBatchAndSessions(t *testing.T) {
	r := New(WithNamespace("test"))
	r.ObserveBatch("app", 3)
	r.SessionOpened()
	r.SessionOpened()
	r.SessionClosed()
	r.ObserveEvent("click", nil)
	r.ObserveEvent("click", errors.New("boom"))
	r.FramesSent(5)
	r.WebSocketError("read")

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"batches", value(t, r.batchesTotal.WithLabelValues("app")), 1},
		{"sessions", value(t, r.activeSessions), 1},
		{"events ok", value(t, r.eventsTotal.WithLabelValues("click", "success")), 1},
		{"events err", value(t, r.eventsTotal.WithLabelValues("click", "error")), 1},
		{"frames", value(t, r.framesSent), 5},
		{"ws errors", value(t, r.wsErrors.WithLabelValues("read")), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestHandler(t *testing.T) {
	r := New()
	r.ObservePatch("main", time.Millisecond, engine.Stats{})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `kview_patches_total{root="main"} 1`) {
		t.Errorf("exposition missing patches_total:\n%s", body)
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.SessionOpened()
	if got := value(t, b.activeSessions); got != 0 {
		t.Errorf("second recorder saw %v sessions", got)
	}
}
