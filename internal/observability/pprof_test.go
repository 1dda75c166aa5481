package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil || srv != nil {
		t.Fatalf("expected no server when disabled, got srv=%v err=%v", srv, err)
	}
	if err := StopPprofServer(nil, logging.NewNop(), time.Second); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status got=%d want=%d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected api routes to be absent, got=%d", rec.Code)
	}
}
