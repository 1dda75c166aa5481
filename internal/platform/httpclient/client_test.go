package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_GetSendsHeaders(t *testing.T) {
	var gotUA, gotAccept, gotExtra string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotExtra = r.Header.Get("X-Api-Key")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(Config{Timeout: time.Second})
	status, body, err := c.Get(t.Context(), srv.URL, map[string]string{"X-Api-Key": "k"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if status != http.StatusAccepted || string(body) != `{"ok":true}` {
		t.Fatalf("unexpected response status=%d body=%s", status, body)
	}
	if gotUA != DefaultUserAgent || gotAccept != DefaultAccept || gotExtra != "k" {
		t.Fatalf("unexpected headers ua=%q accept=%q extra=%q", gotUA, gotAccept, gotExtra)
	}
}

func TestClient_GetTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := New(Config{Timeout: 50 * time.Millisecond})
	started := time.Now()
	if _, _, err := c.Get(t.Context(), srv.URL, nil); err == nil {
		t.Fatalf("expected timeout error")
	}
	if elapsed := time.Since(started); elapsed > 2*time.Second {
		t.Fatalf("Get exceeded its deadline: %s", elapsed)
	}
}
