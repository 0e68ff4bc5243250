package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_RejectsInvalidURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative"} {
		if _, err := New(raw, time.Second); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestDoJSON_RoundTripAndErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("expected X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/owners":
			var in map[string]any
			_ = json.NewDecoder(r.Body).Decode(&in)
			in["id"] = 1
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(in)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"owner not found"}`))
		}
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out struct {
		ID        int64  `json:"id"`
		FirstName string `json:"firstName"`
	}
	if err := c.DoJSON(context.Background(), http.MethodPost, "api/owners", map[string]any{"firstName": "Ann"}, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out.ID != 1 || out.FirstName != "Ann" {
		t.Fatalf("unexpected response %#v", out)
	}

	err = c.DoJSON(context.Background(), http.MethodGet, "/api/owners/9", nil, nil)
	if !IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if he := err.(*HTTPError); he.Body != "owner not found" {
		t.Fatalf("expected error message extracted, got %q", he.Body)
	}
}

func TestHealth(t *testing.T) {
	var ready atomic.Bool
	ready.Store(true)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/health":
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case r.URL.Path == "/ready" && ready.Load():
			_, _ = w.Write([]byte(`{"status":"ready"}`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
		}
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)

	st, err := c.Health(context.Background())
	if err != nil || st.Status != "ready" {
		t.Fatalf("expected ready, got %#v err=%v", st, err)
	}

	ready.Store(false)
	if _, err := c.Health(context.Background()); err == nil {
		t.Fatalf("expected error when not ready")
	}
}
