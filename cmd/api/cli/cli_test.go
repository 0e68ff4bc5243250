package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vet-clinic/internal/platform/config"
	"vet-clinic/internal/router"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd("1.2.3", "abc", "2024-01-01")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion_JSON(t *testing.T) {
	out, err := run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if info["version"] != "1.2.3" || info["commit"] != "abc" {
		t.Fatalf("unexpected info %#v", info)
	}
}

func TestHealthcheck(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Config: config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}},
	}))
	defer ts.Close()

	out, err := run(t, "healthcheck", "--url", ts.URL)
	if err != nil {
		t.Fatalf("healthcheck: %v", err)
	}
	if !strings.Contains(out, "ready") {
		t.Fatalf("expected ready in output, got %q", out)
	}

	ts.Close()
	if _, err := run(t, "healthcheck", "--url", ts.URL, "--timeout", "200ms"); err == nil {
		t.Fatalf("expected error against a closed server")
	}
}

func TestHealthcheck_NotAVetClinicServer(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	_, err := run(t, "healthcheck", "--url", ts.URL)
	if err == nil || !strings.Contains(err.Error(), "does not expose /health") {
		t.Fatalf("expected missing endpoint error, got %v", err)
	}
}
