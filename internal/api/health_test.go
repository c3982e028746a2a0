package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Before the runner binds a health function the endpoint reports unhealthy.
func TestCheckHealth_Binding(t *testing.T) {
	orig := serviceIsHealthy
	defer BindServiceHealth(orig)

	h := NewHealthHandler()
	status := func() string {
		rr := httptest.NewRecorder()
		h.CheckHealth(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		return body["status"]
	}

	if got := status(); got != "unhealthy" {
		t.Fatalf("expected unhealthy before binding, got %q", got)
	}

	BindServiceHealth(func() bool { return true })
	if got := status(); got != "healthy" {
		t.Fatalf("expected healthy after binding, got %q", got)
	}
}
