package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"roast-backend/internal/roast"
	"roast-backend/internal/services/health"
	"roast-backend/internal/shared/config"
	"roast-backend/internal/shared/metrics"
	"roast-backend/internal/shared/server/middleware"
)

type stubLLM struct{}

func (stubLLM) Roast(ctx context.Context, prompt string) (string, error) {
	return "roasted", nil
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Env:            "dev",
		RateLimit:      2,
		RateWindowMin:  15,
		MaxRoastChars:  10000,
		MaxUploadBytes: 5 << 20,
	}
	m := metrics.New()
	svc := &roast.Service{LLM: stubLLM{}, MaxChars: cfg.MaxRoastChars, Metrics: m}
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	return NewRouter(RouterDeps{
		Config:       cfg,
		RoastHandler: roast.NewHandler(svc, true, cfg.MaxUploadBytes),
		HealthSvc:    health.NewService(),
		Metrics:      m,
		Limiter:      middleware.NewWindowLimiter(func() time.Time { return now }),
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %q", body.Status)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected error body")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "roast_http_requests_total") {
		t.Fatalf("expected request counter in exposition:\n%s", resp.Body.String())
	}
}

func TestRoastRoutesRateLimited(t *testing.T) {
	r := testRouter(t)

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/roast/linkedin", strings.NewReader(`{"content":"some profile text"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.1.1.1:9999"
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request expected 200, got %d", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("second request expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("third request expected 429, got %d", code)
	}

	// Health is outside the limited group.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.1.1.1:9999"
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("health must not be rate limited, got %d", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":9001": ":9001",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
