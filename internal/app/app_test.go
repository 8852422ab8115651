package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-club/internal/config"
	"github.com/riskibarqy/cricket-club/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:              config.EnvDev,
		ServiceName:         "cricket-club-api",
		HTTPAddr:            ":0",
		ReadTimeout:         time.Second,
		WriteTimeout:        time.Second,
		StoreDriver:         config.StoreMemory,
		CacheEnabled:        true,
		CacheTTL:            time.Minute,
		CORSAllowedOrigins:  []string{"*"},
		PlayHQTimeout:       time.Second,
		FallbackDemoEnabled: true,
		FallbackDemoTeamID:  "winter",
		AuthBaseURL:         "http://127.0.0.1:1",
		AuthTimeout:         time.Second,
		AuthCacheTTL:        time.Second,
	}
}

func TestNew_MemoryStoreServesDemoFixtures(t *testing.T) {
	a, err := New(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fixtures/winter", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"source":"synthetic"`) || !strings.Contains(body, `"kind":"configuration"`) {
		t.Fatalf("expected synthetic fixtures with configuration failure, got %s", body)
	}

	rec = httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for healthz, got %d", rec.Code)
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestNew_RejectsBadFallbackFile(t *testing.T) {
	cfg := testConfig()
	cfg.FallbackFixturesFile = "/does/not/exist.yaml"
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("expected error for missing fallback fixtures file")
	}
}
