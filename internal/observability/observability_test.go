package observability

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/riskibarqy/cricket-club/internal/config"
	"github.com/riskibarqy/cricket-club/internal/platform/logging"
)

func TestStart_AllDisabledIsNoop(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "cricket-club-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	rt, err := Start(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if rt.profiler != nil || rt.debug != nil {
		t.Fatalf("expected nothing started, got %+v", rt)
	}
	if err := rt.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestStart_UptraceEnabledWithoutDSNIsNoop(t *testing.T) {
	rt, err := Start(config.Config{UptraceEnabled: true, ServiceName: "cricket-club-api"}, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := rt.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestStart_PprofServesIndex(t *testing.T) {
	rt, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer func() {
		if err := rt.Stop(context.Background()); err != nil {
			t.Fatalf("stop: %v", err)
		}
	}()

	resp, err := http.Get("http://" + rt.debug.addr + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index: %v", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestStart_PprofAddrInUseFails(t *testing.T) {
	first, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	if err != nil {
		t.Fatalf("start first: %v", err)
	}
	defer func() { _ = first.Stop(context.Background()) }()

	if _, err := Start(config.Config{PprofEnabled: true, PprofAddr: first.debug.addr}, logging.NewNop()); err == nil {
		t.Fatalf("expected error when pprof addr is already bound")
	}
}

func TestRuntimeStop_NilIsSafe(t *testing.T) {
	var rt *Runtime
	if err := rt.Stop(context.Background()); err != nil {
		t.Fatalf("stop nil runtime: %v", err)
	}
}
