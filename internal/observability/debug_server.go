package observability

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/cricket-club/internal/config"
	"github.com/riskibarqy/cricket-club/internal/platform/logging"
)

type debugServer struct {
	srv    *http.Server
	addr   string
	logger *logging.Logger
	done   chan struct{}
}

func debugMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	return mux
}

// startDebugServer binds the listener up front so a taken port fails startup
// instead of surfacing later in a log line.
func startDebugServer(cfg config.Config, logger *logging.Logger) (*debugServer, error) {
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil, nil
	}

	ln, err := net.Listen("tcp", cfg.PprofAddr)
	if err != nil {
		return nil, err
	}

	d := &debugServer{
		srv: &http.Server{
			Handler:           debugMux(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		addr:   ln.Addr().String(),
		logger: logger,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(d.done)
		logger.Info("pprof server listening", "addr", d.addr)
		if err := d.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return d, nil
}

func (d *debugServer) shutdown(ctx context.Context) error {
	if err := d.srv.Shutdown(ctx); err != nil {
		return err
	}
	<-d.done
	d.logger.Info("pprof server stopped")
	return nil
}
