package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aretw0/traverse"
	httpAdapter "github.com/aretw0/traverse/internal/adapters/http"
)

const shutdownTimeout = 5 * time.Second

// NewServer builds the HTTP server with its own metrics registry.
func NewServer(addr string, debug bool) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpAdapter.NewMetrics(reg)
	logger := createLogger(debug)
	engine := newEngine(debug, traverse.WithHooks(metrics.Hooks()))

	return &http.Server{
		Addr:              addr,
		Handler:           httpAdapter.NewHandler(engine, reg, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// RunServe serves until ctx is cancelled, then shuts down gracefully.
func RunServe(ctx context.Context, w io.Writer, srv *http.Server) error {
	serverErrors := make(chan error, 1)
	printSystemMessage(w, "Starting Traverse Server on %s", srv.Addr)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		if sig := signalOf(ctx); sig != nil {
			printSystemMessage(w, "Start shutdown... Signal: %v", sig)
		} else {
			printSystemMessage(w, "Start shutdown...")
		}

		// Give outstanding requests a deadline for completion.
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(sctx); err != nil {
			closeErr := srv.Close()
			return errors.Join(fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err), closeErr)
		}
		printSystemMessage(w, "Traverse Server stopped gracefully")
		return nil
	}
}

// signalOf returns the signal that cancelled ctx when it is a *SignalContext.
func signalOf(ctx context.Context) os.Signal {
	if sc, ok := ctx.(*SignalContext); ok {
		return sc.Signal()
	}
	return nil
}
