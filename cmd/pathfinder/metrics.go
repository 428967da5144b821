package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsShutdownTimeout = 5 * time.Second

// metricsServer serves the default Prometheus registry on /metrics.
type metricsServer struct {
	srv    *http.Server
	addr   net.Addr
	logger *slog.Logger
}

// startMetrics binds addr and serves /metrics in the background. Binding
// errors are returned so a bad address fails the run up front.
func startMetrics(addr string, logger *slog.Logger) (*metricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	m := &metricsServer{
		srv:    &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		addr:   ln.Addr(),
		logger: logger,
	}

	go func() {
		logger.Info("metrics server starting", slog.String("address", m.addr.String()))
		if err := m.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()

	return m, nil
}

// Addr is the bound address, useful when addr asked for port 0.
func (m *metricsServer) Addr() net.Addr { return m.addr }

// Close shuts the server down, waiting up to metricsShutdownTimeout for
// in-flight scrapes.
func (m *metricsServer) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, metricsShutdownTimeout)
	defer cancel()

	if err := m.srv.Shutdown(ctx); err != nil {
		m.logger.Error("metrics server shutdown failed", slog.Any("error", err))
		return err
	}
	m.logger.Debug("metrics server stopped")

	return nil
}
