package statistics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const endpoint = "/metrics"

// Server exposes all registered collectors on /metrics.
type Server struct {
	server *http.Server
}

func NewServer(config configuration.StatisticsConfig) *Server {
	port := config.Port
	if port <= 0 || port >= 65535 {
		port = 9000
	}
	mux := http.NewServeMux()
	mux.Handle(endpoint, promhttp.Handler())
	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run blocks until the server is shut down.
func (s *Server) Run() error {
	ui.Info("Starting statistics server on %s%s", s.server.Addr, endpoint)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
