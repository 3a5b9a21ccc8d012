// Package prometheus exposes the benchmark's metrics over HTTP and counts
// log entries.
package prometheus

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "prometheus")

const shutdownTimeout = 2 * time.Second

// Server serves /metrics until stopped.
type Server struct {
	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

// NewServer binds addr and returns a server ready to Start. Binding happens
// here so address errors surface before the benchmark begins.
func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "could not listen on %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Server{
		srv:      &http.Server{Handler: mux, ReadHeaderTimeout: time.Second},
		listener: listener,
		done:     make(chan struct{}),
	}, nil
}

// Addr is the bound address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves in a new goroutine.
func (s *Server) Start() {
	log.WithField("address", s.Addr()).Debug("Starting metrics server")
	go func() {
		defer close(s.done)
		if err := s.srv.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Metrics server stopped")
		}
	}()
}

// Stop shuts the server down and waits for the serving goroutine.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "could not shut down metrics server")
	}
	<-s.done
	return nil
}
