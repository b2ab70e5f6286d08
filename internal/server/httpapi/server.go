package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/logging"
)

// Server runs an http.Server until its context is cancelled, then drains
// in-flight requests for at most shutdownTimeout.
type Server struct {
	address         string
	handler         http.Handler
	logger          logging.Logger
	shutdownTimeout time.Duration

	ready chan struct{}
	addr  net.Addr
}

func NewServer(address string, h http.Handler, l logging.Logger, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		handler:         h,
		logger:          l.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
		ready:           make(chan struct{}),
	}
}

// Addr blocks until Run has tried to bind and returns the bound address, or
// nil when binding failed.
func (s *Server) Addr() net.Addr {
	<-s.ready
	return s.addr
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.ready)
		return err
	}
	s.addr = listen.Addr()

	// Requests keep ctx values but not its cancellation; Shutdown drains them.
	base := context.WithoutCancel(ctx)
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}

	served := make(chan struct{})
	stopped := make(chan error, 1)
	go func() {
		select {
		case <-ctx.Done():
		case <-served:
			stopped <- nil
			return
		}
		s.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(base, s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(sctx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr.String())
	close(s.ready)

	err = srv.Serve(listen)
	close(served)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		<-stopped
		return err
	}

	return <-stopped
}
