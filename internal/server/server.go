package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/handler"
	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/workers"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	workersErr := make(chan error, 1)
	go func() {
		if s.workers == nil {
			workersErr <- nil
			return
		}
		s.logger.Info().Msg("launching workers")
		workersErr <- s.workers.Run(ctx)
	}()

	var errs []error
	workersDone := false
	workersCh := workersErr
wait:
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stop requested")
			break wait
		case err := <-serveErr:
			errs = append(errs, err)
			break wait
		case err := <-workersCh:
			workersDone = true
			// nil channel: never selected again
			workersCh = nil
			if err != nil {
				s.logger.Err(err).Msg("worker failed, stopping server")
				errs = append(errs, err)
				break wait
			}
		}
	}

	// stops the workers when the listener failed first
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	errs = append(errs, s.httpServer.Shutdown(shutdownCtx))
	if !workersDone {
		errs = append(errs, <-workersErr)
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Err(err).Msg("server stopped with errors")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
