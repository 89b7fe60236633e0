package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/handler"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger

	// baseCtx is cancelled by Shutdown; signals cancel the context derived
	// from it in run.
	baseCtx context.Context
	cancel  context.CancelFunc
}

func NewServer(handlers *handler.Handlers, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	baseCtx, cancel := context.WithCancel(context.Background())

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    ws,
		logger:     logger,
		baseCtx:    baseCtx,
		cancel:     cancel,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.cancel()
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(
		s.baseCtx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// listen for stop signals, or for a failed listener or worker
	g.Go(func() error {
		<-gctx.Done()
		s.httpServer.Shutdown()
		return nil
	})

	g.Go(func() error {
		s.logger.Info().Msg("Launching HTTP server")
		if err := s.httpServer.RunServer(); err != nil {
			return err
		}
		// closed by Shutdown, make sure the workers follow
		stop()
		return nil
	})

	if s.workers != nil {
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
