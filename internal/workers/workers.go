package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/store"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the server's jobs from configuration. A non-positive
// prune interval disables ledger pruning.
func NewWorkers(storages *store.Storages, cfg config.ServerWorkers, logger *logger.Logger) *Workers {
	ws := &Workers{logger: logger}

	if cfg.PruneInterval > 0 && cfg.LedgerRetention > 0 {
		ws.workers = append(ws.workers, NewLedgerPruner(storages.WebhookLedger, cfg.PruneInterval, cfg.LedgerRetention, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker and blocks until all of them return.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("worker stopped: %w", err)
	}
	return nil
}
