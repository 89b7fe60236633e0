// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/store"
)

// LedgerPruner deletes webhook events older than the retention window on
// a fixed interval. Prune failures are logged and retried on the next tick;
// the ledger is bookkeeping, so they never stop the server.
type LedgerPruner struct {
	ledger    store.WebhookLedger
	interval  time.Duration
	retention time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewLedgerPruner(ledger store.WebhookLedger, interval, retention time.Duration, logger *logger.Logger) *LedgerPruner {
	return &LedgerPruner{
		ledger:    ledger,
		interval:  interval,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

func (p *LedgerPruner) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.pruneOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("ledger pruner stopped")
			return nil
		case <-ticker.C:
			p.pruneOnce(ctx)
		}
	}
}

func (p *LedgerPruner) pruneOnce(ctx context.Context) {
	cutoff := p.now().Add(-p.retention)

	deleted, err := p.ledger.Prune(p.logger.WithContext(ctx), cutoff)
	if err != nil {
		p.logger.Err(err).Time("cutoff", cutoff).Msg("error pruning webhook ledger")
		return
	}
	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("webhook ledger pruned")
	}
}
