// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
)

// Storages groups the server-side stores.
type Storages struct {
	WebhookLedger WebhookLedger

	db *DB
}

// NewStorages connects the webhook ledger. An empty DSN disables it and
// every ledger call succeeds without touching a database.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	if cfg.Ledger.DSN == "" {
		logger.Info().Msg("webhook ledger disabled: no DSN configured")
		return &Storages{WebhookLedger: disabledLedger{}}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.Ledger, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		WebhookLedger: NewWebhookLedger(db, logger),
		db:            db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
