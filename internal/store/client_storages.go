// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
)

// ClientStorages groups the client-side stores.
type ClientStorages struct {
	// History is the bounded list of past generations.
	History HistoryStore

	db *DB
}

// NewClientStorages opens the local SQLite database named by
// cfg.Storage.History, creating the file if needed, applies migrations and
// wires the history store with the configured capacity.
func NewClientStorages(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage.History, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		History: NewHistoryStore(NewKeyValueRepository(db, logger), cfg.History.Capacity, logger),
		db:      db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
