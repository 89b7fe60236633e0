// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-qr-studio/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueRepository is the low-level local key-value table.
type KeyValueRepository interface {
	// Get returns [ErrKeyNotFound] for a missing key.
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// HistoryStore keeps a bounded, deduplicated list of past generations,
// newest first. Mutating methods return the list as persisted.
type HistoryStore interface {
	Load(ctx context.Context) ([]models.HistoryEntry, error)
	Append(ctx context.Context, entry models.HistoryEntry) ([]models.HistoryEntry, error)
	Remove(ctx context.Context, id string) ([]models.HistoryEntry, error)
	Clear(ctx context.Context) error
	Capacity() int
}
