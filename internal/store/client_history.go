// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
)

const (
	// HistoryKey is the key the whole history is stored under.
	HistoryKey = "qr-studio.history"

	// DefaultHistoryCapacity is used when a non-positive capacity is given.
	DefaultHistoryCapacity = 20
)

// idGenerator produces entry ids.
type idGenerator interface {
	Generate() string
}

// historyStore is a [HistoryStore] kept as one JSON array in a
// [KeyValueRepository]. Every mutation is a read-modify-write under mu.
type historyStore struct {
	kv       KeyValueRepository
	capacity int
	ids      idGenerator
	now      func() time.Time
	logger   *logger.Logger

	mu sync.Mutex
}

// NewHistoryStore returns a store that keeps at most capacity entries.
func NewHistoryStore(kv KeyValueRepository, capacity int, logger *logger.Logger) HistoryStore {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &historyStore{
		kv:       kv,
		capacity: capacity,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

func (h *historyStore) Capacity() int {
	return h.capacity
}

// Load returns the persisted entries, newest first. A value that is not a
// JSON array reads as an empty history; corrupt entries are skipped.
func (h *historyStore) Load(ctx context.Context) ([]models.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.load(ctx)
}

// Append stores entry as the newest one. Empty payloads are ignored, a
// previous entry with the same payload is dropped and the oldest entries
// beyond capacity are evicted. A missing id or creation time is filled in.
func (h *historyStore) Append(ctx context.Context, entry models.HistoryEntry) ([]models.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	if entry.Payload == "" {
		return entries, nil
	}

	if entry.ID == "" {
		entry.ID = h.ids.Generate()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = h.now().UTC()
	}

	next := make([]models.HistoryEntry, 0, min(len(entries)+1, h.capacity))
	next = append(next, entry)
	for _, e := range entries {
		if len(next) == h.capacity {
			break
		}
		if e.Payload == entry.Payload {
			continue
		}
		next = append(next, e)
	}

	if err = h.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Remove deletes the entry with id. Unknown ids are not an error.
func (h *historyStore) Remove(ctx context.Context, id string) ([]models.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load(ctx)
	if err != nil {
		return nil, err
	}

	next := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(entries) {
		return entries, nil
	}

	if err = h.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (h *historyStore) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.kv.Delete(ctx, HistoryKey); err != nil {
		return fmt.Errorf("error clearing history: %w", err)
	}
	return nil
}

func (h *historyStore) load(ctx context.Context) ([]models.HistoryEntry, error) {
	raw, err := h.kv.Get(ctx, HistoryKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.HistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading history: %w", err)
	}

	var items []json.RawMessage
	if err = json.Unmarshal([]byte(raw), &items); err != nil {
		h.logger.Warn().Err(err).Str("func", "*historyStore.load").Msg("history is not valid JSON, starting empty")
		return []models.HistoryEntry{}, nil
	}

	entries := make([]models.HistoryEntry, 0, min(len(items), h.capacity))
	for i, item := range items {
		if len(entries) == h.capacity {
			break
		}

		var e models.HistoryEntry
		if err = json.Unmarshal(item, &e); err != nil || !e.Kind.Valid() || e.Payload == "" || e.ID == "" {
			h.logger.Warn().Int("index", i).Str("func", "*historyStore.load").Msg("dropping corrupt history entry")
			continue
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (h *historyStore) save(ctx context.Context, entries []models.HistoryEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("error encoding history: %w", err)
	}
	if err = h.kv.Put(ctx, HistoryKey, string(data)); err != nil {
		return fmt.Errorf("error writing history: %w", err)
	}
	return nil
}
