// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryKV is an in-memory KeyValueRepository.
type memoryKV struct {
	values map[string]string
	puts   int
	err    error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: map[string]string{}}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryKV) Put(_ context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.puts++
	m.values[key] = value
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.values, key)
	return nil
}

func entry(p string) models.HistoryEntry {
	return models.HistoryEntry{
		Kind:    payload.KindText,
		Payload: p,
		Label:   p,
		Style:   models.DefaultStyle().HistoryStyle(),
	}
}

func payloads(entries []models.HistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Payload)
	}
	return out
}

// ─────────────────────────────────────────────
// Append
// ─────────────────────────────────────────────

func TestHistoryStore_Append_NewestFirst(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(newMemoryKV(), 5, logger.Nop())

	_, err := h.Append(ctx, entry("a"))
	require.NoError(t, err)
	got, err := h.Append(ctx, entry("b"))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, payloads(got))

	loaded, err := h.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, loaded)
}

func TestHistoryStore_Append_AssignsIDAndTime(t *testing.T) {
	h := NewHistoryStore(newMemoryKV(), 5, logger.Nop()).(*historyStore)
	fixed := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	got, err := h.Append(context.Background(), entry("x"))
	require.NoError(t, err)
	require.Len(t, got, 1)

	id, err := uuid.Parse(got[0].ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, fixed, got[0].CreatedAt)
}

func TestHistoryStore_Append_KeepsGivenID(t *testing.T) {
	e := entry("x")
	e.ID = "fixed-id"

	got, err := NewHistoryStore(newMemoryKV(), 5, logger.Nop()).Append(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", got[0].ID)
}

func TestHistoryStore_Append_Dedup(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(newMemoryKV(), 5, logger.Nop())

	for _, p := range []string{"a", "b", "c", "a"} {
		_, err := h.Append(ctx, entry(p))
		require.NoError(t, err)
	}

	got, err := h.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, payloads(got))
}

func TestHistoryStore_Append_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(newMemoryKV(), 3, logger.Nop())

	for i := range 10 {
		got, err := h.Append(ctx, entry(fmt.Sprintf("p%d", i)))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), 3)
	}

	got, err := h.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p9", "p8", "p7"}, payloads(got))
}

func TestHistoryStore_Append_SkipsEmptyPayload(t *testing.T) {
	kv := newMemoryKV()
	h := NewHistoryStore(kv, 3, logger.Nop())

	got, err := h.Append(context.Background(), entry(""))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, kv.puts)
}

func TestHistoryStore_DefaultCapacity(t *testing.T) {
	h := NewHistoryStore(newMemoryKV(), 0, logger.Nop())
	assert.Equal(t, DefaultHistoryCapacity, h.Capacity())
}

// ─────────────────────────────────────────────
// Load
// ─────────────────────────────────────────────

func TestHistoryStore_Load_Empty(t *testing.T) {
	got, err := NewHistoryStore(newMemoryKV(), 3, logger.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHistoryStore_Load_UnparseableIsEmpty(t *testing.T) {
	for _, raw := range []string{"{not json", `{"id":"1"}`, `"text"`} {
		kv := newMemoryKV()
		kv.values[HistoryKey] = raw

		got, err := NewHistoryStore(kv, 3, logger.Nop()).Load(context.Background())
		require.NoError(t, err, raw)
		assert.Empty(t, got, raw)
	}
}

func TestHistoryStore_Load_DropsCorruptEntries(t *testing.T) {
	kv := newMemoryKV()
	kv.values[HistoryKey] = `[
		{"id":"1","kind":"text","payload":"good","label":"good"},
		{"id":"2","kind":"telegram","payload":"unknown kind"},
		{"id":"3","kind":"url","payload":""},
		{"id":4},
		"garbage",
		{"id":"5","kind":"wifi","payload":"WIFI:T:WPA;S:n;P:p;;"}
	]`

	got, err := NewHistoryStore(kv, 10, logger.Nop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "5", got[1].ID)
	assert.Equal(t, payload.KindWifi, got[1].Kind)
}

func TestHistoryStore_Load_TruncatesToCapacity(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()

	big := NewHistoryStore(kv, 10, logger.Nop())
	for i := range 6 {
		_, err := big.Append(ctx, entry(fmt.Sprintf("p%d", i)))
		require.NoError(t, err)
	}

	got, err := NewHistoryStore(kv, 2, logger.Nop()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p5", "p4"}, payloads(got))
}

func TestHistoryStore_Load_StorageError(t *testing.T) {
	kv := newMemoryKV()
	kv.err = errors.New("disk full")

	_, err := NewHistoryStore(kv, 3, logger.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, kv.err)
}

// ─────────────────────────────────────────────
// Remove / Clear
// ─────────────────────────────────────────────

func TestHistoryStore_Remove(t *testing.T) {
	ctx := context.Background()
	h := NewHistoryStore(newMemoryKV(), 5, logger.Nop())

	_, err := h.Append(ctx, entry("a"))
	require.NoError(t, err)
	list, err := h.Append(ctx, entry("b"))
	require.NoError(t, err)

	got, err := h.Remove(ctx, list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, payloads(got))

	got, err = h.Remove(ctx, "unknown")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, payloads(got))
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	h := NewHistoryStore(kv, 5, logger.Nop())

	_, err := h.Append(ctx, entry("a"))
	require.NoError(t, err)
	require.NoError(t, h.Clear(ctx))

	got, err := h.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotContains(t, kv.values, HistoryKey)
}

func TestHistoryStore_Append_StorageError(t *testing.T) {
	kv := newMemoryKV()
	h := NewHistoryStore(kv, 5, logger.Nop())
	kv.err = errors.New("read-only")

	_, err := h.Append(context.Background(), entry("a"))
	assert.ErrorIs(t, err, kv.err)
}
