// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{History: config.DB{DSN: filepath.Join(t.TempDir(), "history.db")}},
		History: config.History{Capacity: 2},
	}

	s, err := NewClientStorages(ctx, cfg, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED") {
		t.Skip("sqlite3 driver needs cgo")
	}
	require.NoError(t, err)
	defer s.Close()

	for _, p := range []string{"one", "two", "three"} {
		_, err = s.History.Append(ctx, models.HistoryEntry{Kind: payload.KindText, Payload: p})
		require.NoError(t, err)
	}

	got, err := s.History.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "two"}, payloads(got))
	assert.Equal(t, 2, s.History.Capacity())
}

func TestNewStorages_LedgerDisabled(t *testing.T) {
	s, err := NewStorages(context.Background(), config.ServerStorage{}, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, disabledLedger{}, s.WebhookLedger)
	assert.NoError(t, s.Close())
}
