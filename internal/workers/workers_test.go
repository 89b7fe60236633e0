// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/mock"
	"github.com/MKhiriev/go-qr-studio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// funcWorker adapts a function to Worker.
type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

// ─────────────────────────────────────────────
// Workers
// ─────────────────────────────────────────────

func TestWorkers_Run_AllWorkersStopOnCancel(t *testing.T) {
	var started atomic.Int32
	blocking := funcWorker(func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return nil
	})

	ws := &Workers{workers: []Worker{blocking, blocking, blocking}, logger: logger.Nop()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool { return started.Load() == 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after cancel")
	}
}

func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	failing := funcWorker(func(context.Context) error { return boom })
	blocking := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	ws := &Workers{workers: []Worker{blocking, failing}, logger: logger.Nop()}

	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{logger: logger.Nop()}

	assert.NoError(t, ws.Run(context.Background()))
}

func TestNewWorkers(t *testing.T) {
	storages := &store.Storages{WebhookLedger: mock.NewMockWebhookLedger(gomock.NewController(t))}

	enabled := NewWorkers(storages, config.ServerWorkers{PruneInterval: time.Hour, LedgerRetention: time.Hour}, logger.Nop())
	assert.Len(t, enabled.workers, 1)

	disabled := NewWorkers(storages, config.ServerWorkers{}, logger.Nop())
	assert.Empty(t, disabled.workers)
}

// ─────────────────────────────────────────────
// LedgerPruner
// ─────────────────────────────────────────────

func TestLedgerPruner_PrunesPastRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockWebhookLedger(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pruner := NewLedgerPruner(ledger, 10*time.Millisecond, 24*time.Hour, logger.Nop())
	pruner.now = func() time.Time { return now }

	var calls atomic.Int32
	ledger.EXPECT().Prune(gomock.Any(), now.Add(-24*time.Hour)).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 2, nil
		}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pruner.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestLedgerPruner_ErrorsDoNotStopIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock.NewMockWebhookLedger(ctrl)
	pruner := NewLedgerPruner(ledger, 10*time.Millisecond, time.Hour, logger.Nop())

	var calls atomic.Int32
	ledger.EXPECT().Prune(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 0, store.ErrExecutingStatement
		}).MinTimes(3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pruner.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
