// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/models"
)

const (
	defaultPollInterval    = 2 * time.Second
	defaultCheckoutTimeout = 10 * time.Minute
)

type clientCheckoutJob struct {
	checkoutService ClientCheckoutService
	interval        time.Duration
	timeout         time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientCheckoutJob creates a job that calls checkoutService.Verify on a
// ticker. Non-positive interval and timeout fall back to 2s and 10m. The job
// is idle until Start is called.
func NewClientCheckoutJob(checkoutService ClientCheckoutService, interval, timeout time.Duration, logger *logger.Logger) ClientCheckoutJob {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if timeout <= 0 {
		timeout = defaultCheckoutTimeout
	}
	return &clientCheckoutJob{
		checkoutService: checkoutService,
		interval:        interval,
		timeout:         timeout,
		logger:          logger,
	}
}

// Start implements ClientCheckoutJob. ErrNotPaid and transient failures keep
// the poll going; a paid session, ErrSessionNotFound, ErrMalformedMetadata or
// the timeout end it.
func (j *clientCheckoutJob) Start(ctx context.Context, sessionID string) <-chan models.CheckoutResult {
	j.Stop()

	results := make(chan models.CheckoutResult, 1)

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer close(results)

		t := time.NewTicker(j.interval)
		defer t.Stop()
		deadline := time.NewTimer(j.timeout)
		defer deadline.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-deadline.C:
				results <- models.CheckoutResult{Err: ErrCheckoutTimeout}
				return
			case <-t.C:
				verification, err := j.checkoutService.Verify(jobCtx, sessionID)
				if err == nil {
					results <- models.CheckoutResult{Verification: verification}
					return
				}
				if isFinalCheckoutError(err) {
					results <- models.CheckoutResult{Err: err}
					return
				}
				if !errors.Is(err, ErrNotPaid) {
					j.logger.Debug().Err(err).Str("session_id", sessionID).Msg("checkout poll failed, retrying")
				}
			}
		}
	}()

	return results
}

// Stop implements ClientCheckoutJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientCheckoutJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func isFinalCheckoutError(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrMalformedMetadata) ||
		errors.Is(err, ErrInvalidDataProvided)
}
