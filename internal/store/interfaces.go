// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// WebhookLedger is the server-side bookkeeping of verified payment events.
// Nothing in the download flow reads it.
type WebhookLedger interface {
	// Record stores event. A repeated delivery returns [ErrDuplicateEvent].
	Record(ctx context.Context, event models.WebhookEvent) error

	// Prune deletes events received before the cutoff and reports how many
	// rows were removed.
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
