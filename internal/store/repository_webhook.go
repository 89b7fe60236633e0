// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/jackc/pgerrcode"
)

// webhookLedger is the PostgreSQL-backed implementation of [WebhookLedger]
// over the "webhook_events" table.
type webhookLedger struct {
	db     *DB
	logger *logger.Logger
}

// NewWebhookLedger constructs a [WebhookLedger] backed by db.
func NewWebhookLedger(db *DB, logger *logger.Logger) WebhookLedger {
	logger.Debug().Msg("creating webhook ledger")
	return &webhookLedger{
		db:     db,
		logger: logger,
	}
}

// Record inserts event.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateEvent].
//   - Transient driver errors → wrapped [ErrLedgerUnavailable].
//   - Anything else → wrapped [ErrExecutingStatement].
func (l *webhookLedger) Record(ctx context.Context, event models.WebhookEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertWebhookEventQuery(event)
	if err != nil {
		log.Err(err).Str("func", "*webhookLedger.Record").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*webhookLedger.Record").Str("event_id", event.ID).Msg("duplicate delivery")
			return ErrDuplicateEvent
		}

		log.Err(err).Str("func", "*webhookLedger.Record").Str("event_id", event.ID).Msg("error inserting webhook event")
		if l.db.classify(err) == Retryable {
			return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Prune deletes events received before the cutoff.
func (l *webhookLedger) Prune(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneWebhookEventsQuery(before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*webhookLedger.Prune").Msg("error pruning webhook events")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

// disabledLedger is used when no ledger DSN is configured.
type disabledLedger struct{}

func (disabledLedger) Record(context.Context, models.WebhookEvent) error { return nil }

func (disabledLedger) Prune(context.Context, time.Time) (int64, error) { return 0, nil }
