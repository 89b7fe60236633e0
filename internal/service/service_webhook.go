// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/store"
	"github.com/MKhiriev/go-qr-studio/models"
)

type webhookService struct {
	provider adapter.PaymentProvider
	ledger   store.WebhookLedger

	logger *logger.Logger
}

func NewWebhookService(provider adapter.PaymentProvider, ledger store.WebhookLedger, logger *logger.Logger) WebhookService {
	return &webhookService{
		provider: provider,
		ledger:   ledger,
		logger:   logger,
	}
}

// Handle only asks for a redelivery when the ledger is temporarily down.
// Every other ledger failure is logged and acknowledged, since downloads
// never read the ledger.
func (s *webhookService) Handle(ctx context.Context, body []byte, signatureHeader string) (models.WebhookEvent, error) {
	log := logger.FromContext(ctx)

	event, err := s.provider.ParseWebhook(body, signatureHeader)
	if err != nil {
		log.Warn().Err(err).Msg("rejected webhook delivery")
		return models.WebhookEvent{}, fmt.Errorf("%w: %w", ErrInvalidWebhook, err)
	}

	eventLog := log.With().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Str("session_id", event.SessionID).
		Bool("paid", event.Paid).
		Logger()
	eventLog.Info().Msg("webhook received")

	err = s.ledger.Record(ctx, event)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrDuplicateEvent):
		eventLog.Debug().Msg("duplicate webhook delivery acknowledged")
	case errors.Is(err, store.ErrLedgerUnavailable):
		eventLog.Err(err).Msg("webhook ledger unavailable")
		return models.WebhookEvent{}, fmt.Errorf("%w: %w", ErrWebhookRetry, err)
	default:
		eventLog.Err(err).Msg("error recording webhook event")
	}

	return event, nil
}
