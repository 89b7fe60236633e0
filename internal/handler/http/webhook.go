// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/service"
)

const stripeSignatureHeader = "Stripe-Signature"

// stripeWebhook verifies and records a Stripe event. Any 2xx tells Stripe
// to stop redelivering, so only a ledger outage answers 503.
func (h *Handler) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	signature := r.Header.Get(stripeSignatureHeader)
	if signature == "" {
		h.writeError(w, r, ErrMissingSignature)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidWebhook, err))
		return
	}

	event, err := h.services.WebhookService.Handle(r.Context(), body, signature)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Str("session_id", event.SessionID).
		Msg("webhook accepted")

	w.WriteHeader(http.StatusOK)
}
