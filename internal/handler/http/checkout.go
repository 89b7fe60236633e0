// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCheckout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	session, err := h.services.CheckoutService.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("session_id", session.SessionID).Str("product", string(req.Product)).Msg("checkout session created")

	if _, err = utils.WriteJSON(w, session, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createCheckout").Msg("error writing response")
	}
}

// verifyCheckout confirms payment and returns the recovered snapshot along
// with a download token. Unpaid sessions answer 402 so clients can poll.
func (h *Handler) verifyCheckout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sessionID := chi.URLParam(r, "sessionID")

	verification, err := h.services.CheckoutService.Verify(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err = utils.WriteJSON(w, verification, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.verifyCheckout").Msg("error writing response")
	}
}
