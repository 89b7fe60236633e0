// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
)

func (h *Handler) kinds(w http.ResponseWriter, r *http.Request) {
	kinds := h.services.EncodeService.Kinds(r.Context())

	if _, err := utils.WriteJSON(w, kinds, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.kinds").Msg("error writing response")
	}
}

func (h *Handler) encode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EncodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	encoded, err := h.services.EncodeService.Encode(r.Context(), req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, encoded, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.encode").Msg("error writing response")
	}
}

// preview renders a watermark-free preview. The response body is the image
// itself, typed by the requested format.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PreviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	artifact, err := h.services.ArtifactService.Preview(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err = utils.WriteBytes(w, artifact.Data, artifact.Format.ContentType(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.preview").Msg("error writing response")
	}
}
