// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/go-chi/chi/v5"
)

// downloadArtifact serves a purchased artifact. It runs behind
// downloadAuth, which puts the parsed token in the context.
func (h *Handler) downloadArtifact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, ok := utils.GetDownloadTokenFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	req := models.ExportRequest{Format: models.Format(chi.URLParam(r, "format"))}
	if rawSize := r.URL.Query().Get("size"); rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: size %q", ErrInvalidQueryParam, rawSize))
			return
		}
		req.Size = size
	}

	artifact, err := h.services.ArtifactService.Export(r.Context(), *token, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("session_id", token.SessionID()).Str("format", string(artifact.Format)).Int("bytes", len(artifact.Data)).Msg("artifact exported")

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName()))
	w.Header().Set("Cache-Control", "private, no-store")
	if _, err = utils.WriteBytes(w, artifact.Data, artifact.Format.ContentType(), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.downloadArtifact").Msg("error writing response")
	}
}
