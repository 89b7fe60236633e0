// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/models"
)

type artifactService struct {
	renderer        render.Renderer
	checkoutService CheckoutService

	// previewSize is used when a preview request carries no size.
	previewSize int

	logger *logger.Logger
}

func NewArtifactService(renderer render.Renderer, checkoutService CheckoutService, previewSize int, logger *logger.Logger) ArtifactService {
	if previewSize <= 0 {
		previewSize = config.DefaultPreviewMaxSize
	}
	return &artifactService{
		renderer:        renderer,
		checkoutService: checkoutService,
		previewSize:     previewSize,
		logger:          logger,
	}
}

func (s *artifactService) Preview(ctx context.Context, req models.PreviewRequest) (models.Artifact, error) {
	format := req.Format
	if format == "" {
		format = models.FormatPNG
	}
	size := req.Size
	if size == 0 {
		size = s.previewSize
	}

	artifact, err := render.Render(s.renderer, format, req.Payload, req.Style, size)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("error rendering preview: %w", err)
	}
	return artifact, nil
}

// Export never trusts the token alone: the session is fetched again so a
// refunded or otherwise unpaid session yields nothing.
func (s *artifactService) Export(ctx context.Context, token models.DownloadToken, req models.ExportRequest) (models.Artifact, error) {
	log := logger.FromContext(ctx)

	verification, err := s.checkoutService.Lookup(ctx, token.SessionID())
	if err != nil {
		return models.Artifact{}, err
	}
	if verification.Product != token.Product {
		log.Warn().
			Str("session_id", token.SessionID()).
			Str("token_product", string(token.Product)).
			Str("session_product", string(verification.Product)).
			Msg("download token product does not match session")
		return models.Artifact{}, ErrTokenIsExpiredOrInvalid
	}
	if !verification.Product.Includes(req.Format) {
		return models.Artifact{}, fmt.Errorf("%w: %s not in %s", ErrFormatNotPurchased, req.Format, verification.Product)
	}

	artifact, err := render.Render(s.renderer, req.Format, verification.Payload, verification.Style, req.Size)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("error rendering %s export: %w", req.Format, err)
	}

	log.Info().
		Str("session_id", verification.SessionID).
		Str("format", string(req.Format)).
		Int("bytes", len(artifact.Data)).
		Msg("artifact exported")

	return artifact, nil
}
