// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/models"
)

// downloadFileMode is the permission of written artifacts.
const downloadFileMode = 0o644

type clientCheckoutService struct {
	serverAdapter adapter.ServerAdapter
	downloadDir   string

	logger *logger.Logger
}

func NewClientCheckoutService(serverAdapter adapter.ServerAdapter, downloadDir string, logger *logger.Logger) ClientCheckoutService {
	return &clientCheckoutService{
		serverAdapter: serverAdapter,
		downloadDir:   downloadDir,
		logger:        logger,
	}
}

func (s *clientCheckoutService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

func (s *clientCheckoutService) Purchase(ctx context.Context, payload string, style models.StyleSpec, product models.Product) (models.CheckoutSession, error) {
	if payload == "" || !product.Valid() {
		return models.CheckoutSession{}, ErrInvalidDataProvided
	}

	session, err := s.serverAdapter.CreateCheckout(ctx, models.CheckoutRequest{
		Payload: payload,
		Style:   style,
		Product: product,
	})
	if err != nil {
		s.logger.Err(err).Str("product", string(product)).Msg("error creating checkout")
		return models.CheckoutSession{}, mapAdapterError(err)
	}

	s.logger.Info().Str("session_id", session.SessionID).Msg("checkout created")
	return session, nil
}

func (s *clientCheckoutService) Verify(ctx context.Context, sessionID string) (models.Verification, error) {
	verification, err := s.serverAdapter.VerifyCheckout(ctx, sessionID)
	if err != nil {
		return models.Verification{}, mapAdapterError(err)
	}
	return verification, nil
}

// Download writes qr-<session>.<ext> files. Files already written stay in
// place when a later format fails.
func (s *clientCheckoutService) Download(ctx context.Context, verification models.Verification) ([]string, error) {
	if s.downloadDir == "" {
		return nil, ErrNoDownloadDir
	}
	if verification.DownloadToken == "" {
		return nil, ErrTokenIsExpiredOrInvalid
	}
	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating download directory: %w", err)
	}

	var paths []string
	for _, format := range verification.Product.Formats() {
		artifact, err := s.serverAdapter.DownloadArtifact(ctx, verification.DownloadToken, models.ExportRequest{Format: format})
		if err != nil {
			return paths, fmt.Errorf("error downloading %s: %w", format, mapAdapterError(err))
		}

		path := filepath.Join(s.downloadDir, artifactFileName(verification.SessionID, format))
		if err := os.WriteFile(path, artifact.Data, downloadFileMode); err != nil {
			return paths, fmt.Errorf("error writing %s: %w", path, err)
		}
		paths = append(paths, path)

		s.logger.Info().Str("path", path).Int("bytes", len(artifact.Data)).Msg("artifact saved")
	}

	if len(paths) == 0 {
		return nil, errors.Join(ErrFormatNotPurchased, fmt.Errorf("product %q has no formats", verification.Product))
	}
	return paths, nil
}

// artifactFileName keeps the tail of the session id, which is enough to tell
// purchases apart.
func artifactFileName(sessionID string, format models.Format) string {
	const keep = 12
	id := filepath.Base(sessionID)
	if len(id) > keep {
		id = id[len(id)-keep:]
	}
	return "qr-" + id + "." + string(format)
}
