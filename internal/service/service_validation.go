// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/validators"
	"github.com/MKhiriev/go-qr-studio/models"
)

// CheckoutValidationService rejects malformed checkout input before it
// reaches the payment provider.
type CheckoutValidationService struct {
	inner     CheckoutService
	validator validators.Validator
}

func NewCheckoutValidationService(validator validators.Validator) CheckoutServiceWrapper {
	return &CheckoutValidationService{validator: validator}
}

// Create validates req with style defaults applied but forwards req
// unchanged, so the snapshot holds exactly what was submitted.
func (v *CheckoutValidationService) Create(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error) {
	checked := req
	checked.Style = req.Style.WithDefaults()
	if err := v.validator.Validate(ctx, checked); err != nil {
		return models.CheckoutSession{}, fmt.Errorf("error during checkout request validation: %w", err)
	}

	return v.inner.Create(ctx, req)
}

func (v *CheckoutValidationService) Lookup(ctx context.Context, sessionID string) (models.Verification, error) {
	if err := validateSessionID(sessionID); err != nil {
		return models.Verification{}, err
	}
	return v.inner.Lookup(ctx, sessionID)
}

func (v *CheckoutValidationService) Verify(ctx context.Context, sessionID string) (models.Verification, error) {
	if err := validateSessionID(sessionID); err != nil {
		return models.Verification{}, err
	}
	return v.inner.Verify(ctx, sessionID)
}

func (v *CheckoutValidationService) ParseDownloadToken(ctx context.Context, tokenString string) (models.DownloadToken, error) {
	if tokenString == "" {
		return models.DownloadToken{}, ErrTokenIsExpiredOrInvalid
	}
	return v.inner.ParseDownloadToken(ctx, tokenString)
}

func (v *CheckoutValidationService) Wrap(inner CheckoutService) CheckoutService {
	v.inner = inner
	return v
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" || strings.ContainsAny(sessionID, "/?#") {
		return fmt.Errorf("%w: session id %q", ErrInvalidDataProvided, sessionID)
	}
	return nil
}

// ArtifactValidationService checks preview and export requests.
type ArtifactValidationService struct {
	inner     ArtifactService
	validator validators.Validator
}

func NewArtifactValidationService(validator validators.Validator) ArtifactServiceWrapper {
	return &ArtifactValidationService{validator: validator}
}

func (v *ArtifactValidationService) Preview(ctx context.Context, req models.PreviewRequest) (models.Artifact, error) {
	checked := req
	checked.Style = req.Style.WithDefaults()
	if err := v.validator.Validate(ctx, checked); err != nil {
		return models.Artifact{}, fmt.Errorf("error during preview request validation: %w", err)
	}

	return v.inner.Preview(ctx, req)
}

func (v *ArtifactValidationService) Export(ctx context.Context, token models.DownloadToken, req models.ExportRequest) (models.Artifact, error) {
	if token.SessionID() == "" {
		return models.Artifact{}, ErrTokenIsExpiredOrInvalid
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Artifact{}, fmt.Errorf("error during export request validation: %w", err)
	}

	return v.inner.Export(ctx, token, req)
}

func (v *ArtifactValidationService) Wrap(inner ArtifactService) ArtifactService {
	v.inner = inner
	return v
}
