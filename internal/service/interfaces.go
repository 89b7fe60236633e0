// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/models"
)

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EncodeService serves the content kind registry and the payload encoder
// over the API.
type EncodeService interface {
	// Kinds returns every registered kind grouped into categories.
	Kinds(ctx context.Context) models.KindsResponse

	// Encode turns typed content into a QR payload and its history label.
	// Incomplete content yields an empty payload, not an error.
	Encode(ctx context.Context, content payload.Content) (models.EncodeResponse, error)
}

// CheckoutService opens hosted checkout sessions carrying a signed snapshot
// of the code being bought and recovers that snapshot once paid.
type CheckoutService interface {
	// Create opens a session for req. Nothing is persisted server-side.
	Create(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error)

	// Lookup recovers the paid snapshot of a session without issuing a
	// download token.
	Lookup(ctx context.Context, sessionID string) (models.Verification, error)

	// Verify is Lookup plus a freshly signed download token.
	Verify(ctx context.Context, sessionID string) (models.Verification, error)

	// ParseDownloadToken validates a compact download token.
	ParseDownloadToken(ctx context.Context, tokenString string) (models.DownloadToken, error)
}

// ArtifactService renders previews and purchased downloads.
type ArtifactService interface {
	// Preview renders an unpaid, size-capped PNG or SVG.
	Preview(ctx context.Context, req models.PreviewRequest) (models.Artifact, error)

	// Export re-verifies the session behind token and renders the recovered
	// snapshot in the requested format.
	Export(ctx context.Context, token models.DownloadToken, req models.ExportRequest) (models.Artifact, error)
}

// WebhookService accepts payment provider deliveries.
type WebhookService interface {
	// Handle verifies the signature of body and records the event.
	// Redeliveries of a known event are acknowledged without error.
	Handle(ctx context.Context, body []byte, signatureHeader string) (models.WebhookEvent, error)
}
