// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound edges of the application.
//
// [ServerAdapter] is how the terminal client talks to the qr-studio server
// over REST. [PaymentProvider] is how the server talks to the hosted
// checkout (Stripe).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrPaymentRequired] for 402, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines communication with the qr-studio server.
type ServerAdapter interface {
	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	// Kinds fetches the content kind registry.
	Kinds(ctx context.Context) (models.KindsResponse, error)

	// CreateCheckout opens a hosted checkout session for a snapshot.
	CreateCheckout(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error)

	// VerifyCheckout checks a session. Unpaid sessions return
	// [ErrPaymentRequired].
	VerifyCheckout(ctx context.Context, sessionID string) (models.Verification, error)

	// DownloadArtifact fetches one artifact of a paid session.
	DownloadArtifact(ctx context.Context, token string, req models.ExportRequest) (models.Artifact, error)
}

// PaymentProvider is the hosted checkout used by the server.
type PaymentProvider interface {
	// CreateSession opens a checkout page for params.Product carrying
	// params.Metadata.
	CreateSession(ctx context.Context, params models.SessionParams) (models.CheckoutSession, error)

	// GetSession returns the current state of a session.
	// Unknown ids return [ErrProviderSessionNotFound].
	GetSession(ctx context.Context, sessionID string) (models.ProviderSession, error)

	// ParseWebhook verifies signatureHeader over body and decodes the event.
	ParseWebhook(body []byte, signatureHeader string) (models.WebhookEvent, error)
}
