// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/models"
)

// ClientQRService encodes content locally and renders terminal previews.
//
// Previews are last-write-wins: every edit takes a new sequence number
// with NextPreview, and a finished render is shown only while its number is
// still the latest one.
type ClientQRService interface {
	// SyncKinds fetches the server registry and limits Kinds and Categories
	// to entries the server also serves. On error the full local registry
	// stays in use.
	SyncKinds(ctx context.Context) error

	// Kinds returns the registry in display order.
	Kinds() []payload.KindInfo

	// Categories returns the menu categories in display order.
	Categories() []payload.Category

	// Encode builds the payload and label of fields. Incomplete fields give
	// an empty payload.
	Encode(fields payload.Fields) models.EncodeResponse

	// NextPreview starts a new preview generation and returns its number.
	NextPreview() uint64

	// Preview renders the payload of fields for generation seq.
	Preview(ctx context.Context, seq uint64, fields payload.Fields) models.PreviewResult

	// IsCurrent reports whether seq is still the latest generation.
	IsCurrent(seq uint64) bool
}

// ClientHistoryService keeps the bounded list of past generations.
type ClientHistoryService interface {
	// List returns entries newest first.
	List(ctx context.Context) ([]models.HistoryEntry, error)

	// Save records the payload of fields with style. Empty payloads are
	// not recorded.
	Save(ctx context.Context, fields payload.Fields, style models.StyleSpec) ([]models.HistoryEntry, error)

	// Delete removes one entry. Unknown ids are ignored.
	Delete(ctx context.Context, id string) ([]models.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// ClientCheckoutService drives a purchase against the server.
type ClientCheckoutService interface {
	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)

	// Purchase opens a hosted checkout for payload and style.
	Purchase(ctx context.Context, payload string, style models.StyleSpec, product models.Product) (models.CheckoutSession, error)

	// Verify checks a session once. ErrNotPaid means try again later.
	Verify(ctx context.Context, sessionID string) (models.Verification, error)

	// Download fetches every format of the purchased product into the
	// export directory and returns the written paths.
	Download(ctx context.Context, verification models.Verification) ([]string, error)
}

// ClientCheckoutJob polls a session in the background until it is paid,
// fails for good or times out.
type ClientCheckoutJob interface {
	// Start stops any running poll and begins polling sessionID. The
	// returned channel yields exactly one result unless Stop is called
	// first, and is closed afterwards.
	Start(ctx context.Context, sessionID string) <-chan models.CheckoutResult

	// Stop cancels the running poll and waits for it to exit.
	Stop()
}
