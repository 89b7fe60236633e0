// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/payload"
)

// HistoryEntry is one past generation kept on the client. Entries are never
// modified after creation; they are only removed.
type HistoryEntry struct {
	ID        string              `json:"id"`
	Kind      payload.ContentKind `json:"kind"`
	Payload   string              `json:"payload"`
	Label     string              `json:"label"`
	CreatedAt time.Time           `json:"created_at"`
	Style     HistoryStyle        `json:"style"`
}
