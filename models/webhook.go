// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WebhookEvent is a verified payment lifecycle event as kept in the ledger.
type WebhookEvent struct {
	// ID is the provider event id. Deliveries are deduplicated on it.
	ID string `json:"id"`

	Type      string    `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	Paid      bool      `json:"paid"`
	Product   Product   `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
