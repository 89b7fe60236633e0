// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-qr-studio/internal/payload"

// EncodeRequest is the body of POST /api/encode.
type EncodeRequest struct {
	payload.Content
}

// EncodeResponse carries the encoded payload and its history label.
type EncodeResponse struct {
	Kind    payload.ContentKind `json:"kind"`
	Payload string              `json:"payload"`
	Label   string              `json:"label"`
}

// PreviewRequest is the body of POST /api/preview.
type PreviewRequest struct {
	Payload string    `json:"payload"`
	Style   StyleSpec `json:"style"`
	Size    int       `json:"size"`
	Format  Format    `json:"format"`
}

// ExportRequest selects an artifact for a verified purchase.
type ExportRequest struct {
	Format Format `json:"format"`
	Size   int    `json:"size"`
}

// ErrorResponse is the JSON error body of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// KindsResponse is the body of GET /api/kinds.
type KindsResponse struct {
	Categories []payload.Category `json:"categories"`
	Kinds      []payload.KindInfo `json:"kinds"`
}
