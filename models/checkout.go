// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Product is what the customer buys.
type Product string

const (
	// ProductDigital unlocks the raster and vector downloads.
	ProductDigital Product = "digital"

	// ProductPrint additionally unlocks the A4 print PDF.
	ProductPrint Product = "print"
)

// Format is a downloadable artifact type.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatPNG || f == FormatSVG || f == FormatPDF
}

// Formats lists the artifacts p unlocks. Unknown products unlock nothing.
func (p Product) Formats() []Format {
	switch p {
	case ProductDigital:
		return []Format{FormatPNG, FormatSVG}
	case ProductPrint:
		return []Format{FormatPNG, FormatSVG, FormatPDF}
	}
	return nil
}

// Valid reports whether p is a known product.
func (p Product) Valid() bool {
	return p == ProductDigital || p == ProductPrint
}

// Includes reports whether p unlocks f.
func (p Product) Includes(f Format) bool {
	return slices.Contains(p.Formats(), f)
}

// Snapshot is the immutable pair captured when checkout starts and
// recovered after payment.
type Snapshot struct {
	Payload string    `json:"payload"`
	Style   StyleSpec `json:"style"`
}

// CheckoutRequest starts a purchase.
type CheckoutRequest struct {
	Payload string    `json:"payload"`
	Style   StyleSpec `json:"style"`
	Product Product   `json:"product"`
}

// Snapshot returns the payload and style of r.
func (r CheckoutRequest) Snapshot() Snapshot {
	return Snapshot{Payload: r.Payload, Style: r.Style}
}

// CheckoutSession is where the customer is sent to pay.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// MetadataKeyProduct is the session metadata key holding the purchased
// product. Webhook intake reads it without decoding the snapshot.
const MetadataKeyProduct = "qr_product"

// Session metadata budget. Stripe accepts at most 50 metadata keys with
// values of up to 500 characters. Three keys hold the part count, the
// signature and the product, the rest carry the snapshot JSON.
const (
	MaxMetadataKeys       = 50
	MaxMetadataValueRunes = 500
	MaxSnapshotChunks     = MaxMetadataKeys - 3

	// MaxSnapshotRunes is the longest snapshot JSON a session can carry.
	MaxSnapshotRunes = MaxSnapshotChunks * MaxMetadataValueRunes
)

// SessionParams is what the payment provider needs to open a hosted
// checkout page.
type SessionParams struct {
	Product  Product
	Metadata map[string]string
}

// ProviderSession is the provider-side view of a session used during
// verification.
type ProviderSession struct {
	ID            string
	Paid          bool
	CustomerEmail string
	Metadata      map[string]string
}

// Verification is the result of checking a paid session.
type Verification struct {
	SessionID     string    `json:"session_id"`
	Paid          bool      `json:"paid"`
	Payload       string    `json:"payload"`
	Style         StyleSpec `json:"style"`
	Product       Product   `json:"product"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	DownloadToken string    `json:"download_token,omitempty"`
}

// Snapshot returns the recovered payload and style.
func (v Verification) Snapshot() Snapshot {
	return Snapshot{Payload: v.Payload, Style: v.Style}
}

// Artifact is a rendered download.
type Artifact struct {
	Format Format
	Data   []byte
}

// FileName returns the suggested file name for a.
func (a Artifact) FileName() string {
	return "qr-code." + string(a.Format)
}

// CheckoutResult is the outcome of waiting for a checkout to be paid.
type CheckoutResult struct {
	Verification Verification
	Err          error
}
