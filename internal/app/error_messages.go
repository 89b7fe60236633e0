// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// qr-studio server handlers and the client adapter.
//
// All Msg* constants are human-readable message strings written into HTTP
// error bodies. The client matches on them to tell apart errors that share
// a status code, so the wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgContentTooLong is returned when the payload does not fit a QR code
	// at error correction level H.
	MsgContentTooLong = "content too long for a QR code"

	// MsgSnapshotTooLarge is returned when payload and style together
	// exceed what a checkout session can carry, usually due to a big logo.
	MsgSnapshotTooLarge = "payload and style are too large for checkout"

	// MsgCheckoutUnavailable is returned when the payment provider cannot
	// be reached. The request may be retried.
	MsgCheckoutUnavailable = "checkout is temporarily unavailable"

	// MsgSessionNotFound is returned for unknown checkout session ids.
	MsgSessionNotFound = "checkout session not found"

	// MsgNotPaid is returned while a session is still awaiting payment.
	MsgNotPaid = "payment not completed"

	// MsgMalformedMetadata is returned when a paid session carries a
	// snapshot that cannot be read back or fails its signature check.
	MsgMalformedMetadata = "checkout session data is malformed"

	// MsgTokenIsExpiredOrInvalid is returned when a download token is
	// missing, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "download token is expired or invalid"

	// MsgFormatNotPurchased is returned when a download asks for a format
	// the purchased product does not include.
	MsgFormatNotPurchased = "format not included in purchase"

	// MsgInvalidWebhook is returned for webhook deliveries with a bad
	// signature or body.
	MsgInvalidWebhook = "invalid webhook"

	// MsgWebhookRetry asks the provider to redeliver later.
	MsgWebhookRetry = "webhook not recorded, retry later"
)
