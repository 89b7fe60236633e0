// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrSnapshotTooLarge    = errors.New("snapshot does not fit into session metadata")
	ErrCheckoutUnavailable = errors.New("checkout is temporarily unavailable")
	ErrSessionNotFound     = errors.New("checkout session not found")
	ErrNotPaid             = errors.New("checkout session is not paid")
	ErrMalformedMetadata   = errors.New("checkout session metadata is malformed")
	ErrCheckoutTimeout     = errors.New("timed out waiting for payment")

	ErrTokenIsExpiredOrInvalid = errors.New("download token is expired or invalid")
	ErrFormatNotPurchased      = errors.New("format is not included in the purchased product")

	ErrInvalidWebhook = errors.New("invalid webhook delivery")
	ErrWebhookRetry   = errors.New("webhook could not be recorded, retry later")

	ErrNoDownloadDir = errors.New("download directory is not specified")
)
