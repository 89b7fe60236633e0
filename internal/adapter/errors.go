// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Server response errors, mapped from status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrPaymentRequired     = errors.New("payment required")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable content")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Payment provider errors.
var (
	// ErrProviderSessionNotFound is returned for session ids the provider
	// does not know.
	ErrProviderSessionNotFound = errors.New("checkout session not found at provider")

	// ErrProviderUnavailable covers every other provider failure.
	ErrProviderUnavailable = errors.New("payment provider unavailable")

	// ErrInvalidSignature is returned when a webhook signature does not
	// verify against the configured secret.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrUnknownProduct is returned when no price is configured for a product.
	ErrUnknownProduct = errors.New("no price configured for product")
)
