// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches a service.
var (
	// ErrEmptyAuthorizationHeader is returned by the download middleware when
	// the request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the route.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQueryParam is returned when a query parameter cannot be parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrMissingSignature is returned when a webhook has no signature header.
	ErrMissingSignature = errors.New("missing `Stripe-Signature` header")
)
