// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/app"
	"github.com/MKhiriev/go-qr-studio/internal/render"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrPaymentRequired):
		return ErrNotPaid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrFormatNotPurchased

	case errors.Is(err, adapter.ErrNotFound):
		return ErrSessionNotFound

	case errors.Is(err, adapter.ErrConflict):
		return ErrMalformedMetadata

	case errors.Is(err, adapter.ErrUnprocessable):
		switch msg {
		case app.MsgContentTooLong:
			return render.ErrContentTooLong
		case app.MsgSnapshotTooLarge:
			return ErrSnapshotTooLarge
		}

	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return ErrCheckoutUnavailable
	}

	return err
}

// extractBody extracts the body from a message of the form "... unprocessable content: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
