// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/internal/validators"
)

var ErrUserQuit = errors.New("user quit")

var errLogoNotFound = errors.New("logo file not found")

// humanizeError turns client service errors into one line a user can act on.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, render.ErrContentTooLong):
		return "Too much content for one QR code, shorten it"
	case errors.Is(err, service.ErrSnapshotTooLarge):
		return "The code and its logo are too large to purchase"
	case errors.Is(err, service.ErrCheckoutUnavailable):
		return "Checkout is unavailable right now, try again later"
	case errors.Is(err, service.ErrCheckoutTimeout):
		return "Payment was not confirmed in time"
	case errors.Is(err, service.ErrSessionNotFound):
		return "Checkout session not found"
	case errors.Is(err, service.ErrMalformedMetadata):
		return "Checkout session data is damaged, contact support"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Download link expired, verify the purchase again"
	case errors.Is(err, service.ErrNoDownloadDir):
		return "No download directory configured"
	case errors.Is(err, validators.ErrInvalidLogo):
		return "The logo must be a png, jpeg or gif image"
	case errors.Is(err, validators.ErrLogoTooLarge):
		return "The logo file is too large"
	case errors.Is(err, errLogoNotFound):
		return "Logo file not found"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
