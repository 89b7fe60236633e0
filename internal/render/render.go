// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns an encoded payload and a style into PNG, SVG, print
// PDF and terminal output.
//
// Every code path renders at [ErrorCorrection]. Payloads that do not fit at
// that level fail with [ErrContentTooLong]; the level is never lowered to
// make them fit.
//
// Output is byte-reproducible: the same payload, style and size always give
// identical bytes.
package render

import (
	"errors"

	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/skip2/go-qrcode"
)

// ErrorCorrection is the recovery level of every render. Level H survives
// about 30% module damage, which the centered logo relies on.
const ErrorCorrection = qrcode.Highest

// Raster size limits in pixels.
const (
	MinSize     = 64
	MaxSize     = 4096
	DefaultSize = 1024
)

var (
	ErrEmptyPayload   = errors.New("nothing to render")
	ErrContentTooLong = errors.New("content too long for a QR code at error correction level H")
	ErrInvalidSize    = errors.New("invalid render size")
	ErrInvalidColor   = errors.New("invalid color")
	ErrInvalidLogo    = errors.New("invalid logo image")
)

// Renderer produces QR artifacts.
type Renderer interface {
	// PNG renders a size x size raster with the logo composited if set.
	PNG(payload string, style models.StyleSpec, size int) ([]byte, error)

	// SVG renders a scalable vector image.
	SVG(payload string, style models.StyleSpec) ([]byte, error)

	// PrintPDF renders one code centered on an A4 page.
	PrintPDF(payload string, style models.StyleSpec) ([]byte, error)

	// Terminal renders black-on-white half-block text for previews.
	Terminal(payload string) (string, error)
}

// Render dispatches to r by format. size applies to PNG only; zero means
// [DefaultSize].
func Render(r Renderer, format models.Format, payload string, style models.StyleSpec, size int) (models.Artifact, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case models.FormatPNG:
		if size == 0 {
			size = DefaultSize
		}
		data, err = r.PNG(payload, style, size)
	case models.FormatSVG:
		data, err = r.SVG(payload, style)
	case models.FormatPDF:
		data, err = r.PrintPDF(payload, style)
	default:
		return models.Artifact{}, ErrUnknownFormat
	}
	if err != nil {
		return models.Artifact{}, err
	}

	return models.Artifact{Format: format, Data: data}, nil
}

// ErrUnknownFormat is returned by Render for formats it cannot produce.
var ErrUnknownFormat = errors.New("unknown artifact format")
