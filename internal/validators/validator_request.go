// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/lucasb-eyer/go-colorful"
)

// Field names for scoped validation.
const (
	FieldForeground      = "foreground"
	FieldBackground      = "background"
	FieldContrast        = "contrast"
	FieldLogo            = "logo"
	FieldErrorCorrection = "error_correction"
	FieldPayload         = "payload"
	FieldStyle           = "style"
	FieldProduct         = "product"
	FieldSnapshot        = "snapshot"
	FieldFormat          = "format"
	FieldSize            = "size"
)

// Limits on transport inputs.
const (
	// MaxPayloadBytes is the byte capacity of a version 40 QR code in byte
	// mode at level H. Longer payloads can never render.
	MaxPayloadBytes = 1273

	// MaxLogoBytes caps the decoded logo size for previews and exports.
	// Checkout is bounded tighter by [models.MaxSnapshotRunes], which leaves
	// room for a logo of roughly 16 KiB.
	MaxLogoBytes = 512 << 10

	MinExportSize = 64
	MaxExportSize = 4096

	minContrastRatio = 2.0
)

var logoMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// RequestValidator validates styles and the checkout, preview and export
// requests.
type RequestValidator struct {
	previewMaxSize int
}

// NewRequestValidator returns a Validator. previewMaxSize caps preview
// renders; zero means [MaxExportSize].
func NewRequestValidator(previewMaxSize int) Validator {
	if previewMaxSize <= 0 {
		previewMaxSize = MaxExportSize
	}
	return &RequestValidator{previewMaxSize: previewMaxSize}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// of models.StyleSpec, models.CheckoutRequest, models.PreviewRequest and
// models.ExportRequest are accepted; anything else is ErrUnsupportedType.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StyleSpec:
		return v.validateStyle(ctx, value, fields...)
	case *models.StyleSpec:
		return v.validateStyle(ctx, *value, fields...)

	case models.CheckoutRequest:
		return v.validateCheckoutRequest(ctx, value, fields...)
	case *models.CheckoutRequest:
		return v.validateCheckoutRequest(ctx, *value, fields...)

	case models.PreviewRequest:
		return v.validatePreviewRequest(ctx, value, fields...)
	case *models.PreviewRequest:
		return v.validatePreviewRequest(ctx, *value, fields...)

	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		return v.validateExportRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateStyle checks colors, contrast, logo and error correction. An
// empty error correction level means the default H.
func (v *RequestValidator) validateStyle(_ context.Context, style models.StyleSpec, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldForeground, FieldBackground, FieldContrast, FieldLogo, FieldErrorCorrection}
	}

	for _, f := range fields {
		switch f {
		case FieldForeground:
			if _, err := colorful.Hex(style.Foreground); err != nil {
				return fmt.Errorf("%w: foreground %q", ErrInvalidColor, style.Foreground)
			}
		case FieldBackground:
			if _, err := colorful.Hex(style.Background); err != nil {
				return fmt.Errorf("%w: background %q", ErrInvalidColor, style.Background)
			}
		case FieldContrast:
			fg, err1 := colorful.Hex(style.Foreground)
			bg, err2 := colorful.Hex(style.Background)
			if err1 != nil || err2 != nil {
				return ErrInvalidColor
			}
			if ContrastRatio(fg, bg) < minContrastRatio {
				return ErrLowContrast
			}
		case FieldLogo:
			if err := ValidateLogo(style.Logo); err != nil {
				return err
			}
		case FieldErrorCorrection:
			if style.ErrorCorrection != "" && style.ErrorCorrection != models.ErrorCorrectionHigh {
				return ErrInvalidErrorCorrection
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateLogo checks that logo is a png, jpeg or gif data URL of at most
// MaxLogoBytes. An empty logo is valid.
func ValidateLogo(logo string) error {
	if logo == "" {
		return nil
	}
	mime, data, err := utils.DecodeDataURL(logo)
	if err != nil || !logoMIMETypes[mime] || len(data) == 0 {
		return ErrInvalidLogo
	}
	if len(data) > MaxLogoBytes {
		return ErrLogoTooLarge
	}
	return nil
}

func (v *RequestValidator) validatePayload(p string) error {
	if p == "" {
		return ErrEmptyPayload
	}
	if len(p) > MaxPayloadBytes {
		return ErrPayloadTooLong
	}
	return nil
}

func (v *RequestValidator) validateCheckoutRequest(ctx context.Context, req models.CheckoutRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPayload, FieldStyle, FieldProduct, FieldSnapshot}
	}

	for _, f := range fields {
		switch f {
		case FieldPayload:
			if err := v.validatePayload(req.Payload); err != nil {
				return err
			}
		case FieldStyle:
			if err := v.validateStyle(ctx, req.Style); err != nil {
				return fmt.Errorf("style: %w", err)
			}
		case FieldProduct:
			if !req.Product.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownProduct, req.Product)
			}
		case FieldSnapshot:
			if err := validateSnapshotSize(req.Snapshot()); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSnapshotSize measures the snapshot exactly as checkout stores it
// in session metadata.
func validateSnapshotSize(snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotTooLarge, err)
	}
	if n := utf8.RuneCount(data); n > models.MaxSnapshotRunes {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrSnapshotTooLarge, n, models.MaxSnapshotRunes)
	}
	return nil
}

// validatePreviewRequest allows size 0, meaning the preview default.
func (v *RequestValidator) validatePreviewRequest(ctx context.Context, req models.PreviewRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPayload, FieldStyle, FieldFormat, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldPayload:
			if err := v.validatePayload(req.Payload); err != nil {
				return err
			}
		case FieldStyle:
			if err := v.validateStyle(ctx, req.Style); err != nil {
				return fmt.Errorf("style: %w", err)
			}
		case FieldFormat:
			if req.Format != "" && req.Format != models.FormatPNG && req.Format != models.FormatSVG {
				return fmt.Errorf("%w: %q", ErrUnknownFormat, req.Format)
			}
		case FieldSize:
			if req.Size != 0 && (req.Size < MinExportSize || req.Size > v.previewMaxSize) {
				return fmt.Errorf("%w: %d not in %d..%d", ErrInvalidSize, req.Size, MinExportSize, v.previewMaxSize)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateExportRequest allows size 0, meaning the export default.
func (v *RequestValidator) validateExportRequest(_ context.Context, req models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormat, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldFormat:
			if !req.Format.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownFormat, req.Format)
			}
		case FieldSize:
			if req.Size != 0 && (req.Size < MinExportSize || req.Size > MaxExportSize) {
				return fmt.Errorf("%w: %d not in %d..%d", ErrInvalidSize, req.Size, MinExportSize, MaxExportSize)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ContrastRatio is the WCAG contrast ratio of two colors, from 1 to 21.
func ContrastRatio(a, b colorful.Color) float64 {
	la, lb := relativeLuminance(a), relativeLuminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
