// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorCorrectionHigh is the only error correction level qr-studio renders
// with. It tolerates roughly 30% module damage, which is what makes the logo
// overlay safe.
const ErrorCorrectionHigh = "H"

// Default colors for a fresh style.
const (
	DefaultForeground = "#000000"
	DefaultBackground = "#ffffff"
)

// StyleSpec is the visual styling of a QR code. It is independent of the
// payload and combined with it only when rendering.
type StyleSpec struct {
	// Foreground is the module color as #rgb or #rrggbb.
	Foreground string `json:"foreground"`

	// Background is the quiet-zone and light-module color.
	Background string `json:"background"`

	// Logo is an optional data URL (data:image/png;base64,...) drawn over
	// the center of the code.
	Logo string `json:"logo,omitempty"`

	// ErrorCorrection is always [ErrorCorrectionHigh]. It is carried so that
	// snapshots are self-describing.
	ErrorCorrection string `json:"error_correction"`
}

// DefaultStyle returns black on white with high error correction.
func DefaultStyle() StyleSpec {
	return StyleSpec{
		Foreground:      DefaultForeground,
		Background:      DefaultBackground,
		ErrorCorrection: ErrorCorrectionHigh,
	}
}

// WithDefaults fills empty colors and the error correction level.
func (s StyleSpec) WithDefaults() StyleSpec {
	if s.Foreground == "" {
		s.Foreground = DefaultForeground
	}
	if s.Background == "" {
		s.Background = DefaultBackground
	}
	if s.ErrorCorrection == "" {
		s.ErrorCorrection = ErrorCorrectionHigh
	}
	return s
}

// HistoryStyle is the part of a StyleSpec kept in history. Logos are left
// out to keep the stored list small.
type HistoryStyle struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// HistoryStyle returns the history subset of s.
func (s StyleSpec) HistoryStyle() HistoryStyle {
	return HistoryStyle{Foreground: s.Foreground, Background: s.Background}
}

// StyleSpec expands a history style back into a full style.
func (h HistoryStyle) StyleSpec() StyleSpec {
	return StyleSpec{Foreground: h.Foreground, Background: h.Background}.WithDefaults()
}
