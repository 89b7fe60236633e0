// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/skip2/go-qrcode"
)

// qrRenderer is the Renderer backed by skip2/go-qrcode.
type qrRenderer struct {
	encoder png.Encoder
}

// NewRenderer returns the default Renderer.
func NewRenderer() Renderer {
	return &qrRenderer{encoder: png.Encoder{CompressionLevel: png.BestCompression}}
}

// newCode builds the QR matrix at the fixed error correction level.
func newCode(payload string) (*qrcode.QRCode, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	code, err := qrcode.New(payload, ErrorCorrection)
	if err != nil {
		// go-qrcode only fails when no version can hold the data.
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrContentTooLong, len(payload), err)
	}
	return code, nil
}

type palette struct {
	fg, bg color.RGBA
}

func parsePalette(style models.StyleSpec) (palette, error) {
	style = style.WithDefaults()

	fg, err := parseColor(style.Foreground)
	if err != nil {
		return palette{}, err
	}
	bg, err := parseColor(style.Background)
	if err != nil {
		return palette{}, err
	}
	return palette{fg: fg, bg: bg}, nil
}

func parseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func (p palette) hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// raster renders the code with its quiet zone to a size x size RGBA image.
// size must be at least one pixel per module.
func raster(code *qrcode.QRCode, pal palette, size int) *image.RGBA {
	code.ForegroundColor = pal.fg
	code.BackgroundColor = pal.bg

	src := code.Image(size)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	return dst
}

func (r *qrRenderer) PNG(payload string, style models.StyleSpec, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d not in %d..%d", ErrInvalidSize, size, MinSize, MaxSize)
	}

	code, err := newCode(payload)
	if err != nil {
		return nil, err
	}
	if modules := len(code.Bitmap()); size < modules {
		return nil, fmt.Errorf("%w: %d px is below one pixel per module (%d)", ErrInvalidSize, size, modules)
	}
	pal, err := parsePalette(style)
	if err != nil {
		return nil, err
	}

	img := raster(code, pal, size)
	if style.Logo != "" {
		if err := overlayLogo(img, style.Logo, pal.bg); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := r.encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("error encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *qrRenderer) Terminal(payload string) (string, error) {
	code, err := newCode(payload)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}
