// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/MKhiriev/go-qr-studio/internal/utils"
	xdraw "golang.org/x/image/draw"
)

const (
	// logoAreaShare is the share of the image area covered by the logo tile.
	logoAreaShare = 0.20

	// logoPadding is the tile margin around the logo, as a share of the tile.
	logoPadding = 0.08
)

// logoTile returns the centered square covering logoAreaShare of a
// size x size image.
func logoTile(size int) image.Rectangle {
	side := int(math.Round(float64(size) * math.Sqrt(logoAreaShare)))
	minPt := (size - side) / 2
	return image.Rect(minPt, minPt, minPt+side, minPt+side)
}

// fitInside scales a w x h box to fit box, keeping aspect ratio, centered.
func fitInside(w, h int, box image.Rectangle) image.Rectangle {
	bw, bh := box.Dx(), box.Dy()
	scale := math.Min(float64(bw)/float64(w), float64(bh)/float64(h))
	dw := max(1, int(math.Round(float64(w)*scale)))
	dh := max(1, int(math.Round(float64(h)*scale)))
	x := box.Min.X + (bw-dw)/2
	y := box.Min.Y + (bh-dh)/2
	return image.Rect(x, y, x+dw, y+dh)
}

func decodeLogo(dataURL string) (image.Image, error) {
	_, data, err := utils.DecodeDataURL(dataURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLogo, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLogo, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrInvalidLogo
	}
	return img, nil
}

// overlayLogo draws a solid background tile and the scaled logo over the
// center of dst.
func overlayLogo(dst *image.RGBA, dataURL string, bg color.RGBA) error {
	logo, err := decodeLogo(dataURL)
	if err != nil {
		return err
	}

	tile := logoTile(dst.Bounds().Dx())
	xdraw.Draw(dst, tile, &image.Uniform{C: bg}, image.Point{}, xdraw.Src)

	pad := int(math.Round(float64(tile.Dx()) * logoPadding))
	inner := tile.Inset(pad)
	lb := logo.Bounds()
	target := fitInside(lb.Dx(), lb.Dy(), inner)

	xdraw.CatmullRom.Scale(dst, target, logo, lb, xdraw.Over, nil)
	return nil
}
