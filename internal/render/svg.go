// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/MKhiriev/go-qr-studio/models"
)

// SVG writes one module per unit: a background rect and a single path of
// unit squares. A logo, if any, is embedded as an <image> over a tile.
func (r *qrRenderer) SVG(payload string, style models.StyleSpec) ([]byte, error) {
	code, err := newCode(payload)
	if err != nil {
		return nil, err
	}
	pal, err := parsePalette(style)
	if err != nil {
		return nil, err
	}
	if style.Logo != "" {
		if _, err := decodeLogo(style.Logo); err != nil {
			return nil, err
		}
	}

	bitmap := code.Bitmap()
	n := len(bitmap)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, n, n)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="%s"/>`, n, n, pal.hex(pal.bg))

	buf.WriteString(`<path fill="` + pal.hex(pal.fg) + `" d="`)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&buf, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	buf.WriteString(`"/>`)

	if style.Logo != "" {
		side := float64(n) * math.Sqrt(logoAreaShare)
		origin := (float64(n) - side) / 2
		pad := side * logoPadding
		fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(origin), num(origin), num(side), num(side), pal.hex(pal.bg))

		fmt.Fprintf(&buf, `<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="xMidYMid meet" href="%s"/>`,
			num(origin+pad), num(origin+pad), num(side-2*pad), num(side-2*pad), html.EscapeString(style.Logo))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// num formats an SVG coordinate with at most three decimals.
func num(f float64) string {
	return fmt.Sprintf("%.3f", math.Round(f*1000)/1000)
}
