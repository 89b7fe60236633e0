// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"bytes"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/go-pdf/fpdf"
)

// A4 print layout in millimetres.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	printSide    = 120.0
	printTop     = 70.0
	printPixels  = 1417 // 120 mm at 300 dpi
	captionRunes = 90
)

// pdfEpoch is stamped as creation and modification date so that the same
// input always produces the same file.
var pdfEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func (r *qrRenderer) PrintPDF(payload string, style models.StyleSpec) ([]byte, error) {
	img, err := r.PNG(payload, style, printPixels)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(true)
	pdf.SetTitle("QR code", true)
	pdf.SetProducer("qr-studio", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(img))
	pdf.ImageOptions("qr", (pageWidth-printSide)/2, printTop, printSide, printSide, false, opts, 0, "")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(20, printTop+printSide+12)
	pdf.CellFormat(pageWidth-40, 5, tr(caption(payload)), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// caption is the first line of payload, shortened for the page footer.
func caption(payload string) string {
	line := payload
	for i, r := range payload {
		if r == '\n' || r == '\r' {
			line = payload[:i]
			break
		}
	}
	if utf8.RuneCountInString(line) <= captionRunes {
		return line
	}
	return string([]rune(line)[:captionRunes-3]) + "..."
}
