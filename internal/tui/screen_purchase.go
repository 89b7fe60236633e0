// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type purchaseStage int

const (
	stageChooseProduct purchaseStage = iota
	stageCreating
	stageWaiting
	stageDownloading
	stageDone
	stageFailed
)

var purchaseProducts = []models.Product{models.ProductDigital, models.ProductPrint}

// purchaseModel walks one checkout from product choice to saved files.
// The payload and style are fixed when the screen opens.
type purchaseModel struct {
	payload string
	label   string
	style   models.StyleSpec
	back    screen

	stage   purchaseStage
	idx     int
	session models.CheckoutSession
	paths   []string
	err     error

	spinner spinner.Model
}

func newPurchaseModel(payloadText, label string, style models.StyleSpec, back screen) purchaseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return purchaseModel{
		payload: payloadText,
		label:   label,
		style:   style,
		back:    back,
		spinner: sp,
	}
}

func (m purchaseModel) product() models.Product {
	return purchaseProducts[m.idx]
}

// busy reports whether a background step is in flight.
func (m purchaseModel) busy() bool {
	return m.stage == stageCreating || m.stage == stageWaiting || m.stage == stageDownloading
}

func (m purchaseModel) fail(err error) purchaseModel {
	m.stage = stageFailed
	m.err = err
	return m
}

func (m purchaseModel) View(status string) string {
	var b strings.Builder
	b.WriteString(statusLine(status, ""))
	fmt.Fprintf(&b, "Code:    %s\n\n", fitText(m.label, 56))

	hotKeys := "esc: back"
	switch m.stage {
	case stageChooseProduct:
		for i, p := range purchaseProducts {
			line := fmt.Sprintf("%s %-8s %s", cursor(i == m.idx), productTitle(p), formatList(p.Formats()))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		hotKeys = "enter: checkout │ ↑/↓: product │ esc: back"
	case stageCreating:
		b.WriteString(m.spinner.View() + " Creating checkout...")
	case stageWaiting:
		b.WriteString("Complete the payment in your browser:\n\n")
		b.WriteString(m.session.URL)
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View() + " Waiting for payment confirmation...")
		hotKeys = "c: copy link │ esc: cancel"
	case stageDownloading:
		b.WriteString(m.spinner.View() + " Downloading files...")
	case stageDone:
		b.WriteString(okStyle.Render("Payment confirmed. Files saved:"))
		b.WriteString("\n\n")
		b.WriteString(formatPaths(m.paths))
	case stageFailed:
		b.WriteString(errorStyle.Render(humanizeError(m.err)))
		if len(m.paths) > 0 {
			b.WriteString("\n\nSaved before the error:\n")
			b.WriteString(formatPaths(m.paths))
		}
		if m.session.SessionID != "" {
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("Session: " + m.session.SessionID))
		}
	}

	return renderPage("PURCHASE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func productTitle(p models.Product) string {
	switch p {
	case models.ProductDigital:
		return "Digital"
	case models.ProductPrint:
		return "Print"
	}
	return string(p)
}

func formatList(formats []models.Format) string {
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = strings.ToUpper(string(f))
	}
	return strings.Join(parts, ", ")
}
