package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/models"
)

const historyTimeLayout = "2006-01-02 15:04"

// historyModel lists saved codes, newest first, and shows one of them in
// detail when open is set.
type historyModel struct {
	entries []models.HistoryEntry
	idx     int
	loading bool

	open    bool
	preview models.PreviewResult
}

func (m historyModel) current() (models.HistoryEntry, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) {
		return models.HistoryEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m historyModel) withEntries(entries []models.HistoryEntry) historyModel {
	m.entries = entries
	m.loading = false
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	if len(m.entries) == 0 {
		m.open = false
	}
	return m
}

func (m historyModel) View(status, errMsg string) string {
	if m.open {
		return m.detailView(status, errMsg)
	}

	var b strings.Builder
	b.WriteString(statusLine(status, errMsg))

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.entries) == 0:
		b.WriteString(helpStyle.Render("No saved codes yet"))
	default:
		for i, e := range m.entries {
			line := fmt.Sprintf("%s %-16s %-14s %s",
				cursor(i == m.idx),
				e.CreatedAt.Local().Format(historyTimeLayout),
				fitText(kindLabel(e), 14),
				fitText(e.Label, 40),
			)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return renderPage("HISTORY", strings.TrimRight(b.String(), "\n"),
		"enter: open │ d: delete │ x: clear all │ esc: back")
}

func (m historyModel) detailView(status, errMsg string) string {
	e, ok := m.current()
	if !ok {
		return renderPage("HISTORY", "", "esc: back")
	}

	var b strings.Builder
	b.WriteString(statusLine(status, errMsg))
	fmt.Fprintf(&b, "Kind:       %s\n", kindLabel(e))
	fmt.Fprintf(&b, "Label:      %s\n", e.Label)
	fmt.Fprintf(&b, "Created:    %s\n", e.CreatedAt.Local().Format(historyTimeLayout))
	fmt.Fprintf(&b, "Colors:     %s on %s\n", valueOrNA(e.Style.Foreground), valueOrNA(e.Style.Background))
	fmt.Fprintf(&b, "Payload:    %s\n\n", fitText(e.Payload, 64))

	switch {
	case m.preview.Err != nil:
		b.WriteString(errorStyle.Render(humanizeError(m.preview.Err)))
	case m.preview.Terminal != "":
		b.WriteString(m.preview.Terminal)
	default:
		b.WriteString("Rendering...")
	}

	return renderPage("SAVED CODE", strings.TrimRight(b.String(), "\n"),
		"c: copy payload │ b: buy │ d: delete │ esc: back")
}

func kindLabel(e models.HistoryEntry) string {
	if info, ok := payload.Lookup(e.Kind); ok {
		return info.Label
	}
	return string(e.Kind)
}
