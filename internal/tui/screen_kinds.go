package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// kindMenuModel lists every content kind grouped by category. The cursor
// walks the kinds in display order, skipping category headers.
type kindMenuModel struct {
	categories []payload.Category
	kinds      []payload.KindInfo // display order
	idx        int
}

func newKindMenuModel(categories []payload.Category, kinds []payload.KindInfo) kindMenuModel {
	ordered := make([]payload.KindInfo, 0, len(kinds))
	for _, category := range categories {
		for _, info := range kinds {
			if info.Category == category {
				ordered = append(ordered, info)
			}
		}
	}
	return kindMenuModel{categories: categories, kinds: ordered}
}

// openFormMsg asks the root model to open the form for a kind.
type openFormMsg struct {
	info payload.KindInfo
}

func (m kindMenuModel) Update(msg tea.KeyMsg) (kindMenuModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.kinds)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.kinds) == 0 {
			return m, nil
		}
		info := m.kinds[m.idx]
		return m, func() tea.Msg { return openFormMsg{info: info} }
	}
	return m, nil
}

func (m kindMenuModel) selected() (payload.KindInfo, bool) {
	if m.idx < 0 || m.idx >= len(m.kinds) {
		return payload.KindInfo{}, false
	}
	return m.kinds[m.idx], true
}

func (m kindMenuModel) View(status, errMsg string) string {
	var b strings.Builder
	b.WriteString(statusLine(status, errMsg))

	i := 0
	for _, category := range m.categories {
		b.WriteString(categoryStyle.Render(categoryTitle(category)))
		b.WriteString("\n")
		for i < len(m.kinds) && m.kinds[i].Category == category {
			line := fmt.Sprintf("%s %s", cursor(i == m.idx), m.kinds[i].Label)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			i++
		}
		b.WriteString("\n")
	}

	return renderPage("NEW QR CODE", strings.TrimRight(b.String(), "\n"),
		"enter: select │ ↑/↓: navigate │ h: history │ v: version │ q: quit")
}

func categoryTitle(c payload.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
