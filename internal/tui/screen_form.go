// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/internal/validators"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	styleFieldForeground = "foreground"
	styleFieldBackground = "background"
	styleFieldLogo       = "logo"
)

// formField is one row of the generic form. Text rows use input, choice
// rows use choice, bool rows use checked.
type formField struct {
	spec    payload.FieldSpec
	input   textinput.Model
	choice  int
	checked bool
	style   bool
}

// formModel edits the fields of one kind plus the style rows: two colors
// and an optional logo file. It is driven entirely by the kind's field
// descriptors.
type formModel struct {
	info   payload.KindInfo
	fields []formField
	focus  int

	// preview is the last accepted render; previewSeq its sequence number.
	preview    models.PreviewResult
	previewSeq uint64
}

func newFormModel(info payload.KindInfo, style models.StyleSpec) formModel {
	seed := defaultValues(info.Kind)

	fields := make([]formField, 0, len(info.Fields)+3)
	for _, spec := range info.Fields {
		fields = append(fields, newFormField(spec, seed[spec.Name]))
	}

	style = style.WithDefaults()
	fields = append(fields,
		newStyleField(styleFieldForeground, "Foreground", style.Foreground),
		newStyleField(styleFieldBackground, "Background", style.Background),
		newLogoField(),
	)

	m := formModel{info: info, fields: fields}
	m.setFocus(0)
	return m
}

func newFormField(spec payload.FieldSpec, seed any) formField {
	f := formField{spec: spec}

	switch spec.Input {
	case payload.InputBool:
		f.checked, _ = seed.(bool)
	case payload.InputChoice:
		if s, ok := seed.(string); ok {
			if i := slices.Index(spec.Choices, s); i >= 0 {
				f.choice = i
			}
		}
	case payload.InputText, payload.InputTextarea:
		in := textinput.New()
		in.Placeholder = spec.Placeholder
		in.Width = 48
		in.CharLimit = 256
		if spec.Input == payload.InputTextarea {
			in.CharLimit = 1024
		}
		if s, ok := seed.(string); ok {
			in.SetValue(s)
		}
		f.input = in
	}
	return f
}

func newStyleField(name, label, value string) formField {
	in := textinput.New()
	in.Placeholder = "#rrggbb"
	in.Width = 10
	in.CharLimit = 7
	in.SetValue(value)
	return formField{
		spec:  payload.FieldSpec{Name: name, Label: label, Input: payload.InputText},
		input: in,
		style: true,
	}
}

func newLogoField() formField {
	in := textinput.New()
	in.Placeholder = "optional: path to a png, jpeg or gif"
	in.Width = 40
	in.CharLimit = 512
	return formField{
		spec:  payload.FieldSpec{Name: styleFieldLogo, Label: "Logo file", Input: payload.InputText},
		input: in,
		style: true,
	}
}

// defaultValues flattens the kind's default fields into name/value pairs
// so choices and prefilled values (currency, security) start right.
func defaultValues(kind payload.ContentKind) map[string]any {
	values := map[string]any{}
	raw, err := json.Marshal(payload.DefaultFields(kind))
	if err != nil {
		return values
	}
	_ = json.Unmarshal(raw, &values)
	return values
}

func (f formField) isText() bool {
	return f.spec.Input == payload.InputText || f.spec.Input == payload.InputTextarea
}

func (m *formModel) setFocus(i int) {
	if len(m.fields) == 0 {
		return
	}
	i = (i + len(m.fields)) % len(m.fields)
	for j := range m.fields {
		if m.fields[j].isText() {
			m.fields[j].input.Blur()
		}
	}
	m.focus = i
	if m.fields[i].isText() {
		m.fields[i].input.Focus()
	}
}

// Update handles editing keys and reports whether any value changed, so
// the caller knows to schedule a new preview.
func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.fields[m.focus].isText() {
			var cmd tea.Cmd
			m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
			return m, cmd, false
		}
		return m, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.tab, keys.enter):
		m.setFocus(m.focus + 1)
		return m, nil, false
	case key.Matches(keyMsg, keys.backtab):
		m.setFocus(m.focus - 1)
		return m, nil, false
	}

	field := &m.fields[m.focus]
	switch field.spec.Input {
	case payload.InputBool:
		if key.Matches(keyMsg, keys.toggle, keys.left, keys.right) {
			field.checked = !field.checked
			return m, nil, true
		}
		return m, nil, false
	case payload.InputChoice:
		n := len(field.spec.Choices)
		if n == 0 {
			return m, nil, false
		}
		switch {
		case key.Matches(keyMsg, keys.left):
			field.choice = (field.choice - 1 + n) % n
			return m, nil, true
		case key.Matches(keyMsg, keys.right, keys.toggle):
			field.choice = (field.choice + 1) % n
			return m, nil, true
		}
	case payload.InputText, payload.InputTextarea:
		before := field.input.Value()
		var cmd tea.Cmd
		field.input, cmd = field.input.Update(msg)
		return m, cmd, field.input.Value() != before
	}
	return m, nil, false
}

// Fields builds the typed fields from the form. URL-carrying kinds are
// normalized here, before encoding, so what is previewed is what is saved.
func (m formModel) Fields() (payload.Fields, error) {
	values := make(map[string]any, len(m.fields))
	for _, f := range m.fields {
		if f.style {
			continue
		}
		switch f.spec.Input {
		case payload.InputBool:
			values[f.spec.Name] = f.checked
		case payload.InputChoice:
			if f.choice < len(f.spec.Choices) {
				values[f.spec.Name] = f.spec.Choices[f.choice]
			}
		case payload.InputText, payload.InputTextarea:
			values[f.spec.Name] = f.input.Value()
		}
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	fields, err := payload.Decode(m.info.Kind, raw)
	if err != nil {
		return nil, err
	}
	return validators.NormalizeFields(fields), nil
}

// Style returns the colors typed in the form over the default style. The
// logo is left out; history does not keep it.
func (m formModel) Style() models.StyleSpec {
	style := models.DefaultStyle()
	for _, f := range m.fields {
		if !f.style {
			continue
		}
		value := strings.TrimSpace(f.input.Value())
		switch f.spec.Name {
		case styleFieldForeground:
			style.Foreground = value
		case styleFieldBackground:
			style.Background = value
		}
	}
	return style.WithDefaults()
}

// StyleWithLogo is Style plus the logo file, read as a data URL.
func (m formModel) StyleWithLogo() (models.StyleSpec, error) {
	style := m.Style()
	path := m.styleValue(styleFieldLogo)
	if path == "" {
		return style, nil
	}

	logo, err := readLogo(path)
	if err != nil {
		return models.StyleSpec{}, err
	}
	style.Logo = logo
	return style, nil
}

func (m formModel) styleValue(name string) string {
	for _, f := range m.fields {
		if f.style && f.spec.Name == name {
			return strings.TrimSpace(f.input.Value())
		}
	}
	return ""
}

// readLogo loads an image file as a data URL. The format is sniffed from
// the content, not the file name.
func readLogo(path string) (string, error) {
	f, err := os.Open(expandHome(path))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", errLogoNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("error opening logo: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, validators.MaxLogoBytes+1))
	if err != nil {
		return "", fmt.Errorf("error reading logo: %w", err)
	}

	logo := utils.EncodeDataURL(http.DetectContentType(data), data)
	if err = validators.ValidateLogo(logo); err != nil {
		return "", err
	}
	return logo, nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// acceptPreview keeps result only when it is newer than what is shown.
func (m formModel) acceptPreview(result models.PreviewResult) formModel {
	if result.Seq < m.previewSeq {
		return m
	}
	m.preview = result
	m.previewSeq = result.Seq
	return m
}

func (m formModel) hint(f formField) string {
	if !f.isText() {
		return ""
	}
	if f.style {
		value := strings.TrimSpace(f.input.Value())
		if f.spec.Name == styleFieldLogo {
			if value == "" {
				return ""
			}
			if _, err := os.Stat(expandHome(value)); err != nil {
				return "file not found"
			}
			return ""
		}
		if _, err := colorful.Hex(value); err != nil {
			return "expected #rgb or #rrggbb"
		}
		return ""
	}
	return validators.Hint(m.info.Kind, f.spec.Name, f.input.Value())
}

func (m formModel) View(status, errMsg string) string {
	var b strings.Builder
	b.WriteString(statusLine(status, errMsg))

	for i, f := range m.fields {
		if f.style && (i == 0 || !m.fields[i-1].style) {
			b.WriteString("\n")
			b.WriteString(categoryStyle.Render("Style"))
			b.WriteString("\n")
		}

		label := fmt.Sprintf("%s %-16s", cursor(i == m.focus), f.spec.Label)
		if i == m.focus {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(" ")

		switch f.spec.Input {
		case payload.InputBool:
			mark := "[ ]"
			if f.checked {
				mark = "[x]"
			}
			b.WriteString(mark)
		case payload.InputChoice:
			if f.choice < len(f.spec.Choices) {
				b.WriteString("‹ " + f.spec.Choices[f.choice] + " ›")
			}
		case payload.InputText, payload.InputTextarea:
			b.WriteString(f.input.View())
		}

		if hint := m.hint(f); hint != "" {
			b.WriteString("  ")
			b.WriteString(hintStyle.Render(hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.previewView())

	return renderPage("NEW QR CODE: "+strings.ToUpper(m.info.Label), strings.TrimRight(b.String(), "\n"),
		"tab/↑/↓: field │ space/←/→: toggle │ ctrl+s: save │ ctrl+y: copy │ ctrl+b: buy │ esc: back")
}

func (m formModel) previewView() string {
	switch {
	case m.preview.Err != nil:
		return errorStyle.Render(humanizeError(m.preview.Err))
	case m.preview.Payload == "":
		return helpStyle.Render("Fill in the fields to see the code")
	case m.preview.Terminal == "":
		return helpStyle.Render("Rendering...")
	}
	return m.preview.Terminal + "\n" + helpStyle.Render(fitText(m.preview.Payload, 64))
}
