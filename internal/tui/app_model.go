// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	previewDelay    = 150 * time.Millisecond
	statusLifetime  = 2 * time.Second
	copyWhatPayload = "payload"
	copyWhatLink    = "payment link"
)

var errNothingToEncode = errors.New("fill in the form first")

type screen int

const (
	screenKinds screen = iota
	screenForm
	screenHistory
	screenPurchase
	screenAbout
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	currentScreen screen
	aboutBack     screen

	kinds    kindMenuModel
	form     formModel
	history  historyModel
	purchase purchaseModel

	serverVersion string
	status        string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	pendingClear  bool

	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		currentScreen: screenKinds,
		kinds:         newKindMenuModel(services.QRService.Categories(), services.QRService.Kinds()),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.showError {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case openFormMsg:
		m.form = newFormModel(msg.info, models.DefaultStyle())
		m.currentScreen = screenForm
		m.status = ""
		return m, m.cmdFormPreview()
	case previewMsg:
		if !m.services.QRService.IsCurrent(msg.result.Seq) {
			return m, nil
		}
		switch {
		case m.currentScreen == screenForm:
			m.form = m.form.acceptPreview(msg.result)
		case m.currentScreen == screenHistory && m.history.open:
			m.history.preview = msg.result
		}
		return m, nil
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.history = m.history.withEntries(msg.entries)
		return m, m.cmdHistoryPreview()
	case historySavedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.history = m.history.withEntries(msg.entries)
		return m.setStatus("Saved to history")
	case historyClearedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.history = m.history.withEntries(nil)
		return m.setStatus("History cleared")
	case checkoutCreatedMsg:
		if m.currentScreen != screenPurchase || m.purchase.stage != stageCreating {
			return m, nil
		}
		if msg.err != nil {
			m.purchase = m.purchase.fail(msg.err)
			return m, nil
		}
		m.purchase.session = msg.session
		m.purchase.stage = stageWaiting
		results := m.services.CheckoutJob.Start(m.ctx, msg.session.SessionID)
		return m, tea.Batch(waitForCheckout(results), cmdCopyToClipboard(msg.session.URL, copyWhatLink))
	case checkoutResultMsg:
		if !msg.ok || m.currentScreen != screenPurchase || m.purchase.stage != stageWaiting {
			return m, nil
		}
		if msg.result.Err != nil {
			m.purchase = m.purchase.fail(msg.result.Err)
			return m, nil
		}
		m.purchase.stage = stageDownloading
		return m, tea.Batch(m.purchase.spinner.Tick, m.cmdDownload(msg.result.Verification))
	case downloadDoneMsg:
		if m.currentScreen != screenPurchase || m.purchase.stage != stageDownloading {
			return m, nil
		}
		m.purchase.paths = msg.paths
		if msg.err != nil {
			m.purchase = m.purchase.fail(msg.err)
			return m, nil
		}
		m.purchase.stage = stageDone
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("Could not copy the %s: %v", msg.what, msg.err))
			return m, nil
		}
		return m.setStatus("Copied " + msg.what)
	case serverVersionMsg:
		if msg.err != nil {
			m.serverVersion = "unavailable"
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.currentScreen == screenPurchase && m.purchase.busy() {
			var cmd tea.Cmd
			m.purchase.spinner, cmd = m.purchase.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenKinds:
		return m.updateKinds(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenPurchase:
		return m.updatePurchase(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenKinds:
		body = m.kinds.View(m.status, "")
	case screenForm:
		body = m.form.View(m.status, "")
	case screenHistory:
		body = m.history.View(m.status, "")
	case screenPurchase:
		body = m.purchase.View(m.status)
	case screenAbout:
		body = renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return body
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.services.CheckoutJob.Stop()
	m.quitByUser = true
	return m, tea.Quit
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, cmdClearStatus()
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingClear {
			m.pendingClear = false
			return m, m.cmdClearHistory()
		}
		if m.pendingDelete == "" {
			return m, nil
		}
		id := m.pendingDelete
		m.pendingDelete = ""
		return m, m.cmdDeleteEntry(id)
	case key.Matches(msg, keys.no, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
		m.pendingClear = false
	}
	return m, nil
}

func (m appModel) updateKinds(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	case key.Matches(keyMsg, keys.history):
		return m.openHistory()
	case key.Matches(keyMsg, keys.version):
		return m.openAbout()
	}

	var cmd tea.Cmd
	m.kinds, cmd = m.kinds.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKinds
			m.status = ""
			return m, nil
		case key.Matches(keyMsg, keys.save):
			fields, err := m.form.Fields()
			if err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			if m.services.QRService.Encode(fields).Payload == "" {
				m.showErrorf(humanizeError(errNothingToEncode))
				return m, nil
			}
			return m, m.cmdSaveHistory(fields, m.form.Style())
		case key.Matches(keyMsg, keys.formCopy):
			encoded, err := m.encodeForm()
			if err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			return m, cmdCopyToClipboard(encoded.Payload, copyWhatPayload)
		case key.Matches(keyMsg, keys.formBuy):
			encoded, err := m.encodeForm()
			if err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			style, err := m.form.StyleWithLogo()
			if err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			return m.openPurchase(encoded.Payload, encoded.Label, style, screenForm)
		}
	}

	var (
		cmd     tea.Cmd
		changed bool
	)
	m.form, cmd, changed = m.form.Update(msg)
	if changed {
		return m, tea.Batch(cmd, m.cmdFormPreview())
	}
	return m, cmd
}

func (m appModel) encodeForm() (models.EncodeResponse, error) {
	fields, err := m.form.Fields()
	if err != nil {
		return models.EncodeResponse{}, err
	}
	encoded := m.services.QRService.Encode(fields)
	if encoded.Payload == "" {
		return models.EncodeResponse{}, errNothingToEncode
	}
	return encoded, nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.history.open {
		entry, ok := m.history.current()
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.history.open = false
		case !ok:
			return m, nil
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopyToClipboard(entry.Payload, copyWhatPayload)
		case key.Matches(keyMsg, keys.buy):
			return m.openPurchase(entry.Payload, entry.Label, entry.Style.StyleSpec(), screenHistory)
		case key.Matches(keyMsg, keys.delete):
			m.askDelete(entry)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenKinds
		m.status = ""
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.entries)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.history.current(); !ok {
			return m, nil
		}
		m.history.open = true
		m.history.preview = models.PreviewResult{}
		return m, m.cmdHistoryPreview()
	case key.Matches(keyMsg, keys.delete):
		if entry, ok := m.history.current(); ok {
			m.askDelete(entry)
		}
	case key.Matches(keyMsg, keys.clear):
		if len(m.history.entries) == 0 {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Clear the whole history?"
		m.pendingClear = true
	}
	return m, nil
}

func (m *appModel) askDelete(entry models.HistoryEntry) {
	m.showConfirm = true
	m.confirm.message = fmt.Sprintf("Delete %q?", fitText(entry.Label, 40))
	m.pendingDelete = entry.ID
}

func (m appModel) updatePurchase(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.purchase.stage {
	case stageChooseProduct:
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = m.purchase.back
		case key.Matches(keyMsg, keys.up):
			if m.purchase.idx > 0 {
				m.purchase.idx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.purchase.idx < len(purchaseProducts)-1 {
				m.purchase.idx++
			}
		case key.Matches(keyMsg, keys.enter):
			m.purchase.stage = stageCreating
			return m, tea.Batch(m.purchase.spinner.Tick, m.cmdCreateCheckout())
		}
	case stageWaiting:
		switch {
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopyToClipboard(m.purchase.session.URL, copyWhatLink)
		case key.Matches(keyMsg, keys.esc):
			m.services.CheckoutJob.Stop()
			m.currentScreen = m.purchase.back
		}
	case stageDone, stageFailed:
		if key.Matches(keyMsg, keys.esc, keys.enter) {
			m.currentScreen = m.purchase.back
		}
	case stageCreating, stageDownloading:
		// keys wait for the request to finish
	}
	return m, nil
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.currentScreen = m.aboutBack
	}
	return m, nil
}

func (m appModel) openHistory() (tea.Model, tea.Cmd) {
	m.currentScreen = screenHistory
	m.status = ""
	m.history.open = false
	m.history.loading = true
	return m, m.cmdLoadHistory()
}

func (m appModel) openAbout() (tea.Model, tea.Cmd) {
	m.aboutBack = m.currentScreen
	m.currentScreen = screenAbout
	return m, m.cmdServerVersion()
}

func (m appModel) openPurchase(payloadText, label string, style models.StyleSpec, back screen) (tea.Model, tea.Cmd) {
	m.purchase = newPurchaseModel(payloadText, label, style, back)
	m.currentScreen = screenPurchase
	m.status = ""
	return m, nil
}

// cmdFormPreview schedules a render of the form. Renders that are
// superseded before the delay elapses are skipped.
func (m appModel) cmdFormPreview() tea.Cmd {
	qr := m.services.QRService
	seq := qr.NextPreview()

	fields, err := m.form.Fields()
	if err != nil {
		return func() tea.Msg {
			return previewMsg{result: models.PreviewResult{Seq: seq, Err: err}}
		}
	}

	ctx := m.ctx
	return tea.Tick(previewDelay, func(time.Time) tea.Msg {
		if !qr.IsCurrent(seq) {
			return nil
		}
		return previewMsg{result: qr.Preview(ctx, seq, fields)}
	})
}

// cmdHistoryPreview renders the stored payload of the open entry. Saved
// payloads are final strings, so they are rendered as plain text.
func (m appModel) cmdHistoryPreview() tea.Cmd {
	if !m.history.open {
		return nil
	}
	entry, ok := m.history.current()
	if !ok {
		return nil
	}

	ctx := m.ctx
	qr := m.services.QRService
	seq := qr.NextPreview()
	return func() tea.Msg {
		return previewMsg{result: qr.Preview(ctx, seq, payload.Text{Text: entry.Payload})}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		entries, err := svc.List(ctx)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdSaveHistory(fields payload.Fields, style models.StyleSpec) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		entries, err := svc.Save(ctx, fields, style)
		return historySavedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdDeleteEntry(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		entries, err := svc.Delete(ctx, id)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		return historyClearedMsg{err: svc.Clear(ctx)}
	}
}

func (m appModel) cmdCreateCheckout() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CheckoutService
	p := m.purchase
	return func() tea.Msg {
		session, err := svc.Purchase(ctx, p.payload, p.style, p.product())
		return checkoutCreatedMsg{session: session, err: err}
	}
}

func (m appModel) cmdDownload(verification models.Verification) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CheckoutService
	return func() tea.Msg {
		paths, err := svc.Download(ctx, verification)
		return downloadDoneMsg{paths: paths, err: err}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CheckoutService
	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

// waitForCheckout blocks until the polling job reports or is stopped.
func waitForCheckout(results <-chan models.CheckoutResult) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-results
		return checkoutResultMsg{result: result, ok: ok}
	}
}

func cmdCopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{what: what, err: err}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
