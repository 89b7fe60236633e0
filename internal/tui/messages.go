package tui

import "github.com/MKhiriev/go-qr-studio/models"

type previewMsg struct {
	result models.PreviewResult
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type historySavedMsg struct {
	entries []models.HistoryEntry
	err     error
}

type historyClearedMsg struct {
	err error
}

type checkoutCreatedMsg struct {
	session models.CheckoutSession
	err     error
}

// checkoutResultMsg carries what the polling job reported. ok is false
// when the job was stopped without a result.
type checkoutResultMsg struct {
	result models.CheckoutResult
	ok     bool
}

type downloadDoneMsg struct {
	paths []string
	err   error
}

type copiedMsg struct {
	what string
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}

type clearStatusMsg struct{}
