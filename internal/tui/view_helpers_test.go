package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hel...", fitText("hello world", 6))
	assert.Equal(t, "При...", fitText("Привет, мир", 6))
	assert.Equal(t, "he", fitText("hello", 2))
	assert.Equal(t, "hello", fitText("hello", 0))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "esc: back")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "line two")
	assert.Contains(t, page, "esc: back")
	assert.Contains(t, page, "ctrl+c: quit")
}

func TestFormatPaths(t *testing.T) {
	assert.Equal(t, "1. a.png\n2. a.svg", formatPaths([]string{"a.png", "a.svg"}))
	assert.Empty(t, formatPaths(nil))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "too long", err: fmt.Errorf("render: %w", render.ErrContentTooLong), want: "Too much content for one QR code, shorten it"},
		{name: "timeout", err: service.ErrCheckoutTimeout, want: "Payment was not confirmed in time"},
		{name: "network", err: errors.New("Post \"http://x\": dial tcp: connection refused"), want: "No network or the server is unavailable"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
