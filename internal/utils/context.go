// Package utils holds small helpers shared by the server and the client:
// typed context keys, HTTP response writing, the resty client, download
// token issuing, key derivation with payload signing, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-qr-studio/models"
)

// contextKey is a private type for context keys, so keys from other
// packages never collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// TraceIDCtxKey stores the request trace id set by the trace middleware.
	TraceIDCtxKey = contextKey("traceID")

	// DownloadTokenCtxKey stores the validated *models.DownloadToken for
	// artifact routes.
	DownloadTokenCtxKey = contextKey("downloadToken")
)

// GetTraceIDFromContext returns the trace id stored in ctx.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// GetDownloadTokenFromContext returns the download token stored in ctx.
func GetDownloadTokenFromContext(ctx context.Context) (*models.DownloadToken, bool) {
	token, ok := ctx.Value(DownloadTokenCtxKey).(*models.DownloadToken)
	return token, ok && token != nil
}
