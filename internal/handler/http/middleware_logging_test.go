package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeLoggedRequest puts a buffer-backed zerolog logger into the request
// context the same way withTraceID does.
func makeLoggedRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name:   "explicit status",
			method: http.MethodPost,
			target: "/api/checkout",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"ok":1}`))
			},
			wantStatus: http.StatusCreated,
			wantSize:   8,
		},
		{
			name:   "implicit 200 on write",
			method: http.MethodGet,
			target: "/api/kinds",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("hello"))
			},
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
		{
			name:       "nothing written still logs 200",
			method:     http.MethodGet,
			target:     "/api/version/",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantStatus: http.StatusOK,
			wantSize:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, _ := newTestHandler(t)

			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(tt.method, tt.target, &buf))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["path"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_OmitsQueryString(t *testing.T) {
	var buf bytes.Buffer
	h, _ := newTestHandler(t)

	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/api/artifacts/png?size=512", &buf))

	assert.NotContains(t, buf.String(), "size=512")
	assert.Contains(t, buf.String(), `"path":"/api/artifacts/png"`)
}
