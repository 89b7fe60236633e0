// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/mock"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientQRService_Encode(t *testing.T) {
	svc := NewClientQRService(nil, render.NewRenderer(), logger.Nop())

	resp := svc.Encode(payload.Wifi{SSID: "Home", Password: "pw", Security: payload.SecurityWPA})

	assert.Equal(t, payload.KindWifi, resp.Kind)
	assert.Equal(t, "WIFI:T:WPA;S:Home;P:pw;;", resp.Payload)
	assert.Equal(t, "WiFi: Home", resp.Label)
	assert.Empty(t, svc.Encode(nil).Payload)
}

func TestClientQRService_Preview_RendersTerminal(t *testing.T) {
	svc := NewClientQRService(nil, render.NewRenderer(), logger.Nop())

	seq := svc.NextPreview()
	result := svc.Preview(context.Background(), seq, payload.Text{Text: "hello"})

	require.NoError(t, result.Err)
	assert.Equal(t, seq, result.Seq)
	assert.Equal(t, "hello", result.Payload)
	assert.NotEmpty(t, result.Terminal)
	assert.True(t, svc.IsCurrent(seq))
}

func TestClientQRService_Preview_EmptyPayloadIsBlank(t *testing.T) {
	svc := NewClientQRService(nil, render.NewRenderer(), logger.Nop())

	result := svc.Preview(context.Background(), svc.NextPreview(), payload.URL{})

	assert.NoError(t, result.Err)
	assert.Empty(t, result.Terminal)
}

func TestClientQRService_Preview_TooLong(t *testing.T) {
	svc := NewClientQRService(nil, render.NewRenderer(), logger.Nop())

	long := make([]byte, 3000)
	for i := range long {
		long[i] = 'a'
	}
	result := svc.Preview(context.Background(), svc.NextPreview(), payload.Text{Text: string(long)})

	assert.ErrorIs(t, result.Err, render.ErrContentTooLong)
}

func TestClientQRService_LastWriteWins(t *testing.T) {
	svc := NewClientQRService(nil, render.NewRenderer(), logger.Nop())

	first := svc.NextPreview()
	second := svc.NextPreview()

	// the older render finishes last but must not be shown
	newer := svc.Preview(context.Background(), second, payload.Text{Text: "new"})
	older := svc.Preview(context.Background(), first, payload.Text{Text: "old"})

	assert.True(t, svc.IsCurrent(newer.Seq))
	assert.False(t, svc.IsCurrent(older.Seq))
}

func TestClientQRService_NextPreview_ConcurrentUnique(t *testing.T) {
	svc := NewClientQRService(nil, render.NewRenderer(), logger.Nop())

	const n = 100
	seqs := make(chan uint64, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seqs <- svc.NextPreview()
		}()
	}
	wg.Wait()
	close(seqs)

	seen := make(map[uint64]bool, n)
	for s := range seqs {
		assert.False(t, seen[s], "duplicate sequence %d", s)
		seen[s] = true
	}
	assert.True(t, svc.IsCurrent(n))
}

// ─────────────────────────────────────────────
// SyncKinds
// ─────────────────────────────────────────────

func kindInfos(kinds ...payload.ContentKind) []payload.KindInfo {
	out := make([]payload.KindInfo, 0, len(kinds))
	for _, kind := range kinds {
		info, _ := payload.Lookup(kind)
		out = append(out, info)
	}
	return out
}

func TestClientQRService_Kinds_LocalBeforeSync(t *testing.T) {
	svc := NewClientQRService(nil, render.NewRenderer(), logger.Nop())

	assert.Equal(t, payload.Kinds(), svc.Kinds())
	assert.Equal(t, payload.Categories(), svc.Categories())
}

func TestClientQRService_SyncKinds_KeepsServedKindsInLocalOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientQRService(server, render.NewRenderer(), logger.Nop())

	served := kindInfos(payload.KindPhone, payload.KindURL)
	served = append(served, payload.KindInfo{Kind: "mastodon", Label: "Mastodon"})
	server.EXPECT().Kinds(gomock.Any()).Return(models.KindsResponse{Kinds: served}, nil)

	require.NoError(t, svc.SyncKinds(context.Background()))

	var got []payload.ContentKind
	for _, info := range svc.Kinds() {
		got = append(got, info.Kind)
		assert.NotEmpty(t, info.Fields, "forms come from the local registry")
	}
	assert.Equal(t, []payload.ContentKind{payload.KindURL, payload.KindPhone}, got)

	assert.Equal(t, []payload.Category{payload.CategoryLinks, payload.CategoryContact}, svc.Categories())
}

func TestClientQRService_SyncKinds_ErrorKeepsLocalRegistry(t *testing.T) {
	tests := []struct {
		name    string
		resp    models.KindsResponse
		err     error
		wantErr error
	}{
		{
			name:    "server unavailable",
			err:     fmt.Errorf("%w: down", adapter.ErrServiceUnavailable),
			wantErr: ErrCheckoutUnavailable,
		},
		{
			name:    "no known kinds",
			resp:    models.KindsResponse{Kinds: []payload.KindInfo{{Kind: "mastodon"}}},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			server := mock.NewMockServerAdapter(ctrl)
			svc := NewClientQRService(server, render.NewRenderer(), logger.Nop())
			server.EXPECT().Kinds(gomock.Any()).Return(tt.resp, tt.err)

			err := svc.SyncKinds(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, payload.Kinds(), svc.Kinds())
			assert.Equal(t, payload.Categories(), svc.Categories())
		})
	}
}

func TestClientQRService_SyncKinds_BoundsTheRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientQRService(server, render.NewRenderer(), logger.Nop())

	server.EXPECT().Kinds(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.KindsResponse, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return models.KindsResponse{Kinds: payload.Kinds()}, nil
	})

	require.NoError(t, svc.SyncKinds(context.Background()))
	assert.Equal(t, payload.Kinds(), svc.Kinds())
}
