// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/mock"
	"github.com/MKhiriev/go-qr-studio/internal/payload"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHistorySvc(ctrl *gomock.Controller) (ClientHistoryService, *mock.MockHistoryStore) {
	history := mock.NewMockHistoryStore(ctrl)
	return NewClientHistoryService(history, logger.Nop()), history
}

func TestClientHistoryService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, history := newTestHistorySvc(ctrl)
	ctx := context.Background()

	style := models.StyleSpec{Foreground: "#112233", Background: "#ffffff", Logo: "data:image/png;base64,AAAA"}
	want := []models.HistoryEntry{{ID: "id-1", Kind: payload.KindURL, Payload: "https://example.com"}}

	history.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.HistoryEntry) ([]models.HistoryEntry, error) {
			assert.Equal(t, payload.KindURL, entry.Kind)
			assert.Equal(t, "https://example.com", entry.Payload)
			assert.Equal(t, "https://example.com", entry.Label)
			// logos are not kept in history
			assert.Equal(t, models.HistoryStyle{Foreground: "#112233", Background: "#ffffff"}, entry.Style)
			return want, nil
		},
	)

	got, err := svc.Save(ctx, payload.URL{URL: "https://example.com"}, style)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientHistoryService_Save_NilFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestHistorySvc(ctrl)

	_, err := svc.Save(context.Background(), nil, models.DefaultStyle())

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientHistoryService_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, history := newTestHistorySvc(ctrl)
	ctx := context.Background()
	storeErr := errors.New("database is locked")

	history.EXPECT().Load(ctx).Return(nil, storeErr)
	history.EXPECT().Remove(ctx, "id-1").Return(nil, storeErr)
	history.EXPECT().Clear(ctx).Return(storeErr)
	history.EXPECT().Append(ctx, gomock.Any()).Return(nil, storeErr)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.Delete(ctx, "id-1")
	assert.ErrorIs(t, err, storeErr)

	assert.ErrorIs(t, svc.Clear(ctx), storeErr)

	_, err = svc.Save(ctx, payload.Text{Text: "x"}, models.DefaultStyle())
	assert.ErrorIs(t, err, storeErr)
}

func TestClientHistoryService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, history := newTestHistorySvc(ctrl)
	ctx := context.Background()

	entries := []models.HistoryEntry{{ID: "a"}, {ID: "b"}}
	history.EXPECT().Load(ctx).Return(entries, nil)
	history.EXPECT().Remove(ctx, "a").Return(entries[1:], nil)
	history.EXPECT().Clear(ctx).Return(nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	got, err = svc.Delete(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, entries[1:], got)

	assert.NoError(t, svc.Clear(ctx))
}
