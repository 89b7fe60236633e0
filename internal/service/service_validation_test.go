// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-qr-studio/internal/mock"
	"github.com/MKhiriev/go-qr-studio/internal/validators"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// CheckoutValidationService
// ─────────────────────────────────────────────

func newValidatedCheckout(ctrl *gomock.Controller) (CheckoutService, *mock.MockCheckoutService) {
	inner := mock.NewMockCheckoutService(ctrl)
	return NewCheckoutValidationService(validators.NewRequestValidator(512)).Wrap(inner), inner
}

func TestCheckoutValidation_Create_ForwardsUnchangedRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedCheckout(ctrl)
	ctx := context.Background()

	// empty colors are validated as defaults but forwarded as submitted
	req := models.CheckoutRequest{Payload: "hello", Product: models.ProductDigital}
	inner.EXPECT().Create(ctx, req).Return(models.CheckoutSession{SessionID: "cs"}, nil)

	session, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "cs", session.SessionID)
}

func TestCheckoutValidation_Create_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CheckoutRequest
		wantErr error
	}{
		{
			name:    "empty payload",
			req:     models.CheckoutRequest{Product: models.ProductDigital},
			wantErr: validators.ErrEmptyPayload,
		},
		{
			name:    "unknown product",
			req:     models.CheckoutRequest{Payload: "x", Product: "poster"},
			wantErr: validators.ErrUnknownProduct,
		},
		{
			name: "low contrast",
			req: models.CheckoutRequest{
				Payload: "x", Product: models.ProductPrint,
				Style: models.StyleSpec{Foreground: "#eeeeee", Background: "#ffffff"},
			},
			wantErr: validators.ErrLowContrast,
		},
		{
			name: "other error correction",
			req: models.CheckoutRequest{
				Payload: "x", Product: models.ProductPrint,
				Style: models.StyleSpec{ErrorCorrection: "L"},
			},
			wantErr: validators.ErrInvalidErrorCorrection,
		},
		{
			name: "logo too large for session metadata",
			req: models.CheckoutRequest{
				Payload: "x", Product: models.ProductDigital,
				Style: models.StyleSpec{Logo: "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, 40<<10))},
			},
			wantErr: validators.ErrSnapshotTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newValidatedCheckout(ctrl)

			_, err := svc.Create(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckoutValidation_SessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedCheckout(ctrl)
	ctx := context.Background()

	for _, id := range []string{"", "  ", "cs/../x", "cs?x=1"} {
		_, err := svc.Verify(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidDataProvided, "id %q", id)

		_, err = svc.Lookup(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidDataProvided, "id %q", id)
	}

	inner.EXPECT().Verify(ctx, "cs_test_a1").Return(models.Verification{SessionID: "cs_test_a1"}, nil)
	_, err := svc.Verify(ctx, "cs_test_a1")
	assert.NoError(t, err)
}

func TestCheckoutValidation_ParseDownloadToken_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedCheckout(ctrl)

	_, err := svc.ParseDownloadToken(context.Background(), "")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// ArtifactValidationService
// ─────────────────────────────────────────────

func newValidatedArtifacts(ctrl *gomock.Controller) (ArtifactService, *mock.MockArtifactService) {
	inner := mock.NewMockArtifactService(ctrl)
	return NewArtifactValidationService(validators.NewRequestValidator(512)).Wrap(inner), inner
}

func TestArtifactValidation_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedArtifacts(ctrl)
	ctx := context.Background()

	_, err := svc.Preview(ctx, models.PreviewRequest{Payload: "x", Size: 1024})
	assert.ErrorIs(t, err, validators.ErrInvalidSize)

	_, err = svc.Preview(ctx, models.PreviewRequest{Payload: "x", Format: models.FormatPDF})
	assert.ErrorIs(t, err, validators.ErrUnknownFormat)

	req := models.PreviewRequest{Payload: "x", Size: 512}
	inner.EXPECT().Preview(ctx, req).Return(models.Artifact{Format: models.FormatPNG}, nil)
	_, err = svc.Preview(ctx, req)
	assert.NoError(t, err)
}

func TestArtifactValidation_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedArtifacts(ctrl)
	ctx := context.Background()
	token := downloadToken("cs_1", models.ProductPrint)

	_, err := svc.Export(ctx, models.DownloadToken{}, models.ExportRequest{Format: models.FormatPNG})
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.Export(ctx, token, models.ExportRequest{Format: "gif"})
	assert.ErrorIs(t, err, validators.ErrUnknownFormat)

	_, err = svc.Export(ctx, token, models.ExportRequest{Format: models.FormatPNG, Size: 5000})
	assert.ErrorIs(t, err, validators.ErrInvalidSize)

	req := models.ExportRequest{Format: models.FormatPNG, Size: 4096}
	inner.EXPECT().Export(ctx, token, req).Return(models.Artifact{Format: models.FormatPNG}, nil)
	_, err = svc.Export(ctx, token, req)
	assert.NoError(t, err)
}
