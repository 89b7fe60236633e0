// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/mock"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	SecretKey:     "test-secret",
	TokenIssuer:   "qr-studio-test",
	TokenDuration: time.Hour,
	Version:       "1.0.0",
}

func newTestCheckoutSvc(t *testing.T, ctrl *gomock.Controller) (*checkoutService, *mock.MockPaymentProvider) {
	t.Helper()
	provider := mock.NewMockPaymentProvider(ctrl)

	svc, err := NewCheckoutService(provider, testAppConfig, logger.Nop())
	require.NoError(t, err)

	return svc.(*checkoutService), provider
}

// paidSession builds the provider view of a paid session carrying req.
func paidSession(t *testing.T, svc *checkoutService, id string, req models.CheckoutRequest) models.ProviderSession {
	t.Helper()
	metadata, err := svc.codec.encode(req.Snapshot(), req.Product)
	require.NoError(t, err)
	return models.ProviderSession{ID: id, Paid: true, CustomerEmail: "buyer@example.com", Metadata: metadata}
}

var testCheckoutRequest = models.CheckoutRequest{
	Payload: "WIFI:T:WPA;S:Home;P:secret;;",
	Style:   models.StyleSpec{Foreground: "#1a2b3c", Background: "#fafafa", ErrorCorrection: "H"},
	Product: models.ProductPrint,
}

// ─────────────────────────────────────────────
// NewCheckoutService
// ─────────────────────────────────────────────

func TestNewCheckoutService_EmptySecret(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, err := NewCheckoutService(mock.NewMockPaymentProvider(ctrl), config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCheckoutService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider := newTestCheckoutSvc(t, ctrl)
	ctx := context.Background()

	provider.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params models.SessionParams) (models.CheckoutSession, error) {
			assert.Equal(t, models.ProductPrint, params.Product)
			assert.Equal(t, "print", params.Metadata[models.MetadataKeyProduct])
			assert.Equal(t, "1", params.Metadata[metadataKeyParts])
			assert.NotEmpty(t, params.Metadata[metadataKeySig])
			return models.CheckoutSession{SessionID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil
		},
	)

	session, err := svc.Create(ctx, testCheckoutRequest)

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)
}

func TestCheckoutService_Create_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider := newTestCheckoutSvc(t, ctrl)

	provider.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		Return(models.CheckoutSession{}, adapter.ErrProviderUnavailable)

	_, err := svc.Create(context.Background(), testCheckoutRequest)

	assert.ErrorIs(t, err, ErrCheckoutUnavailable)
}

func TestCheckoutService_Create_SnapshotTooLarge_NoProviderCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCheckoutSvc(t, ctrl)

	req := testCheckoutRequest
	req.Style.Logo = "data:image/png;base64," + strings.Repeat("A", 30000)

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrSnapshotTooLarge)
}

// ─────────────────────────────────────────────
// Lookup / Verify
// ─────────────────────────────────────────────

func TestCheckoutService_Verify_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider := newTestCheckoutSvc(t, ctrl)
	ctx := context.Background()

	var captured map[string]string
	provider.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params models.SessionParams) (models.CheckoutSession, error) {
			captured = params.Metadata
			return models.CheckoutSession{SessionID: "cs_rt", URL: "https://pay"}, nil
		},
	)
	provider.EXPECT().GetSession(ctx, "cs_rt").DoAndReturn(
		func(_ context.Context, id string) (models.ProviderSession, error) {
			return models.ProviderSession{ID: id, Paid: true, Metadata: captured}, nil
		},
	)

	_, err := svc.Create(ctx, testCheckoutRequest)
	require.NoError(t, err)

	verification, err := svc.Verify(ctx, "cs_rt")
	require.NoError(t, err)

	assert.True(t, verification.Paid)
	assert.Equal(t, testCheckoutRequest.Snapshot(), verification.Snapshot())
	assert.Equal(t, models.ProductPrint, verification.Product)
	assert.NotEmpty(t, verification.DownloadToken)
}

func TestCheckoutService_Verify_IssuesTokenForSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider := newTestCheckoutSvc(t, ctrl)
	ctx := context.Background()

	provider.EXPECT().GetSession(ctx, "cs_paid").Return(paidSession(t, svc, "cs_paid", testCheckoutRequest), nil)

	verification, err := svc.Verify(ctx, "cs_paid")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", verification.CustomerEmail)

	token, err := svc.ParseDownloadToken(ctx, verification.DownloadToken)
	require.NoError(t, err)
	assert.Equal(t, "cs_paid", token.SessionID())
	assert.Equal(t, models.ProductPrint, token.Product)
	assert.Equal(t, testAppConfig.TokenIssuer, token.Issuer)
}

func TestCheckoutService_Lookup_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, provider := newTestCheckoutSvc(t, ctrl)

	provider.EXPECT().GetSession(gomock.Any(), "cs_paid").Return(paidSession(t, svc, "cs_paid", testCheckoutRequest), nil)

	verification, err := svc.Lookup(context.Background(), "cs_paid")

	require.NoError(t, err)
	assert.Empty(t, verification.DownloadToken)
	assert.Equal(t, testCheckoutRequest.Payload, verification.Payload)
}

func TestCheckoutService_Verify_Errors(t *testing.T) {
	tests := []struct {
		name    string
		session func(svc *checkoutService) models.ProviderSession
		err     error
		wantErr error
	}{
		{
			name:    "session not found",
			err:     adapter.ErrProviderSessionNotFound,
			wantErr: ErrSessionNotFound,
		},
		{
			name:    "provider unavailable",
			err:     adapter.ErrProviderUnavailable,
			wantErr: ErrCheckoutUnavailable,
		},
		{
			name:    "unexpected provider error",
			err:     errors.New("boom"),
			wantErr: ErrCheckoutUnavailable,
		},
		{
			name: "not paid",
			session: func(*checkoutService) models.ProviderSession {
				// unpaid sessions are rejected before the metadata is read
				return models.ProviderSession{ID: "cs", Paid: false, Metadata: map[string]string{"qr_parts": "x"}}
			},
			wantErr: ErrNotPaid,
		},
		{
			name: "paid without metadata",
			session: func(*checkoutService) models.ProviderSession {
				return models.ProviderSession{ID: "cs", Paid: true}
			},
			wantErr: ErrMalformedMetadata,
		},
		{
			name: "paid with tampered payload",
			session: func(svc *checkoutService) models.ProviderSession {
				metadata, _ := svc.codec.encode(testCheckoutRequest.Snapshot(), models.ProductDigital)
				metadata[chunkKey(0)] = strings.Replace(metadata[chunkKey(0)], "Home", "Evil", 1)
				return models.ProviderSession{ID: "cs", Paid: true, Metadata: metadata}
			},
			wantErr: ErrMalformedMetadata,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, provider := newTestCheckoutSvc(t, ctrl)

			var session models.ProviderSession
			if tt.session != nil {
				session = tt.session(svc)
			}
			provider.EXPECT().GetSession(gomock.Any(), "cs").Return(session, tt.err)

			verification, err := svc.Verify(context.Background(), "cs")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, verification.DownloadToken)
		})
	}
}

// ─────────────────────────────────────────────
// ParseDownloadToken
// ─────────────────────────────────────────────

func TestCheckoutService_ParseDownloadToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCheckoutSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseDownloadToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// signed with the snapshot key instead of the download key
	wrongKey, err := utils.DeriveKey(testAppConfig.SecretKey, utils.KeyPurposeSnapshot)
	require.NoError(t, err)
	token, err := utils.GenerateDownloadToken(testAppConfig.TokenIssuer, "cs", models.ProductDigital, time.Hour, wrongKey)
	require.NoError(t, err)

	_, err = svc.ParseDownloadToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCheckoutService_ParseDownloadToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCheckoutSvc(t, ctrl)

	token, err := utils.GenerateDownloadToken(testAppConfig.TokenIssuer, "cs", models.ProductDigital, time.Nanosecond, svc.tokenSignKey)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	_, err = svc.ParseDownloadToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
