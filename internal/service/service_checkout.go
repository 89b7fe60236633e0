// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
	"github.com/MKhiriev/go-qr-studio/models"
)

type checkoutService struct {
	provider adapter.PaymentProvider
	codec    snapshotCodec

	tokenSignKey  []byte
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewCheckoutService keeps no state of its own: everything needed after
// payment travels in the session metadata at the provider.
func NewCheckoutService(provider adapter.PaymentProvider, cfg config.App, logger *logger.Logger) (CheckoutService, error) {
	codec, err := newSnapshotCodec(cfg.SecretKey)
	if err != nil {
		return nil, err
	}
	tokenSignKey, err := utils.DeriveKey(cfg.SecretKey, utils.KeyPurposeDownload)
	if err != nil {
		return nil, fmt.Errorf("error deriving download token key: %w", err)
	}

	return &checkoutService{
		provider:      provider,
		codec:         codec,
		tokenSignKey:  tokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}, nil
}

func (s *checkoutService) Create(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error) {
	log := logger.FromContext(ctx)

	metadata, err := s.codec.encode(req.Snapshot(), req.Product)
	if err != nil {
		return models.CheckoutSession{}, err
	}

	session, err := s.provider.CreateSession(ctx, models.SessionParams{
		Product:  req.Product,
		Metadata: metadata,
	})
	if err != nil {
		log.Err(err).Str("product", string(req.Product)).Msg("error creating checkout session")
		return models.CheckoutSession{}, fmt.Errorf("%w: %w", ErrCheckoutUnavailable, err)
	}

	log.Info().
		Str("session_id", session.SessionID).
		Str("product", string(req.Product)).
		Int("metadata_keys", len(metadata)).
		Msg("checkout session created")

	return session, nil
}

func (s *checkoutService) Lookup(ctx context.Context, sessionID string) (models.Verification, error) {
	log := logger.FromContext(ctx).With().Str("session_id", sessionID).Logger()

	session, err := s.provider.GetSession(ctx, sessionID)
	switch {
	case errors.Is(err, adapter.ErrProviderSessionNotFound):
		return models.Verification{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	case err != nil:
		log.Err(err).Msg("error retrieving checkout session")
		return models.Verification{}, fmt.Errorf("%w: %w", ErrCheckoutUnavailable, err)
	}

	// the snapshot of an unpaid session is never decoded
	if !session.Paid {
		return models.Verification{}, ErrNotPaid
	}

	snapshot, product, err := s.codec.decode(session.Metadata)
	if err != nil {
		log.Warn().Err(err).Msg("paid session carries unusable metadata")
		return models.Verification{}, err
	}

	return models.Verification{
		SessionID:     session.ID,
		Paid:          true,
		Payload:       snapshot.Payload,
		Style:         snapshot.Style,
		Product:       product,
		CustomerEmail: session.CustomerEmail,
	}, nil
}

func (s *checkoutService) Verify(ctx context.Context, sessionID string) (models.Verification, error) {
	verification, err := s.Lookup(ctx, sessionID)
	if err != nil {
		return models.Verification{}, err
	}

	token, err := utils.GenerateDownloadToken(s.tokenIssuer, verification.SessionID, verification.Product, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Verification{}, fmt.Errorf("error issuing download token: %w", err)
	}
	verification.DownloadToken = token.SignedString

	logger.FromContext(ctx).Info().
		Str("session_id", verification.SessionID).
		Str("product", string(verification.Product)).
		Msg("checkout verified")

	return verification, nil
}

func (s *checkoutService) ParseDownloadToken(ctx context.Context, tokenString string) (models.DownloadToken, error) {
	token, err := utils.ValidateDownloadToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.DownloadToken{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}
