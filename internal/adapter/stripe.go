// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/models"
)

// Checkout session events handled by the webhook. Anything else is
// acknowledged and recorded without a session.
const (
	eventSessionCompleted      = "checkout.session.completed"
	eventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	eventAsyncPaymentFailed    = "checkout.session.async_payment_failed"
	eventSessionExpired        = "checkout.session.expired"
)

type stripeProvider struct {
	sessions      *checkoutsession.Client
	webhookSecret string
	prices        map[models.Product]string
	successURL    string
	cancelURL     string

	logger *logger.Logger
}

// NewStripeProvider builds a [PaymentProvider] on Stripe Checkout using
// the secret key, webhook secret and price ids of cfg.
func NewStripeProvider(cfg config.Payment, logger *logger.Logger) PaymentProvider {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     stripeLogger{logger: logger},
	})
	return newStripeProvider(&checkoutsession.Client{B: backend, Key: cfg.StripeSecretKey}, cfg, logger)
}

func newStripeProvider(sessions *checkoutsession.Client, cfg config.Payment, logger *logger.Logger) *stripeProvider {
	return &stripeProvider{
		sessions:      sessions,
		webhookSecret: cfg.WebhookSecret,
		prices: map[models.Product]string{
			models.ProductDigital: cfg.DigitalPriceID,
			models.ProductPrint:   cfg.PrintPriceID,
		},
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		logger:     logger,
	}
}

func (s *stripeProvider) CreateSession(ctx context.Context, params models.SessionParams) (models.CheckoutSession, error) {
	log := logger.FromContext(ctx)

	price := s.prices[params.Product]
	if price == "" {
		return models.CheckoutSession{}, fmt.Errorf("%w: %q", ErrUnknownProduct, params.Product)
	}

	p := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(price), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}
	p.Context = ctx
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	sess, err := s.sessions.New(p)
	if err != nil {
		log.Err(err).Str("func", "*stripeProvider.CreateSession").Msg("error creating checkout session")
		return models.CheckoutSession{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	return models.CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}

func (s *stripeProvider) GetSession(ctx context.Context, sessionID string) (models.ProviderSession, error) {
	log := logger.FromContext(ctx)

	p := &stripe.CheckoutSessionParams{}
	p.Context = ctx

	sess, err := s.sessions.Get(sessionID, p)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) &&
			(stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing) {
			return models.ProviderSession{}, ErrProviderSessionNotFound
		}
		log.Err(err).Str("func", "*stripeProvider.GetSession").Str("session_id", sessionID).Msg("error retrieving checkout session")
		return models.ProviderSession{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	return toProviderSession(sess), nil
}

func (s *stripeProvider) ParseWebhook(body []byte, signatureHeader string) (models.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(body, signatureHeader, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return models.WebhookEvent{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	out := models.WebhookEvent{
		ID:        event.ID,
		Type:      string(event.Type),
		CreatedAt: time.Unix(event.Created, 0).UTC(),
	}

	switch out.Type {
	case eventSessionCompleted, eventAsyncPaymentSucceeded, eventAsyncPaymentFailed, eventSessionExpired:
		if event.Data == nil {
			return out, nil
		}
		var sess stripe.CheckoutSession
		if err = json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return models.WebhookEvent{}, fmt.Errorf("error decoding checkout session of event %s: %w", event.ID, err)
		}
		ps := toProviderSession(&sess)
		out.SessionID = ps.ID
		out.Paid = ps.Paid
		out.Product = models.Product(ps.Metadata[models.MetadataKeyProduct])
	}

	return out, nil
}

func toProviderSession(sess *stripe.CheckoutSession) models.ProviderSession {
	email := sess.CustomerEmail
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		email = sess.CustomerDetails.Email
	}

	return models.ProviderSession{
		ID:            sess.ID,
		Paid:          sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		CustomerEmail: email,
		Metadata:      sess.Metadata,
	}
}

// stripeLogger routes stripe-go diagnostics into the application logger.
type stripeLogger struct {
	logger *logger.Logger
}

func (l stripeLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Str("component", "stripe").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l stripeLogger) Infof(format string, v ...any) {
	l.logger.Debug().Str("component", "stripe").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l stripeLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Str("component", "stripe").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l stripeLogger) Errorf(format string, v ...any) {
	l.logger.Error().Str("component", "stripe").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
