// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/internal/store"
	"github.com/MKhiriev/go-qr-studio/internal/validators"
)

type Services struct {
	AppInfoService  AppInfoService
	EncodeService   EncodeService
	CheckoutService CheckoutService
	ArtifactService ArtifactService
	WebhookService  WebhookService
}

func NewServices(storages *store.Storages, provider adapter.PaymentProvider, renderer render.Renderer, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	checkoutService, err := NewCheckoutService(provider, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating checkout service: %w", err)
	}

	validator := validators.NewRequestValidator(cfg.Server.PreviewMaxSize)
	checkoutService = NewCheckoutValidationService(validator).Wrap(checkoutService)

	artifactService := NewArtifactService(renderer, checkoutService, cfg.Server.PreviewMaxSize, logger)
	artifactService = NewArtifactValidationService(validator).Wrap(artifactService)

	return &Services{
		AppInfoService:  appInfoService,
		EncodeService:   NewEncodeService(logger),
		CheckoutService: checkoutService,
		ArtifactService: artifactService,
		WebhookService:  NewWebhookService(provider, storages.WebhookLedger, logger),
	}, nil
}
