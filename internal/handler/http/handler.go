// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/service"
)

// maxWebhookBodyBytes bounds the webhook payload read into memory. Stripe
// caps event payloads well below this.
const maxWebhookBodyBytes = 1 << 16

// maxJSONBodyBytes bounds JSON request bodies. Logos are embedded as data
// URLs, so this has to leave room for them.
const maxJSONBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
