// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-qr-studio/internal/adapter"
	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/internal/store"
)

type ClientServices struct {
	QRService       ClientQRService
	HistoryService  ClientHistoryService
	CheckoutService ClientCheckoutService
	CheckoutJob     ClientCheckoutJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, renderer render.Renderer, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	checkoutSvc := NewClientCheckoutService(serverAdapter, cfg.Export.DownloadDir, logger)

	return &ClientServices{
		QRService:       NewClientQRService(serverAdapter, renderer, logger),
		HistoryService:  NewClientHistoryService(localStore.History, logger),
		CheckoutService: checkoutSvc,
		CheckoutJob:     NewClientCheckoutJob(checkoutSvc, cfg.Workers.PollInterval, cfg.Workers.CheckoutTimeout, logger),
	}
}
