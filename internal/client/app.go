// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/internal/tui"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run syncs the kind menu with the server, then blocks until the UI exits. A deliberate quit is not an error. Any
// checkout poll still running is stopped before Run returns.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.services.CheckoutJob.Stop()

	a.logger.Info().Msg("client started")

	if err := a.services.QRService.SyncKinds(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server kinds unavailable, showing the full local registry")
	}

	err := a.ui.Run(ctx)
	switch {
	case errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped by user")
		return nil
	case err != nil:
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
