// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate rejects values that are wrong for either binary, such as
// negative sizes. Required fields are checked by the per-binary views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.PreviewMaxSize < 0 {
		return fmt.Errorf("%w: negative preview size", ErrInvalidServerConfigs)
	}
	if cfg.History.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity", ErrInvalidHistoryConfigs)
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.SecretKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.PreviewMaxSize <= 0 {
		return ErrInvalidServerConfigs
	}

	p := cfg.Payment
	if p.StripeSecretKey == "" || p.WebhookSecret == "" || p.DigitalPriceID == "" || p.PrintPriceID == "" {
		return ErrInvalidPaymentConfigs
	}
	if p.SuccessURL == "" || p.CancelURL == "" {
		return fmt.Errorf("%w: success and cancel URLs are required", ErrInvalidPaymentConfigs)
	}

	if cfg.Storage.Ledger.DSN != "" && (cfg.Workers.LedgerRetention <= 0 || cfg.Workers.PruneInterval <= 0) {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.History.DSN == "" || strings.Contains(cfg.Storage.History.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.History.Capacity <= 0 {
		return ErrInvalidHistoryConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.CheckoutTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Export.DownloadDir == "" {
		return ErrInvalidExportConfigs
	}

	return nil
}
