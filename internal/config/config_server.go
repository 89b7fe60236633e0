// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the validated view used by the HTTP server.
type ServerConfig struct {
	App     App
	Server  Server
	Payment Payment
	Storage ServerStorage
	Workers ServerWorkers
}

// ServerStorage holds the optional webhook ledger. An empty DSN disables it.
type ServerStorage struct {
	Ledger DB
}

// ServerWorkers holds the ledger pruning schedule.
type ServerWorkers struct {
	LedgerRetention time.Duration
	PruneInterval   time.Duration
}

// GetServerConfig loads the merged configuration and returns the validated
// server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerConfig()
	return serverCfg, serverCfg.validate()
}

// ServerConfig maps the fields relevant to the server runtime.
func (cfg *StructuredConfig) ServerConfig() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Payment: cfg.Payment,
		Storage: ServerStorage{Ledger: cfg.Storage.Ledger},
		Workers: ServerWorkers{
			LedgerRetention: cfg.Workers.LedgerRetention,
			PruneInterval:   cfg.Workers.PruneInterval,
		},
	}
}
