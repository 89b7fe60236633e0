package config

import (
	"fmt"
	"time"
)

// ClientConfig is the validated view used by the terminal client.
type ClientConfig struct {
	App     App
	Adapter Adapter
	Storage ClientStorage
	History History
	Workers ClientWorkers
	Export  Export
}

// ClientStorage holds the client-local database.
type ClientStorage struct {
	History DB
}

// ClientWorkers holds the checkout polling schedule.
type ClientWorkers struct {
	PollInterval    time.Duration
	CheckoutTimeout time.Duration
}

// GetClientConfig loads the merged configuration and returns the validated
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	return clientCfg, clientCfg.validate()
}

// ClientConfig maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: ClientStorage{History: cfg.Storage.History},
		History: cfg.History,
		Workers: ClientWorkers{
			PollInterval:    cfg.Workers.PollInterval,
			CheckoutTimeout: cfg.Workers.CheckoutTimeout,
		},
		Export: cfg.Export,
	}
}
