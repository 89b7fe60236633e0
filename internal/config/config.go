// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by the server and the
// client binaries. Each binary validates only the groups it uses, through
// [GetServerConfig] and [GetClientConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application secret, download token parameters, the
	// version and the log level.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and HTTP limits.
	Server Server `envPrefix:"SERVER_"`

	// Payment holds the Stripe credentials, price ids and redirect URLs.
	Payment Payment `envPrefix:"PAYMENT_"`

	// Storage holds the webhook ledger and local history DSNs.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// History holds the local history policy.
	History History `envPrefix:"HISTORY_"`

	// Workers holds polling and pruning schedules.
	Workers Workers `envPrefix:"WORKERS_"`

	// Export holds where the client writes purchased artifacts.
	Export Export `envPrefix:"EXPORT_"`

	// JSONFilePath is the optional JSON config file, from CONFIG or -c/-config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// SecretKey is the root secret. Snapshot signatures and download tokens
	// use keys derived from it, never the secret itself.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// TokenIssuer is the "iss" claim of download tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a download token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PublicURL is the externally reachable base URL, used to build
	// checkout redirect URLs when none are configured explicitly.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// PreviewMaxSize caps the pixel size of /api/preview renders.
	// Env: SERVER_PREVIEW_MAX_SIZE
	PreviewMaxSize int `env:"PREVIEW_MAX_SIZE"`
}

// Payment holds the hosted checkout settings.
type Payment struct {
	// StripeSecretKey is the Stripe API key (sk_...).
	// Env: PAYMENT_STRIPE_SECRET_KEY
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`

	// WebhookSecret verifies webhook signatures (whsec_...).
	// Env: PAYMENT_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// DigitalPriceID is the Stripe price of the digital product.
	// Env: PAYMENT_DIGITAL_PRICE_ID
	DigitalPriceID string `env:"DIGITAL_PRICE_ID"`

	// PrintPriceID is the Stripe price of the print product.
	// Env: PAYMENT_PRINT_PRICE_ID
	PrintPriceID string `env:"PRINT_PRICE_ID"`

	// SuccessURL is where Stripe sends the customer after paying. The
	// literal {CHECKOUT_SESSION_ID} is replaced by Stripe.
	// Env: PAYMENT_SUCCESS_URL
	SuccessURL string `env:"SUCCESS_URL"`

	// CancelURL is where Stripe sends the customer on cancel.
	// Env: PAYMENT_CANCEL_URL
	CancelURL string `env:"CANCEL_URL"`
}

// Storage groups persistence backends.
type Storage struct {
	// Ledger is the optional Postgres webhook ledger.
	Ledger DB `envPrefix:"LEDGER_"`

	// History is the client-local SQLite database.
	History DB `envPrefix:"HISTORY_"`
}

// DB holds a database connection string.
type DB struct {
	// DSN is the driver-specific connection string.
	// Env: STORAGE_LEDGER_DATABASE_URI, STORAGE_HISTORY_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's outbound settings.
type Adapter struct {
	// HTTPAddress is the server address, host:port or a full base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// History holds the local history policy.
type History struct {
	// Capacity is the maximum number of kept entries.
	// Env: HISTORY_CAPACITY
	Capacity int `env:"CAPACITY"`
}

// Workers holds background job schedules.
type Workers struct {
	// PollInterval is how often the client re-verifies a pending checkout.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// CheckoutTimeout bounds how long the client waits for payment.
	// Env: WORKERS_CHECKOUT_TIMEOUT
	CheckoutTimeout time.Duration `env:"CHECKOUT_TIMEOUT"`

	// LedgerRetention is how long webhook events are kept.
	// Env: WORKERS_LEDGER_RETENTION
	LedgerRetention time.Duration `env:"LEDGER_RETENTION"`

	// PruneInterval is how often the ledger pruner runs.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// Export holds client download settings.
type Export struct {
	// DownloadDir receives purchased artifacts.
	// Env: EXPORT_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Defaults applied beneath every other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultPreviewMaxSize  = 512
	DefaultTokenIssuer     = "qr-studio"
	DefaultTokenDuration   = time.Hour
	DefaultLogLevel        = "info"
	DefaultAdapterTimeout  = 10 * time.Second
	DefaultHistoryDSN      = "qr-studio.db"
	DefaultHistoryCapacity = 20
	DefaultPollInterval    = 2 * time.Second
	DefaultCheckoutTimeout = 10 * time.Minute
	DefaultLedgerRetention = 30 * 24 * time.Hour
	DefaultPruneInterval   = time.Hour
	DefaultDownloadDir     = "."
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			PreviewMaxSize: DefaultPreviewMaxSize,
		},
		Storage: Storage{
			History: DB{DSN: DefaultHistoryDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		History: History{Capacity: DefaultHistoryCapacity},
		Workers: Workers{
			PollInterval:    DefaultPollInterval,
			CheckoutTimeout: DefaultCheckoutTimeout,
			LedgerRetention: DefaultLedgerRetention,
			PruneInterval:   DefaultPruneInterval,
		},
		Export: Export{DownloadDir: DefaultDownloadDir},
	}
}

// GetStructuredConfig loads and merges the configuration. For every field
// the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
