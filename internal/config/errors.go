package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete.
var (
	// ErrInvalidAppConfigs indicates a missing secret, issuer or token
	// duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or bad
	// HTTP limits.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPaymentConfigs indicates missing Stripe credentials, price
	// ids or redirect URLs.
	ErrInvalidPaymentConfigs = errors.New("invalid payment configuration")
	// ErrInvalidAdapterConfigs indicates a missing server address or
	// request timeout on the client.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory history DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidHistoryConfigs indicates a non-positive history capacity.
	ErrInvalidHistoryConfigs = errors.New("invalid history configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive interval or timeout.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidExportConfigs indicates an empty download directory.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
)
