// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
)

type keyValueRepository struct {
	*DB
	logger *logger.Logger
}

func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &keyValueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.DB.QueryRowContext(ctx, getValue, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		log.Err(err).
			Str("func", "keyValueRepository.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *keyValueRepository) Put(ctx context.Context, key, value string) error {
	if _, err := r.DB.ExecContext(ctx, putValue, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueRepository.Put").
			Str("key", key).
			Msg("failed to write value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *keyValueRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, deleteValue, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueRepository.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
