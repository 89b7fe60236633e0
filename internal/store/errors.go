// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateEvent is returned when a webhook event with the same
	// provider id is already in the ledger. Providers deliver at least once,
	// so callers treat it as an acknowledged delivery.
	ErrDuplicateEvent = errors.New("webhook event already recorded")

	// ErrLedgerUnavailable wraps transient ledger failures (lost connection,
	// serialization failure). The delivery may be retried by the provider.
	ErrLedgerUnavailable = errors.New("webhook ledger temporarily unavailable")

	// ErrKeyNotFound is returned by [KeyValueRepository.Get] for a key that
	// was never written or has been deleted.
	ErrKeyNotFound = errors.New("key not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
