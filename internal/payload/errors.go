// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import "errors"

// Errors returned while decoding content from the wire. Encoding itself never
// fails: incomplete input yields an empty or partial payload instead.
var (
	// ErrUnknownKind is returned when a kind string is not in the registry.
	ErrUnknownKind = errors.New("unknown content kind")

	// ErrInvalidFields is returned when the fields object does not match the
	// shape of the requested kind.
	ErrInvalidFields = errors.New("invalid content fields")

	// ErrEmptyContent is returned when a Content value has no fields attached.
	ErrEmptyContent = errors.New("content has no fields")
)
