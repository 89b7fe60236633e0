// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input checks shared by the server handlers and
// the terminal client.
//
// Two kinds of checks live here:
//   - shape predicates (IsEmail, IsPhone, IsURL) and NormalizeURL, used by
//     forms for inline hints and never by the payload encoder;
//   - a Validator for transport inputs (styles, checkout, preview and export
//     requests) with optional field-level scoping.
package validators

import "context"

// Validator validates arbitrary input. When field names are given, only
// those fields are checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
