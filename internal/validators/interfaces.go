// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// The model config validator checks the typed projection of a
// model_config.ini before the server registers and serves it.
package validators

import "context"

// Validator validates arbitrary values. Passing field names restricts the
// check to those fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
