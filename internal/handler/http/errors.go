// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors returned for malformed query strings.
var (
	// ErrMissingTableParam is returned when the "table" query parameter of
	// /get_topic_ids is absent or empty.
	ErrMissingTableParam = errors.New("missing `table` query parameter")

	// ErrMissingPathParam is returned when the "path" query parameter of the
	// config value endpoint is absent or empty.
	ErrMissingPathParam = errors.New("missing `path` query parameter")
)
