// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle of a runnable client application.
type Client interface {
	// Run executes one command described by args and returns when the
	// output is written.
	Run(ctx context.Context, args []string) error
}
