package server

import "context"

// Server defines the lifecycle of the transport server managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is cancelled, a stop signal
	// arrives or the listener fails, then shuts down gracefully.
	RunServer(ctx context.Context) error
}
