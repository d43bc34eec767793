// Package server runs the HTTP server of topologic together with its
// background workers, and shuts both down on SIGTERM, SIGINT or SIGQUIT.
package server
