package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the topologic server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// CopyToClipboard copies a printed config value to the clipboard.
	CopyToClipboard bool
	// ShowInfo switches the one-argument command to the registry row.
	ShowInfo bool
	// Args holds the positional arguments: the model table and an optional
	// dotted config path.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server-only settings are not validated here, so the client runs with just
// an adapter address.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		CopyToClipboard: cfg.Client.CopyToClipboard,
		ShowInfo:        cfg.Client.ShowInfo,
		Args:            cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
