// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can start the
// server: a listen address, a registry DSN and a web app root are required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address %q, request timeout %s",
			ErrInvalidServerConfigs, cfg.Server.HTTPAddress, cfg.Server.RequestTimeout)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Files.WebAppPath == "" {
		return fmt.Errorf("%w: empty web app path", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.WatchDebounce < 0 {
		return fmt.Errorf("%w: negative watch debounce", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
