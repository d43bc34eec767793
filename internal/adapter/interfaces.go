// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running topologic server.
//
// [ServerAdapter] hides the transport from the client. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty. Server
// status codes are mapped to the sentinel errors of errors.go so callers can
// use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-topologic/internal/iniconf"
	"github.com/MKhiriev/go-topologic/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the read-only client API of the topologic server.
type ServerAdapter interface {
	// GetVersion returns the version string reported by the server.
	GetVersion(ctx context.Context) (string, error)

	// ListModels returns the model registry.
	ListModels(ctx context.Context) ([]models.RegisteredModel, error)

	// GetModelConfig returns the parsed model_config.ini of table.
	GetModelConfig(ctx context.Context, table string) (*iniconf.Config, error)

	// GetModel returns the registry row of table, [ErrNotFound] when the
	// model was never loaded.
	GetModel(ctx context.Context, table string) (models.RegisteredModel, error)

	// LookupValue resolves a dotted path ("SECTION.key" or "key") in the
	// model config of table.
	LookupValue(ctx context.Context, table, path string) (string, error)
}
