// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegisteredModel is a row of the model registry. One row exists per model
// directory the server has loaded at least once.
type RegisteredModel struct {
	// TableName identifies the model and its directory under the web app root.
	TableName string `json:"table_name"`

	// ObjectLevel, Topics and Method summarize the model configuration.
	ObjectLevel string `json:"object_level"`
	Topics      int    `json:"topics"`
	Method      string `json:"method"`

	// CorpusSize is the number of documents in the model.
	CorpusSize int `json:"corpus_size"`

	// LoadedAt is the last time the server parsed the model configuration.
	LoadedAt time.Time `json:"loaded_at"`
}

// NewRegisteredModel builds the registry row for table from its typed
// configuration.
func NewRegisteredModel(table string, cfg ModelConfig, loadedAt time.Time) RegisteredModel {
	return RegisteredModel{
		TableName:   table,
		ObjectLevel: cfg.ObjectLevel,
		Topics:      cfg.Topics,
		Method:      cfg.Method,
		CorpusSize:  cfg.CorpusSize,
		LoadedAt:    loadedAt.UTC(),
	}
}
