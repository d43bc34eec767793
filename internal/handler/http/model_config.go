// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/utils"
)

// configValue is the body of GET /api/model-config/{table}/value.
type configValue struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

func (h *Handler) listModels(w http.ResponseWriter, r *http.Request) {
	registered, err := h.services.ModelConfigService.ListModels(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listModels", err)
		return
	}

	h.writeJSON(w, r, "*Handler.listModels", registered)
}

func (h *Handler) getRegisteredModel(w http.ResponseWriter, r *http.Request) {
	registered, err := h.services.ModelConfigService.GetRegisteredModel(r.Context(), chi.URLParam(r, "table"))
	if err != nil {
		writeError(w, r, "*Handler.getRegisteredModel", err)
		return
	}

	h.writeJSON(w, r, "*Handler.getRegisteredModel", registered)
}

// getModelConfig answers with the typed description of a model.
func (h *Handler) getModelConfig(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	modelConfig, err := h.services.ModelConfigService.GetModelConfig(r.Context(), table)
	if err != nil {
		writeError(w, r, "*Handler.getModelConfig", err)
		return
	}

	h.writeJSON(w, r, "*Handler.getModelConfig", modelConfig)
}

func (h *Handler) getTopicIDs(w http.ResponseWriter, r *http.Request) {
	table := r.URL.Query().Get("table")
	if table == "" {
		writeError(w, r, "*Handler.getTopicIDs", ErrMissingTableParam)
		return
	}

	ids, err := h.services.ModelConfigService.TopicIDs(r.Context(), table)
	if err != nil {
		writeError(w, r, "*Handler.getTopicIDs", err)
		return
	}

	h.writeJSON(w, r, "*Handler.getTopicIDs", ids)
}

// getParsedConfig answers with the raw parse of model_config.ini: sections
// as nested objects, top-level keys as strings.
func (h *Handler) getParsedConfig(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	cfg, err := h.services.ModelConfigService.Load(r.Context(), table)
	if err != nil {
		writeError(w, r, "*Handler.getParsedConfig", err)
		return
	}

	h.writeJSON(w, r, "*Handler.getParsedConfig", cfg)
}

func (h *Handler) getConfigValue(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, r, "*Handler.getConfigValue", ErrMissingPathParam)
		return
	}

	value, err := h.services.ModelConfigService.Lookup(r.Context(), table, path)
	if err != nil {
		writeError(w, r, "*Handler.getConfigValue", err)
		return
	}

	h.writeJSON(w, r, "*Handler.getConfigValue", configValue{Path: path, Value: value})
}

func (h *Handler) getAppConfig(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	appConfig, err := h.services.ModelConfigService.GetAppConfig(r.Context(), table)
	if err != nil {
		writeError(w, r, "*Handler.getAppConfig", err)
		return
	}

	h.writeJSON(w, r, "*Handler.getAppConfig", appConfig)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, fn string, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}
