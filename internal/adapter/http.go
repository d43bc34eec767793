package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/iniconf"
	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/utils"
	"github.com/MKhiriev/go-topologic/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// configValue mirrors the body of GET /api/model-config/{table}/value.
type configValue struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. A scheme-less address gets "http://".
//
// Returns [ErrInvalidAddress] if adapterCfg.HTTPAddress is empty or is not a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) ListModels(ctx context.Context) ([]models.RegisteredModel, error) {
	var registered []models.RegisteredModel
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&registered).
		Get("/api/models")
	if err != nil {
		return nil, fmt.Errorf("list models request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return registered, nil
}

func (h *httpServerAdapter) GetModel(ctx context.Context, table string) (models.RegisteredModel, error) {
	var registered models.RegisteredModel
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("table", table).
		SetResult(&registered).
		Get("/api/models/{table}")
	if err != nil {
		return models.RegisteredModel{}, fmt.Errorf("model request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisteredModel{}, err
	}

	return registered, nil
}

func (h *httpServerAdapter) GetModelConfig(ctx context.Context, table string) (*iniconf.Config, error) {
	cfg := &iniconf.Config{}
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("table", table).
		SetResult(cfg).
		Get("/api/model-config/{table}")
	if err != nil {
		return nil, fmt.Errorf("model config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (h *httpServerAdapter) LookupValue(ctx context.Context, table, path string) (string, error) {
	var value configValue
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("table", table).
		SetQueryParam("path", path).
		SetResult(&value).
		Get("/api/model-config/{table}/value")
	if err != nil {
		return "", fmt.Errorf("config value request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("table", table).Str("path", value.Path).Msg("config value received")
	return value.Value, nil
}
