package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-topologic/internal/iniconf"
	"github.com/MKhiriev/go-topologic/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ModelConfigService serves the configuration of topic models. Every
// model_config.ini is parsed once and cached until invalidated.
type ModelConfigService interface {
	// Load returns the cached parse of table, parsing it on first use.
	Load(ctx context.Context, table string) (*iniconf.Config, error)
	// LoadAll loads every model found under the web app root and returns
	// the tables that loaded.
	LoadAll(ctx context.Context) ([]string, error)

	GetModelConfig(ctx context.Context, table string) (models.ModelConfig, error)
	Lookup(ctx context.Context, table, path string) (string, error)
	TopicIDs(ctx context.Context, table string) ([]int, error)
	GetAppConfig(ctx context.Context, table string) (models.AppConfig, error)
	ListModels(ctx context.Context) ([]models.RegisteredModel, error)
	// GetRegisteredModel returns the registry row of table.
	GetRegisteredModel(ctx context.Context, table string) (models.RegisteredModel, error)

	// Invalidate drops the cached parse of table. The next Load re-reads it.
	Invalidate(table string)
	// LoadedTables returns the tables currently cached, sorted.
	LoadedTables() []string
}
