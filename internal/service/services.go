package service

import (
	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/store"
	"github.com/MKhiriev/go-topologic/internal/validators"
	"github.com/MKhiriev/go-topologic/models"
)

type Services struct {
	AppInfoService     AppInfoService
	ModelConfigService ModelConfigService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfoService,
		ModelConfigService: NewModelConfigService(
			storages.ModelFileStorage,
			storages.ModelRepository,
			validators.NewModelConfigValidator(),
			logger,
			WithStrictConfig(cfg.App.StrictConfig),
		),
	}, nil
}
