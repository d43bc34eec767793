package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-topologic/models"
)

// ModelRepository persists the registry of loaded models.
type ModelRepository interface {
	// SaveModel inserts the row for model.TableName or replaces it.
	SaveModel(ctx context.Context, model models.RegisteredModel) error
	// ListModels returns every registered model ordered by table name.
	ListModels(ctx context.Context) ([]models.RegisteredModel, error)
	// FindModel returns the row for table or [ErrModelNotFound].
	FindModel(ctx context.Context, table string) (models.RegisteredModel, error)
}

// ModelFileStorage reads model directories under the web app root.
type ModelFileStorage interface {
	// ReadModelConfig returns the raw model_config.ini text of table.
	ReadModelConfig(ctx context.Context, table string) (string, error)
	// ReadAppConfig decodes appConfig.json of table.
	ReadAppConfig(ctx context.Context, table string) (models.AppConfig, error)
	// ModelDir returns the directory of table.
	ModelDir(table string) (string, error)
	// ConfigPath returns the path of model_config.ini of table.
	ConfigPath(table string) (string, error)
	// ListTables returns the names of every directory holding a
	// model_config.ini, sorted.
	ListTables(ctx context.Context) ([]string, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
