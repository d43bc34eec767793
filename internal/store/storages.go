package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-topologic/internal/config"
	"github.com/MKhiriev/go-topologic/internal/logger"
)

// Storages aggregates every storage the services depend on.
type Storages struct {
	ModelRepository  ModelRepository
	ModelFileStorage ModelFileStorage

	db *DB
}

// NewStorages connects to the registry database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting registry database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		ModelRepository:  NewModelRepository(db, log),
		ModelFileStorage: NewModelFileStorage(cfg.Files.WebAppPath, log),
		db:               db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
