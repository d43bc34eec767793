package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/models"
)

// File names inside a model directory.
const (
	ModelConfigFile = "model_config.ini"
	AppConfigFile   = "appConfig.json"
	DistDir         = "dist"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateTableName returns [ErrInvalidTableName] unless table is a
// non-empty run of ASCII letters, digits, '_' and '-'.
func ValidateTableName(table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}
	return nil
}

// modelFileStorage implements [ModelFileStorage] over a directory tree
// rooted at the web app path.
type modelFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewModelFileStorage constructs a [ModelFileStorage] rooted at root.
func NewModelFileStorage(root string, logger *logger.Logger) ModelFileStorage {
	logger.Debug().Str("root", root).Msg("creating model file storage")
	return &modelFileStorage{
		root:   root,
		logger: logger,
	}
}

func (s *modelFileStorage) ModelDir(table string) (string, error) {
	if err := ValidateTableName(table); err != nil {
		return "", err
	}
	return filepath.Join(s.root, table), nil
}

func (s *modelFileStorage) ConfigPath(table string) (string, error) {
	dir, err := s.ModelDir(table)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ModelConfigFile), nil
}

func (s *modelFileStorage) ReadModelConfig(ctx context.Context, table string) (string, error) {
	data, err := s.readFile(ctx, table, ModelConfigFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *modelFileStorage) ReadAppConfig(ctx context.Context, table string) (models.AppConfig, error) {
	data, err := s.readFile(ctx, table, AppConfigFile)
	if err != nil {
		return models.AppConfig{}, err
	}

	var appConfig models.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*modelFileStorage.ReadAppConfig").Str("table", table).Msg("invalid app config")
		return models.AppConfig{}, fmt.Errorf("%w: %s: %w", ErrDecodingAppConfig, table, err)
	}

	return appConfig, nil
}

func (s *modelFileStorage) ListTables(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*modelFileStorage.ListTables").Msg("error reading web app root")
		return nil, fmt.Errorf("%w: %w", ErrReadingModelFile, err)
	}

	tables := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || ValidateTableName(entry.Name()) != nil {
			continue
		}

		info, err := os.Stat(filepath.Join(s.root, entry.Name(), ModelConfigFile))
		if err != nil || info.IsDir() {
			continue
		}
		tables = append(tables, entry.Name())
	}
	slices.Sort(tables)

	return tables, nil
}

func (s *modelFileStorage) readFile(ctx context.Context, table, name string) ([]byte, error) {
	dir, err := s.ModelDir(table)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrModelNotFound, table, name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*modelFileStorage.readFile").Str("table", table).Str("file", name).Msg("error reading model file")
		return nil, fmt.Errorf("%w: %s/%s: %w", ErrReadingModelFile, table, name, err)
	}

	return data, nil
}
