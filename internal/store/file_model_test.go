package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-topologic/internal/logger"
)

const testAppConfig = `{
	"webServer": "http://localhost",
	"apiServer": "http://localhost:8080",
	"philoLogicUrl": "https://philologic.example.org/philo_db",
	"databaseName": "philo_db",
	"appPath": "/topologic/philo_db",
	"metadataFields": [{"field": "author", "style": {"font-weight": "700"}, "link": true}],
	"timeSeriesConfig": {"interval": 10, "startDate": 1700, "endDate": 1800},
	"metadataDistributions": [{"label": "Author", "field": "author", "filterFrequency": 5}]
}`

func newTestFileStorage(t *testing.T) (ModelFileStorage, string) {
	t.Helper()
	root := t.TempDir()
	return NewModelFileStorage(root, logger.Nop()), root
}

func writeModelFile(t *testing.T, root, table, name, content string) {
	t.Helper()
	dir := filepath.Join(root, table)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestValidateTableName(t *testing.T) {
	for _, name := range []string{"philo_db", "Model-2", "a", "0_9"} {
		assert.NoError(t, ValidateTableName(name), name)
	}
	for _, name := range []string{"", "..", "a/b", "a b", "../etc", "model.db", "é"} {
		assert.ErrorIs(t, ValidateTableName(name), ErrInvalidTableName, name)
	}
}

func TestModelFileStorage_ReadModelConfig(t *testing.T) {
	s, root := newTestFileStorage(t)
	writeModelFile(t, root, "philo_db", ModelConfigFile, "[DATA]\nnum_docs = 10\n")

	text, err := s.ReadModelConfig(context.Background(), "philo_db")

	require.NoError(t, err)
	assert.Equal(t, "[DATA]\nnum_docs = 10\n", text)
}

func TestModelFileStorage_ReadModelConfig_Errors(t *testing.T) {
	s, _ := newTestFileStorage(t)

	_, err := s.ReadModelConfig(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrModelNotFound)

	_, err = s.ReadModelConfig(context.Background(), "../secret")
	assert.ErrorIs(t, err, ErrInvalidTableName)
}

func TestModelFileStorage_ReadModelConfig_Directory(t *testing.T) {
	s, root := newTestFileStorage(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "philo_db", ModelConfigFile), 0o755))

	_, err := s.ReadModelConfig(context.Background(), "philo_db")
	assert.ErrorIs(t, err, ErrReadingModelFile)
}

func TestModelFileStorage_ReadAppConfig(t *testing.T) {
	s, root := newTestFileStorage(t)
	writeModelFile(t, root, "philo_db", AppConfigFile, testAppConfig)

	cfg, err := s.ReadAppConfig(context.Background(), "philo_db")

	require.NoError(t, err)
	assert.Equal(t, "philo_db", cfg.DatabaseName)
	assert.Equal(t, "https://philologic.example.org/philo_db", cfg.PhiloLogicURL)
	require.Len(t, cfg.MetadataFields, 1)
	assert.Equal(t, "author", cfg.MetadataFields[0].Field)
	assert.True(t, cfg.MetadataFields[0].Link)
	assert.Equal(t, "700", cfg.MetadataFields[0].Style["font-weight"])
	assert.Equal(t, 10, cfg.TimeSeriesConfig.Interval)
	assert.Equal(t, 1800, cfg.TimeSeriesConfig.EndDate)
	require.Len(t, cfg.MetadataDistributions, 1)
	assert.Equal(t, 5, cfg.MetadataDistributions[0].FilterFrequency)
}

func TestModelFileStorage_ReadAppConfig_Invalid(t *testing.T) {
	s, root := newTestFileStorage(t)
	writeModelFile(t, root, "philo_db", AppConfigFile, `{"timeSeriesConfig": "soon"}`)

	_, err := s.ReadAppConfig(context.Background(), "philo_db")
	assert.ErrorIs(t, err, ErrDecodingAppConfig)

	_, err = s.ReadAppConfig(context.Background(), "other")
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestModelFileStorage_Paths(t *testing.T) {
	s, root := newTestFileStorage(t)

	dir, err := s.ModelDir("philo_db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "philo_db"), dir)

	path, err := s.ConfigPath("philo_db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "philo_db", ModelConfigFile), path)

	_, err = s.ConfigPath("bad name")
	assert.ErrorIs(t, err, ErrInvalidTableName)
}

func TestModelFileStorage_ListTables(t *testing.T) {
	s, root := newTestFileStorage(t)
	writeModelFile(t, root, "zeta", ModelConfigFile, "")
	writeModelFile(t, root, "alpha", ModelConfigFile, "")
	writeModelFile(t, root, "no_config", AppConfigFile, "{}")
	writeModelFile(t, root, "bad name", ModelConfigFile, "")
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.ini"), nil, 0o600))

	tables, err := s.ListTables(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, tables)
}

func TestModelFileStorage_ListTables_MissingRoot(t *testing.T) {
	s := NewModelFileStorage(filepath.Join(t.TempDir(), "absent"), logger.Nop())

	_, err := s.ListTables(context.Background())
	assert.ErrorIs(t, err, ErrReadingModelFile)
}
