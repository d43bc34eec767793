package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from different configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Storage: Storage{Files: Files{WebAppPath: "/srv"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/srv", cfg.Storage.Files.WebAppPath)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later config
// overrides the same field of an earlier one, while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}},
		&StructuredConfig{Server: Server{HTTPAddress: "0.0.0.0:80"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:80", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_SetsTimeouts(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultAdapterRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultWatchDebounce, cfg.Workers.WatchDebounce)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":                "env-version",
		"STORAGE_FILES_WEB_APP_PATH": "/env/path",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "/env/path", b.configs[0].Storage.Files.WebAppPath)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable env value is
// collected into b.err and no config is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "forever"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Storage.Files.WebAppPath = "/json/path"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "/json/path", b.configs[1].Storage.Files.WebAppPath)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── GetStructuredConfig / GetClientConfig ─────────────────────────────────────

func TestGetStructuredConfig_FromFlags(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig([]string{
		"-a", "localhost:8080",
		"-d", "registry.db",
		"-w", "/srv/topologic",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, "registry.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/srv/topologic", cfg.Storage.Files.WebAppPath)
}

func TestGetStructuredConfig_JSONOverridesEnv(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.Files.WebAppPath = "/from/json"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":             "localhost:8080",
		"STORAGE_DB_DATABASE_URI":    "registry.db",
		"STORAGE_FILES_WEB_APP_PATH": "/from/env",
		"CONFIG":                     path,
	})

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "/from/json", cfg.Storage.Files.WebAppPath)
}

func TestGetStructuredConfig_Validation(t *testing.T) {
	clearEnvVars(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "missing address",
			args:    []string{"-d", "registry.db", "-w", "/srv"},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing dsn",
			args:    []string{"-a", "localhost:8080", "-w", "/srv"},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing web app path",
			args:    []string{"-a", "localhost:8080", "-d", "registry.db"},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := GetStructuredConfig(tt.args)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-server", "http://10.1.1.1:8080", "-copy", "-info", "philo", "DATA.num_docs"})

	require.NoError(t, err)
	assert.True(t, cfg.CopyToClipboard)
	assert.True(t, cfg.ShowInfo)
	assert.Equal(t, "http://10.1.1.1:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultAdapterRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"philo", "DATA.num_docs"}, cfg.Args)
}

func TestGetClientConfig_UsesDefaultAddress(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
}
