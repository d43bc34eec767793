package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-topologic/internal/iniconf"
	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/store"
	"github.com/MKhiriev/go-topologic/internal/validators"
	"github.com/MKhiriev/go-topologic/models"
)

// modelEntry is the cached result of loading one model. model is only
// meaningful when modelErr is nil.
type modelEntry struct {
	config   *iniconf.Config
	model    models.ModelConfig
	modelErr error
}

type modelConfigService struct {
	files     store.ModelFileStorage
	registry  store.ModelRepository
	validator validators.Validator
	clock     clockwork.Clock
	strict    bool

	mu          sync.RWMutex
	entries     map[string]*modelEntry
	generations map[string]uint64
	loads       singleflight.Group

	logger *logger.Logger
}

// ModelConfigOption customizes [NewModelConfigService].
type ModelConfigOption func(*modelConfigService)

// WithStrictConfig makes Load log every line the parser dropped.
func WithStrictConfig(strict bool) ModelConfigOption {
	return func(s *modelConfigService) {
		s.strict = strict
	}
}

// WithClock replaces the clock used to stamp registry rows.
func WithClock(clock clockwork.Clock) ModelConfigOption {
	return func(s *modelConfigService) {
		s.clock = clock
	}
}

func NewModelConfigService(files store.ModelFileStorage, registry store.ModelRepository, validator validators.Validator, logger *logger.Logger, opts ...ModelConfigOption) ModelConfigService {
	s := &modelConfigService{
		files:       files,
		registry:    registry,
		validator:   validator,
		clock:       clockwork.NewRealClock(),
		entries:     make(map[string]*modelEntry),
		generations: make(map[string]uint64),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *modelConfigService) Load(ctx context.Context, table string) (*iniconf.Config, error) {
	entry, err := s.load(ctx, table)
	if err != nil {
		return nil, err
	}
	return entry.config, nil
}

func (s *modelConfigService) LoadAll(ctx context.Context) ([]string, error) {
	tables, err := s.files.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	loaded := make([]string, 0, len(tables))
	for _, table := range tables {
		if _, err := s.load(ctx, table); err != nil {
			s.logger.Err(err).Str("func", "*modelConfigService.LoadAll").Str("table", table).Msg("skipping model")
			continue
		}
		loaded = append(loaded, table)
	}

	return loaded, nil
}

func (s *modelConfigService) GetModelConfig(ctx context.Context, table string) (models.ModelConfig, error) {
	entry, err := s.load(ctx, table)
	if err != nil {
		return models.ModelConfig{}, err
	}
	if entry.modelErr != nil {
		return models.ModelConfig{}, entry.modelErr
	}

	model := entry.model
	model.MetadataFields = slices.Clone(entry.model.MetadataFields)
	return model, nil
}

func (s *modelConfigService) Lookup(ctx context.Context, table, path string) (string, error) {
	cfg, err := s.Load(ctx, table)
	if err != nil {
		return "", err
	}

	value, ok := cfg.Lookup(path)
	if !ok {
		return "", fmt.Errorf("%w: %s: %q", ErrConfigValueNotFound, table, path)
	}

	return value, nil
}

func (s *modelConfigService) TopicIDs(ctx context.Context, table string) ([]int, error) {
	model, err := s.GetModelConfig(ctx, table)
	if err != nil {
		return nil, err
	}

	ids := make([]int, model.Topics)
	for i := range ids {
		ids[i] = i
	}
	return ids, nil
}

func (s *modelConfigService) GetAppConfig(ctx context.Context, table string) (models.AppConfig, error) {
	return s.files.ReadAppConfig(ctx, table)
}

func (s *modelConfigService) ListModels(ctx context.Context) ([]models.RegisteredModel, error) {
	return s.registry.ListModels(ctx)
}

func (s *modelConfigService) GetRegisteredModel(ctx context.Context, table string) (models.RegisteredModel, error) {
	if err := store.ValidateTableName(table); err != nil {
		return models.RegisteredModel{}, err
	}

	return s.registry.FindModel(ctx, table)
}

func (s *modelConfigService) Invalidate(table string) {
	s.mu.Lock()
	delete(s.entries, table)
	s.generations[table]++
	s.mu.Unlock()

	s.loads.Forget(table)
	s.logger.Info().Str("table", table).Msg("model config invalidated")
}

func (s *modelConfigService) LoadedTables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.entries))
}

func (s *modelConfigService) cached(table string) (*modelEntry, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[table]
	return entry, s.generations[table], ok
}

// load returns the cached entry of table or parses it. Concurrent first
// loads of the same table share one parse.
func (s *modelConfigService) load(ctx context.Context, table string) (*modelEntry, error) {
	if err := store.ValidateTableName(table); err != nil {
		return nil, err
	}

	entry, generation, ok := s.cached(table)
	if ok {
		return entry, nil
	}

	v, err, _ := s.loads.Do(table, func() (any, error) {
		if entry, _, ok := s.cached(table); ok {
			return entry, nil
		}

		entry, err := s.parse(ctx, table)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		// an Invalidate raced with this parse, serve it once but do not cache it
		if s.generations[table] == generation {
			s.entries[table] = entry
		}
		s.mu.Unlock()

		return entry, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*modelEntry), nil
}

func (s *modelConfigService) parse(ctx context.Context, table string) (*modelEntry, error) {
	log := logger.FromContext(ctx).WithModel(table)

	text, err := s.files.ReadModelConfig(ctx, table)
	if err != nil {
		return nil, err
	}

	var opts []iniconf.Option
	if s.strict {
		opts = append(opts, iniconf.WithDiagnostics(func(d iniconf.Diagnostic) {
			s.logger.Warn().Str("table", table).Int("line", d.Line).Str("text", d.Text).Msg("model config line dropped")
		}))
	}

	entry := &modelEntry{config: iniconf.Parse(text, opts...)}

	entry.model, entry.modelErr = projectModelConfig(entry.config)
	if entry.modelErr == nil {
		entry.modelErr = s.validator.Validate(ctx, entry.model)
	}
	if entry.modelErr != nil {
		entry.modelErr = fmt.Errorf("%s: %w", table, entry.modelErr)
		log.Warn().Err(entry.modelErr).Str("func", "*modelConfigService.parse").Msg("model config has no valid typed description")
		return entry, nil
	}

	if err := s.registry.SaveModel(ctx, models.NewRegisteredModel(table, entry.model, s.clock.Now())); err != nil {
		log.Err(err).Str("func", "*modelConfigService.parse").Msg("error registering model")
	}

	log.Info().Int("entries", entry.config.Len()).Msg("model config loaded")
	return entry, nil
}
