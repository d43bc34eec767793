package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/models"
)

// modelRepository is the SQL implementation of [ModelRepository] on top of
// the "topologic_models" table. Queries are built with the placeholder
// format of the connection, so the same code serves PostgreSQL and SQLite.
type modelRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewModelRepository constructs a [ModelRepository] backed by db.
func NewModelRepository(db *DB, logger *logger.Logger) ModelRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating model repository")
	return &modelRepository{
		db:     db,
		logger: logger,
	}
}

// SaveModel upserts the registry row of model. Retryable driver errors are
// retried a bounded number of times.
func (r *modelRepository) SaveModel(ctx context.Context, model models.RegisteredModel) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveModelQuery(r.db.builder, model)
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.SaveModel").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = withRetry(ctx, r.db.errorClassificator, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.SaveModel").Str("table", model.TableName).Msg("error saving model")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *modelRepository) ListModels(ctx context.Context) ([]models.RegisteredModel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListModelsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.ListModels").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.ListModels").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.RegisteredModel, 0)
	for rows.Next() {
		model, err := scanModel(rows)
		if err != nil {
			log.Err(err).Str("func", "*modelRepository.ListModels").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, model)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*modelRepository.ListModels").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *modelRepository) FindModel(ctx context.Context, table string) (models.RegisteredModel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindModelQuery(r.db.builder, table)
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.FindModel").Msg("error building query")
		return models.RegisteredModel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	model, err := scanModel(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RegisteredModel{}, fmt.Errorf("%w: %q is not registered", ErrModelNotFound, table)
	}
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.FindModel").Str("table", table).Msg("error scanning row")
		return models.RegisteredModel{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return model, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanModel(row rowScanner) (models.RegisteredModel, error) {
	var model models.RegisteredModel
	err := row.Scan(
		&model.TableName,
		&model.ObjectLevel,
		&model.Topics,
		&model.Method,
		&model.CorpusSize,
		&model.LoadedAt,
	)
	return model, err
}
