// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-topologic/models"
)

const modelsTable = "topologic_models"

var modelColumns = []string{
	"table_name",
	"object_level",
	"topics",
	"method",
	"corpus_size",
	"loaded_at",
}

// upsertModelSuffix is understood by both PostgreSQL and SQLite (3.24+).
const upsertModelSuffix = `ON CONFLICT (table_name) DO UPDATE SET
	object_level = excluded.object_level,
	topics = excluded.topics,
	method = excluded.method,
	corpus_size = excluded.corpus_size,
	loaded_at = excluded.loaded_at`

func buildSaveModelQuery(b sq.StatementBuilderType, model models.RegisteredModel) (string, []any, error) {
	return b.Insert(modelsTable).
		Columns(modelColumns...).
		Values(model.TableName, model.ObjectLevel, model.Topics, model.Method, model.CorpusSize, model.LoadedAt).
		Suffix(upsertModelSuffix).
		ToSql()
}

func buildListModelsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(modelColumns...).
		From(modelsTable).
		OrderBy("table_name").
		ToSql()
}

func buildFindModelQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select(modelColumns...).
		From(modelsTable).
		Where(sq.Eq{"table_name": table}).
		ToSql()
}
