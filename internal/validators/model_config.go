package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-topologic/models"
)

// Field names accepted by [ModelConfigValidator.Validate].
const (
	FieldTopics                 = "topics"
	FieldTopicsOverTimeInterval = "topic_over_time_interval"
	FieldTermFrequency          = "term_frequency"
	FieldCorpusSize             = "corpus_size"
	FieldMetadataFields         = "metadata_fields"
	FieldVectorization          = "vectorization"
)

var allModelConfigFields = []string{
	FieldTopics,
	FieldTopicsOverTimeInterval,
	FieldTermFrequency,
	FieldCorpusSize,
	FieldMetadataFields,
	FieldVectorization,
}

// AllowedTopicsOverTimeIntervals are the year bucket sizes the browser can
// chart.
var AllowedTopicsOverTimeIntervals = []int{1, 10, 25, 50, 100}

type ModelConfigValidator struct{}

func NewModelConfigValidator() Validator {
	return &ModelConfigValidator{}
}

func (v *ModelConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ModelConfig:
		return v.validateModelConfig(ctx, value, fields...)
	case *models.ModelConfig:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateModelConfig(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ModelConfigValidator) validateModelConfig(_ context.Context, cfg models.ModelConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = allModelConfigFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTopics:
			if cfg.Topics <= 0 {
				err = ErrInvalidTopics
			}
		case FieldTopicsOverTimeInterval:
			if !slices.Contains(AllowedTopicsOverTimeIntervals, cfg.TopicsOverTimeInterval) {
				err = ErrInvalidTopicsOverTime
			}
		case FieldTermFrequency:
			if cfg.MinTf < 0 || cfg.MinTf > cfg.MaxTf {
				err = ErrInvalidTermFrequency
			}
		case FieldCorpusSize:
			if cfg.CorpusSize < 0 {
				err = ErrInvalidCorpusSize
			}
		case FieldMetadataFields:
			err = validateMetadataFields(cfg.MetadataFields)
		case FieldVectorization:
			if cfg.Vectorization == "" {
				err = ErrInvalidVectorizationName
			}
		default:
			return ErrUnknownField
		}

		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrModelConfigInvalid, f, err)
		}
	}

	return nil
}

func validateMetadataFields(fields []string) error {
	if len(fields) == 0 {
		return ErrEmptyMetadataFields
	}

	for i, field := range fields {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("index %d: %w", i, ErrBlankMetadataField)
		}
	}

	return nil
}
