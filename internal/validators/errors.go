package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrModelConfigInvalid wraps every rule violation of a model config.
	ErrModelConfigInvalid = errors.New("invalid model config")

	ErrInvalidTopics            = errors.New("number of topics must be positive")
	ErrInvalidTopicsOverTime    = errors.New("topics over time interval must be one of 1, 10, 25, 50, 100")
	ErrInvalidTermFrequency     = errors.New("term frequency bounds must satisfy 0 <= min <= max")
	ErrInvalidCorpusSize        = errors.New("corpus size cannot be negative")
	ErrEmptyMetadataFields      = errors.New("at least one metadata field is required")
	ErrBlankMetadataField       = errors.New("metadata field name cannot be blank")
	ErrInvalidVectorizationName = errors.New("vectorization is required")
)
