package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrConfigValueNotFound is returned by Lookup when the dotted path names
	// no scalar of the model config.
	ErrConfigValueNotFound = errors.New("config value not found")

	// Projection errors of a parsed model_config.ini into models.ModelConfig.
	ErrMissingConfigSection = errors.New("missing config section")
	ErrMissingConfigKey     = errors.New("missing config key")
	ErrInvalidConfigValue   = errors.New("invalid config value")
)
