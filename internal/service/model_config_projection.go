// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-topologic/internal/iniconf"
	"github.com/MKhiriev/go-topologic/models"
)

// projector reads typed values out of a parsed config and remembers the
// first failure, so a projection reads as a flat list of fields.
type projector struct {
	cfg *iniconf.Config
	err error
}

func (p *projector) text(section, key string) string {
	if p.err != nil {
		return ""
	}

	values, ok := p.cfg.Section(section)
	if !ok {
		p.err = fmt.Errorf("%w: %s", ErrMissingConfigSection, section)
		return ""
	}

	value, ok := values[key]
	if !ok {
		p.err = fmt.Errorf("%w: %s.%s", ErrMissingConfigKey, section, key)
		return ""
	}

	return value
}

func (p *projector) integer(section, key string) int {
	raw := p.text(section, key)
	if p.err != nil {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		p.err = fmt.Errorf("%w: %s.%s = %q: %w", ErrInvalidConfigValue, section, key, raw, err)
		return 0
	}
	return n
}

func (p *projector) float(section, key string) float64 {
	raw := p.text(section, key)
	if p.err != nil {
		return 0
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: %s.%s = %q: %w", ErrInvalidConfigValue, section, key, raw, err)
		return 0
	}
	return f
}

func (p *projector) list(section, key string) []string {
	raw := p.text(section, key)
	if p.err != nil {
		return nil
	}

	items := make([]string, 0)
	for item := range strings.SplitSeq(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// projectModelConfig builds the typed description of a model from its
// parsed model_config.ini.
func projectModelConfig(cfg *iniconf.Config) (models.ModelConfig, error) {
	p := &projector{cfg: cfg}

	model := models.ModelConfig{
		ObjectLevel:            p.text(models.SectionPreprocessing, "text_object_level"),
		MaxTf:                  p.float(models.SectionVectorization, "max_freq"),
		MinTf:                  p.float(models.SectionVectorization, "min_freq"),
		Vectorization:          strings.ToUpper(p.text(models.SectionVectorization, "vectorization")),
		Topics:                 p.integer(models.SectionTopicModeling, "number_of_topics"),
		Method:                 p.text(models.SectionTopicModeling, "algorithm"),
		TopicsOverTimeInterval: p.integer(models.SectionTopicsOverTime, "topics_over_time_interval"),
		MetadataFields:         p.list(models.SectionData, "metadata"),
		FilePath:               p.text(models.SectionData, "file_path"),
		CorpusSize:             p.integer(models.SectionData, "num_docs"),
		VocabularySize:         p.text(models.SectionData, "num_tokens"),
	}

	if p.err != nil {
		return models.ModelConfig{}, p.err
	}

	return model, nil
}
