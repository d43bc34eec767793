// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Sections and keys of model_config.ini read by the server.
const (
	SectionPreprocessing  = "PREPROCESSING"
	SectionVectorization  = "VECTORIZATION"
	SectionTopicModeling  = "TOPIC_MODELING"
	SectionTopicsOverTime = "TOPICS_OVER_TIME"
	SectionData           = "DATA"
)

// ModelConfig is the typed description of one topic model, projected from
// its model_config.ini. JSON names follow the API consumed by the browser.
type ModelConfig struct {
	// ObjectLevel is the text object level documents were built from
	// (e.g. "doc", "div1"). Source: PREPROCESSING.text_object_level.
	ObjectLevel string `json:"object_level"`

	// MaxTf is the maximum document frequency kept during vectorization.
	// Source: VECTORIZATION.max_freq.
	MaxTf float64 `json:"maxTf"`

	// MinTf is the minimum document frequency kept during vectorization.
	// Source: VECTORIZATION.min_freq.
	MinTf float64 `json:"minTf"`

	// Vectorization is the upper-cased vector space name ("TF", "TFIDF").
	Vectorization string `json:"vectorization"`

	// Topics is the number of topics in the model.
	// Source: TOPIC_MODELING.number_of_topics.
	Topics int `json:"topics"`

	// Method is the topic modeling algorithm ("LDA", "NMF").
	Method string `json:"method"`

	// TopicsOverTimeInterval is the year bucket size used for time series.
	// Source: TOPICS_OVER_TIME.topics_over_time_interval.
	TopicsOverTimeInterval int `json:"topic_over_time_interval"`

	// MetadataFields lists the document metadata fields stored with the model.
	// Source: DATA.metadata (comma-separated).
	MetadataFields []string `json:"metadata_fields"`

	// FilePath is the path of the source corpus. Source: DATA.file_path.
	FilePath string `json:"file_path"`

	// CorpusSize is the number of documents. Source: DATA.num_docs.
	CorpusSize int `json:"corpus_size"`

	// VocabularySize is passed through as text. Source: DATA.num_tokens.
	VocabularySize string `json:"vocabularySize"`
}
