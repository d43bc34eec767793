// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package iniconf

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Section holds the key-value pairs of one named section.
type Section map[string]string

// Value is a top-level entry of a [Config]: either a scalar string or a
// [Section].
type Value struct {
	scalar  string
	section Section
}

// IsSection reports whether the value is a section.
func (v Value) IsSection() bool {
	return v.section != nil
}

// String returns the scalar text. It is empty for sections.
func (v Value) String() string {
	return v.scalar
}

// Section returns the section pairs and true, or nil and false for scalars.
func (v Value) Section() (Section, bool) {
	return v.section, v.section != nil
}

// Config is the result of parsing one document. It is read-only once
// [Parse] has returned; accessors hand out copies of section maps.
type Config struct {
	entries map[string]Value
}

func newConfig() *Config {
	return &Config{entries: make(map[string]Value)}
}

// Len returns the number of top-level entries, sections included.
func (c *Config) Len() int {
	return len(c.entries)
}

// Keys returns all top-level keys in lexical order.
func (c *Config) Keys() []string {
	return slices.Sorted(maps.Keys(c.entries))
}

// Get returns the top-level entry stored under key.
func (c *Config) Get(key string) (Value, bool) {
	v, ok := c.entries[key]
	if !ok {
		return Value{}, false
	}
	if v.section != nil {
		v.section = maps.Clone(v.section)
	}
	return v, true
}

// Scalar returns the top-level scalar stored under key. It reports false
// when key is absent or names a section.
func (c *Config) Scalar(key string) (string, bool) {
	v, ok := c.entries[key]
	if !ok || v.IsSection() {
		return "", false
	}
	return v.scalar, true
}

// Section returns a copy of the named section. It reports false when name
// is absent or names a scalar.
func (c *Config) Section(name string) (Section, bool) {
	v, ok := c.entries[name]
	if !ok || !v.IsSection() {
		return nil, false
	}
	return maps.Clone(v.section), true
}

// Lookup resolves a dotted path. "key" addresses a top-level scalar and
// "section.key" an entry of a section. A top-level scalar whose key contains
// dots is preferred over the section interpretation. Section and key names
// may contain dots too: every split is tried from the leftmost dot on and
// the first existing entry wins, so "a.b.c" finds key "b.c" of section "a"
// before key "c" of section "a.b".
func (c *Config) Lookup(path string) (string, bool) {
	if v, ok := c.Scalar(path); ok {
		return v, true
	}

	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}

		v, ok := c.entries[path[:i]]
		if !ok || !v.IsSection() {
			continue
		}
		if value, ok := v.section[path[i+1:]]; ok {
			return value, true
		}
	}

	return "", false
}

// MarshalJSON encodes the config as a nested JSON object: scalars become
// strings and sections become objects of strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.entries))
	for k, v := range c.entries {
		if v.IsSection() {
			out[k] = v.section
		} else {
			out[k] = v.scalar
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the representation produced by MarshalJSON.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error decoding config: %w", err)
	}

	entries := make(map[string]Value, len(raw))
	for k, msg := range raw {
		var scalar string
		if err := json.Unmarshal(msg, &scalar); err == nil {
			entries[k] = Value{scalar: scalar}
			continue
		}

		section := make(Section)
		if err := json.Unmarshal(msg, &section); err != nil {
			return fmt.Errorf("error decoding config entry %q: %w", k, err)
		}
		entries[k] = Value{section: section}
	}

	c.entries = entries
	return nil
}
