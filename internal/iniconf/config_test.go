// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package iniconf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Lookup(t *testing.T) {
	cfg := Parse("top = 1\na.b = dotted\n[a]\nb = 2\n[DATA]\nfile.path = /x")

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "top", want: "1", wantOK: true},
		{path: "a.b", want: "dotted", wantOK: true},
		{path: "DATA.file.path", want: "/x", wantOK: true},
		{path: "a", wantOK: false},
		{path: "a.c", wantOK: false},
		{path: "top.x", wantOK: false},
		{path: "missing.key", wantOK: false},
		{path: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := cfg.Lookup(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Lookup_DottedSectionNames(t *testing.T) {
	cfg := Parse("[a.b]\nc = 3\n\n[x]\ny.z = left\n\n[x.y]\nz = right\nw = only")

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "a.b.c", want: "3", wantOK: true},
		{path: "x.y.z", want: "left", wantOK: true},
		{path: "x.y.w", want: "only", wantOK: true},
		{path: "a.b", wantOK: false},
		{path: "a.b.", wantOK: false},
		{path: ".a.b.c", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := cfg.Lookup(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_ScalarAndSection(t *testing.T) {
	cfg := Parse("k=v\n[S]\na=1")

	v, ok := cfg.Scalar("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = cfg.Scalar("S")
	assert.False(t, ok, "section must not be returned as scalar")

	s, ok := cfg.Section("S")
	require.True(t, ok)
	assert.Equal(t, Section{"a": "1"}, s)

	_, ok = cfg.Section("k")
	assert.False(t, ok, "scalar must not be returned as section")

	_, ok = cfg.Get("nope")
	assert.False(t, ok)
}

func TestConfig_AccessorsReturnCopies(t *testing.T) {
	cfg := Parse("[S]\na=1")

	s, _ := cfg.Section("S")
	s["a"] = "changed"
	s["b"] = "added"

	v, _ := cfg.Get("S")
	vs, _ := v.Section()
	vs["c"] = "added"

	again, _ := cfg.Section("S")
	assert.Equal(t, Section{"a": "1"}, again)
}

func TestConfig_MarshalJSON(t *testing.T) {
	cfg := Parse("a=1\n[S]\nb=2\n\nc=3\n[Empty]")

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"1","S":{"b":"2"},"c":"3","Empty":{}}`, string(data))
}

func TestConfig_UnmarshalJSON(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1","S":{"b":"2"},"Empty":{}}`), &cfg))

	v, ok := cfg.Lookup("S.b")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	empty, ok := cfg.Section("Empty")
	require.True(t, ok)
	assert.Empty(t, empty)

	assert.Equal(t, []string{"Empty", "S", "a"}, cfg.Keys())
}

func TestConfig_UnmarshalJSON_RejectsNested(t *testing.T) {
	var cfg Config
	err := json.Unmarshal([]byte(`{"S":{"b":{"deep":"x"}}}`), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"S"`)
}
