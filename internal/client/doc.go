// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the topologic
// server.
//
// With no arguments it prints the model registry, with a table name the
// parsed model config as JSON, and with a table name and a dotted path the
// single config value.
package client
