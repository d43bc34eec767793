// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-topologic/internal/logger"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

// ── withTraceID ───────────────────────────────────────────────────────────────

func TestWithTraceID_ReusesHeader(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	seen := make(map[string]struct{})

	for range 20 {
		rec := httptest.NewRecorder()
		h.withTraceID(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(traceIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)

		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

// ── withLogging ───────────────────────────────────────────────────────────────

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("missing"))
	})

	req := httptest.NewRequest(http.MethodGet, "/get_config/philo_db", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"uri":"/get_config/philo_db"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"size":7`)
	assert.Contains(t, out, `"duration":`)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rec}

	_, err := lw.Write([]byte("abc"))
	require.NoError(t, err)
	lw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, lw.status)
	assert.Equal(t, 3, lw.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ── withGZip ──────────────────────────────────────────────────────────────────

func TestWithGZip(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "13")
		w.Write([]byte("Hello, World!"))
	})

	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{"accepts gzip", "gzip", true},
		{"accepts several", "deflate, gzip, br", true},
		{"no encoding", "", false},
		{"other encoding", "br", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rec, req)

			if !tt.wantGzip {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, "Hello, World!", rec.Body.String())
				return
			}

			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			assert.Empty(t, rec.Header().Get("Content-Length"))

			zr, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			body, err := io.ReadAll(zr)
			require.NoError(t, err)
			assert.Equal(t, "Hello, World!", string(body))
		})
	}
}

// ── statusFromError ───────────────────────────────────────────────────────────

func TestStatusFromError_MissingParams(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrMissingTableParam))
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrMissingPathParam))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
