// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging_RecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(t, nil)
	h.logger = &logger.Logger{Logger: zerolog.New(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/profiles?countryCode=CA", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/profiles?countryCode=CA", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "test-agent", entry["user_agent"])
	assert.Equal(t, "trace-123", entry["trace_id"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, len("short and stout"), entry["size"])
	assert.Contains(t, entry, "duration")
}
