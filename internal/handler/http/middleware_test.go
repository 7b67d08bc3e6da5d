package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-vaultage/internal/logger"
	"github.com/MKhiriev/go-vaultage/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		traceIDs: utils.NewUUIDGenerator(),
		logger:   &logger.Logger{Logger: zerolog.New(buf)},
	}
}

// ── withTraceID ──────────────────────────────────────────────────────────────

func TestWithTraceID_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
}

func TestWithTraceID_KeepsIncomingID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

// ── withLogging ──────────────────────────────────────────────────────────────

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":5`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"uri":"/config"`)
}

func TestWithLogging_HidesRemoteKey(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	req := httptest.NewRequest(http.MethodGet, "/john/"+testRemoteKey+"/vaultage_api", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), testRemoteKey)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestRedactRemoteKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/john/secret/vaultage_api", "/john/" + redactedKey + "/vaultage_api"},
		{"/prefix/john/secret/vaultage_api", "/prefix/john/" + redactedKey + "/vaultage_api"},
		{"/config", "/config"},
		{"/vaultage_api", "/vaultage_api"},
		{"/john/secret/other", "/john/secret/other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, redactRemoteKey(tt.path), tt.path)
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, 3, w.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
