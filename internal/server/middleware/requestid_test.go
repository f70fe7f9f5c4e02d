package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureRequestID(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetRequestID(r)
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/ui/", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return seen, w
}

func TestRequestID_Generated(t *testing.T) {
	id, w := captureRequestID(t, "")

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	id, w := captureRequestID(t, "trace-abc-123")

	assert.Equal(t, "trace-abc-123", id)
	assert.Equal(t, "trace-abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestID_RejectsMalformedIncoming(t *testing.T) {
	for _, header := range []string{"has space", strings.Repeat("a", maxRequestIDLength+1), "tab\tid"} {
		id, _ := captureRequestID(t, header)
		assert.NotEqual(t, header, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetRequestID(req)
	assert.Error(t, err)
}

func TestRequestIDFromContext_InvalidType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey(), 42)
	_, err := RequestIDFromContext(ctx)
	assert.Error(t, err)
}
