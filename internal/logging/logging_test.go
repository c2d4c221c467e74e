package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false).WithFields(map[string]any{"user_id": "u-1", "component": "auth"})

	logger.Info("signed in")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "signed in", lines[0]["msg"])
	assert.Equal(t, "u-1", lines[0]["user_id"])
	assert.Equal(t, "auth", lines[0]["component"])
}

func TestNew_ProductionSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("noisy")
	assert.Empty(t, buf.String())

	dev := New(&buf, true)
	dev.Debug("noisy")
	assert.Contains(t, buf.String(), "noisy")
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error", status: http.StatusConflict, wantLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			var fromCtx *Logger

			h := middleware.RequestID(RequestLogger(New(&buf, false))(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					fromCtx = GetLoggerFromContext(r.Context())
					w.WriteHeader(tt.status)
				})))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/signin", nil))

			require.NotNil(t, fromCtx)
			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1, "start line is debug and filtered in production")
			done := lines[0]
			assert.Equal(t, "request completed", done["msg"])
			assert.Equal(t, tt.wantLevel, done["level"])
			assert.Equal(t, float64(tt.status), done["status"])
			assert.Equal(t, "/users/signin", done["path"])
			assert.NotEmpty(t, done["request_id"])
		})
	}
}

func TestRequestLogger_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := RequestLogger(New(&buf, false))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(http.StatusOK), lines[0]["status"])
	assert.Equal(t, float64(2), lines[0]["bytes"])
}

func TestGetLoggerFromContext_Fallback(t *testing.T) {
	assert.NotNil(t, GetLoggerFromContext(context.Background()))

	custom := Nop()
	assert.Same(t, custom, GetLoggerFromContext(WithLogger(context.Background(), custom)))
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusTooManyRequests))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusBadGateway))
}
