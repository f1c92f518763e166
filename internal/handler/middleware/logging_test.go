//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-desk/internal/handler/middleware"
	"hotel-desk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddlewareUsesInjectedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := config.LogConfig{Level: "info", TimeFormat: time.RFC3339}

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger, cfg))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	out := buf.String()
	assert.Contains(t, out, "Request started")
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, `"path":"/ping"`)
	assert.Contains(t, out, "request_id")
}
