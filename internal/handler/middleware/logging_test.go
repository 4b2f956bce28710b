//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "incoming id is echoed", incoming: "req-abc", keep: true},
		{name: "missing id is generated", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			router := gin.New()
			router.Use(logger.LoggingMiddleware())
			router.GET("/ping", func(c *gin.Context) {
				seen = middleware.GetRequestID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, seen, got)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			}
		})
	}
}
