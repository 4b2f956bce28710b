//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandlerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "panic becomes a 500",
			handler:    func(*gin.Context) { panic("boom") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"message":"Internal server error"}}`,
		},
		{
			name: "public error keeps its response",
			handler: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusConflict, errors.New("busy"), "Sweep already in progress", nil)
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"message":"Sweep already in progress"}}`,
		},
		{
			name:       "no content passes through",
			handler:    func(c *gin.Context) { c.Status(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
			router.GET("/", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
