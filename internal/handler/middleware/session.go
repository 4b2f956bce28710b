package middleware

import (
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

// SessionTokenHeader lets non-browser clients present the session without
// a cookie.
const SessionTokenHeader = "X-Session-Token"

const ctxSessionTokenKey = "session_token"

// SessionToken resolves the shopper's session token, cookie first. It does
// not abort: an absent or unknown token is the use case's call.
func SessionToken(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c, cfg)
		if token == "" {
			token = c.GetHeader(SessionTokenHeader)
		}
		c.Set(ctxSessionTokenKey, token)
		c.Next()
	}
}

func GetSessionToken(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionTokenKey); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
