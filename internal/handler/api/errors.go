package api

import (
	"net/http"

	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// abortWithSessionError maps the errors every session-scoped endpoint can
// return; anything else is a 500.
func abortWithSessionError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, shared.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found or expired", nil)
	case errs.Is(err, commands.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart is empty", nil)
	case errs.Is(err, commands.ErrSKUNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "SKU not found", nil)
	case errs.Is(err, commands.ErrCartItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
	case errs.Is(err, commands.ErrInvalidQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quantity", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
