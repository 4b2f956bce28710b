package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/cookie"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidSKUID   = errors.New("invalid sku id")
	errInvalidPayload = errors.New("invalid request payload")
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
	sessionCfg   config.SessionConfig
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries, cfg config.Config) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
		sessionCfg:   cfg.Session,
	}
}

// @Summary Start session
// @Description Issue an anonymous shopping session cookie
// @Tags cart
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Router /sessions [post]
func (h *CartHandler) StartSession(c *gin.Context) {
	result, err := h.cartCommands.StartSession(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetSessionCookie(c, h.sessionCfg, result.Token, h.sessionCfg.TTL)
	c.JSON(http.StatusCreated, resdto.FromSessionResult(result))
}

// @Summary Get cart
// @Description Cart contents with an indicative quote
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.cartQueries.Get(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Set cart item
// @Description Set the desired quantity of one SKU
// @Tags cart
// @Accept json
// @Param skuId path string true "SKU ID"
// @Param request body reqdto.SetCartItemRequest true "Quantity"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{skuId} [put]
func (h *CartHandler) SetItem(c *gin.Context) {
	skuID, err := uuid.Parse(c.Param("skuId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidSKUID, "Invalid SKU ID format", nil)
		return
	}

	var req reqdto.SetCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPayload, "Invalid request format", nil)
		return
	}

	if err := h.cartCommands.SetItem(c.Request.Context(), middleware.GetSessionToken(c), skuID, req.Quantity); err != nil {
		abortWithSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove cart item
// @Tags cart
// @Param skuId path string true "SKU ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{skuId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	skuID, err := uuid.Parse(c.Param("skuId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidSKUID, "Invalid SKU ID format", nil)
		return
	}

	if err := h.cartCommands.RemoveItem(c.Request.Context(), middleware.GetSessionToken(c), skuID); err != nil {
		abortWithSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
