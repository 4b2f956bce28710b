package api

import (
	"errors"
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout     commands.CheckoutCommands
	reservations queries.ReservationQueries
}

func NewCheckoutHandler(checkout commands.CheckoutCommands, reservations queries.ReservationQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:     checkout,
		reservations: reservations,
	}
}

// @Summary Checkout
// @Description Reserve stock for the session's cart and issue a payment reference
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	result, err := h.checkout.Reconcile(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		var oos *commands.OutOfStockError
		if errors.As(err, &oos) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", resdto.OutOfStockDetail{
				SKUID:     oos.SKUID,
				Requested: oos.Requested,
				Available: oos.Available,
			})
			return
		}
		abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary List reservations
// @Description Pending holds of the current session
// @Tags checkout
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /checkout/reservations [get]
func (h *CheckoutHandler) ListReservations(c *gin.Context) {
	views, err := h.reservations.ListBySession(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
