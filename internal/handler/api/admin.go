package api

import (
	"log/slog"
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/jobs"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	sweeps jobs.SweepTrigger
}

func NewAdminHandler(sweeps jobs.SweepTrigger) *AdminHandler {
	return &AdminHandler{sweeps: sweeps}
}

// @Summary Trigger sweep
// @Description Run the expiry sweeper now and return its report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepReportResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/sweeps [post]
func (h *AdminHandler) TriggerSweep(c *gin.Context) {
	operator, _ := middleware.GetOperator(c)
	slog.InfoContext(c.Request.Context(), "manual sweep requested", "operator", operator)

	report, err := h.sweeps.Trigger(c.Request.Context())
	if err != nil {
		if errs.Is(err, jobs.ErrSweepInProgress) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Sweep already in progress", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepReport(report))
}
