package api

import (
	"net/http"

	reqdto "group-booking-arbiter/internal/handler/dto/request"
	resdto "group-booking-arbiter/internal/handler/dto/response"
	"group-booking-arbiter/internal/handler/httperr"
	"group-booking-arbiter/internal/usecase/commands"
	"group-booking-arbiter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	cmds commands.ConfigCommands
	q    queries.ConfigQueries
}

func NewConfigHandler(cmds commands.ConfigCommands, q queries.ConfigQueries) *ConfigHandler {
	return &ConfigHandler{cmds: cmds, q: q}
}

// @Summary Get booking config
// @Description Get the merchant's booking policy; merchants without one get the conservative default
// @Tags booking-config
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Success 200 {object} resdto.BookingConfigResponse
// @Failure 403 {object} httperr.Response
// @Router /api/merchants/{merchantId}/booking-config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	view, err := h.q.GetBookingConfig(c.Request.Context(), merchantID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfigView(view))
}

// @Summary Update booking config
// @Description Partially update the merchant's booking policy
// @Tags booking-config
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param request body reqdto.UpdateBookingConfigRequest true "Config changes"
// @Success 200 {object} resdto.BookingConfigResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/merchants/{merchantId}/booking-config [patch]
func (h *ConfigHandler) Update(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	patch, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
		return
	}
	view, err := h.cmds.UpdateBookingConfig(c.Request.Context(), merchantID, patch)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfigView(view))
}
