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

type PerformanceHandler struct {
	cmds      commands.PerformanceCommands
	analytics queries.AnalyticsQueries
	capacity  queries.CapacityQueries
}

func NewPerformanceHandler(cmds commands.PerformanceCommands, analytics queries.AnalyticsQueries, capacity queries.CapacityQueries) *PerformanceHandler {
	return &PerformanceHandler{cmds: cmds, analytics: analytics, capacity: capacity}
}

// @Summary Record slot performance
// @Description Upsert the realized outcome of one service slot
// @Tags performance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param request body reqdto.RecordPerformanceRequest true "Performance record"
// @Success 200 {object} resdto.PerformanceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/merchants/{merchantId}/performance [put]
func (h *PerformanceHandler) Record(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	var req reqdto.RecordPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToDomain(merchantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
		return
	}
	view, err := h.cmds.RecordBookingPerformance(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPerformanceView(view))
}

// @Summary Booking analytics
// @Description Aggregate requests, decisions and realized performance over a date range
// @Tags performance
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/merchants/{merchantId}/analytics [get]
func (h *PerformanceHandler) Analytics(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	var q reqdto.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	from, to, err := q.Range()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", gin.H{"reason": err.Error()})
		return
	}
	view, err := h.analytics.GetBookingAnalytics(c.Request.Context(), merchantID, from, to)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAnalyticsView(view))
}

// @Summary Capacity snapshot
// @Description Seats held by groups and kept for walk-ins in one service slot
// @Tags performance
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param date query string true "Service date (YYYY-MM-DD)"
// @Param slot query string true "Service slot" Enums(breakfast, lunch, dinner)
// @Success 200 {object} resdto.CapacityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/merchants/{merchantId}/capacity [get]
func (h *PerformanceHandler) Capacity(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	var q reqdto.CapacityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, slot, err := q.Key()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", gin.H{"reason": err.Error()})
		return
	}
	view, err := h.capacity.GetCapacitySnapshot(c.Request.Context(), merchantID, date, slot)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCapacityView(view))
}
