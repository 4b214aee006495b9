package api

import (
	"errors"
	"net/http"

	reqdto "group-booking-arbiter/internal/handler/dto/request"
	resdto "group-booking-arbiter/internal/handler/dto/response"
	"group-booking-arbiter/internal/handler/httperr"
	"group-booking-arbiter/internal/handler/middleware"
	"group-booking-arbiter/internal/usecase/commands"
	"group-booking-arbiter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingScope = errors.New("merchant scope missing from context")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking request
// @Description Register an inbound group booking request from a partner
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/merchants/{merchantId}/booking-requests [post]
func (h *BookingHandler) Create(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToDomain(merchantID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
		return
	}
	view, err := h.cmds.CreateBookingRequest(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingRequestView(view))
}

// @Summary Process booking request
// @Description Run arbitration on a pending request: accept, decline or counter under the merchant's policy
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param id path string true "Booking request ID"
// @Success 200 {object} resdto.ProcessResultResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/merchants/{merchantId}/booking-requests/{id}/process [post]
func (h *BookingHandler) Process(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	id, ok := requestIDFrom(c)
	if !ok {
		return
	}
	result, err := h.cmds.ProcessBookingRequest(c.Request.Context(), merchantID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProcessResult(result))
}

// @Summary Update booking request status
// @Description Apply a manager's accept, decline or counter to a booking request
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param id path string true "Booking request ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status change"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/merchants/{merchantId}/booking-requests/{id}/status [post]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	id, ok := requestIDFrom(c)
	if !ok {
		return
	}
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingScope, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	action, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
		return
	}

	view, err := h.cmds.UpdateBookingRequestStatus(c.Request.Context(), merchantID, id, commands.StatusChange{
		Action:          action,
		Actor:           principal.ActorID,
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRequestView(view))
}

// @Summary Get booking request
// @Description Get a booking request with its latest decision
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param id path string true "Booking request ID"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/merchants/{merchantId}/booking-requests/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	id, ok := requestIDFrom(c)
	if !ok {
		return
	}
	view, err := h.q.GetBookingRequest(c.Request.Context(), merchantID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRequestView(view))
}

// @Summary List booking requests
// @Description List a merchant's booking requests ordered by requested date
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param merchantId path string true "Merchant ID"
// @Param status query []string false "Status filter, repeatable" collectionFormat(multi)
// @Param from query string false "Earliest requested date (YYYY-MM-DD)"
// @Param to query string false "Latest requested date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 50, max 200)"
// @Success 200 {object} resdto.BookingRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/merchants/{merchantId}/booking-requests [get]
func (h *BookingHandler) List(c *gin.Context) {
	merchantID, ok := merchantFrom(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", gin.H{"reason": err.Error()})
		return
	}
	items, err := h.q.ListBookingRequests(c.Request.Context(), merchantID, filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRequestList(items))
}

func merchantFrom(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetMerchantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, errMissingScope, "Insufficient permissions", nil)
		return uuid.Nil, false
	}
	return id, true
}

func requestIDFrom(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
