package api

import (
	"net/http"

	"group-booking-arbiter/internal/handler/httperr"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/commands"
	"group-booking-arbiter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// errorStatuses is ordered: a timed-out call may also carry a ledger failure mark, and the
// deadline is what the client needs to see.
var errorStatuses = []struct {
	targets []error
	status  int
	message string
}{
	{[]error{commands.ErrTimeout}, http.StatusGatewayTimeout, "Processing deadline exceeded"},
	{[]error{commands.ErrValidation, queries.ErrInvalidFilter}, http.StatusBadRequest, "Validation failed"},
	{[]error{commands.ErrBookingRequestNotFound, queries.ErrBookingRequestNotFound}, http.StatusNotFound, "Booking request not found"},
	{[]error{queries.ErrSlotNotConfigured}, http.StatusNotFound, "Slot has no configured capacity"},
	{[]error{commands.ErrRequestExpired}, http.StatusConflict, "Booking request has expired"},
	{[]error{commands.ErrInvalidState}, http.StatusConflict, "Booking request does not allow this transition"},
	{[]error{commands.ErrCapacityExceeded}, http.StatusConflict, "Not enough capacity for the requested slot"},
	{[]error{commands.ErrConcurrentUpdate}, http.StatusConflict, "Booking request was modified concurrently"},
	{[]error{commands.ErrPersistenceFailure, commands.ErrCapacityUnavailable}, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

// abortWithUsecaseError maps usecase sentinels onto HTTP statuses. Anything unmapped is a 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorStatuses {
		if errs.IsAny(err, m.targets...) {
			var detail any
			if m.status == http.StatusBadRequest {
				detail = gin.H{"reason": rootMessage(err)}
			}
			httperr.AbortWithError(c, m.status, err, m.message, detail)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// rootMessage is the innermost message, which for validation failures names the offending field.
func rootMessage(err error) string {
	return errs.Cause(err).Error()
}
