package commands

import "group-booking-arbiter/internal/pkg/errs"

var (
	ErrBookingRequestNotFound = errs.New("booking request not found")
	ErrInvalidState           = errs.New("booking request does not allow this transition")
	ErrRequestExpired         = errs.New("booking request has expired")
	ErrCapacityExceeded       = errs.New("not enough capacity for the requested slot")
	ErrValidation             = errs.New("validation failed")
	ErrConcurrentUpdate       = errs.New("booking request was modified concurrently")
	ErrTimeout                = errs.New("processing deadline exceeded")
	ErrPersistenceFailure     = errs.New("failed to persist decision")
	ErrCapacityUnavailable    = errs.New("capacity ledger unavailable")
)
