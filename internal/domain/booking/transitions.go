package booking

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"group-booking-arbiter/internal/domain/schedule"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotExpired        = errors.New("booking request has not expired")
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusDeclined, StatusCountered, StatusExpired},
	StatusCountered: {StatusAccepted, StatusDeclined, StatusExpired},
}

func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

func (r *BookingRequest) transition(to Status, by string, now time.Time) error {
	if !CanTransition(r.status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.status, to)
	}
	r.status = to
	r.decidedBy = by
	decided := now
	r.decidedAt = &decided
	r.updatedAt = now
	// Stores bump the persisted version by one on every transition.
	r.version++
	return nil
}

// Accept moves the request to accepted. holder identifies the capacity reservation made for
// the effective terms.
func (r *BookingRequest) Accept(by, holder string, now time.Time) error {
	if err := r.transition(StatusAccepted, by, now); err != nil {
		return err
	}
	r.reservationHolder = holder
	return nil
}

func (r *BookingRequest) Decline(by string, now time.Time) error {
	return r.transition(StatusDeclined, by, now)
}

func (r *BookingRequest) Counter(offer CounterOffer, by string, now time.Time) error {
	if err := offer.Terms.Validate(); err != nil {
		return err
	}
	if err := r.transition(StatusCountered, by, now); err != nil {
		return err
	}
	r.counterOffer = &offer
	return nil
}

// IsExpiredOn reports whether the request's effective date passed before today while unresolved.
func (r *BookingRequest) IsExpiredOn(today schedule.Date) bool {
	if r.status != StatusPending && r.status != StatusCountered {
		return false
	}
	return r.EffectiveTerms().Date.Before(today)
}

func (r *BookingRequest) Expire(now time.Time) error {
	if !r.IsExpiredOn(schedule.DateOf(now)) {
		return ErrNotExpired
	}
	return r.transition(StatusExpired, DecidedByEngine, now)
}

// ManualAction is a manager's resolution of a request. Every variant is permitted regardless
// of the merchant's automation level; the transition table still applies.
type ManualAction interface {
	TargetStatus() Status
	// ReservesCapacity reports whether seats for the effective terms must be held before Apply.
	ReservesCapacity() bool
	Apply(r *BookingRequest, actor, holder string, now time.Time) error
}

type Accept struct{}

func (Accept) TargetStatus() Status   { return StatusAccepted }
func (Accept) ReservesCapacity() bool { return true }

func (Accept) Apply(r *BookingRequest, actor, holder string, now time.Time) error {
	return r.Accept(actor, holder, now)
}

type Decline struct{}

func (Decline) TargetStatus() Status   { return StatusDeclined }
func (Decline) ReservesCapacity() bool { return false }

func (Decline) Apply(r *BookingRequest, actor, _ string, now time.Time) error {
	return r.Decline(actor, now)
}

type Counter struct {
	Changes CounterChanges
}

func (Counter) TargetStatus() Status   { return StatusCountered }
func (Counter) ReservesCapacity() bool { return false }

func (c Counter) Apply(r *BookingRequest, actor, _ string, now time.Time) error {
	offer, err := c.Changes.ApplyTo(r.Terms())
	if err != nil {
		return err
	}
	return r.Counter(offer, actor, now)
}
