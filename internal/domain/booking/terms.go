package booking

import (
	"errors"

	"group-booking-arbiter/internal/domain/schedule"
)

const MaxPartySize = 500

var (
	ErrInvalidPartySize = errors.New("party size must be between 1 and 500")
	ErrInvalidPrice     = errors.New("price per person must be positive")
	ErrMissingDate      = errors.New("requested date is required")
	ErrEmptyCounter     = errors.New("counter-offer must change at least one term")
)

// Terms are the commercial terms of a group booking: when, how many, at what price.
type Terms struct {
	Date           schedule.Date
	Slot           schedule.Slot
	PartySize      int
	PricePerPerson float64
}

func (t Terms) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if !t.Slot.IsValid() {
		return schedule.ErrInvalidSlot
	}
	if t.PartySize < 1 || t.PartySize > MaxPartySize {
		return ErrInvalidPartySize
	}
	if t.PricePerPerson <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Revenue is the total value of the terms.
func (t Terms) Revenue() float64 {
	return float64(t.PartySize) * t.PricePerPerson
}

// CounterOffer proposes alternative terms for a request.
type CounterOffer struct {
	Terms   Terms
	Message string
}

// CounterChanges is a partial set of term changes; nil fields keep the original term.
type CounterChanges struct {
	Date           *schedule.Date
	Slot           *schedule.Slot
	PartySize      *int
	PricePerPerson *float64
	Message        string
}

func (c CounterChanges) IsEmpty() bool {
	return c.Date == nil && c.Slot == nil && c.PartySize == nil && c.PricePerPerson == nil
}

// ApplyTo merges the changes over base terms and validates the result.
func (c CounterChanges) ApplyTo(base Terms) (CounterOffer, error) {
	if c.IsEmpty() {
		return CounterOffer{}, ErrEmptyCounter
	}
	t := base
	if c.Date != nil {
		t.Date = *c.Date
	}
	if c.Slot != nil {
		t.Slot = *c.Slot
	}
	if c.PartySize != nil {
		t.PartySize = *c.PartySize
	}
	if c.PricePerPerson != nil {
		t.PricePerPerson = *c.PricePerPerson
	}
	if err := t.Validate(); err != nil {
		return CounterOffer{}, err
	}
	if t == base {
		return CounterOffer{}, ErrEmptyCounter
	}
	return CounterOffer{Terms: t, Message: c.Message}, nil
}
