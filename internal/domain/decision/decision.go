package decision

import (
	"time"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/scoring"

	"github.com/google/uuid"
)

type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
	ActionCounter Action = "counter"
)

func (a Action) String() string { return string(a) }

// TargetStatus is the request status the action leads to when applied.
func (a Action) TargetStatus() booking.Status {
	switch a {
	case ActionAccept:
		return booking.StatusAccepted
	case ActionCounter:
		return booking.StatusCountered
	default:
		return booking.StatusDeclined
	}
}

type ReasonCode string

const (
	ReasonBlocked          ReasonCode = "Blocked"
	ReasonBlackout         ReasonCode = "Blackout"
	ReasonExceedsGroupCap  ReasonCode = "ExceedsGroupCap"
	ReasonBelowMargin      ReasonCode = "BelowMargin"
	ReasonBelowThreshold   ReasonCode = "BelowThreshold"
	ReasonDeadBand         ReasonCode = "DeadBand"
	ReasonCapacityRace     ReasonCode = "CapacityRace"
	ReasonNoViableCounter  ReasonCode = "NoViableCounter"
	ReasonReducedPartySize ReasonCode = "ReducedPartySize"
	ReasonShiftedSlot      ReasonCode = "ShiftedSlot"
	ReasonAdjustedPrice    ReasonCode = "AdjustedPrice"
)

type Params struct {
	RequestID       uuid.UUID
	MerchantID      uuid.UUID
	Action          Action
	Score           scoring.Score
	Reasons         []ReasonCode
	CounterOffer    *booking.CounterOffer
	Advisory        bool
	ForecastRevenue float64
}

type State struct {
	ID uuid.UUID
	Params
	DecidedAt time.Time
}

// Decision is the immutable outcome of one arbitration.
type Decision struct {
	id              uuid.UUID
	requestID       uuid.UUID
	merchantID      uuid.UUID
	action          Action
	score           scoring.Score
	reasons         []ReasonCode
	counterOffer    *booking.CounterOffer
	advisory        bool
	forecastRevenue float64
	decidedAt       time.Time
}

func New(p Params, now time.Time) *Decision {
	return NewWithID(uuid.New(), p, now)
}

// NewWithID is used when the id must be known before the decision is final, e.g. to tag a
// capacity reservation with it.
func NewWithID(id uuid.UUID, p Params, now time.Time) *Decision {
	return Reconstruct(State{ID: id, Params: p, DecidedAt: now})
}

func Reconstruct(s State) *Decision {
	reasons := make([]ReasonCode, len(s.Reasons))
	copy(reasons, s.Reasons)
	return &Decision{
		id:              s.ID,
		requestID:       s.RequestID,
		merchantID:      s.MerchantID,
		action:          s.Action,
		score:           s.Score,
		reasons:         reasons,
		counterOffer:    s.CounterOffer,
		advisory:        s.Advisory,
		forecastRevenue: s.ForecastRevenue,
		decidedAt:       s.DecidedAt,
	}
}

func (d *Decision) ID() uuid.UUID                       { return d.id }
func (d *Decision) RequestID() uuid.UUID                { return d.requestID }
func (d *Decision) MerchantID() uuid.UUID               { return d.merchantID }
func (d *Decision) Action() Action                      { return d.action }
func (d *Decision) Score() scoring.Score                { return d.score }
func (d *Decision) Reasons() []ReasonCode               { return d.reasons }
func (d *Decision) CounterOffer() *booking.CounterOffer { return d.counterOffer }
func (d *Decision) Advisory() bool                      { return d.advisory }
func (d *Decision) ForecastRevenue() float64            { return d.forecastRevenue }
func (d *Decision) DecidedAt() time.Time                { return d.decidedAt }

func (d *Decision) State() State {
	return State{
		ID: d.id,
		Params: Params{
			RequestID:       d.requestID,
			MerchantID:      d.merchantID,
			Action:          d.action,
			Score:           d.score,
			Reasons:         d.reasons,
			CounterOffer:    d.counterOffer,
			Advisory:        d.advisory,
			ForecastRevenue: d.forecastRevenue,
		},
		DecidedAt: d.decidedAt,
	}
}
