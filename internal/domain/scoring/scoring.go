package scoring

import (
	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
)

const (
	DefaultThreshold = 0.0
	DefaultDeadBand  = 0.05
)

type Outcome string

const (
	OutcomeAccept   Outcome = "accept_eligible"
	OutcomeDeadBand Outcome = "dead_band"
	OutcomeDecline  Outcome = "below_threshold"
)

// Score is the component breakdown of one evaluation. Components lie in [-1, 1].
type Score struct {
	Revenue       float64 `json:"revenue"`
	Occupancy     float64 `json:"occupancy"`
	Relationship  float64 `json:"relationship"`
	WeightedTotal float64 `json:"weighted_total"`
}

type Input struct {
	Terms     booking.Terms
	PartnerID string
	Config    *policy.BookingConfig
	Snapshot  capacity.Snapshot
	Baseline  performance.Baseline
	// Reliability is the partner's show-up rate in [0,1]; nil when not tracked.
	Reliability *float64
}

type Scorer interface {
	Score(in Input) Score
	Classify(s Score) Outcome
	// AcceptLine is the lowest weighted total classified as accept-eligible.
	AcceptLine() float64
}

type Engine struct {
	threshold float64
	deadBand  float64
}

func NewEngine(threshold, deadBand float64) *Engine {
	if deadBand < 0 {
		deadBand = -deadBand
	}
	return &Engine{threshold: threshold, deadBand: deadBand}
}

func (e *Engine) AcceptLine() float64 { return e.threshold + e.deadBand }

func (e *Engine) Score(in Input) Score {
	s := Score{
		Revenue:      RevenueComponent(in.Terms, in.Baseline),
		Occupancy:    OccupancyComponent(in.Terms.PartySize, in.Snapshot, in.Baseline),
		Relationship: relationshipComponent(in),
	}
	s.WeightedTotal = Weigh(in.Config.Weights(), s)
	return s
}

// Classify routes scores inside the dead-band away from an automatic accept.
func (e *Engine) Classify(s Score) Outcome {
	switch {
	case s.WeightedTotal >= e.threshold+e.deadBand:
		return OutcomeAccept
	case s.WeightedTotal < e.threshold-e.deadBand:
		return OutcomeDecline
	default:
		return OutcomeDeadBand
	}
}

// RevenueComponent compares group revenue with the walk-in revenue the same covers would bring.
func RevenueComponent(t booking.Terms, b performance.Baseline) float64 {
	group := t.Revenue()
	walkin := b.ForecastRevenue(t.PartySize)
	if walkin <= 0 {
		if group > 0 {
			return 1
		}
		return 0
	}
	return clamp((group - walkin) / walkin)
}

// OccupancyComponent rewards covers that fill seats walk-ins would leave empty and penalizes
// covers that displace expected walk-in demand.
func OccupancyComponent(partySize int, snap capacity.Snapshot, b performance.Baseline) float64 {
	if partySize <= 0 {
		return 0
	}
	total := float64(snap.TotalCapacity)
	expectedWalkins := b.OccupancyRate * total
	free := total - float64(snap.ReservedByGroups) - expectedWalkins
	filled := min(float64(partySize), max(free, 0))
	displaced := float64(partySize) - filled
	return clamp((filled - displaced) / float64(partySize))
}

func relationshipComponent(in Input) float64 {
	var c float64
	switch {
	case in.Config.IsBlocked(in.PartnerID):
		c = -1
	case in.Config.IsPreferred(in.PartnerID):
		c = 1
	default:
		return 0
	}
	if in.Reliability != nil {
		c *= min(max(*in.Reliability, 0), 1)
	}
	return c
}

// Weigh normalizes the weights over the components; all-zero weights yield 0.
func Weigh(w policy.Weights, s Score) float64 {
	sum := w.Sum()
	if sum <= 0 {
		return 0
	}
	return (w.Revenue*s.Revenue + w.Occupancy*s.Occupancy + w.Relationships*s.Relationship) / sum
}

func clamp(v float64) float64 {
	return min(max(v, -1), 1)
}
