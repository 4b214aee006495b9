package decision

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/domain/scoring"
)

// DefaultCostRatio estimates cost per cover as a share of price when the merchant configured no
// cost basis.
const DefaultCostRatio = 0.35

// SlotView is what is known about one slot at decision time.
type SlotView struct {
	Snapshot capacity.Snapshot
	Baseline performance.Baseline
}

type Assessment struct {
	Score   scoring.Score
	Outcome scoring.Outcome
}

// Evaluator holds the pure arbitration rules: hard gates, scoring and counter-offer search.
type Evaluator struct {
	scorer    scoring.Scorer
	costRatio float64
}

func NewEvaluator(scorer scoring.Scorer, costRatio float64) *Evaluator {
	if costRatio <= 0 || costRatio >= 1 {
		costRatio = DefaultCostRatio
	}
	return &Evaluator{scorer: scorer, costRatio: costRatio}
}

// EstimatedCost is the cost of one cover: the menu's cost, the merchant's flat cost, or a fixed
// share of the price.
func (e *Evaluator) EstimatedCost(cfg *policy.BookingConfig, menuType string, price float64) float64 {
	if cost, ok := cfg.CostPerCover(menuType); ok {
		return cost
	}
	return price * e.costRatio
}

func MarginPercent(price, cost float64) float64 {
	if price <= 0 {
		return math.Inf(-1)
	}
	return (price - cost) / price * 100
}

// Gate evaluates the hard constraints in precedence order and returns the first that fires.
func (e *Evaluator) Gate(req *booking.BookingRequest, cfg *policy.BookingConfig, t booking.Terms, totalCapacity int) (ReasonCode, bool) {
	switch {
	case cfg.IsBlocked(req.PartnerID()):
		return ReasonBlocked, true
	case cfg.IsBlackout(t.Date):
		return ReasonBlackout, true
	case exceedsGroupCap(t.PartySize, totalCapacity, cfg.MaxGroupPercent()):
		return ReasonExceedsGroupCap, true
	case MarginPercent(t.PricePerPerson, e.EstimatedCost(cfg, req.MenuType(), t.PricePerPerson)) < cfg.MinMarginPercent():
		return ReasonBelowMargin, true
	}
	return "", false
}

func exceedsGroupCap(partySize, total int, maxGroupPercent float64) bool {
	if total <= 0 {
		return true
	}
	return float64(partySize)*100/float64(total) > maxGroupPercent
}

func (e *Evaluator) Assess(req *booking.BookingRequest, cfg *policy.BookingConfig, t booking.Terms, v SlotView) Assessment {
	s := e.scorer.Score(scoring.Input{
		Terms:     t,
		PartnerID: req.PartnerID(),
		Config:    cfg,
		Snapshot:  v.Snapshot,
		Baseline:  v.Baseline,
	})
	return Assessment{Score: s, Outcome: e.scorer.Classify(s)}
}

// Counter searches for alternative terms that would be accepted outright. Candidates are tried in
// order: a smaller party, a less utilised adjacent slot, a higher price. views must hold the
// requested slot and may hold its neighbours.
func (e *Evaluator) Counter(req *booking.BookingRequest, cfg *policy.BookingConfig, views map[schedule.Slot]SlotView) (*booking.CounterOffer, ReasonCode, bool) {
	base := req.Terms()
	home, ok := views[base.Slot]
	if !ok {
		return nil, ReasonNoViableCounter, false
	}
	if offer, ok := e.reducedParty(req, cfg, base, home); ok {
		return offer, ReasonReducedPartySize, true
	}
	if offer, ok := e.shiftedSlot(req, cfg, base, home, views); ok {
		return offer, ReasonShiftedSlot, true
	}
	if offer, ok := e.adjustedPrice(req, cfg, base, home); ok {
		return offer, ReasonAdjustedPrice, true
	}
	return nil, ReasonNoViableCounter, false
}

func (e *Evaluator) accepts(req *booking.BookingRequest, cfg *policy.BookingConfig, t booking.Terms, v SlotView) bool {
	if _, fired := e.Gate(req, cfg, t, v.Snapshot.TotalCapacity); fired {
		return false
	}
	if !v.Snapshot.CanAdmit(t.PartySize) {
		return false
	}
	return e.Assess(req, cfg, t, v).Outcome == scoring.OutcomeAccept
}

func (e *Evaluator) reducedParty(req *booking.BookingRequest, cfg *policy.BookingConfig, base booking.Terms, v SlotView) (*booking.CounterOffer, bool) {
	snap := v.Snapshot
	total := float64(snap.TotalCapacity)
	byCap := int(math.Floor(cfg.MaxGroupPercent()*total/100 + 1e-9))
	nonDisplacing := int(math.Floor(total - float64(snap.ReservedByGroups) - v.Baseline.OccupancyRate*total))
	size := min(base.PartySize-1, byCap, nonDisplacing, snap.Free())
	if size < 1 {
		return nil, false
	}
	t := base
	t.PartySize = size
	if !e.accepts(req, cfg, t, v) {
		return nil, false
	}
	return &booking.CounterOffer{
		Terms:   t,
		Message: fmt.Sprintf("We can host a party of %d for this %s.", size, base.Slot),
	}, true
}

func (e *Evaluator) shiftedSlot(req *booking.BookingRequest, cfg *policy.BookingConfig, base booking.Terms, home SlotView, views map[schedule.Slot]SlotView) (*booking.CounterOffer, bool) {
	candidates := make([]schedule.Slot, 0, 2)
	for _, s := range base.Slot.Adjacent() {
		if v, ok := views[s]; ok && v.Snapshot.GroupUtilization() < home.Snapshot.GroupUtilization() {
			candidates = append(candidates, s)
		}
	}
	slices.SortStableFunc(candidates, func(a, b schedule.Slot) int {
		return cmp.Compare(views[a].Snapshot.GroupUtilization(), views[b].Snapshot.GroupUtilization())
	})
	for _, s := range candidates {
		t := base
		t.Slot = s
		if e.accepts(req, cfg, t, views[s]) {
			return &booking.CounterOffer{
				Terms:   t,
				Message: fmt.Sprintf("We can host your party at %s instead of %s.", s, base.Slot),
			}, true
		}
	}
	return nil, false
}

// adjustedPrice solves for the revenue component that lifts the weighted total onto the accept
// line, then prices it in, never below the margin floor.
func (e *Evaluator) adjustedPrice(req *booking.BookingRequest, cfg *policy.BookingConfig, base booking.Terms, v SlotView) (*booking.CounterOffer, bool) {
	w := cfg.Weights()
	spend := v.Baseline.WalkinSpendPerCover
	if w.Revenue <= 0 || spend <= 0 {
		return nil, false
	}
	current := e.Assess(req, cfg, base, v).Score
	needed := (e.scorer.AcceptLine()*w.Sum() - w.Occupancy*current.Occupancy - w.Relationships*current.Relationship) / w.Revenue
	if needed > 1 {
		return nil, false
	}
	price := spend * (1 + needed)

	cost, known := cfg.CostPerCover(req.MenuType())
	if known && cost > 0 {
		if cfg.MinMarginPercent() >= 100 {
			return nil, false
		}
		price = max(price, cost/(1-cfg.MinMarginPercent()/100))
	}
	price = ceilCents(price)
	if price <= base.PricePerPerson {
		return nil, false
	}

	// one extra cent absorbs float error at the accept line
	for _, p := range []float64{price, price + 0.01} {
		t := base
		t.PricePerPerson = ceilCents(p)
		if e.accepts(req, cfg, t, v) {
			return &booking.CounterOffer{
				Terms:   t,
				Message: fmt.Sprintf("We can confirm at %.2f per person.", t.PricePerPerson),
			}, true
		}
	}
	return nil, false
}

func ceilCents(v float64) float64 {
	return math.Ceil(math.Round(v*1e6)/1e4) / 100
}
