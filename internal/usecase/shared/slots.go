package shared

import (
	"context"

	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
)

// SlotPlanner keeps the ledger's seat plan in line with config and baseline, and reads the
// state of slots for arbitration.
type SlotPlanner struct {
	ledger    CapacityLedger
	baselines *BaselineProvider
}

func NewSlotPlanner(ledger CapacityLedger, baselines *BaselineProvider) *SlotPlanner {
	return &SlotPlanner{ledger: ledger, baselines: baselines}
}

// View provisions the slot and returns its snapshot with the baseline it was planned on.
// A slot without configured capacity yields capacity.ErrSlotNotProvisioned.
func (p *SlotPlanner) View(ctx context.Context, cfg *policy.BookingConfig, date schedule.Date, slot schedule.Slot) (decision.SlotView, error) {
	total := cfg.CapacityFor(slot)
	if total <= 0 {
		return decision.SlotView{}, capacity.ErrSlotNotProvisioned
	}

	b, err := p.baselines.Baseline(ctx, cfg, date, slot)
	if err != nil {
		return decision.SlotView{}, err
	}

	key := capacity.NewKey(cfg.MerchantID(), date, slot)
	plan := capacity.Plan{Total: total, WalkinFloor: min(b.WalkinFloor, total)}
	if err := p.ledger.Provision(ctx, key, plan); err != nil {
		return decision.SlotView{}, err
	}
	snap, err := p.ledger.Snapshot(ctx, key)
	if err != nil {
		return decision.SlotView{}, err
	}
	return decision.SlotView{Snapshot: snap, Baseline: b}, nil
}

// Neighbourhood returns views of the slot and of its adjacent slots that have capacity
// configured.
func (p *SlotPlanner) Neighbourhood(ctx context.Context, cfg *policy.BookingConfig, date schedule.Date, slot schedule.Slot) (map[schedule.Slot]decision.SlotView, error) {
	views := make(map[schedule.Slot]decision.SlotView, 3)
	home, err := p.View(ctx, cfg, date, slot)
	if err != nil {
		return nil, err
	}
	views[slot] = home

	for _, adj := range slot.Adjacent() {
		if cfg.CapacityFor(adj) <= 0 {
			continue
		}
		v, err := p.View(ctx, cfg, date, adj)
		if err != nil {
			return nil, err
		}
		views[adj] = v
	}
	return views, nil
}

func (p *SlotPlanner) Snapshot(ctx context.Context, key capacity.Key) (capacity.Snapshot, error) {
	return p.ledger.Snapshot(ctx, key)
}
