package request

import (
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
)

// UpdateBookingConfigRequest is a partial update: absent fields keep their current value,
// present lists replace the stored list, map entries are merged.
type UpdateBookingConfigRequest struct {
	AutomationLevel       *string            `json:"automation_level,omitempty" binding:"omitempty,oneof=manual semi_auto full_auto"`
	WeightRevenue         *float64           `json:"weight_revenue,omitempty"`
	WeightOccupancy       *float64           `json:"weight_occupancy,omitempty"`
	WeightRelationships   *float64           `json:"weight_relationships,omitempty"`
	MinMarginPercent      *float64           `json:"min_margin_percent,omitempty"`
	MaxGroupPercent       *float64           `json:"max_group_percent,omitempty"`
	BlackoutDates         *[]string          `json:"blackout_dates,omitempty"`
	HolidayDates          *[]string          `json:"holiday_dates,omitempty"`
	PreferredPartners     *[]string          `json:"preferred_partners,omitempty"`
	BlockedPartners       *[]string          `json:"blocked_partners,omitempty"`
	SlotCapacity          map[string]int     `json:"slot_capacity,omitempty"`
	EstimatedCostPerCover *float64           `json:"estimated_cost_per_cover,omitempty"`
	MenuCosts             map[string]float64 `json:"menu_costs,omitempty"`
}

func (r UpdateBookingConfigRequest) ToDomain() (policy.Patch, error) {
	p := policy.Patch{
		WeightRevenue:       r.WeightRevenue,
		WeightOccupancy:     r.WeightOccupancy,
		WeightRelationships: r.WeightRelationships,
		MinMarginPercent:    r.MinMarginPercent,
		MaxGroupPercent:     r.MaxGroupPercent,
		PreferredPartners:   r.PreferredPartners,
		BlockedPartners:     r.BlockedPartners,
		CostPerCover:        r.EstimatedCostPerCover,
		MenuCosts:           r.MenuCosts,
	}
	if r.AutomationLevel != nil {
		level, err := policy.ParseAutomationLevel(*r.AutomationLevel)
		if err != nil {
			return policy.Patch{}, err
		}
		p.AutomationLevel = &level
	}

	var err error
	if p.BlackoutDates, err = parseDates(r.BlackoutDates); err != nil {
		return policy.Patch{}, err
	}
	if p.HolidayDates, err = parseDates(r.HolidayDates); err != nil {
		return policy.Patch{}, err
	}

	if len(r.SlotCapacity) > 0 {
		p.SlotCapacity = make(map[schedule.Slot]int, len(r.SlotCapacity))
		for raw, seats := range r.SlotCapacity {
			slot, err := schedule.ParseSlot(raw)
			if err != nil {
				return policy.Patch{}, err
			}
			p.SlotCapacity[slot] = seats
		}
	}
	return p, nil
}

func parseDates(raw *[]string) (*[]schedule.Date, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]schedule.Date, 0, len(*raw))
	for _, s := range *raw {
		d, err := schedule.ParseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return &out, nil
}
