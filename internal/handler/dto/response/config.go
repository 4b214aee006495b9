package response

import (
	"group-booking-arbiter/internal/usecase/queries"
)

type BookingConfigResponse struct {
	MerchantID            string             `json:"merchant_id"`
	AutomationLevel       string             `json:"automation_level"`
	WeightRevenue         float64            `json:"weight_revenue"`
	WeightOccupancy       float64            `json:"weight_occupancy"`
	WeightRelationships   float64            `json:"weight_relationships"`
	MinMarginPercent      float64            `json:"min_margin_percent"`
	MaxGroupPercent       float64            `json:"max_group_percent"`
	BlackoutDates         []string           `json:"blackout_dates"`
	HolidayDates          []string           `json:"holiday_dates"`
	PreferredPartners     []string           `json:"preferred_partners"`
	BlockedPartners       []string           `json:"blocked_partners"`
	SlotCapacity          map[string]int     `json:"slot_capacity"`
	EstimatedCostPerCover float64            `json:"estimated_cost_per_cover"`
	MenuCosts             map[string]float64 `json:"menu_costs"`
	IsDefault             bool               `json:"is_default"`
	UpdatedAt             *int64             `json:"updated_at,omitempty"`
}

func FromConfigView(v *queries.ConfigView) *BookingConfigResponse {
	menuCosts := v.MenuCosts
	if menuCosts == nil {
		menuCosts = map[string]float64{}
	}
	res := &BookingConfigResponse{
		MerchantID:            v.MerchantID.String(),
		AutomationLevel:       v.AutomationLevel,
		WeightRevenue:         v.WeightRevenue,
		WeightOccupancy:       v.WeightOccupancy,
		WeightRelationships:   v.WeightRelationships,
		MinMarginPercent:      v.MinMarginPercent,
		MaxGroupPercent:       v.MaxGroupPercent,
		BlackoutDates:         v.BlackoutDates,
		HolidayDates:          v.HolidayDates,
		PreferredPartners:     v.PreferredPartners,
		BlockedPartners:       v.BlockedPartners,
		SlotCapacity:          v.SlotCapacity,
		EstimatedCostPerCover: v.EstimatedCostPerCover,
		MenuCosts:             menuCosts,
		IsDefault:             v.IsDefault,
	}
	if v.UpdatedAt != nil {
		at := v.UpdatedAt.Unix()
		res.UpdatedAt = &at
	}
	return res
}
