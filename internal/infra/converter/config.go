package converter

import (
	"encoding/json"

	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/pgconv"
)

func ConfigToRow(c *policy.BookingConfig) (dbq.BookingConfig, error) {
	s := c.State()
	capacity, err := json.Marshal(s.SlotCapacity)
	if err != nil {
		return dbq.BookingConfig{}, err
	}
	menuCosts, err := json.Marshal(s.MenuCosts)
	if err != nil {
		return dbq.BookingConfig{}, err
	}
	return dbq.BookingConfig{
		MerchantID:          s.MerchantID,
		AutomationLevel:     s.AutomationLevel.String(),
		WeightRevenue:       s.Weights.Revenue,
		WeightOccupancy:     s.Weights.Occupancy,
		WeightRelationships: s.Weights.Relationships,
		MinMarginPercent:    s.MinMarginPercent,
		MaxGroupPercent:     s.MaxGroupPercent,
		BlackoutDates:       pgconv.DatesToPgtype(s.BlackoutDates),
		PreferredPartners:   pgconv.NonNil(s.PreferredPartners),
		BlockedPartners:     pgconv.NonNil(s.BlockedPartners),
		SlotCapacity:        capacity,
		CostPerCover:        s.CostPerCover,
		MenuCosts:           menuCosts,
		HolidayDates:        pgconv.DatesToPgtype(s.HolidayDates),
		UpdatedAt:           pgconv.TimeToPgtype(s.UpdatedAt),
	}, nil
}

func ConfigFromRow(row dbq.BookingConfig) (*policy.BookingConfig, error) {
	capacity := map[schedule.Slot]int{}
	if len(row.SlotCapacity) > 0 {
		if err := json.Unmarshal(row.SlotCapacity, &capacity); err != nil {
			return nil, err
		}
	}
	menuCosts := map[string]float64{}
	if len(row.MenuCosts) > 0 {
		if err := json.Unmarshal(row.MenuCosts, &menuCosts); err != nil {
			return nil, err
		}
	}
	return policy.ReconstructBookingConfig(policy.State{
		MerchantID:      row.MerchantID,
		AutomationLevel: policy.AutomationLevel(row.AutomationLevel),
		Weights: policy.Weights{
			Revenue:       row.WeightRevenue,
			Occupancy:     row.WeightOccupancy,
			Relationships: row.WeightRelationships,
		},
		MinMarginPercent:  row.MinMarginPercent,
		MaxGroupPercent:   row.MaxGroupPercent,
		BlackoutDates:     pgconv.DatesFromPgtype(row.BlackoutDates),
		PreferredPartners: row.PreferredPartners,
		BlockedPartners:   row.BlockedPartners,
		SlotCapacity:      capacity,
		CostPerCover:      row.CostPerCover,
		MenuCosts:         menuCosts,
		HolidayDates:      pgconv.DatesFromPgtype(row.HolidayDates),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
