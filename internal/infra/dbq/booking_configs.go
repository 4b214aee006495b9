package dbq

import (
	"context"

	"github.com/google/uuid"
)

const getBookingConfig = `
SELECT merchant_id, automation_level, weight_revenue, weight_occupancy, weight_relationships,
       min_margin_percent, max_group_percent, blackout_dates, preferred_partners, blocked_partners,
       slot_capacity, cost_per_cover, menu_costs, holiday_dates, updated_at
FROM booking_configs
WHERE merchant_id = $1`

func (q *Queries) GetBookingConfig(ctx context.Context, db DBTX, merchantID uuid.UUID) (BookingConfig, error) {
	var i BookingConfig
	err := db.QueryRow(ctx, getBookingConfig, merchantID).Scan(
		&i.MerchantID,
		&i.AutomationLevel,
		&i.WeightRevenue,
		&i.WeightOccupancy,
		&i.WeightRelationships,
		&i.MinMarginPercent,
		&i.MaxGroupPercent,
		&i.BlackoutDates,
		&i.PreferredPartners,
		&i.BlockedPartners,
		&i.SlotCapacity,
		&i.CostPerCover,
		&i.MenuCosts,
		&i.HolidayDates,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertBookingConfig = `
INSERT INTO booking_configs (
    merchant_id, automation_level, weight_revenue, weight_occupancy, weight_relationships,
    min_margin_percent, max_group_percent, blackout_dates, preferred_partners, blocked_partners,
    slot_capacity, cost_per_cover, menu_costs, holiday_dates, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (merchant_id) DO UPDATE SET
    automation_level = EXCLUDED.automation_level,
    weight_revenue = EXCLUDED.weight_revenue,
    weight_occupancy = EXCLUDED.weight_occupancy,
    weight_relationships = EXCLUDED.weight_relationships,
    min_margin_percent = EXCLUDED.min_margin_percent,
    max_group_percent = EXCLUDED.max_group_percent,
    blackout_dates = EXCLUDED.blackout_dates,
    preferred_partners = EXCLUDED.preferred_partners,
    blocked_partners = EXCLUDED.blocked_partners,
    slot_capacity = EXCLUDED.slot_capacity,
    cost_per_cover = EXCLUDED.cost_per_cover,
    menu_costs = EXCLUDED.menu_costs,
    holiday_dates = EXCLUDED.holiday_dates,
    updated_at = EXCLUDED.updated_at`

func (q *Queries) UpsertBookingConfig(ctx context.Context, db DBTX, arg BookingConfig) error {
	_, err := db.Exec(ctx, upsertBookingConfig,
		arg.MerchantID,
		arg.AutomationLevel,
		arg.WeightRevenue,
		arg.WeightOccupancy,
		arg.WeightRelationships,
		arg.MinMarginPercent,
		arg.MaxGroupPercent,
		arg.BlackoutDates,
		arg.PreferredPartners,
		arg.BlockedPartners,
		arg.SlotCapacity,
		arg.CostPerCover,
		arg.MenuCosts,
		arg.HolidayDates,
		arg.UpdatedAt,
	)
	return err
}
