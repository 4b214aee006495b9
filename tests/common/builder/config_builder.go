//go:build unit || e2e

package builder

import (
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"

	"github.com/google/uuid"
)

type ConfigBuilder struct {
	MerchantID        uuid.UUID
	AutomationLevel   policy.AutomationLevel
	Weights           policy.Weights
	MinMarginPercent  float64
	MaxGroupPercent   float64
	BlackoutDates     []schedule.Date
	PreferredPartners []string
	BlockedPartners   []string
	SlotCapacity      map[schedule.Slot]int
	CostPerCover      float64
	MenuCosts         map[string]float64
	HolidayDates      []schedule.Date
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		MerchantID:      uuid.New(),
		AutomationLevel: policy.AutomationSemiAuto,
		Weights: policy.Weights{
			Revenue:       policy.DefaultWeightRevenue,
			Occupancy:     policy.DefaultWeightOccupancy,
			Relationships: policy.DefaultWeightRelationships,
		},
		MinMarginPercent: policy.DefaultMinMarginPercent,
		MaxGroupPercent:  policy.DefaultMaxGroupPercent,
		SlotCapacity: map[schedule.Slot]int{
			schedule.SlotBreakfast: 40,
			schedule.SlotLunch:     40,
			schedule.SlotDinner:    40,
		},
		MenuCosts: map[string]float64{},
	}
}

func (c *ConfigBuilder) With(mutate func(*ConfigBuilder)) *ConfigBuilder {
	mutate(c)
	return c
}

func (c *ConfigBuilder) BuildState() policy.State {
	return policy.State{
		MerchantID:        c.MerchantID,
		AutomationLevel:   c.AutomationLevel,
		Weights:           c.Weights,
		MinMarginPercent:  c.MinMarginPercent,
		MaxGroupPercent:   c.MaxGroupPercent,
		BlackoutDates:     c.BlackoutDates,
		PreferredPartners: c.PreferredPartners,
		BlockedPartners:   c.BlockedPartners,
		SlotCapacity:      c.SlotCapacity,
		CostPerCover:      c.CostPerCover,
		MenuCosts:         c.MenuCosts,
		HolidayDates:      c.HolidayDates,
		UpdatedAt:         ReferenceNow,
	}
}

func (c *ConfigBuilder) BuildDomain() *policy.BookingConfig {
	return policy.ReconstructBookingConfig(c.BuildState())
}

func (c *ConfigBuilder) WithMerchantID(id uuid.UUID) *ConfigBuilder {
	c.MerchantID = id
	return c
}

func (c *ConfigBuilder) WithAutomation(level policy.AutomationLevel) *ConfigBuilder {
	c.AutomationLevel = level
	return c
}

func (c *ConfigBuilder) WithCapacity(seats int) *ConfigBuilder {
	for _, s := range schedule.AllSlots() {
		c.SlotCapacity[s] = seats
	}
	return c
}
