package queries

import (
	"time"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/capacity"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/policy"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/domain/scoring"

	"github.com/google/uuid"
)

type TermsView struct {
	Date           string  `json:"date"`
	Slot           string  `json:"slot"`
	PartySize      int     `json:"party_size"`
	PricePerPerson float64 `json:"price_per_person"`
}

type CounterOfferView struct {
	TermsView
	Message string `json:"message,omitempty"`
}

type DecisionView struct {
	ID              uuid.UUID         `json:"id"`
	RequestID       uuid.UUID         `json:"request_id"`
	Action          string            `json:"action"`
	Score           scoring.Score     `json:"score"`
	ReasonCodes     []string          `json:"reason_codes"`
	CounterOffer    *CounterOfferView `json:"counter_offer,omitempty"`
	Advisory        bool              `json:"advisory"`
	ForecastRevenue float64           `json:"forecast_revenue"`
	DecidedAt       time.Time         `json:"decided_at"`
}

type BookingRequestView struct {
	ID                  uuid.UUID         `json:"id"`
	MerchantID          uuid.UUID         `json:"merchant_id"`
	PartnerType         string            `json:"partner_type"`
	PartnerID           string            `json:"partner_id"`
	PartnerName         string            `json:"partner_name"`
	Requested           TermsView         `json:"requested"`
	MenuType            string            `json:"menu_type"`
	DietaryRequirements []string          `json:"dietary_requirements"`
	SpecialRequests     string            `json:"special_requests,omitempty"`
	Status              string            `json:"status"`
	CounterOffer        *CounterOfferView `json:"counter_offer,omitempty"`
	DecidedBy           string            `json:"decided_by,omitempty"`
	DecidedAt           *time.Time        `json:"decided_at,omitempty"`
	Version             int               `json:"version"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	LatestDecision      *DecisionView     `json:"latest_decision,omitempty"`
}

type BookingRequestFilter struct {
	Statuses []booking.Status
	From     *schedule.Date
	To       *schedule.Date
	Limit    int
}

type ConfigView struct {
	MerchantID            uuid.UUID          `json:"merchant_id"`
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
	UpdatedAt             *time.Time         `json:"updated_at,omitempty"`
}

type CapacityView struct {
	MerchantID               uuid.UUID `json:"merchant_id"`
	Date                     string    `json:"date"`
	Slot                     string    `json:"slot"`
	TotalCapacity            int       `json:"total_capacity"`
	ReservedByGroups         int       `json:"reserved_by_groups"`
	ReservedByWalkinForecast int       `json:"reserved_by_walkin_forecast"`
	Free                     int       `json:"free"`
	Version                  int64     `json:"version"`
}

func NewTermsView(t booking.Terms) TermsView {
	return TermsView{
		Date:           t.Date.String(),
		Slot:           t.Slot.String(),
		PartySize:      t.PartySize,
		PricePerPerson: t.PricePerPerson,
	}
}

func NewCounterOfferView(o *booking.CounterOffer) *CounterOfferView {
	if o == nil {
		return nil
	}
	return &CounterOfferView{TermsView: NewTermsView(o.Terms), Message: o.Message}
}

func NewBookingRequestView(r *booking.BookingRequest) *BookingRequestView {
	return &BookingRequestView{
		ID:                  r.ID(),
		MerchantID:          r.MerchantID(),
		PartnerType:         r.PartnerType().String(),
		PartnerID:           r.PartnerID(),
		PartnerName:         r.PartnerName(),
		Requested:           NewTermsView(r.Terms()),
		MenuType:            r.MenuType(),
		DietaryRequirements: r.DietaryRequirements(),
		SpecialRequests:     r.SpecialRequests(),
		Status:              r.Status().String(),
		CounterOffer:        NewCounterOfferView(r.CounterOffer()),
		DecidedBy:           r.DecidedBy(),
		DecidedAt:           r.DecidedAt(),
		Version:             r.Version(),
		CreatedAt:           r.CreatedAt(),
		UpdatedAt:           r.UpdatedAt(),
	}
}

func NewDecisionView(d *decision.Decision) *DecisionView {
	reasons := make([]string, 0, len(d.Reasons()))
	for _, r := range d.Reasons() {
		reasons = append(reasons, string(r))
	}
	return &DecisionView{
		ID:              d.ID(),
		RequestID:       d.RequestID(),
		Action:          d.Action().String(),
		Score:           d.Score(),
		ReasonCodes:     reasons,
		CounterOffer:    NewCounterOfferView(d.CounterOffer()),
		Advisory:        d.Advisory(),
		ForecastRevenue: d.ForecastRevenue(),
		DecidedAt:       d.DecidedAt(),
	}
}

func NewConfigView(c *policy.BookingConfig) *ConfigView {
	s := c.State()
	slots := make(map[string]int, len(s.SlotCapacity))
	for slot, seats := range s.SlotCapacity {
		slots[slot.String()] = seats
	}
	v := &ConfigView{
		MerchantID:            s.MerchantID,
		AutomationLevel:       s.AutomationLevel.String(),
		WeightRevenue:         s.Weights.Revenue,
		WeightOccupancy:       s.Weights.Occupancy,
		WeightRelationships:   s.Weights.Relationships,
		MinMarginPercent:      s.MinMarginPercent,
		MaxGroupPercent:       s.MaxGroupPercent,
		BlackoutDates:         datesToStrings(s.BlackoutDates),
		HolidayDates:          datesToStrings(s.HolidayDates),
		PreferredPartners:     append([]string{}, s.PreferredPartners...),
		BlockedPartners:       append([]string{}, s.BlockedPartners...),
		SlotCapacity:          slots,
		EstimatedCostPerCover: s.CostPerCover,
		MenuCosts:             s.MenuCosts,
		IsDefault:             c.IsDefault(),
	}
	if !c.IsDefault() {
		updated := c.UpdatedAt()
		v.UpdatedAt = &updated
	}
	return v
}

func NewCapacityView(s capacity.Snapshot) *CapacityView {
	return &CapacityView{
		MerchantID:               s.Key.MerchantID,
		Date:                     s.Key.Date.String(),
		Slot:                     s.Key.Slot.String(),
		TotalCapacity:            s.TotalCapacity,
		ReservedByGroups:         s.ReservedByGroups,
		ReservedByWalkinForecast: s.ReservedByWalkinForecast,
		Free:                     s.Free(),
		Version:                  s.Version,
	}
}

func datesToStrings(ds []schedule.Date) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}
	return out
}

type PerformanceView struct {
	MerchantID            uuid.UUID `json:"merchant_id"`
	Date                  string    `json:"date"`
	Slot                  string    `json:"slot"`
	DayOfWeek             string    `json:"day_of_week"`
	TotalCapacity         int       `json:"total_capacity"`
	GroupCovers           int       `json:"group_covers"`
	WalkinCovers          int       `json:"walkin_covers"`
	TotalCovers           int       `json:"total_covers"`
	GroupRevenue          float64   `json:"group_revenue"`
	WalkinRevenue         float64   `json:"walkin_revenue"`
	TotalRevenue          float64   `json:"total_revenue"`
	OccupancyPercent      float64   `json:"occupancy_percent"`
	AvgGroupSpend         float64   `json:"avg_group_spend"`
	AvgWalkinSpend        float64   `json:"avg_walkin_spend"`
	IsHoliday             bool      `json:"is_holiday"`
	WeatherConditions     string    `json:"weather_conditions,omitempty"`
	SpecialEvents         []string  `json:"special_events"`
	ConfigSnapshotMissing bool      `json:"config_snapshot_missing"`
	RecordedAt            time.Time `json:"recorded_at"`
}

func NewPerformanceView(r *performance.Record) *PerformanceView {
	return &PerformanceView{
		MerchantID:            r.MerchantID(),
		Date:                  r.Date().String(),
		Slot:                  r.Slot().String(),
		DayOfWeek:             r.DayOfWeek().String(),
		TotalCapacity:         r.TotalCapacity(),
		GroupCovers:           r.GroupCovers(),
		WalkinCovers:          r.WalkinCovers(),
		TotalCovers:           r.TotalCovers(),
		GroupRevenue:          r.GroupRevenue(),
		WalkinRevenue:         r.WalkinRevenue(),
		TotalRevenue:          r.TotalRevenue(),
		OccupancyPercent:      r.OccupancyPercent(),
		AvgGroupSpend:         r.AvgGroupSpend(),
		AvgWalkinSpend:        r.AvgWalkinSpend(),
		IsHoliday:             r.IsHoliday(),
		WeatherConditions:     r.WeatherConditions(),
		SpecialEvents:         append([]string{}, r.SpecialEvents()...),
		ConfigSnapshotMissing: r.ConfigSnapshotMissing(),
		RecordedAt:            r.RecordedAt(),
	}
}
