package response

import (
	"group-booking-arbiter/internal/usecase/queries"
)

type PerformanceResponse struct {
	MerchantID            string   `json:"merchant_id"`
	Date                  string   `json:"date"`
	Slot                  string   `json:"slot"`
	DayOfWeek             string   `json:"day_of_week"`
	TotalCapacity         int      `json:"total_capacity"`
	GroupCovers           int      `json:"group_covers"`
	WalkinCovers          int      `json:"walkin_covers"`
	TotalCovers           int      `json:"total_covers"`
	GroupRevenue          float64  `json:"group_revenue"`
	WalkinRevenue         float64  `json:"walkin_revenue"`
	TotalRevenue          float64  `json:"total_revenue"`
	OccupancyPercent      float64  `json:"occupancy_percent"`
	AvgGroupSpend         float64  `json:"avg_group_spend"`
	AvgWalkinSpend        float64  `json:"avg_walkin_spend"`
	IsHoliday             bool     `json:"is_holiday"`
	WeatherConditions     string   `json:"weather_conditions,omitempty"`
	SpecialEvents         []string `json:"special_events"`
	ConfigSnapshotMissing bool     `json:"config_snapshot_missing"`
	RecordedAt            int64    `json:"recorded_at"`
}

func FromPerformanceView(v *queries.PerformanceView) *PerformanceResponse {
	return &PerformanceResponse{
		MerchantID:            v.MerchantID.String(),
		Date:                  v.Date,
		Slot:                  v.Slot,
		DayOfWeek:             v.DayOfWeek,
		TotalCapacity:         v.TotalCapacity,
		GroupCovers:           v.GroupCovers,
		WalkinCovers:          v.WalkinCovers,
		TotalCovers:           v.TotalCovers,
		GroupRevenue:          v.GroupRevenue,
		WalkinRevenue:         v.WalkinRevenue,
		TotalRevenue:          v.TotalRevenue,
		OccupancyPercent:      v.OccupancyPercent,
		AvgGroupSpend:         v.AvgGroupSpend,
		AvgWalkinSpend:        v.AvgWalkinSpend,
		IsHoliday:             v.IsHoliday,
		WeatherConditions:     v.WeatherConditions,
		SpecialEvents:         v.SpecialEvents,
		ConfigSnapshotMissing: v.ConfigSnapshotMissing,
		RecordedAt:            v.RecordedAt.Unix(),
	}
}

type PartnerRevenueResponse struct {
	PartnerID     string  `json:"partner_id"`
	PartnerType   string  `json:"partner_type"`
	BookingsCount int     `json:"bookings_count"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type ForecastAccuracyResponse struct {
	SlotsCompared         int      `json:"slots_compared"`
	RealizedWalkinRevenue float64  `json:"realized_walkin_revenue"`
	ForecastWalkinRevenue float64  `json:"forecast_walkin_revenue"`
	Delta                 float64  `json:"delta"`
	Ratio                 *float64 `json:"ratio,omitempty"`
}

type AnalyticsResponse struct {
	MerchantID            string                   `json:"merchant_id"`
	From                  string                   `json:"from"`
	To                    string                   `json:"to"`
	TotalRequests         int                      `json:"total_requests"`
	Accepted              int                      `json:"accepted"`
	Declined              int                      `json:"declined"`
	Countered             int                      `json:"countered"`
	Pending               int                      `json:"pending"`
	Expired               int                      `json:"expired"`
	AcceptanceRate        float64                  `json:"acceptance_rate"`
	AverageScoreByOutcome map[string]float64       `json:"average_score_by_outcome"`
	TotalGroupRevenue     float64                  `json:"total_group_revenue"`
	AvgGroupSize          float64                  `json:"avg_group_size"`
	AvgPricePerPerson     float64                  `json:"avg_price_per_person"`
	PopularSlots          map[string]int           `json:"popular_slots"`
	TopPartners           []PartnerRevenueResponse `json:"top_partners"`
	Forecast              ForecastAccuracyResponse `json:"forecast"`
}

func FromAnalyticsView(v *queries.AnalyticsView) *AnalyticsResponse {
	partners := make([]PartnerRevenueResponse, len(v.TopPartners))
	for i, p := range v.TopPartners {
		partners[i] = PartnerRevenueResponse(p)
	}
	return &AnalyticsResponse{
		MerchantID:            v.MerchantID.String(),
		From:                  v.Period.From,
		To:                    v.Period.To,
		TotalRequests:         v.TotalRequests,
		Accepted:              v.Accepted,
		Declined:              v.Declined,
		Countered:             v.Countered,
		Pending:               v.Pending,
		Expired:               v.Expired,
		AcceptanceRate:        v.AcceptanceRate,
		AverageScoreByOutcome: v.AverageScoreByOutcome,
		TotalGroupRevenue:     v.TotalGroupRevenue,
		AvgGroupSize:          v.AvgGroupSize,
		AvgPricePerPerson:     v.AvgPricePerPerson,
		PopularSlots:          v.PopularSlots,
		TopPartners:           partners,
		Forecast:              ForecastAccuracyResponse(v.Forecast),
	}
}

type CapacityResponse struct {
	MerchantID               string `json:"merchant_id"`
	Date                     string `json:"date"`
	Slot                     string `json:"slot"`
	TotalCapacity            int    `json:"total_capacity"`
	ReservedByGroups         int    `json:"reserved_by_groups"`
	ReservedByWalkinForecast int    `json:"reserved_by_walkin_forecast"`
	Free                     int    `json:"free"`
	Version                  int64  `json:"version"`
}

func FromCapacityView(v *queries.CapacityView) *CapacityResponse {
	return &CapacityResponse{
		MerchantID:               v.MerchantID.String(),
		Date:                     v.Date,
		Slot:                     v.Slot,
		TotalCapacity:            v.TotalCapacity,
		ReservedByGroups:         v.ReservedByGroups,
		ReservedByWalkinForecast: v.ReservedByWalkinForecast,
		Free:                     v.Free,
		Version:                  v.Version,
	}
}
