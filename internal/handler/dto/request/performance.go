package request

import (
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/schedule"

	"github.com/google/uuid"
)

type RecordPerformanceRequest struct {
	Date              string   `json:"date" binding:"required"`
	Slot              string   `json:"slot" binding:"required,oneof=breakfast lunch dinner"`
	TotalCapacity     int      `json:"total_capacity" binding:"required,min=1"`
	GroupCovers       int      `json:"group_covers" binding:"min=0"`
	WalkinCovers      int      `json:"walkin_covers" binding:"min=0"`
	GroupRevenue      float64  `json:"group_revenue" binding:"min=0"`
	WalkinRevenue     float64  `json:"walkin_revenue" binding:"min=0"`
	IsHoliday         bool     `json:"is_holiday"`
	WeatherConditions string   `json:"weather_conditions" binding:"max=100"`
	SpecialEvents     []string `json:"special_events" binding:"max=20,dive,max=200"`
}

func (r RecordPerformanceRequest) ToDomain(merchantID uuid.UUID) (performance.RecordParams, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return performance.RecordParams{}, err
	}
	slot, err := schedule.ParseSlot(r.Slot)
	if err != nil {
		return performance.RecordParams{}, err
	}
	return performance.RecordParams{
		MerchantID:        merchantID,
		Date:              date,
		Slot:              slot,
		TotalCapacity:     r.TotalCapacity,
		GroupCovers:       r.GroupCovers,
		WalkinCovers:      r.WalkinCovers,
		GroupRevenue:      r.GroupRevenue,
		WalkinRevenue:     r.WalkinRevenue,
		IsHoliday:         r.IsHoliday,
		WeatherConditions: r.WeatherConditions,
		SpecialEvents:     r.SpecialEvents,
	}, nil
}

type AnalyticsQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q AnalyticsQuery) Range() (from, to schedule.Date, err error) {
	if from, err = schedule.ParseDate(q.From); err != nil {
		return
	}
	to, err = schedule.ParseDate(q.To)
	return
}

type CapacityQuery struct {
	Date string `form:"date" binding:"required"`
	Slot string `form:"slot" binding:"required,oneof=breakfast lunch dinner"`
}

func (q CapacityQuery) Key() (schedule.Date, schedule.Slot, error) {
	date, err := schedule.ParseDate(q.Date)
	if err != nil {
		return schedule.Date{}, "", err
	}
	slot, err := schedule.ParseSlot(q.Slot)
	if err != nil {
		return schedule.Date{}, "", err
	}
	return date, slot, nil
}
