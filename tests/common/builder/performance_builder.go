//go:build unit || e2e

package builder

import (
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/schedule"
	reqdto "group-booking-arbiter/internal/handler/dto/request"

	"github.com/google/uuid"
)

type PerformanceBuilder struct {
	MerchantID        uuid.UUID
	Date              schedule.Date
	Slot              schedule.Slot
	TotalCapacity     int
	GroupCovers       int
	WalkinCovers      int
	GroupRevenue      float64
	WalkinRevenue     float64
	IsHoliday         bool
	WeatherConditions string
	SpecialEvents     []string
}

func NewPerformanceBuilder() *PerformanceBuilder {
	return &PerformanceBuilder{
		MerchantID:        uuid.New(),
		Date:              schedule.DateOf(ReferenceNow).AddDays(-7),
		Slot:              schedule.SlotDinner,
		TotalCapacity:     40,
		GroupCovers:       10,
		WalkinCovers:      20,
		GroupRevenue:      400,
		WalkinRevenue:     500,
		WeatherConditions: "clear",
	}
}

func (p *PerformanceBuilder) With(mutate func(*PerformanceBuilder)) *PerformanceBuilder {
	mutate(p)
	return p
}

func (p *PerformanceBuilder) Params() performance.RecordParams {
	return performance.RecordParams{
		MerchantID:        p.MerchantID,
		Date:              p.Date,
		Slot:              p.Slot,
		TotalCapacity:     p.TotalCapacity,
		GroupCovers:       p.GroupCovers,
		WalkinCovers:      p.WalkinCovers,
		GroupRevenue:      p.GroupRevenue,
		WalkinRevenue:     p.WalkinRevenue,
		IsHoliday:         p.IsHoliday,
		WeatherConditions: p.WeatherConditions,
		SpecialEvents:     p.SpecialEvents,
	}
}

func (p *PerformanceBuilder) BuildDomain() (*performance.Record, error) {
	return performance.NewRecord(p.Params(), ReferenceNow)
}

func (p *PerformanceBuilder) BuildRequestDTO() reqdto.RecordPerformanceRequest {
	return reqdto.RecordPerformanceRequest{
		Date:              p.Date.String(),
		Slot:              p.Slot.String(),
		TotalCapacity:     p.TotalCapacity,
		GroupCovers:       p.GroupCovers,
		WalkinCovers:      p.WalkinCovers,
		GroupRevenue:      p.GroupRevenue,
		WalkinRevenue:     p.WalkinRevenue,
		IsHoliday:         p.IsHoliday,
		WeatherConditions: p.WeatherConditions,
		SpecialEvents:     p.SpecialEvents,
	}
}
