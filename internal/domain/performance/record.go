package performance

import (
	"errors"
	"math"
	"strings"
	"time"

	"group-booking-arbiter/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("total capacity must be positive")
	ErrNegativeCovers  = errors.New("covers cannot be negative")
	ErrNegativeRevenue = errors.New("revenue cannot be negative")
	ErrMissingDate     = errors.New("service date is required")
)

type RecordParams struct {
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

// Record is the realized outcome of one service slot, reported after the fact.
type Record struct {
	merchantID            uuid.UUID
	date                  schedule.Date
	slot                  schedule.Slot
	totalCapacity         int
	groupCovers           int
	walkinCovers          int
	groupRevenue          float64
	walkinRevenue         float64
	isHoliday             bool
	weatherConditions     string
	specialEvents         []string
	configSnapshotMissing bool
	recordedAt            time.Time
}

func NewRecord(p RecordParams, now time.Time) (*Record, error) {
	if p.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if !p.Slot.IsValid() {
		return nil, schedule.ErrInvalidSlot
	}
	if p.TotalCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if p.GroupCovers < 0 || p.WalkinCovers < 0 {
		return nil, ErrNegativeCovers
	}
	if p.GroupRevenue < 0 || p.WalkinRevenue < 0 {
		return nil, ErrNegativeRevenue
	}
	events := make([]string, 0, len(p.SpecialEvents))
	for _, e := range p.SpecialEvents {
		if t := strings.TrimSpace(e); t != "" {
			events = append(events, t)
		}
	}
	return &Record{
		merchantID:        p.MerchantID,
		date:              p.Date,
		slot:              p.Slot,
		totalCapacity:     p.TotalCapacity,
		groupCovers:       p.GroupCovers,
		walkinCovers:      p.WalkinCovers,
		groupRevenue:      p.GroupRevenue,
		walkinRevenue:     p.WalkinRevenue,
		isHoliday:         p.IsHoliday,
		weatherConditions: strings.TrimSpace(p.WeatherConditions),
		specialEvents:     events,
		recordedAt:        now,
	}, nil
}

func ReconstructRecord(p RecordParams, configSnapshotMissing bool, recordedAt time.Time) *Record {
	return &Record{
		merchantID:            p.MerchantID,
		date:                  p.Date,
		slot:                  p.Slot,
		totalCapacity:         p.TotalCapacity,
		groupCovers:           p.GroupCovers,
		walkinCovers:          p.WalkinCovers,
		groupRevenue:          p.GroupRevenue,
		walkinRevenue:         p.WalkinRevenue,
		isHoliday:             p.IsHoliday,
		weatherConditions:     p.WeatherConditions,
		specialEvents:         p.SpecialEvents,
		configSnapshotMissing: configSnapshotMissing,
		recordedAt:            recordedAt,
	}
}

func (r *Record) MerchantID() uuid.UUID       { return r.merchantID }
func (r *Record) Date() schedule.Date         { return r.date }
func (r *Record) Slot() schedule.Slot         { return r.slot }
func (r *Record) TotalCapacity() int          { return r.totalCapacity }
func (r *Record) GroupCovers() int            { return r.groupCovers }
func (r *Record) WalkinCovers() int           { return r.walkinCovers }
func (r *Record) GroupRevenue() float64       { return r.groupRevenue }
func (r *Record) WalkinRevenue() float64      { return r.walkinRevenue }
func (r *Record) IsHoliday() bool             { return r.isHoliday }
func (r *Record) WeatherConditions() string   { return r.weatherConditions }
func (r *Record) SpecialEvents() []string     { return r.specialEvents }
func (r *Record) ConfigSnapshotMissing() bool { return r.configSnapshotMissing }
func (r *Record) RecordedAt() time.Time       { return r.recordedAt }

// MarkConfigSnapshotMissing flags records ingested while the merchant had no booking config.
func (r *Record) MarkConfigSnapshotMissing() {
	r.configSnapshotMissing = true
}

func (r *Record) TotalCovers() int        { return r.groupCovers + r.walkinCovers }
func (r *Record) TotalRevenue() float64   { return r.groupRevenue + r.walkinRevenue }
func (r *Record) DayOfWeek() time.Weekday { return r.date.Weekday() }

// OccupancyPercent is total covers over capacity, rounded to two decimals.
func (r *Record) OccupancyPercent() float64 {
	return round2(float64(r.TotalCovers()) / float64(r.totalCapacity) * 100)
}

func (r *Record) AvgGroupSpend() float64 {
	return perCover(r.groupRevenue, r.groupCovers)
}

func (r *Record) AvgWalkinSpend() float64 {
	return perCover(r.walkinRevenue, r.walkinCovers)
}

// WalkinOccupancy is the share of seats filled by walk-ins.
func (r *Record) WalkinOccupancy() float64 {
	return float64(r.walkinCovers) / float64(r.totalCapacity)
}

func perCover(revenue float64, covers int) float64 {
	if covers == 0 {
		return 0
	}
	return round2(revenue / float64(covers))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
