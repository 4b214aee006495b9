package performance

import (
	"slices"

	"group-booking-arbiter/internal/domain/schedule"
)

const (
	DefaultTrailingWeeks       = 8
	DefaultWalkinSpendPerCover = 25
	DefaultOccupancyRate       = 0.5
)

// Baseline is the expected walk-in outcome of a slot absent any group booking.
type Baseline struct {
	WalkinSpendPerCover float64 `json:"walkin_spend_per_cover"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	WalkinFloor         int     `json:"walkin_floor"`
	SampleSize          int     `json:"sample_size"`
}

// ForecastRevenue is the walk-in revenue the baseline predicts for the given covers.
func (b Baseline) ForecastRevenue(covers int) float64 {
	return float64(covers) * b.WalkinSpendPerCover
}

type BaselineDefaults struct {
	WalkinSpendPerCover float64
	OccupancyRate       float64
}

// BaselineQuery selects comparable history: the same weekday, slot and holiday flag within
// the trailing window that ends the day before Date.
type BaselineQuery struct {
	Date          schedule.Date
	Slot          schedule.Slot
	IsHoliday     bool
	TrailingWeeks int
}

// Window returns the inclusive date range of comparable history.
func (q BaselineQuery) Window() (from, to schedule.Date) {
	weeks := q.TrailingWeeks
	if weeks <= 0 {
		weeks = DefaultTrailingWeeks
	}
	return q.Date.AddDays(-7 * weeks), q.Date.AddDays(-1)
}

func (q BaselineQuery) matches(r *Record) bool {
	from, to := q.Window()
	if r.Date().Before(from) || r.Date().After(to) {
		return false
	}
	return r.Slot() == q.Slot &&
		r.DayOfWeek() == q.Date.Weekday() &&
		r.IsHoliday() == q.IsHoliday
}

// ComputeBaseline takes medians over comparable records; defaults fill in when no history
// matches. The walk-in floor is the smallest walk-in count observed.
func ComputeBaseline(q BaselineQuery, records []*Record, d BaselineDefaults) Baseline {
	var spends, occupancy []float64
	floor := -1
	for _, r := range records {
		if !q.matches(r) {
			continue
		}
		occupancy = append(occupancy, r.WalkinOccupancy())
		if r.WalkinCovers() > 0 {
			spends = append(spends, r.WalkinRevenue()/float64(r.WalkinCovers()))
		}
		if floor < 0 || r.WalkinCovers() < floor {
			floor = r.WalkinCovers()
		}
	}

	b := Baseline{
		WalkinSpendPerCover: d.WalkinSpendPerCover,
		OccupancyRate:       d.OccupancyRate,
		SampleSize:          len(occupancy),
	}
	if len(spends) > 0 {
		b.WalkinSpendPerCover = round2(median(spends))
	}
	if len(occupancy) > 0 {
		b.OccupancyRate = median(occupancy)
	}
	if floor > 0 {
		b.WalkinFloor = floor
	}
	return b
}

func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
