package converter

import (
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/pgconv"
)

// #nosec G115 -- covers and capacity are validated non-negative and far below int32 range
func PerformanceToRow(r *performance.Record) dbq.PerformanceRecord {
	return dbq.PerformanceRecord{
		MerchantID:            r.MerchantID(),
		ServiceDate:           pgconv.DateToPgtype(r.Date()),
		Slot:                  r.Slot().String(),
		TotalCapacity:         int32(r.TotalCapacity()),
		GroupCovers:           int32(r.GroupCovers()),
		WalkinCovers:          int32(r.WalkinCovers()),
		GroupRevenue:          r.GroupRevenue(),
		WalkinRevenue:         r.WalkinRevenue(),
		IsHoliday:             r.IsHoliday(),
		WeatherConditions:     r.WeatherConditions(),
		SpecialEvents:         pgconv.NonNil(r.SpecialEvents()),
		ConfigSnapshotMissing: r.ConfigSnapshotMissing(),
		RecordedAt:            pgconv.TimeToPgtype(r.RecordedAt()),
	}
}

func PerformanceFromRow(row dbq.PerformanceRecord) *performance.Record {
	return performance.ReconstructRecord(performance.RecordParams{
		MerchantID:        row.MerchantID,
		Date:              pgconv.DateFromPgtype(row.ServiceDate),
		Slot:              schedule.Slot(row.Slot),
		TotalCapacity:     int(row.TotalCapacity),
		GroupCovers:       int(row.GroupCovers),
		WalkinCovers:      int(row.WalkinCovers),
		GroupRevenue:      row.GroupRevenue,
		WalkinRevenue:     row.WalkinRevenue,
		IsHoliday:         row.IsHoliday,
		WeatherConditions: row.WeatherConditions,
		SpecialEvents:     row.SpecialEvents,
	}, row.ConfigSnapshotMissing, pgconv.TimeFromPgtype(row.RecordedAt))
}
