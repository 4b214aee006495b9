package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertPerformanceRecord = `
INSERT INTO performance_records (
    merchant_id, service_date, slot, total_capacity, group_covers, walkin_covers,
    group_revenue, walkin_revenue, is_holiday, weather_conditions, special_events,
    config_snapshot_missing, recorded_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (merchant_id, service_date, slot) DO UPDATE SET
    total_capacity = EXCLUDED.total_capacity,
    group_covers = EXCLUDED.group_covers,
    walkin_covers = EXCLUDED.walkin_covers,
    group_revenue = EXCLUDED.group_revenue,
    walkin_revenue = EXCLUDED.walkin_revenue,
    is_holiday = EXCLUDED.is_holiday,
    weather_conditions = EXCLUDED.weather_conditions,
    special_events = EXCLUDED.special_events,
    config_snapshot_missing = EXCLUDED.config_snapshot_missing,
    recorded_at = EXCLUDED.recorded_at`

func (q *Queries) UpsertPerformanceRecord(ctx context.Context, db DBTX, arg PerformanceRecord) error {
	_, err := db.Exec(ctx, upsertPerformanceRecord,
		arg.MerchantID,
		arg.ServiceDate,
		arg.Slot,
		arg.TotalCapacity,
		arg.GroupCovers,
		arg.WalkinCovers,
		arg.GroupRevenue,
		arg.WalkinRevenue,
		arg.IsHoliday,
		arg.WeatherConditions,
		arg.SpecialEvents,
		arg.ConfigSnapshotMissing,
		arg.RecordedAt,
	)
	return err
}

const listPerformanceRecords = `
SELECT merchant_id, service_date, slot, total_capacity, group_covers, walkin_covers,
       group_revenue, walkin_revenue, is_holiday, weather_conditions, special_events,
       config_snapshot_missing, recorded_at
FROM performance_records
WHERE merchant_id = $1
  AND service_date BETWEEN $2 AND $3
ORDER BY service_date ASC, slot ASC`

type ListPerformanceRecordsParams struct {
	MerchantID uuid.UUID
	FromDate   pgtype.Date
	ToDate     pgtype.Date
}

func (q *Queries) ListPerformanceRecords(ctx context.Context, db DBTX, arg ListPerformanceRecordsParams) ([]PerformanceRecord, error) {
	rows, err := db.Query(ctx, listPerformanceRecords, arg.MerchantID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PerformanceRecord
	for rows.Next() {
		var i PerformanceRecord
		if err := rows.Scan(
			&i.MerchantID,
			&i.ServiceDate,
			&i.Slot,
			&i.TotalCapacity,
			&i.GroupCovers,
			&i.WalkinCovers,
			&i.GroupRevenue,
			&i.WalkinRevenue,
			&i.IsHoliday,
			&i.WeatherConditions,
			&i.SpecialEvents,
			&i.ConfigSnapshotMissing,
			&i.RecordedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
