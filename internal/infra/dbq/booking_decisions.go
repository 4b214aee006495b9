package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingDecisionColumns = `d.id, d.request_id, d.merchant_id, d.action, d.revenue_component,
	d.occupancy_component, d.relationship_component, d.weighted_total, d.reason_codes,
	d.counter_offer, d.advisory, d.forecast_revenue, d.decided_at`

func scanBookingDecision(row pgx.Row) (BookingDecision, error) {
	var i BookingDecision
	err := row.Scan(
		&i.ID,
		&i.RequestID,
		&i.MerchantID,
		&i.Action,
		&i.RevenueComponent,
		&i.OccupancyComponent,
		&i.RelationshipComponent,
		&i.WeightedTotal,
		&i.ReasonCodes,
		&i.CounterOffer,
		&i.Advisory,
		&i.ForecastRevenue,
		&i.DecidedAt,
	)
	return i, err
}

const insertBookingDecision = `
INSERT INTO booking_decisions (
    id, request_id, merchant_id, action, revenue_component, occupancy_component,
    relationship_component, weighted_total, reason_codes, counter_offer, advisory,
    forecast_revenue, decided_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (q *Queries) InsertBookingDecision(ctx context.Context, db DBTX, arg BookingDecision) error {
	_, err := db.Exec(ctx, insertBookingDecision,
		arg.ID,
		arg.RequestID,
		arg.MerchantID,
		arg.Action,
		arg.RevenueComponent,
		arg.OccupancyComponent,
		arg.RelationshipComponent,
		arg.WeightedTotal,
		arg.ReasonCodes,
		arg.CounterOffer,
		arg.Advisory,
		arg.ForecastRevenue,
		arg.DecidedAt,
	)
	return err
}

const getLatestBookingDecision = `
SELECT ` + bookingDecisionColumns + `
FROM booking_decisions d
WHERE d.request_id = $1
ORDER BY d.decided_at DESC
LIMIT 1`

func (q *Queries) GetLatestBookingDecision(ctx context.Context, db DBTX, requestID uuid.UUID) (BookingDecision, error) {
	return scanBookingDecision(db.QueryRow(ctx, getLatestBookingDecision, requestID))
}

const listBookingDecisionsInRange = `
SELECT ` + bookingDecisionColumns + `
FROM booking_decisions d
JOIN booking_requests r ON r.id = d.request_id
WHERE r.merchant_id = $1
  AND r.requested_date BETWEEN $2 AND $3
ORDER BY d.decided_at ASC`

type ListBookingDecisionsInRangeParams struct {
	MerchantID uuid.UUID
	FromDate   pgtype.Date
	ToDate     pgtype.Date
}

func (q *Queries) ListBookingDecisionsInRange(ctx context.Context, db DBTX, arg ListBookingDecisionsInRangeParams) ([]BookingDecision, error) {
	rows, err := db.Query(ctx, listBookingDecisionsInRange, arg.MerchantID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingDecision
	for rows.Next() {
		i, err := scanBookingDecision(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
