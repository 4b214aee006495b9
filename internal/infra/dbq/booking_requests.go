package dbq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingRequestColumns = `id, merchant_id, partner_type, partner_id, partner_name, requested_date,
	requested_slot, party_size, price_per_person, menu_type, dietary_requirements, special_requests,
	status, counter_offer, effective_date, decided_by, decided_at, reservation_holder, version,
	created_at, updated_at`

func scanBookingRequest(row pgx.Row) (BookingRequest, error) {
	var i BookingRequest
	err := row.Scan(
		&i.ID,
		&i.MerchantID,
		&i.PartnerType,
		&i.PartnerID,
		&i.PartnerName,
		&i.RequestedDate,
		&i.RequestedSlot,
		&i.PartySize,
		&i.PricePerPerson,
		&i.MenuType,
		&i.DietaryRequirements,
		&i.SpecialRequests,
		&i.Status,
		&i.CounterOffer,
		&i.EffectiveDate,
		&i.DecidedBy,
		&i.DecidedAt,
		&i.ReservationHolder,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectBookingRequests(rows pgx.Rows) ([]BookingRequest, error) {
	defer rows.Close()
	var items []BookingRequest
	for rows.Next() {
		i, err := scanBookingRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const insertBookingRequest = `
INSERT INTO booking_requests (` + bookingRequestColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

func (q *Queries) InsertBookingRequest(ctx context.Context, db DBTX, arg BookingRequest) error {
	_, err := db.Exec(ctx, insertBookingRequest,
		arg.ID,
		arg.MerchantID,
		arg.PartnerType,
		arg.PartnerID,
		arg.PartnerName,
		arg.RequestedDate,
		arg.RequestedSlot,
		arg.PartySize,
		arg.PricePerPerson,
		arg.MenuType,
		arg.DietaryRequirements,
		arg.SpecialRequests,
		arg.Status,
		arg.CounterOffer,
		arg.EffectiveDate,
		arg.DecidedBy,
		arg.DecidedAt,
		arg.ReservationHolder,
		arg.Version,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateBookingRequestState = `
UPDATE booking_requests
SET status = $3,
    counter_offer = $4,
    effective_date = $5,
    decided_by = $6,
    decided_at = $7,
    reservation_holder = $8,
    updated_at = $9,
    version = version + 1
WHERE id = $1 AND version = $2`

type UpdateBookingRequestStateParams struct {
	ID                uuid.UUID
	ExpectedVersion   int32
	Status            string
	CounterOffer      []byte
	EffectiveDate     pgtype.Date
	DecidedBy         pgtype.Text
	DecidedAt         pgtype.Timestamptz
	ReservationHolder pgtype.Text
	UpdatedAt         pgtype.Timestamptz
}

// UpdateBookingRequestState returns the number of rows updated; 0 means the version moved on.
func (q *Queries) UpdateBookingRequestState(ctx context.Context, db DBTX, arg UpdateBookingRequestStateParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingRequestState,
		arg.ID,
		arg.ExpectedVersion,
		arg.Status,
		arg.CounterOffer,
		arg.EffectiveDate,
		arg.DecidedBy,
		arg.DecidedAt,
		arg.ReservationHolder,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getBookingRequest = `SELECT ` + bookingRequestColumns + ` FROM booking_requests WHERE id = $1`

func (q *Queries) GetBookingRequest(ctx context.Context, db DBTX, id uuid.UUID) (BookingRequest, error) {
	return scanBookingRequest(db.QueryRow(ctx, getBookingRequest, id))
}

const listBookingRequests = `
SELECT ` + bookingRequestColumns + `
FROM booking_requests
WHERE merchant_id = $1
  AND ($2::text[] IS NULL OR status = ANY($2::text[]))
  AND ($3::date IS NULL OR requested_date >= $3::date)
  AND ($4::date IS NULL OR requested_date <= $4::date)
ORDER BY requested_date ASC, created_at ASC, id ASC
LIMIT $5`

type ListBookingRequestsParams struct {
	MerchantID uuid.UUID
	Statuses   []string
	FromDate   pgtype.Date
	ToDate     pgtype.Date
	Limit      int32
}

func (q *Queries) ListBookingRequests(ctx context.Context, db DBTX, arg ListBookingRequestsParams) ([]BookingRequest, error) {
	rows, err := db.Query(ctx, listBookingRequests, arg.MerchantID, arg.Statuses, arg.FromDate, arg.ToDate, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookingRequests(rows)
}

const listExpiredBookingRequests = `
SELECT ` + bookingRequestColumns + `
FROM booking_requests
WHERE status IN ('pending', 'countered')
  AND effective_date < $1
ORDER BY effective_date ASC, id ASC
LIMIT $2`

func (q *Queries) ListExpiredBookingRequests(ctx context.Context, db DBTX, today pgtype.Date, limit int32) ([]BookingRequest, error) {
	rows, err := db.Query(ctx, listExpiredBookingRequests, today, limit)
	if err != nil {
		return nil, err
	}
	return collectBookingRequests(rows)
}

const listBookingRequestsInRange = `
SELECT ` + bookingRequestColumns + `
FROM booking_requests
WHERE merchant_id = $1
  AND requested_date BETWEEN $2 AND $3
ORDER BY requested_date ASC, id ASC`

type ListBookingRequestsInRangeParams struct {
	MerchantID uuid.UUID
	FromDate   pgtype.Date
	ToDate     pgtype.Date
}

func (q *Queries) ListBookingRequestsInRange(ctx context.Context, db DBTX, arg ListBookingRequestsInRangeParams) ([]BookingRequest, error) {
	rows, err := db.Query(ctx, listBookingRequestsInRange, arg.MerchantID, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	return collectBookingRequests(rows)
}
