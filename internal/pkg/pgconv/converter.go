package pgconv

import (
	"errors"
	"time"

	"group-booking-arbiter/internal/domain/schedule"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d schedule.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) schedule.Date {
	if !pd.Valid {
		return schedule.Date{}
	}
	return schedule.DateOf(pd.Time)
}

// DatesToPgtype never returns nil so NOT NULL array columns receive '{}'.
func DatesToPgtype(ds []schedule.Date) []pgtype.Date {
	out := make([]pgtype.Date, 0, len(ds))
	for _, d := range ds {
		out = append(out, DateToPgtype(d))
	}
	return out
}

func DatesFromPgtype(pds []pgtype.Date) []schedule.Date {
	out := make([]schedule.Date, 0, len(pds))
	for _, pd := range pds {
		if pd.Valid {
			out = append(out, DateFromPgtype(pd))
		}
	}
	return out
}

func StringFromPgtype(pt pgtype.Text) string {
	return pt.String
}

// StringToPgtype maps the empty string to NULL.
func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// NonNil keeps NOT NULL array columns from receiving NULL.
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// IsNoRows checks if the error is a "no rows" error from pgx
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
