package converter

import (
	"encoding/json"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/pgconv"
)

type counterOfferJSON struct {
	Date           schedule.Date `json:"date"`
	Slot           schedule.Slot `json:"slot"`
	PartySize      int           `json:"party_size"`
	PricePerPerson float64       `json:"price_per_person"`
	Message        string        `json:"message,omitempty"`
}

func CounterOfferToJSON(o *booking.CounterOffer) ([]byte, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(counterOfferJSON{
		Date:           o.Terms.Date,
		Slot:           o.Terms.Slot,
		PartySize:      o.Terms.PartySize,
		PricePerPerson: o.Terms.PricePerPerson,
		Message:        o.Message,
	})
}

func CounterOfferFromJSON(raw []byte) (*booking.CounterOffer, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var j counterOfferJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, err
	}
	return &booking.CounterOffer{
		Terms: booking.Terms{
			Date:           j.Date,
			Slot:           j.Slot,
			PartySize:      j.PartySize,
			PricePerPerson: j.PricePerPerson,
		},
		Message: j.Message,
	}, nil
}

func BookingRequestToRow(r *booking.BookingRequest) (dbq.BookingRequest, error) {
	counter, err := CounterOfferToJSON(r.CounterOffer())
	if err != nil {
		return dbq.BookingRequest{}, err
	}
	t := r.Terms()
	return dbq.BookingRequest{
		ID:                  r.ID(),
		MerchantID:          r.MerchantID(),
		PartnerType:         r.PartnerType().String(),
		PartnerID:           r.PartnerID(),
		PartnerName:         r.PartnerName(),
		RequestedDate:       pgconv.DateToPgtype(t.Date),
		RequestedSlot:       t.Slot.String(),
		PartySize:           int32(t.PartySize), // #nosec G115 -- bounded by booking.MaxPartySize
		PricePerPerson:      t.PricePerPerson,
		MenuType:            r.MenuType(),
		DietaryRequirements: pgconv.NonNil(r.DietaryRequirements()),
		SpecialRequests:     r.SpecialRequests(),
		Status:              r.Status().String(),
		CounterOffer:        counter,
		EffectiveDate:       pgconv.DateToPgtype(r.EffectiveTerms().Date),
		DecidedBy:           pgconv.StringToPgtype(r.DecidedBy()),
		DecidedAt:           pgconv.TimePtrToPgtype(r.DecidedAt()),
		ReservationHolder:   pgconv.StringToPgtype(r.ReservationHolder()),
		Version:             int32(r.Version()), // #nosec G115 -- versions stay small
		CreatedAt:           pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}

func BookingRequestFromRow(row dbq.BookingRequest) (*booking.BookingRequest, error) {
	counter, err := CounterOfferFromJSON(row.CounterOffer)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBookingRequest(booking.State{
		ID:          row.ID,
		MerchantID:  row.MerchantID,
		PartnerType: booking.PartnerType(row.PartnerType),
		PartnerID:   row.PartnerID,
		PartnerName: row.PartnerName,
		Terms: booking.Terms{
			Date:           pgconv.DateFromPgtype(row.RequestedDate),
			Slot:           schedule.Slot(row.RequestedSlot),
			PartySize:      int(row.PartySize),
			PricePerPerson: row.PricePerPerson,
		},
		MenuType:            row.MenuType,
		DietaryRequirements: pgconv.NonNil(row.DietaryRequirements),
		SpecialRequests:     row.SpecialRequests,
		Status:              booking.Status(row.Status),
		CounterOffer:        counter,
		DecidedBy:           pgconv.StringFromPgtype(row.DecidedBy),
		DecidedAt:           pgconv.TimePtrFromPgtype(row.DecidedAt),
		ReservationHolder:   pgconv.StringFromPgtype(row.ReservationHolder),
		Version:             int(row.Version),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func BookingRequestToStateParams(r *booking.BookingRequest, expectedVersion int) (dbq.UpdateBookingRequestStateParams, error) {
	counter, err := CounterOfferToJSON(r.CounterOffer())
	if err != nil {
		return dbq.UpdateBookingRequestStateParams{}, err
	}
	return dbq.UpdateBookingRequestStateParams{
		ID:                r.ID(),
		ExpectedVersion:   int32(expectedVersion), // #nosec G115 -- versions stay small
		Status:            r.Status().String(),
		CounterOffer:      counter,
		EffectiveDate:     pgconv.DateToPgtype(r.EffectiveTerms().Date),
		DecidedBy:         pgconv.StringToPgtype(r.DecidedBy()),
		DecidedAt:         pgconv.TimePtrToPgtype(r.DecidedAt()),
		ReservationHolder: pgconv.StringToPgtype(r.ReservationHolder()),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
	}, nil
}
