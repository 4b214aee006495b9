package request

import (
	"errors"
	"strings"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrCounterRequired = errors.New("counter_offer is required for the counter action")

type CreateBookingRequest struct {
	PartnerType         string   `json:"partner_type" binding:"required,oneof=tour_operator accommodation direct"`
	PartnerID           string   `json:"partner_id" binding:"required,max=100"`
	PartnerName         string   `json:"partner_name" binding:"max=200"`
	RequestedDate       string   `json:"requested_date" binding:"required"`
	RequestedSlot       string   `json:"requested_slot" binding:"required,oneof=breakfast lunch dinner"`
	PartySize           int      `json:"party_size" binding:"required,min=1"`
	PricePerPerson      float64  `json:"price_per_person" binding:"required,gt=0"`
	MenuType            string   `json:"menu_type" binding:"max=100"`
	DietaryRequirements []string `json:"dietary_requirements" binding:"max=50,dive,max=100"`
	SpecialRequests     string   `json:"special_requests"`
}

func (r CreateBookingRequest) ToDomain(merchantID uuid.UUID) (booking.NewRequestParams, error) {
	date, err := schedule.ParseDate(r.RequestedDate)
	if err != nil {
		return booking.NewRequestParams{}, err
	}
	slot, err := schedule.ParseSlot(r.RequestedSlot)
	if err != nil {
		return booking.NewRequestParams{}, err
	}
	return booking.NewRequestParams{
		MerchantID:  merchantID,
		PartnerType: booking.PartnerType(r.PartnerType),
		PartnerID:   r.PartnerID,
		PartnerName: r.PartnerName,
		Terms: booking.Terms{
			Date:           date,
			Slot:           slot,
			PartySize:      r.PartySize,
			PricePerPerson: r.PricePerPerson,
		},
		MenuType:            r.MenuType,
		DietaryRequirements: r.DietaryRequirements,
		SpecialRequests:     r.SpecialRequests,
	}, nil
}

type CounterOfferRequest struct {
	Date           *string  `json:"date,omitempty"`
	Slot           *string  `json:"slot,omitempty" binding:"omitempty,oneof=breakfast lunch dinner"`
	PartySize      *int     `json:"party_size,omitempty" binding:"omitempty,min=1"`
	PricePerPerson *float64 `json:"price_per_person,omitempty" binding:"omitempty,gt=0"`
	Message        string   `json:"message" binding:"max=1000"`
}

func (r CounterOfferRequest) ToDomain() (booking.CounterChanges, error) {
	changes := booking.CounterChanges{
		PartySize:      r.PartySize,
		PricePerPerson: r.PricePerPerson,
		Message:        strings.TrimSpace(r.Message),
	}
	if r.Date != nil {
		d, err := schedule.ParseDate(*r.Date)
		if err != nil {
			return booking.CounterChanges{}, err
		}
		changes.Date = &d
	}
	if r.Slot != nil {
		s, err := schedule.ParseSlot(*r.Slot)
		if err != nil {
			return booking.CounterChanges{}, err
		}
		changes.Slot = &s
	}
	return changes, nil
}

type UpdateBookingStatusRequest struct {
	Action          string               `json:"action" binding:"required,oneof=accept decline counter"`
	ExpectedVersion *int                 `json:"expected_version,omitempty" binding:"omitempty,min=0"`
	CounterOffer    *CounterOfferRequest `json:"counter_offer,omitempty"`
}

func (r UpdateBookingStatusRequest) ToDomain() (booking.ManualAction, error) {
	switch r.Action {
	case "accept":
		return booking.Accept{}, nil
	case "decline":
		return booking.Decline{}, nil
	case "counter":
		if r.CounterOffer == nil {
			return nil, ErrCounterRequired
		}
		changes, err := r.CounterOffer.ToDomain()
		if err != nil {
			return nil, err
		}
		return booking.Counter{Changes: changes}, nil
	default:
		return nil, booking.ErrInvalidTransition
	}
}

type ListBookingRequestsQuery struct {
	Status []string `form:"status"`
	From   string   `form:"from"`
	To     string   `form:"to"`
	Limit  int      `form:"limit" binding:"omitempty,min=1"`
}

func (q ListBookingRequestsQuery) ToFilter() (queries.BookingRequestFilter, error) {
	f := queries.BookingRequestFilter{Limit: q.Limit}
	for _, raw := range q.Status {
		// status=pending,countered and repeated status params are both accepted
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			st, err := booking.ParseStatus(s)
			if err != nil {
				return queries.BookingRequestFilter{}, err
			}
			f.Statuses = append(f.Statuses, st)
		}
	}
	if q.From != "" {
		d, err := schedule.ParseDate(q.From)
		if err != nil {
			return queries.BookingRequestFilter{}, err
		}
		f.From = &d
	}
	if q.To != "" {
		d, err := schedule.ParseDate(q.To)
		if err != nil {
			return queries.BookingRequestFilter{}, err
		}
		f.To = &d
	}
	return f, nil
}
