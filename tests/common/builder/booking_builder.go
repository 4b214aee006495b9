//go:build unit || e2e

package builder

import (
	"time"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/schedule"
	reqdto "group-booking-arbiter/internal/handler/dto/request"
	"group-booking-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReferenceNow is the fixed clock used by builders: Monday 2026-03-02 10:00 UTC.
var ReferenceNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type BookingRequestBuilder struct {
	MerchantID          uuid.UUID
	PartnerType         booking.PartnerType
	PartnerID           string
	PartnerName         string
	Date                schedule.Date
	Slot                schedule.Slot
	PartySize           int
	PricePerPerson      float64
	MenuType            string
	DietaryRequirements []string
	SpecialRequests     string
	Now                 time.Time
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		MerchantID:          uuid.New(),
		PartnerType:         booking.PartnerTourOperator,
		PartnerID:           "tour-7",
		PartnerName:         "Harbour Tours",
		Date:                schedule.DateOf(ReferenceNow).AddDays(14),
		Slot:                schedule.SlotDinner,
		PartySize:           8,
		PricePerPerson:      40,
		MenuType:            "set",
		DietaryRequirements: []string{"vegetarian"},
		SpecialRequests:     "window tables",
		Now:                 ReferenceNow,
	}
}

func (b *BookingRequestBuilder) With(mutate func(*BookingRequestBuilder)) *BookingRequestBuilder {
	mutate(b)
	return b
}

func (b *BookingRequestBuilder) Terms() booking.Terms {
	return booking.Terms{
		Date:           b.Date,
		Slot:           b.Slot,
		PartySize:      b.PartySize,
		PricePerPerson: b.PricePerPerson,
	}
}

func (b *BookingRequestBuilder) Params() booking.NewRequestParams {
	return booking.NewRequestParams{
		MerchantID:          b.MerchantID,
		PartnerType:         b.PartnerType,
		PartnerID:           b.PartnerID,
		PartnerName:         b.PartnerName,
		Terms:               b.Terms(),
		MenuType:            b.MenuType,
		DietaryRequirements: b.DietaryRequirements,
		SpecialRequests:     b.SpecialRequests,
	}
}

// Build methods
func (b *BookingRequestBuilder) BuildDomain() (*booking.BookingRequest, error) {
	return booking.NewBookingRequest(b.Params(), b.Now)
}

// BuildWithStatus reconstructs a persisted request in the given status.
func (b *BookingRequestBuilder) BuildWithStatus(status booking.Status) *booking.BookingRequest {
	return booking.ReconstructBookingRequest(b.BuildState(status))
}

func (b *BookingRequestBuilder) BuildState(status booking.Status) booking.State {
	return booking.State{
		ID:                  uuid.New(),
		MerchantID:          b.MerchantID,
		PartnerType:         b.PartnerType,
		PartnerID:           b.PartnerID,
		PartnerName:         b.PartnerName,
		Terms:               b.Terms(),
		MenuType:            b.MenuType,
		DietaryRequirements: b.DietaryRequirements,
		SpecialRequests:     b.SpecialRequests,
		Status:              status,
		Version:             1,
		CreatedAt:           b.Now,
		UpdatedAt:           b.Now,
	}
}

// Fluent builder methods
func (b *BookingRequestBuilder) WithMerchantID(id uuid.UUID) *BookingRequestBuilder {
	b.MerchantID = id
	return b
}

func (b *BookingRequestBuilder) WithPartnerID(id string) *BookingRequestBuilder {
	b.PartnerID = id
	return b
}

func (b *BookingRequestBuilder) WithDate(d schedule.Date) *BookingRequestBuilder {
	b.Date = d
	return b
}

func (b *BookingRequestBuilder) WithSlot(s schedule.Slot) *BookingRequestBuilder {
	b.Slot = s
	return b
}

func (b *BookingRequestBuilder) WithPartySize(n int) *BookingRequestBuilder {
	b.PartySize = n
	return b
}

func (b *BookingRequestBuilder) WithPrice(p float64) *BookingRequestBuilder {
	b.PricePerPerson = p
	return b
}

func (b *BookingRequestBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PartnerType:         b.PartnerType.String(),
		PartnerID:           b.PartnerID,
		PartnerName:         b.PartnerName,
		RequestedDate:       b.Date.String(),
		RequestedSlot:       b.Slot.String(),
		PartySize:           b.PartySize,
		PricePerPerson:      b.PricePerPerson,
		MenuType:            b.MenuType,
		DietaryRequirements: b.DietaryRequirements,
		SpecialRequests:     b.SpecialRequests,
	}
}

// BuildView is the read model of a pending request built from b.
func (b *BookingRequestBuilder) BuildView() *queries.BookingRequestView {
	return queries.NewBookingRequestView(b.BuildWithStatus(booking.StatusPending))
}
