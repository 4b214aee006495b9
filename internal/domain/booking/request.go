package booking

import (
	"errors"
	"strings"
	"time"

	"group-booking-arbiter/internal/domain/schedule"

	"github.com/google/uuid"
)

const MaxSpecialRequestsLength = 2000

var (
	ErrMissingMerchant     = errors.New("merchant id is required")
	ErrMissingPartner      = errors.New("partner id is required")
	ErrDateInPast          = errors.New("requested date is in the past")
	ErrSpecialRequestsLong = errors.New("special requests exceed maximum length")
	ErrMerchantMismatch    = errors.New("booking request belongs to another merchant")
)

type NewRequestParams struct {
	MerchantID          uuid.UUID
	PartnerType         PartnerType
	PartnerID           string
	PartnerName         string
	Terms               Terms
	MenuType            string
	DietaryRequirements []string
	SpecialRequests     string
}

// State is the flat form of a BookingRequest used for persistence.
type State struct {
	ID                  uuid.UUID
	MerchantID          uuid.UUID
	PartnerType         PartnerType
	PartnerID           string
	PartnerName         string
	Terms               Terms
	MenuType            string
	DietaryRequirements []string
	SpecialRequests     string
	Status              Status
	CounterOffer        *CounterOffer
	DecidedBy           string
	DecidedAt           *time.Time
	ReservationHolder   string
	Version             int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type BookingRequest struct {
	id                  uuid.UUID
	merchantID          uuid.UUID
	partnerType         PartnerType
	partnerID           string
	partnerName         string
	terms               Terms
	menuType            string
	dietaryRequirements []string
	specialRequests     string
	status              Status
	counterOffer        *CounterOffer
	decidedBy           string
	decidedAt           *time.Time
	reservationHolder   string
	version             int
	createdAt           time.Time
	updatedAt           time.Time
}

func NewBookingRequest(p NewRequestParams, now time.Time) (*BookingRequest, error) {
	if p.MerchantID == uuid.Nil {
		return nil, ErrMissingMerchant
	}
	if _, err := ParsePartnerType(string(p.PartnerType)); err != nil {
		return nil, err
	}
	partnerID := strings.TrimSpace(p.PartnerID)
	if partnerID == "" {
		return nil, ErrMissingPartner
	}
	if err := p.Terms.Validate(); err != nil {
		return nil, err
	}
	if p.Terms.Date.Before(schedule.DateOf(now)) {
		return nil, ErrDateInPast
	}
	special := strings.TrimSpace(p.SpecialRequests)
	if len(special) > MaxSpecialRequestsLength {
		return nil, ErrSpecialRequestsLong
	}

	return &BookingRequest{
		id:                  uuid.New(),
		merchantID:          p.MerchantID,
		partnerType:         p.PartnerType,
		partnerID:           partnerID,
		partnerName:         strings.TrimSpace(p.PartnerName),
		terms:               p.Terms,
		menuType:            strings.TrimSpace(p.MenuType),
		dietaryRequirements: cleanList(p.DietaryRequirements),
		specialRequests:     special,
		status:              StatusPending,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructBookingRequest(s State) *BookingRequest {
	return &BookingRequest{
		id:                  s.ID,
		merchantID:          s.MerchantID,
		partnerType:         s.PartnerType,
		partnerID:           s.PartnerID,
		partnerName:         s.PartnerName,
		terms:               s.Terms,
		menuType:            s.MenuType,
		dietaryRequirements: s.DietaryRequirements,
		specialRequests:     s.SpecialRequests,
		status:              s.Status,
		counterOffer:        s.CounterOffer,
		decidedBy:           s.DecidedBy,
		decidedAt:           s.DecidedAt,
		reservationHolder:   s.ReservationHolder,
		version:             s.Version,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
	}
}

func (r *BookingRequest) ID() uuid.UUID                 { return r.id }
func (r *BookingRequest) MerchantID() uuid.UUID         { return r.merchantID }
func (r *BookingRequest) PartnerType() PartnerType      { return r.partnerType }
func (r *BookingRequest) PartnerID() string             { return r.partnerID }
func (r *BookingRequest) PartnerName() string           { return r.partnerName }
func (r *BookingRequest) Terms() Terms                  { return r.terms }
func (r *BookingRequest) MenuType() string              { return r.menuType }
func (r *BookingRequest) DietaryRequirements() []string { return r.dietaryRequirements }
func (r *BookingRequest) SpecialRequests() string       { return r.specialRequests }
func (r *BookingRequest) Status() Status                { return r.status }
func (r *BookingRequest) CounterOffer() *CounterOffer   { return r.counterOffer }
func (r *BookingRequest) DecidedBy() string             { return r.decidedBy }
func (r *BookingRequest) DecidedAt() *time.Time         { return r.decidedAt }
func (r *BookingRequest) ReservationHolder() string     { return r.reservationHolder }
func (r *BookingRequest) Version() int                  { return r.version }
func (r *BookingRequest) CreatedAt() time.Time          { return r.createdAt }
func (r *BookingRequest) UpdatedAt() time.Time          { return r.updatedAt }

// EffectiveTerms are the counter-offer's terms once one was made, the requested terms otherwise.
func (r *BookingRequest) EffectiveTerms() Terms {
	if r.counterOffer != nil {
		return r.counterOffer.Terms
	}
	return r.terms
}

// BelongsTo guards cross-merchant access.
func (r *BookingRequest) BelongsTo(merchantID uuid.UUID) error {
	if r.merchantID != merchantID {
		return ErrMerchantMismatch
	}
	return nil
}

func (r *BookingRequest) State() State {
	return State{
		ID:                  r.id,
		MerchantID:          r.merchantID,
		PartnerType:         r.partnerType,
		PartnerID:           r.partnerID,
		PartnerName:         r.partnerName,
		Terms:               r.terms,
		MenuType:            r.menuType,
		DietaryRequirements: r.dietaryRequirements,
		SpecialRequests:     r.specialRequests,
		Status:              r.status,
		CounterOffer:        r.counterOffer,
		DecidedBy:           r.decidedBy,
		DecidedAt:           r.decidedAt,
		ReservationHolder:   r.reservationHolder,
		Version:             r.version,
		CreatedAt:           r.createdAt,
		UpdatedAt:           r.updatedAt,
	}
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, t)
		}
	}
	return out
}
