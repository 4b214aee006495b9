package dbq

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingConfig struct {
	MerchantID          uuid.UUID
	AutomationLevel     string
	WeightRevenue       float64
	WeightOccupancy     float64
	WeightRelationships float64
	MinMarginPercent    float64
	MaxGroupPercent     float64
	BlackoutDates       []pgtype.Date
	PreferredPartners   []string
	BlockedPartners     []string
	SlotCapacity        []byte
	CostPerCover        float64
	MenuCosts           []byte
	HolidayDates        []pgtype.Date
	UpdatedAt           pgtype.Timestamptz
}

type BookingRequest struct {
	ID                  uuid.UUID
	MerchantID          uuid.UUID
	PartnerType         string
	PartnerID           string
	PartnerName         string
	RequestedDate       pgtype.Date
	RequestedSlot       string
	PartySize           int32
	PricePerPerson      float64
	MenuType            string
	DietaryRequirements []string
	SpecialRequests     string
	Status              string
	CounterOffer        []byte
	EffectiveDate       pgtype.Date
	DecidedBy           pgtype.Text
	DecidedAt           pgtype.Timestamptz
	ReservationHolder   pgtype.Text
	Version             int32
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type BookingDecision struct {
	ID                    uuid.UUID
	RequestID             uuid.UUID
	MerchantID            uuid.UUID
	Action                string
	RevenueComponent      float64
	OccupancyComponent    float64
	RelationshipComponent float64
	WeightedTotal         float64
	ReasonCodes           []string
	CounterOffer          []byte
	Advisory              bool
	ForecastRevenue       float64
	DecidedAt             pgtype.Timestamptz
}

type PerformanceRecord struct {
	MerchantID            uuid.UUID
	ServiceDate           pgtype.Date
	Slot                  string
	TotalCapacity         int32
	GroupCovers           int32
	WalkinCovers          int32
	GroupRevenue          float64
	WalkinRevenue         float64
	IsHoliday             bool
	WeatherConditions     string
	SpecialEvents         []string
	ConfigSnapshotMissing bool
	RecordedAt            pgtype.Timestamptz
}
