package response

import (
	"group-booking-arbiter/internal/usecase/commands"
	"group-booking-arbiter/internal/usecase/queries"
)

type TermsResponse struct {
	Date           string  `json:"date"`
	Slot           string  `json:"slot"`
	PartySize      int     `json:"party_size"`
	PricePerPerson float64 `json:"price_per_person"`
}

type CounterOfferResponse struct {
	TermsResponse
	Message string `json:"message,omitempty"`
}

type ScoreResponse struct {
	Revenue       float64 `json:"revenue"`
	Occupancy     float64 `json:"occupancy"`
	Relationship  float64 `json:"relationship"`
	WeightedTotal float64 `json:"weighted_total"`
}

type DecisionResponse struct {
	ID              string                `json:"id"`
	RequestID       string                `json:"request_id"`
	Action          string                `json:"action"`
	Score           ScoreResponse         `json:"score"`
	ReasonCodes     []string              `json:"reason_codes"`
	CounterOffer    *CounterOfferResponse `json:"counter_offer,omitempty"`
	Advisory        bool                  `json:"advisory"`
	ForecastRevenue float64               `json:"forecast_revenue"`
	DecidedAt       int64                 `json:"decided_at"`
}

type BookingRequestResponse struct {
	ID                  string                `json:"id"`
	MerchantID          string                `json:"merchant_id"`
	PartnerType         string                `json:"partner_type"`
	PartnerID           string                `json:"partner_id"`
	PartnerName         string                `json:"partner_name"`
	Requested           TermsResponse         `json:"requested"`
	MenuType            string                `json:"menu_type"`
	DietaryRequirements []string              `json:"dietary_requirements"`
	SpecialRequests     string                `json:"special_requests,omitempty"`
	Status              string                `json:"status"`
	CounterOffer        *CounterOfferResponse `json:"counter_offer,omitempty"`
	DecidedBy           string                `json:"decided_by,omitempty"`
	DecidedAt           *int64                `json:"decided_at,omitempty"`
	Version             int                   `json:"version"`
	CreatedAt           int64                 `json:"created_at"`
	UpdatedAt           int64                 `json:"updated_at"`
	LatestDecision      *DecisionResponse     `json:"latest_decision,omitempty"`
}

type ProcessResultResponse struct {
	Request  *BookingRequestResponse `json:"request"`
	Decision *DecisionResponse       `json:"decision"`
}

type BookingRequestListResponse struct {
	Items []*BookingRequestResponse `json:"items"`
	Count int                       `json:"count"`
}

func fromTermsView(v queries.TermsView) TermsResponse {
	return TermsResponse{
		Date:           v.Date,
		Slot:           v.Slot,
		PartySize:      v.PartySize,
		PricePerPerson: v.PricePerPerson,
	}
}

func fromCounterOfferView(v *queries.CounterOfferView) *CounterOfferResponse {
	if v == nil {
		return nil
	}
	return &CounterOfferResponse{TermsResponse: fromTermsView(v.TermsView), Message: v.Message}
}

func FromDecisionView(v *queries.DecisionView) *DecisionResponse {
	if v == nil {
		return nil
	}
	reasons := v.ReasonCodes
	if reasons == nil {
		reasons = []string{}
	}
	return &DecisionResponse{
		ID:        v.ID.String(),
		RequestID: v.RequestID.String(),
		Action:    v.Action,
		Score: ScoreResponse{
			Revenue:       v.Score.Revenue,
			Occupancy:     v.Score.Occupancy,
			Relationship:  v.Score.Relationship,
			WeightedTotal: v.Score.WeightedTotal,
		},
		ReasonCodes:     reasons,
		CounterOffer:    fromCounterOfferView(v.CounterOffer),
		Advisory:        v.Advisory,
		ForecastRevenue: v.ForecastRevenue,
		DecidedAt:       v.DecidedAt.Unix(),
	}
}

func FromBookingRequestView(v *queries.BookingRequestView) *BookingRequestResponse {
	dietary := v.DietaryRequirements
	if dietary == nil {
		dietary = []string{}
	}
	res := &BookingRequestResponse{
		ID:                  v.ID.String(),
		MerchantID:          v.MerchantID.String(),
		PartnerType:         v.PartnerType,
		PartnerID:           v.PartnerID,
		PartnerName:         v.PartnerName,
		Requested:           fromTermsView(v.Requested),
		MenuType:            v.MenuType,
		DietaryRequirements: dietary,
		SpecialRequests:     v.SpecialRequests,
		Status:              v.Status,
		CounterOffer:        fromCounterOfferView(v.CounterOffer),
		DecidedBy:           v.DecidedBy,
		Version:             v.Version,
		CreatedAt:           v.CreatedAt.Unix(),
		UpdatedAt:           v.UpdatedAt.Unix(),
		LatestDecision:      FromDecisionView(v.LatestDecision),
	}
	if v.DecidedAt != nil {
		at := v.DecidedAt.Unix()
		res.DecidedAt = &at
	}
	return res
}

func FromProcessResult(r *commands.ProcessResult) *ProcessResultResponse {
	return &ProcessResultResponse{
		Request:  FromBookingRequestView(r.Request),
		Decision: FromDecisionView(r.Decision),
	}
}

func FromBookingRequestList(items []*queries.BookingRequestView) *BookingRequestListResponse {
	res := make([]*BookingRequestResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingRequestView(it)
	}
	return &BookingRequestListResponse{Items: res, Count: len(res)}
}
