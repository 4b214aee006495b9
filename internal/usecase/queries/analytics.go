package queries

import (
	"cmp"
	"context"
	"math"
	"slices"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

const topPartnersLimit = 5

// MaxAnalyticsRangeDays bounds the period a single analytics query may span.
const MaxAnalyticsRangeDays = 366

type AnalyticsInputs struct {
	Requests    []*booking.BookingRequest
	Decisions   []*decision.Decision
	Performance []*performance.Record
}

type AnalyticsReadStore interface {
	Load(ctx context.Context, db dbq.DBTX, merchantID uuid.UUID, from, to schedule.Date) (*AnalyticsInputs, error)
}

type PeriodView struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type PartnerRevenueView struct {
	PartnerID     string  `json:"partner_id"`
	PartnerType   string  `json:"partner_type"`
	BookingsCount int     `json:"bookings_count"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// ForecastAccuracyView compares, over slots that took a group, the walk-in revenue realized
// with what the baseline the group was decided on predicts for the same walk-in covers. Each
// (date, slot) counts once. Slots without an engine forecast or a performance record are left out.
type ForecastAccuracyView struct {
	SlotsCompared         int      `json:"slots_compared"`
	RealizedWalkinRevenue float64  `json:"realized_walkin_revenue"`
	ForecastWalkinRevenue float64  `json:"forecast_walkin_revenue"`
	Delta                 float64  `json:"delta"`
	Ratio                 *float64 `json:"ratio,omitempty"`
}

type AnalyticsView struct {
	MerchantID            uuid.UUID            `json:"merchant_id"`
	Period                PeriodView           `json:"period"`
	TotalRequests         int                  `json:"total_requests"`
	Accepted              int                  `json:"accepted"`
	Declined              int                  `json:"declined"`
	Countered             int                  `json:"countered"`
	Pending               int                  `json:"pending"`
	Expired               int                  `json:"expired"`
	AcceptanceRate        float64              `json:"acceptance_rate"`
	AverageScoreByOutcome map[string]float64   `json:"average_score_by_outcome"`
	TotalGroupRevenue     float64              `json:"total_group_revenue"`
	AvgGroupSize          float64              `json:"avg_group_size"`
	AvgPricePerPerson     float64              `json:"avg_price_per_person"`
	PopularSlots          map[string]int       `json:"popular_slots"`
	TopPartners           []PartnerRevenueView `json:"top_partners"`
	Forecast              ForecastAccuracyView `json:"forecast"`
}

type AnalyticsQueries interface {
	GetBookingAnalytics(ctx context.Context, merchantID uuid.UUID, from, to schedule.Date) (*AnalyticsView, error)
}

type analyticsQueriesImpl struct {
	uow   shared.UnitOfWork
	store AnalyticsReadStore
}

func NewAnalyticsQueries(uow shared.UnitOfWork, store AnalyticsReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{uow: uow, store: store}
}

func (q *analyticsQueriesImpl) GetBookingAnalytics(ctx context.Context, merchantID uuid.UUID, from, to schedule.Date) (*AnalyticsView, error) {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return nil, errs.Mark(errs.New("from and to must form a valid range"), ErrInvalidFilter)
	}
	if from.DaysUntil(to) > MaxAnalyticsRangeDays {
		return nil, errs.Mark(errs.New("analytics range is too long"), ErrInvalidFilter)
	}

	var in *AnalyticsInputs
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db dbq.DBTX) error {
		loaded, err := q.store.Load(ctx, db, merchantID, from, to)
		if err != nil {
			return err
		}
		in = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return Aggregate(merchantID, from, to, in), nil
}

type slotKey struct {
	date schedule.Date
	slot schedule.Slot
}

// Aggregate derives the analytics of a period from its requests, decisions and performance.
func Aggregate(merchantID uuid.UUID, from, to schedule.Date, in *AnalyticsInputs) *AnalyticsView {
	v := &AnalyticsView{
		MerchantID:            merchantID,
		Period:                PeriodView{From: from.String(), To: to.String()},
		AverageScoreByOutcome: map[string]float64{},
		PopularSlots:          map[string]int{},
		TopPartners:           []PartnerRevenueView{},
	}
	for _, s := range schedule.AllSlots() {
		v.PopularSlots[s.String()] = 0
	}

	latest := make(map[uuid.UUID]*decision.Decision, len(in.Decisions))
	scoreSums := map[string]float64{}
	scoreCounts := map[string]int{}
	for _, d := range in.Decisions {
		latest[d.RequestID()] = d
		action := d.Action().String()
		scoreSums[action] += d.Score().WeightedTotal
		scoreCounts[action]++
	}
	for action, sum := range scoreSums {
		v.AverageScoreByOutcome[action] = round(sum/float64(scoreCounts[action]), 4)
	}

	partners := map[string]*PartnerRevenueView{}
	// forecast walk-in spend per cover of each accepted slot, one sample per decided request
	spendBySlot := map[slotKey][]float64{}
	var priceSum float64
	var acceptedCovers int

	for _, r := range in.Requests {
		v.TotalRequests++
		v.PopularSlots[r.Terms().Slot.String()]++
		priceSum += r.Terms().PricePerPerson

		switch r.Status() {
		case booking.StatusAccepted:
			v.Accepted++
		case booking.StatusDeclined:
			v.Declined++
		case booking.StatusCountered:
			v.Countered++
		case booking.StatusPending:
			v.Pending++
		case booking.StatusExpired:
			v.Expired++
		}
		if r.Status() != booking.StatusAccepted {
			continue
		}

		terms := r.EffectiveTerms()
		revenue := terms.Revenue()
		v.TotalGroupRevenue += revenue
		acceptedCovers += terms.PartySize
		if spend, ok := forecastSpendPerCover(r, latest[r.ID()]); ok {
			key := slotKey{terms.Date, terms.Slot}
			spendBySlot[key] = append(spendBySlot[key], spend)
		}

		p, ok := partners[r.PartnerID()]
		if !ok {
			p = &PartnerRevenueView{PartnerID: r.PartnerID(), PartnerType: r.PartnerType().String()}
			partners[r.PartnerID()] = p
		}
		p.BookingsCount++
		p.TotalRevenue += revenue
	}

	for _, rec := range in.Performance {
		spends, ok := spendBySlot[slotKey{rec.Date(), rec.Slot()}]
		if !ok {
			continue
		}
		v.Forecast.SlotsCompared++
		v.Forecast.RealizedWalkinRevenue += rec.WalkinRevenue()
		v.Forecast.ForecastWalkinRevenue += mean(spends) * float64(rec.WalkinCovers())
	}

	if v.TotalRequests > 0 {
		v.AcceptanceRate = round(float64(v.Accepted)/float64(v.TotalRequests)*100, 2)
		v.AvgPricePerPerson = round(priceSum/float64(v.TotalRequests), 2)
	}
	if v.Accepted > 0 {
		v.AvgGroupSize = round(float64(acceptedCovers)/float64(v.Accepted), 2)
	}
	v.TotalGroupRevenue = round(v.TotalGroupRevenue, 2)

	f := &v.Forecast
	f.RealizedWalkinRevenue = round(f.RealizedWalkinRevenue, 2)
	f.ForecastWalkinRevenue = round(f.ForecastWalkinRevenue, 2)
	f.Delta = round(f.RealizedWalkinRevenue-f.ForecastWalkinRevenue, 2)
	if f.ForecastWalkinRevenue > 0 {
		ratio := round(f.RealizedWalkinRevenue/f.ForecastWalkinRevenue, 4)
		f.Ratio = &ratio
	}

	for _, p := range partners {
		p.TotalRevenue = round(p.TotalRevenue, 2)
		v.TopPartners = append(v.TopPartners, *p)
	}
	slices.SortFunc(v.TopPartners, func(a, b PartnerRevenueView) int {
		if c := cmp.Compare(b.TotalRevenue, a.TotalRevenue); c != 0 {
			return c
		}
		return cmp.Compare(a.PartnerID, b.PartnerID)
	})
	if len(v.TopPartners) > topPartnersLimit {
		v.TopPartners = v.TopPartners[:topPartnersLimit]
	}
	return v
}

// forecastSpendPerCover recovers the baseline spend per cover behind an engine decision. The
// forecast was taken on the requested party size, before any counter-offer.
func forecastSpendPerCover(r *booking.BookingRequest, d *decision.Decision) (float64, bool) {
	if d == nil || d.ForecastRevenue() <= 0 || r.Terms().PartySize <= 0 {
		return 0, false
	}
	return d.ForecastRevenue() / float64(r.Terms().PartySize), true
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
