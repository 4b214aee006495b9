//go:build unit

package queries_test

import (
	"context"
	"testing"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/domain/scoring"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/tests/common/builder"
	"group-booking-arbiter/tests/common/uowtest"
	queriesmock "group-booking-arbiter/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAggregate(t *testing.T) {
	merchantID := uuid.New()
	day := schedule.DateOf(builder.ReferenceNow).AddDays(14)

	accepted := builder.NewBookingRequestBuilder().WithMerchantID(merchantID).With(func(b *builder.BookingRequestBuilder) {
		b.PartnerID = "tour-a"
		b.PartySize = 10
		b.PricePerPerson = 50
	}).BuildWithStatus(booking.StatusAccepted)
	declined := builder.NewBookingRequestBuilder().WithMerchantID(merchantID).With(func(b *builder.BookingRequestBuilder) {
		b.PartnerID = "tour-b"
		b.Slot = schedule.SlotLunch
	}).BuildWithStatus(booking.StatusDeclined)
	countered := builder.NewBookingRequestBuilder().WithMerchantID(merchantID).BuildWithStatus(booking.StatusCountered)
	pending := builder.NewBookingRequestBuilder().WithMerchantID(merchantID).BuildWithStatus(booking.StatusPending)

	decisions := []*decision.Decision{
		decision.New(decision.Params{RequestID: accepted.ID(), MerchantID: merchantID, Action: decision.ActionAccept,
			Score: scoring.Score{WeightedTotal: 0.6}, ForecastRevenue: 250}, builder.ReferenceNow),
		decision.New(decision.Params{RequestID: declined.ID(), MerchantID: merchantID, Action: decision.ActionDecline,
			Score: scoring.Score{WeightedTotal: -0.2}}, builder.ReferenceNow),
	}
	rec, err := builder.NewPerformanceBuilder().With(func(b *builder.PerformanceBuilder) {
		b.MerchantID = merchantID
		b.Date = day
		b.WalkinRevenue = 300
	}).BuildDomain()
	require.NoError(t, err)

	v := queries.Aggregate(merchantID, day.AddDays(-30), day.AddDays(30), &queries.AnalyticsInputs{
		Requests:    []*booking.BookingRequest{accepted, declined, countered, pending},
		Decisions:   decisions,
		Performance: []*performance.Record{rec},
	})

	assert.Equal(t, 4, v.TotalRequests)
	assert.Equal(t, 1, v.Accepted)
	assert.Equal(t, 1, v.Declined)
	assert.Equal(t, 1, v.Countered)
	assert.Equal(t, 1, v.Pending)
	assert.InDelta(t, 25, v.AcceptanceRate, 1e-9)
	assert.InDelta(t, 42.5, v.AvgPricePerPerson, 1e-9)
	assert.InDelta(t, 10, v.AvgGroupSize, 1e-9)
	assert.InDelta(t, 500, v.TotalGroupRevenue, 1e-9)
	assert.Equal(t, map[string]int{"breakfast": 0, "lunch": 1, "dinner": 3}, v.PopularSlots)
	assert.InDelta(t, 0.6, v.AverageScoreByOutcome["accept"], 1e-9)
	assert.InDelta(t, -0.2, v.AverageScoreByOutcome["decline"], 1e-9)

	wantPartners := []queries.PartnerRevenueView{
		{PartnerID: "tour-a", PartnerType: "tour_operator", BookingsCount: 1, TotalRevenue: 500},
	}
	if diff := cmp.Diff(wantPartners, v.TopPartners); diff != "" {
		t.Errorf("top partners mismatch (-want +got):\n%s", diff)
	}

	// 20 walk-in covers at the forecast 25 per cover
	assert.Equal(t, 1, v.Forecast.SlotsCompared)
	assert.InDelta(t, 300, v.Forecast.RealizedWalkinRevenue, 1e-9)
	assert.InDelta(t, 500, v.Forecast.ForecastWalkinRevenue, 1e-9)
	assert.InDelta(t, -200, v.Forecast.Delta, 1e-9)
	require.NotNil(t, v.Forecast.Ratio)
	assert.InDelta(t, 0.6, *v.Forecast.Ratio, 1e-9)
}

func TestAggregate_ForecastAccuracy(t *testing.T) {
	merchantID := uuid.New()
	day := schedule.DateOf(builder.ReferenceNow).AddDays(14)

	acceptedGroup := func(slot schedule.Slot, partySize int) *booking.BookingRequest {
		return builder.NewBookingRequestBuilder().WithMerchantID(merchantID).With(func(b *builder.BookingRequestBuilder) {
			b.Slot = slot
			b.PartySize = partySize
		}).BuildWithStatus(booking.StatusAccepted)
	}
	engineAccept := func(r *booking.BookingRequest, forecast float64) *decision.Decision {
		return decision.New(decision.Params{RequestID: r.ID(), MerchantID: merchantID, Action: decision.ActionAccept,
			ForecastRevenue: forecast}, builder.ReferenceNow)
	}
	walkins := func(slot schedule.Slot, covers int, revenue float64) *performance.Record {
		rec, err := builder.NewPerformanceBuilder().With(func(b *builder.PerformanceBuilder) {
			b.MerchantID = merchantID
			b.Date = day
			b.Slot = slot
			b.WalkinCovers = covers
			b.WalkinRevenue = revenue
		}).BuildDomain()
		require.NoError(t, err)
		return rec
	}

	t.Run("baseline matching realized spend yields no delta", func(t *testing.T) {
		group := acceptedGroup(schedule.SlotDinner, 10)
		v := queries.Aggregate(merchantID, day, day, &queries.AnalyticsInputs{
			Requests:    []*booking.BookingRequest{group},
			Decisions:   []*decision.Decision{engineAccept(group, 250)},
			Performance: []*performance.Record{walkins(schedule.SlotDinner, 20, 500)},
		})

		assert.Equal(t, 1, v.Forecast.SlotsCompared)
		assert.InDelta(t, 500, v.Forecast.RealizedWalkinRevenue, 1e-9)
		assert.InDelta(t, 500, v.Forecast.ForecastWalkinRevenue, 1e-9)
		assert.InDelta(t, 0, v.Forecast.Delta, 1e-9)
		require.NotNil(t, v.Forecast.Ratio)
		assert.InDelta(t, 1, *v.Forecast.Ratio, 1e-9)
	})

	t.Run("a slot with two groups counts once", func(t *testing.T) {
		first := acceptedGroup(schedule.SlotDinner, 10)
		second := acceptedGroup(schedule.SlotDinner, 8)
		v := queries.Aggregate(merchantID, day, day, &queries.AnalyticsInputs{
			Requests:    []*booking.BookingRequest{first, second},
			Decisions:   []*decision.Decision{engineAccept(first, 250), engineAccept(second, 240)},
			Performance: []*performance.Record{walkins(schedule.SlotDinner, 20, 550)},
		})

		// forecast spend averages 25 and 30 per cover
		assert.Equal(t, 1, v.Forecast.SlotsCompared)
		assert.InDelta(t, 550, v.Forecast.RealizedWalkinRevenue, 1e-9)
		assert.InDelta(t, 550, v.Forecast.ForecastWalkinRevenue, 1e-9)
		assert.InDelta(t, 0, v.Forecast.Delta, 1e-9)
	})

	t.Run("manual accepts without a forecast are left out", func(t *testing.T) {
		manual := acceptedGroup(schedule.SlotLunch, 10)
		v := queries.Aggregate(merchantID, day, day, &queries.AnalyticsInputs{
			Requests:    []*booking.BookingRequest{manual},
			Performance: []*performance.Record{walkins(schedule.SlotLunch, 20, 500)},
		})

		assert.Zero(t, v.Forecast.SlotsCompared)
		assert.Zero(t, v.Forecast.RealizedWalkinRevenue)
		assert.Zero(t, v.Forecast.Delta)
		assert.Nil(t, v.Forecast.Ratio)
	})
}

func TestAggregate_EmptyPeriod(t *testing.T) {
	day := schedule.DateOf(builder.ReferenceNow)
	v := queries.Aggregate(uuid.New(), day, day, &queries.AnalyticsInputs{})

	assert.Zero(t, v.TotalRequests)
	assert.Zero(t, v.AcceptanceRate)
	assert.Empty(t, v.TopPartners)
	assert.Nil(t, v.Forecast.Ratio)
	assert.Len(t, v.PopularSlots, 3)
}

func TestAnalyticsQueries_RangeValidation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAnalyticsReadStore(ctrl)
	q := queries.NewAnalyticsQueries(uowtest.NewStore(), store)
	day := schedule.DateOf(builder.ReferenceNow)

	tests := []struct {
		name     string
		from, to schedule.Date
	}{
		{name: "missing from", to: day},
		{name: "reversed", from: day, to: day.AddDays(-1)},
		{name: "too long", from: day, to: day.AddDays(queries.MaxAnalyticsRangeDays + 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := q.GetBookingAnalytics(ctx, uuid.New(), tt.from, tt.to)
			assert.True(t, errs.IsAny(err, queries.ErrInvalidFilter))
		})
	}

	t.Run("loads within a read-only transaction", func(t *testing.T) {
		merchantID := uuid.New()
		store.EXPECT().Load(ctx, gomock.Any(), merchantID, day, day.AddDays(7)).Return(&queries.AnalyticsInputs{}, nil)

		v, err := q.GetBookingAnalytics(ctx, merchantID, day, day.AddDays(7))
		require.NoError(t, err)
		assert.Equal(t, merchantID, v.MerchantID)
	})
}
