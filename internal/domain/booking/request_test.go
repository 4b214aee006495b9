//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingRequestBuilder)
	errIs  error
}

func TestNewBookingRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, "tour-7", actual.PartnerID())
		assert.Equal(t, 8, actual.Terms().PartySize)
		assert.Nil(t, actual.CounterOffer())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, actual.Terms(), actual.EffectiveTerms())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing merchant",
				mutate: func(b *builder.BookingRequestBuilder) { b.MerchantID = uuid.Nil },
				errIs:  booking.ErrMissingMerchant,
			},
			{
				name:   "unknown partner type",
				mutate: func(b *builder.BookingRequestBuilder) { b.PartnerType = "agent" },
				errIs:  booking.ErrInvalidPartnerType,
			},
			{
				name:   "blank partner id",
				mutate: func(b *builder.BookingRequestBuilder) { b.PartnerID = "   " },
				errIs:  booking.ErrMissingPartner,
			},
			{
				name:   "missing date",
				mutate: func(b *builder.BookingRequestBuilder) { b.Date = schedule.Date{} },
				errIs:  booking.ErrMissingDate,
			},
			{
				name:   "invalid slot",
				mutate: func(b *builder.BookingRequestBuilder) { b.Slot = "brunch" },
				errIs:  schedule.ErrInvalidSlot,
			},
			{
				name:   "zero party size",
				mutate: func(b *builder.BookingRequestBuilder) { b.PartySize = 0 },
				errIs:  booking.ErrInvalidPartySize,
			},
			{
				name:   "party size above maximum",
				mutate: func(b *builder.BookingRequestBuilder) { b.PartySize = booking.MaxPartySize + 1 },
				errIs:  booking.ErrInvalidPartySize,
			},
			{
				name:   "non-positive price",
				mutate: func(b *builder.BookingRequestBuilder) { b.PricePerPerson = 0 },
				errIs:  booking.ErrInvalidPrice,
			},
			{
				name:   "date in the past",
				mutate: func(b *builder.BookingRequestBuilder) { b.Date = schedule.DateOf(b.Now).AddDays(-1) },
				errIs:  booking.ErrDateInPast,
			},
			{
				name:   "today is allowed",
				mutate: func(b *builder.BookingRequestBuilder) { b.Date = schedule.DateOf(b.Now) },
			},
			{
				name: "special requests too long",
				mutate: func(b *builder.BookingRequestBuilder) {
					b.SpecialRequests = strings.Repeat("a", booking.MaxSpecialRequestsLength+1)
				},
				errIs: booking.ErrSpecialRequestsLong,
			},
		})
	})

	t.Run("dietary requirements are trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingRequestBuilder().With(func(b *builder.BookingRequestBuilder) {
			b.DietaryRequirements = []string{" vegan ", "", "halal"}
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []string{"vegan", "halal"}, actual.DietaryRequirements())
	})

	t.Run("belongs to", func(t *testing.T) {
		b := builder.NewBookingRequestBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, actual.BelongsTo(b.MerchantID))
		assert.ErrorIs(t, actual.BelongsTo(uuid.New()), booking.ErrMerchantMismatch)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingRequestBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
