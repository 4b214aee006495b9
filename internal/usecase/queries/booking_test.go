//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/pkg/ptr"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/tests/common/builder"
	queriesmock "group-booking-arbiter/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetBookingRequest(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	view := builder.NewBookingRequestBuilder().WithMerchantID(merchantID).BuildView()

	testCases := []struct {
		name       string
		merchantID uuid.UUID
		setupMock  func(*queriesmock.MockBookingRequestReadStore)
		expectErr  error
		expectLast bool
	}{
		{
			name:       "success: latest decision attached",
			merchantID: merchantID,
			setupMock: func(m *queriesmock.MockBookingRequestReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
				m.EXPECT().LatestDecision(ctx, view.ID).Return(&queries.DecisionView{ID: uuid.New(), Action: "accept"}, nil)
			},
			expectLast: true,
		},
		{
			name:       "success: never processed",
			merchantID: merchantID,
			setupMock: func(m *queriesmock.MockBookingRequestReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
				m.EXPECT().LatestDecision(ctx, view.ID).Return(nil, infra.WrapRepoErr("decision not found", nil, infra.KindNotFound))
			},
		},
		{
			name:       "error: not found",
			merchantID: merchantID,
			setupMock: func(m *queriesmock.MockBookingRequestReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(nil, infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound))
			},
			expectErr: queries.ErrBookingRequestNotFound,
		},
		{
			name:       "error: other merchant",
			merchantID: uuid.New(),
			setupMock: func(m *queriesmock.MockBookingRequestReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			},
			expectErr: queries.ErrBookingRequestNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingRequestReadStore(ctrl)
			tc.setupMock(store)

			view.LatestDecision = nil
			got, err := queries.NewBookingQueries(store).GetBookingRequest(ctx, tc.merchantID, view.ID)
			if tc.expectErr != nil {
				assert.True(t, errs.IsAny(err, tc.expectErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectLast, got.LatestDecision != nil)
		})
	}

	t.Run("error: database failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingRequestReadStore(ctrl)
		store.EXPECT().FindByID(ctx, view.ID).Return(nil, infra.WrapRepoErr("failed", errors.New("boom")))

		_, err := queries.NewBookingQueries(store).GetBookingRequest(ctx, merchantID, view.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingQueries_ListBookingRequests(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()

	t.Run("limit defaults and clamps", func(t *testing.T) {
		for _, tc := range []struct{ in, want int }{{0, queries.DefaultListLimit}, {10, 10}, {1000, queries.MaxListLimit}} {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingRequestReadStore(ctrl)
			store.EXPECT().List(ctx, merchantID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ uuid.UUID, f queries.BookingRequestFilter) ([]*queries.BookingRequestView, error) {
					assert.Equal(t, tc.want, f.Limit)
					return nil, nil
				})

			_, err := queries.NewBookingQueries(store).ListBookingRequests(ctx, merchantID, queries.BookingRequestFilter{Limit: tc.in})
			require.NoError(t, err)
		}
	})

	t.Run("from after to", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingRequestReadStore(ctrl)

		_, err := queries.NewBookingQueries(store).ListBookingRequests(ctx, merchantID, queries.BookingRequestFilter{
			From: ptr.Of(schedule.MustParseDate("2026-03-10")),
			To:   ptr.Of(schedule.MustParseDate("2026-03-01")),
		})
		assert.True(t, errs.IsAny(err, queries.ErrInvalidFilter))
	})
}
