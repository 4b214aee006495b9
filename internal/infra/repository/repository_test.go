//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"group-booking-arbiter/internal/domain/booking"
	"group-booking-arbiter/internal/domain/decision"
	"group-booking-arbiter/internal/domain/scoring"
	"group-booking-arbiter/internal/infra"
	"group-booking-arbiter/internal/infra/dbq"
	"group-booking-arbiter/internal/infra/repository"
	"group-booking-arbiter/tests/common/builder"
	repositorymock "group-booking-arbiter/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}

func assertKind(t *testing.T, err error, kind infra.RepositoryErrorKind) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, kind), "expected kind [%v] but got [%T] (%v)", kind, err, err)
}

// =============================================================================
// Booking Request Tests
// =============================================================================

func TestBookingRequestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingRequestWriteQueries, *booking.BookingRequest, dbq.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking request created",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, req *booking.BookingRequest, tx dbq.DBTX) {
				mock.EXPECT().InsertBookingRequest(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ dbq.DBTX, row dbq.BookingRequest) error {
						assert.Equal(t, req.ID(), row.ID)
						assert.Equal(t, req.MerchantID(), row.MerchantID)
						assert.Equal(t, "pending", row.Status)
						return nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, _ *booking.BookingRequest, tx dbq.DBTX) {
				mock.EXPECT().InsertBookingRequest(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: duplicate request id",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, _ *booking.BookingRequest, tx dbq.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().InsertBookingRequest(ctx, tx, gomock.Any()).Return(dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRequestRepository(mockQueries, mockDB)

			req, err := builder.NewBookingRequestBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, req, mockDB)

			err = repo.Create(ctx, mockDB, req)
			if tc.expectKind != "" {
				assertKind(t, err, tc.expectKind)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRequestRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingRequestWriteQueries, *booking.BookingRequest, dbq.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: state written under the expected version",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, req *booking.BookingRequest, tx dbq.DBTX) {
				mock.EXPECT().UpdateBookingRequestState(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ dbq.DBTX, arg dbq.UpdateBookingRequestStateParams) (int64, error) {
						assert.Equal(t, req.ID(), arg.ID)
						assert.Equal(t, int32(1), arg.ExpectedVersion)
						assert.Equal(t, "declined", arg.Status)
						assert.Equal(t, "mgr-1", arg.DecidedBy.String)
						return 1, nil
					})
			},
		},
		{
			name: "error: version moved on",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, _ *booking.BookingRequest, tx dbq.DBTX) {
				mock.EXPECT().UpdateBookingRequestState(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: serialization failure",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, _ *booking.BookingRequest, tx dbq.DBTX) {
				mock.EXPECT().UpdateBookingRequestState(ctx, tx, gomock.Any()).Return(int64(0), &pgconn.PgError{Code: "40001"})
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingRequestWriteQueries, _ *booking.BookingRequest, tx dbq.DBTX) {
				mock.EXPECT().UpdateBookingRequestState(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRequestRepository(mockQueries, mockDB)

			b := builder.NewBookingRequestBuilder()
			req := b.BuildWithStatus(booking.StatusPending)
			require.NoError(t, req.Decline("mgr-1", b.Now))

			tc.setupMock(mockQueries, req, mockDB)

			err := repo.Update(ctx, mockDB, req, 1)
			if tc.expectKind != "" {
				assertKind(t, err, tc.expectKind)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Decision / Config / Performance Tests
// =============================================================================

func TestDecisionRepository_Create(t *testing.T) {
	ctx := context.Background()
	req := builder.NewBookingRequestBuilder().BuildWithStatus(booking.StatusPending)
	d := decision.New(decision.Params{
		RequestID:  req.ID(),
		MerchantID: req.MerchantID(),
		Action:     decision.ActionDecline,
		Score:      scoring.Score{Revenue: 20, Occupancy: 40, Relationship: 50, WeightedTotal: 32},
		Reasons:    []decision.ReasonCode{decision.ReasonBelowThreshold},
	}, builder.ReferenceNow)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDecisionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDecisionRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertBookingDecision(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ dbq.DBTX, row dbq.BookingDecision) error {
				assert.Equal(t, d.ID(), row.ID)
				assert.Equal(t, req.ID(), row.RequestID)
				assert.Equal(t, "decline", row.Action)
				return nil
			})

		assert.NoError(t, repo.Create(ctx, mockDB, d))
	})

	t.Run("error: unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDecisionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDecisionRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertBookingDecision(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

		assertKind(t, repo.Create(ctx, mockDB, d), infra.KindForeignKeyViolated)
	})
}

func TestConfigRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	cfg := builder.NewConfigBuilder().BuildDomain()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockConfigWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewConfigRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpsertBookingConfig(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ dbq.DBTX, row dbq.BookingConfig) error {
				assert.Equal(t, cfg.MerchantID(), row.MerchantID)
				assert.Equal(t, "semi_auto", row.AutomationLevel)
				return nil
			})

		assert.NoError(t, repo.Upsert(ctx, mockDB, cfg))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockConfigWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewConfigRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpsertBookingConfig(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		assertKind(t, repo.Upsert(ctx, mockDB, cfg), infra.KindDBFailure)
	})
}

func TestPerformanceRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	rec, err := builder.NewPerformanceBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPerformanceWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPerformanceRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpsertPerformanceRecord(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ dbq.DBTX, row dbq.PerformanceRecord) error {
				assert.Equal(t, rec.MerchantID(), row.MerchantID)
				assert.Equal(t, rec.Slot().String(), row.Slot)
				return nil
			})

		assert.NoError(t, repo.Upsert(ctx, mockDB, rec))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPerformanceWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPerformanceRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpsertPerformanceRecord(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		assertKind(t, repo.Upsert(ctx, mockDB, rec), infra.KindDBFailure)
	})
}
