//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"group-booking-arbiter/internal/domain/performance"
	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/handler/api"
	resdto "group-booking-arbiter/internal/handler/dto/response"
	"group-booking-arbiter/internal/pkg/config"
	"group-booking-arbiter/internal/pkg/errs"
	"group-booking-arbiter/internal/usecase/commands"
	"group-booking-arbiter/internal/usecase/queries"
	"group-booking-arbiter/tests/common/authtest"
	"group-booking-arbiter/tests/common/builder"
	"group-booking-arbiter/tests/common/httptest"
	"group-booking-arbiter/tests/common/testutil"
	commandsmock "group-booking-arbiter/tests/mock/commands"
	queriesmock "group-booking-arbiter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PerformanceHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockPerformanceCommands
	mockAnalytics *queriesmock.MockAnalyticsQueries
	mockCapacity  *queriesmock.MockCapacityQueries
	tokens        *authtest.JWTHelper
	merchantID    uuid.UUID
	base          string
}

func (s *PerformanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.tokens = authtest.NewJWTHelper(cfg.JWT)
	s.merchantID = uuid.New()
	s.base = "/api/merchants/" + s.merchantID.String()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPerformanceCommands(s.mockCtrl)
	s.mockAnalytics = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	s.mockCapacity = queriesmock.NewMockCapacityQueries(s.mockCtrl)
	handler := api.NewPerformanceHandler(s.mockCommands, s.mockAnalytics, s.mockCapacity)

	auth := newAuthMiddleware(cfg.JWT)
	g := s.router.Group("/api/merchants/:merchantId", auth.RequireAuth(), auth.RequireMerchant())
	g.PUT("/performance", handler.Record)
	g.GET("/analytics", handler.Analytics)
	g.GET("/capacity", handler.Capacity)
}

func (s *PerformanceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPerformanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PerformanceHandlerTestSuite))
}

// ================================================================================
// TestRecord
// ================================================================================

func (s *PerformanceHandlerTestSuite) TestRecord() {
	url := s.base + "/performance"
	token := s.tokens.ServiceToken(s.T(), s.merchantID)
	b := builder.NewPerformanceBuilder().With(func(p *builder.PerformanceBuilder) { p.MerchantID = s.merchantID })
	reqBody := b.BuildRequestDTO()
	record, err := b.BuildDomain()
	s.Require().NoError(err)
	view := queries.NewPerformanceView(record)

	validation := []testCaseBooking{
		{name: "total_capacity invalid (0)", mutate: testutil.Set("total_capacity", 0), expectCode: http.StatusBadRequest},
		{name: "walkin_covers invalid (-1)", mutate: testutil.Set("walkin_covers", -1), expectCode: http.StatusBadRequest},
		{name: "group_revenue invalid (-1)", mutate: testutil.Set("group_revenue", -1), expectCode: http.StatusBadRequest},
		{name: "slot unknown", mutate: testutil.Set("slot", "supper"), expectCode: http.StatusBadRequest},
		{name: "date malformed", mutate: testutil.Set("date", "yesterday"), expectCode: http.StatusBadRequest},
		{name: "weather too long", mutate: testutil.Set("weather_conditions", strings.Repeat("w", 101)), expectCode: http.StatusBadRequest},
		{name: "missing field: date (required)", mutate: testutil.Drop("date"), expectCode: http.StatusBadRequest},
		{name: "zero covers are a valid report", mutate: func(m map[string]any) {
			m["group_covers"] = 0
			m["walkin_covers"] = 0
			m["group_revenue"] = 0
			m["walkin_revenue"] = 0
		}, expectCode: http.StatusOK},
	}

	s.Run("success: returns 200 OK with derived metrics", func() {
		s.mockCommands.EXPECT().RecordBookingPerformance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p performance.RecordParams) (*queries.PerformanceView, error) {
				s.Equal(s.merchantID, p.MerchantID)
				s.Equal(b.Date, p.Date)
				s.Equal(schedule.SlotDinner, p.Slot)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, token)

		var body resdto.PerformanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(30, body.TotalCovers)
		s.InDelta(75.0, body.OccupancyPercent, 0.001)
		s.InDelta(40.0, body.AvgGroupSpend, 0.001)
		s.InDelta(25.0, body.AvgWalkinSpend, 0.001)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.Payload(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().RecordBookingPerformance(gomock.Any(), gomock.Any()).
						Return(view, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, token)
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: domain rejection maps to 400", func() {
		s.mockCommands.EXPECT().RecordBookingPerformance(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(performance.ErrNegativeCovers, commands.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
		httptest.AssertErrorDetail(s.T(), rec, performance.ErrNegativeCovers.Error())
	})
}

// ================================================================================
// TestAnalytics
// ================================================================================

func (s *PerformanceHandlerTestSuite) TestAnalytics() {
	token := s.tokens.ManagerToken(s.T(), s.merchantID)
	ratio := 0.9
	view := &queries.AnalyticsView{
		MerchantID:        s.merchantID,
		Period:            queries.PeriodView{From: "2026-02-01", To: "2026-02-28"},
		TotalRequests:     4,
		Accepted:          2,
		Declined:          1,
		Pending:           1,
		AcceptanceRate:    0.5,
		TotalGroupRevenue: 640,
		PopularSlots:      map[string]int{"dinner": 3, "lunch": 1},
		TopPartners: []queries.PartnerRevenueView{
			{PartnerID: "tour-7", PartnerType: "tour_operator", BookingsCount: 2, TotalRevenue: 640},
		},
		Forecast: queries.ForecastAccuracyView{SlotsCompared: 2, RealizedWalkinRevenue: 900, ForecastWalkinRevenue: 1000, Delta: -100, Ratio: &ratio},
	}

	s.Run("success: returns 200 OK with a flat period", func() {
		s.mockAnalytics.EXPECT().GetBookingAnalytics(gomock.Any(), s.merchantID, schedule.NewDate(2026, 2, 1), schedule.NewDate(2026, 2, 28)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/analytics?from=2026-02-01&to=2026-02-28", nil, token)

		var body resdto.AnalyticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-02-01", body.From)
		s.Equal("2026-02-28", body.To)
		s.Equal(4, body.TotalRequests)
		s.Require().Len(body.TopPartners, 1)
		s.Equal("tour-7", body.TopPartners[0].PartnerID)
		s.Require().NotNil(body.Forecast.Ratio)
		s.InDelta(0.9, *body.Forecast.Ratio, 0.0001)
		s.Equal(2, body.Forecast.SlotsCompared)
	})

	s.Run("error: 400 when a bound is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/analytics?from=2026-02-01", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 when the range is rejected", func() {
		s.mockAnalytics.EXPECT().GetBookingAnalytics(gomock.Any(), s.merchantID, gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("from and to must form a valid range"), queries.ErrInvalidFilter)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/analytics?from=2026-03-01&to=2026-02-01", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

// ================================================================================
// TestCapacity
// ================================================================================

func (s *PerformanceHandlerTestSuite) TestCapacity() {
	token := s.tokens.ServiceToken(s.T(), s.merchantID)
	date := schedule.NewDate(2026, 3, 16)

	s.Run("success: returns the slot snapshot", func() {
		s.mockCapacity.EXPECT().GetCapacitySnapshot(gomock.Any(), s.merchantID, date, schedule.SlotLunch).
			Return(&queries.CapacityView{
				MerchantID:               s.merchantID,
				Date:                     date.String(),
				Slot:                     "lunch",
				TotalCapacity:            40,
				ReservedByGroups:         12,
				ReservedByWalkinForecast: 10,
				Free:                     18,
				Version:                  3,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/capacity?date=2026-03-16&slot=lunch", nil, token)

		var body resdto.CapacityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(18, body.Free)
		s.Equal(int64(3), body.Version)
	})

	s.Run("error: 400 for an unknown slot", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/capacity?date=2026-03-16&slot=tea", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 404 when the slot has no capacity", func() {
		s.mockCapacity.EXPECT().GetCapacitySnapshot(gomock.Any(), s.merchantID, date, schedule.SlotBreakfast).
			Return(nil, queries.ErrSlotNotConfigured).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"/capacity?date=2026-03-16&slot=breakfast", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot has no configured capacity")
	})
}
