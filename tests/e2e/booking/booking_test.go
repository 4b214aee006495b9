//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"group-booking-arbiter/internal/domain/schedule"
	"group-booking-arbiter/internal/handler/dto/request"
	"group-booking-arbiter/internal/handler/dto/response"
	"group-booking-arbiter/internal/pkg/ptr"
	"group-booking-arbiter/tests/common/authtest"
	"group-booking-arbiter/tests/common/builder"
	"group-booking-arbiter/tests/common/dbtest"
	"group-booking-arbiter/tests/common/httptest"
	"group-booking-arbiter/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingRequestsURL = "/api/merchants/%s/booking-requests"
	bookingRequestURL  = "/api/merchants/%s/booking-requests/%s"
	configURL          = "/api/merchants/%s/booking-config"
	performanceURL     = "/api/merchants/%s/performance"
	capacityURL        = "/api/merchants/%s/capacity?date=%s&slot=%s"
	analyticsURL       = "/api/merchants/%s/analytics?from=%s&to=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// serviceDate is two weeks ahead of the wall clock so requests never start out expired.
func serviceDate() schedule.Date {
	return schedule.DateOf(time.Now()).AddDays(14)
}

func (s *BookingSuite) createRequest(t *testing.T, merchantID uuid.UUID, token string, b *builder.BookingRequestBuilder) response.BookingRequestResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingRequestsURL, merchantID), b.BuildCreateRequestDTO(), token)
	var created response.BookingRequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEmpty(t, created.ID)
	return created
}

// =============================================================================
// TestProcess - automated evaluation through the HTTP surface
// =============================================================================

func (s *BookingSuite) TestProcess() {
	s.Run("Normal case: semi_auto merchant accepts a profitable group and holds its seats", func() {
		t := s.T()
		merchantID := uuid.New()
		dbtest.InsertBookingConfig(t, s.DB, merchantID, "semi_auto", 40)
		token := s.jwt.ServiceToken(t, merchantID)

		created := s.createRequest(t, merchantID, token, builder.NewBookingRequestBuilder().WithDate(serviceDate()))
		assert.Equal(t, "pending", created.Status)
		assert.Equal(t, 0, created.Version)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestURL, merchantID, created.ID)+"/process", nil, token)
		var result response.ProcessResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.NotNil(t, result.Decision)
		assert.Equal(t, "accept", result.Decision.Action)
		assert.False(t, result.Decision.Advisory)
		assert.Equal(t, "accepted", result.Request.Status)
		assert.Equal(t, "engine", result.Request.DecidedBy)

		status, version := dbtest.RequestStatus(t, s.DB, uuid.MustParse(created.ID))
		assert.Equal(t, "accepted", status)
		assert.Equal(t, 1, version)
		assert.Equal(t, 1, dbtest.CountDecisions(t, s.DB, uuid.MustParse(created.ID)))

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(capacityURL, merchantID, serviceDate(), "dinner"), nil, token)
		var snap response.CapacityResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &snap)
		assert.Equal(t, 40, snap.TotalCapacity)
		assert.Equal(t, 8, snap.ReservedByGroups)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingRequestURL, merchantID, created.ID), nil, token)
		var fetched response.BookingRequestResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &fetched)
		require.NotNil(t, fetched.LatestDecision)
		assert.Equal(t, result.Decision.ID, fetched.LatestDecision.ID)
	})

	s.Run("Normal case: manual merchant gets an advisory decision and the request stays pending", func() {
		t := s.T()
		merchantID := uuid.New()
		token := s.jwt.ServiceToken(t, merchantID)

		created := s.createRequest(t, merchantID, token, builder.NewBookingRequestBuilder().WithDate(serviceDate()))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestURL, merchantID, created.ID)+"/process", nil, token)
		var result response.ProcessResultResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		assert.True(t, result.Decision.Advisory)
		assert.Equal(t, "pending", result.Request.Status)

		status, _ := dbtest.RequestStatus(t, s.DB, uuid.MustParse(created.ID))
		assert.Equal(t, "pending", status)
	})

	s.Run("Error case: processing an already decided request", func() {
		t := s.T()
		merchantID := uuid.New()
		dbtest.InsertBookingConfig(t, s.DB, merchantID, "full_auto", 40)
		token := s.jwt.ServiceToken(t, merchantID)
		created := s.createRequest(t, merchantID, token, builder.NewBookingRequestBuilder().WithDate(serviceDate()))
		url := fmt.Sprintf(bookingRequestURL, merchantID, created.ID) + "/process"

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "")
		assert.Equal(t, 1, dbtest.CountDecisions(t, s.DB, uuid.MustParse(created.ID)))
	})

	s.Run("Error case: unknown request", func() {
		t := s.T()
		merchantID := uuid.New()
		token := s.jwt.ServiceToken(t, merchantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestURL, merchantID, uuid.New())+"/process", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestCreate - intake validation and authorization
// =============================================================================

func (s *BookingSuite) TestCreate() {
	s.Run("Error case: party size below one is rejected", func() {
		t := s.T()
		merchantID := uuid.New()
		body := builder.NewBookingRequestBuilder().WithDate(serviceDate()).WithPartySize(0).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestsURL, merchantID), body, s.jwt.ServiceToken(t, merchantID))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: requested date in the past", func() {
		t := s.T()
		merchantID := uuid.New()
		body := builder.NewBookingRequestBuilder().WithDate(schedule.DateOf(time.Now()).AddDays(-3)).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestsURL, merchantID), body, s.jwt.ServiceToken(t, merchantID))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: token scoped to another merchant", func() {
		t := s.T()
		merchantID := uuid.New()
		body := builder.NewBookingRequestBuilder().WithDate(serviceDate()).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestsURL, merchantID), body, s.jwt.ServiceToken(t, uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: missing token", func() {
		t := s.T()
		body := builder.NewBookingRequestBuilder().WithDate(serviceDate()).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestsURL, uuid.New()), body, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// TestUpdateStatus - manual resolution by managers
// =============================================================================

func (s *BookingSuite) TestUpdateStatus() {
	s.Run("Normal case: manager declines a pending request", func() {
		t := s.T()
		merchantID := uuid.New()
		created := s.createRequest(t, merchantID, s.jwt.ServiceToken(t, merchantID),
			builder.NewBookingRequestBuilder().WithDate(serviceDate()))
		url := fmt.Sprintf(bookingRequestURL, merchantID, created.ID) + "/status"
		token := s.jwt.ManagerToken(t, merchantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.UpdateBookingStatusRequest{Action: "decline", ExpectedVersion: ptr.Of(0)}, token)
		var updated response.BookingRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		assert.Equal(t, "declined", updated.Status)
		assert.Equal(t, 1, updated.Version)

		again := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			request.UpdateBookingStatusRequest{Action: "accept"}, token)
		httptest.AssertErrorResponse(t, again, http.StatusConflict, "")
	})

	s.Run("Normal case: counter then accept reserves the countered covers", func() {
		t := s.T()
		merchantID := uuid.New()
		dbtest.InsertBookingConfig(t, s.DB, merchantID, "manual", 40)
		created := s.createRequest(t, merchantID, s.jwt.ServiceToken(t, merchantID),
			builder.NewBookingRequestBuilder().WithDate(serviceDate()).WithPartySize(12))
		url := fmt.Sprintf(bookingRequestURL, merchantID, created.ID) + "/status"
		token := s.jwt.ManagerToken(t, merchantID)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.UpdateBookingStatusRequest{
			Action:       "counter",
			CounterOffer: &request.CounterOfferRequest{PartySize: ptr.Of(10), Message: "we can seat ten"},
		}, token)
		var countered response.BookingRequestResponse
		httptest.AssertSuccessResponse(t, cw, http.StatusOK, &countered)
		assert.Equal(t, "countered", countered.Status)
		require.NotNil(t, countered.CounterOffer)

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, url, request.UpdateBookingStatusRequest{Action: "accept"}, token)
		require.Equal(t, http.StatusOK, aw.Code, aw.Body.String())

		snapW := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(capacityURL, merchantID, serviceDate(), "dinner"), nil, token)
		var snap response.CapacityResponse
		httptest.AssertSuccessResponse(t, snapW, http.StatusOK, &snap)
		assert.Equal(t, 10, snap.ReservedByGroups)
	})

	s.Run("Error case: stale expected version", func() {
		t := s.T()
		merchantID := uuid.New()
		created := s.createRequest(t, merchantID, s.jwt.ServiceToken(t, merchantID),
			builder.NewBookingRequestBuilder().WithDate(serviceDate()))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestURL, merchantID, created.ID)+"/status",
			request.UpdateBookingStatusRequest{Action: "decline", ExpectedVersion: ptr.Of(3)}, s.jwt.ManagerToken(t, merchantID))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Error case: service principals cannot resolve requests", func() {
		t := s.T()
		merchantID := uuid.New()
		token := s.jwt.ServiceToken(t, merchantID)
		created := s.createRequest(t, merchantID, token, builder.NewBookingRequestBuilder().WithDate(serviceDate()))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestURL, merchantID, created.ID)+"/status",
			request.UpdateBookingStatusRequest{Action: "accept"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}

// =============================================================================
// TestList - listing with filters
// =============================================================================

func (s *BookingSuite) TestList() {
	s.Run("Normal case: filters by status", func() {
		t := s.T()
		merchantID := uuid.New()
		token := s.jwt.ServiceToken(t, merchantID)
		first := s.createRequest(t, merchantID, token, builder.NewBookingRequestBuilder().WithDate(serviceDate()))
		s.createRequest(t, merchantID, token, builder.NewBookingRequestBuilder().WithDate(serviceDate()).WithPartnerID("hotel-2"))

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(bookingRequestURL, merchantID, first.ID)+"/status",
			request.UpdateBookingStatusRequest{Action: "decline"}, s.jwt.ManagerToken(t, merchantID))
		require.Equal(t, http.StatusOK, dw.Code, dw.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(bookingRequestsURL, merchantID)+"?status=pending", nil, token)
		var list response.BookingRequestListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Equal(t, 1, list.Count)
		assert.Equal(t, "hotel-2", list.Items[0].PartnerID)
	})
}

// =============================================================================
// TestConfigAndPerformance - merchant settings and realized outcomes
// =============================================================================

func (s *BookingSuite) TestConfigAndPerformance() {
	s.Run("Normal case: config patch is visible on read", func() {
		t := s.T()
		merchantID := uuid.New()
		token := s.jwt.ManagerToken(t, merchantID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(configURL, merchantID),
			request.UpdateBookingConfigRequest{
				AutomationLevel: ptr.Of("full_auto"),
				SlotCapacity:    map[string]int{"lunch": 60},
			}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(configURL, merchantID), nil, token)
		var cfg response.BookingConfigResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &cfg)
		assert.Equal(t, "full_auto", cfg.AutomationLevel)
		assert.Equal(t, 60, cfg.SlotCapacity["lunch"])
	})

	s.Run("Error case: negative weight", func() {
		t := s.T()
		merchantID := uuid.New()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(configURL, merchantID),
			request.UpdateBookingConfigRequest{WeightRevenue: ptr.Of(-1.0)}, s.jwt.ManagerToken(t, merchantID))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Normal case: recorded performance feeds analytics", func() {
		t := s.T()
		merchantID := uuid.New()
		token := s.jwt.ManagerToken(t, merchantID)
		day := schedule.DateOf(time.Now()).AddDays(-7)

		body := builder.NewPerformanceBuilder().With(func(b *builder.PerformanceBuilder) { b.Date = day }).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(performanceURL, merchantID), body, token)
		var rec response.PerformanceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rec)
		assert.Equal(t, 30, rec.TotalCovers)
		assert.InDelta(t, 75, rec.OccupancyPercent, 1e-9)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(analyticsURL, merchantID, day.AddDays(-1), day.AddDays(1)), nil, token)
		var analytics response.AnalyticsResponse
		httptest.AssertSuccessResponse(t, aw, http.StatusOK, &analytics)
		assert.Equal(t, 0, analytics.TotalRequests)
	})
}
