//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront/internal/handler/api"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/jwt"
	"storefront/internal/usecase/jobs"
	"storefront/tests/common/httptest"
	jobsmock "storefront/tests/mock/jobs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	jwtService  *jwt.Service
	mockCtrl    *gomock.Controller
	mockTrigger *jobsmock.MockSweepTrigger
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtService = jwt.NewService("test-secret", time.Hour)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTrigger = jobsmock.NewMockSweepTrigger(s.mockCtrl)
	handler := api.NewAdminHandler(s.mockTrigger)
	auth := middleware.NewAuthMiddleware(s.jwtService)

	s.router.POST("/admin/sweeps", auth.RequireAdmin(), handler.TriggerSweep)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) token(role string) string {
	token, err := s.jwtService.GenerateToken("ops@storefront.test", role)
	s.Require().NoError(err)
	return token
}

func (s *AdminHandlerTestSuite) TestTriggerSweep() {
	url := "/admin/sweeps"

	s.Run("success: 200 with report", func() {
		report := &jobs.SweepReport{
			StartedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Elapsed:         1500 * time.Millisecond,
			SessionsCleaned: 2,
			Scanned:         5,
			References:      3,
			Confirmed:       1,
			Released:        1,
			Deferred:        1,
			OrdersCreated:   1,
			UnitsReleased:   4,
			Stuck:           1,
		}
		s.mockTrigger.EXPECT().Trigger(gomock.Any()).Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token(jwt.RoleAdmin))

		var body resdto.SweepReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1500), body.ElapsedMs)
		s.Equal(2, body.SessionsCleaned)
		s.Equal(3, body.References)
		s.Equal(1, body.OrdersCreated)
		s.Equal(4, body.UnitsReleased)
		s.Equal(1, body.Stuck)
	})

	s.Run("error: 409 while another sweep runs", func() {
		s.mockTrigger.EXPECT().Trigger(gomock.Any()).Return(nil, jobs.ErrSweepInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token(jwt.RoleAdmin))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Sweep already in progress")
	})

	s.Run("error: 500 when the sweep fails", func() {
		s.mockTrigger.EXPECT().Trigger(gomock.Any()).Return(nil, errors.New("ledger unavailable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token(jwt.RoleAdmin))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	authCases := []struct {
		name       string
		token      func() string
		expectCode int
		expectMsg  string
	}{
		{name: "missing token", token: func() string { return "" }, expectCode: http.StatusUnauthorized, expectMsg: "Access token required"},
		{name: "garbage token", token: func() string { return "not.a.jwt" }, expectCode: http.StatusUnauthorized, expectMsg: "Invalid or expired token"},
		{
			name: "token signed with another secret",
			token: func() string {
				other, err := jwt.NewService("other-secret", time.Hour).GenerateToken("x", jwt.RoleAdmin)
				s.Require().NoError(err)
				return other
			},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
		{name: "non-admin role", token: func() string { return s.token("viewer") }, expectCode: http.StatusForbidden, expectMsg: "Insufficient permissions"},
	}
	for _, tc := range authCases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, tc.token())
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}
