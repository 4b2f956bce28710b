//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/pricing"
	"storefront/internal/handler/api"
	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
	"storefront/tests/common/httptest"
	"storefront/tests/common/testutil"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	cfg          config.Config
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cfg = config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries, s.cfg)

	s.router.POST("/sessions", s.handler.StartSession)
	shopper := s.router.Group("", middleware.SessionToken(s.cfg.Session))
	shopper.GET("/cart", s.handler.GetCart)
	shopper.PUT("/cart/items/:skuId", s.handler.SetItem)
	shopper.DELETE("/cart/items/:skuId", s.handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) sessionCookie(token string) []*http.Cookie {
	return []*http.Cookie{{Name: s.cfg.Session.CookieName, Value: token}}
}

func (s *CartHandlerTestSuite) TestStartSession() {
	expiresAt := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	s.Run("success: 201 with session cookie", func() {
		s.mockCommands.EXPECT().StartSession(gomock.Any()).
			Return(&commands.SessionResult{Token: "tok-123", ExpiresAt: expiresAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sessions", nil, "")

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(expiresAt.Equal(body.ExpiresAt))

		c := httptest.ExtractCookie(rec, s.cfg.Session.CookieName)
		s.Require().NotNil(c)
		s.Equal("tok-123", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 500 when the session cannot be stored", func() {
		s.mockCommands.EXPECT().StartSession(gomock.Any()).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sessions", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CartHandlerTestSuite) TestGetCart() {
	skuID := uuid.New()
	view := &queries.CartView{
		Items: []*queries.CartItemView{
			{SKUID: skuID, SKUCode: "TEE-M", SKUName: "Tee", UnitPrice: decimal.RequireFromString("1500"), Quantity: 2},
		},
		Currency: "NGN",
		Quote: pricing.Quote{
			Subtotal: decimal.RequireFromString("3000"),
			Tax:      decimal.RequireFromString("225"),
			Shipping: decimal.Zero,
			Total:    decimal.RequireFromString("3225"),
		},
	}

	s.Run("success: token from cookie", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "tok-1").Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/cart", nil, s.sessionCookie("tok-1"), "")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(skuID, body.Items[0].SKUID)
		s.Equal("1500.00", body.Items[0].UnitPrice)
		s.Equal("3225.00", body.Total)
		s.Equal("NGN", body.Currency)
	})

	s.Run("error: 404 without a session", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "").Return(nil, shared.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Session not found")
	})
}

func (s *CartHandlerTestSuite) TestSetItem() {
	skuID := uuid.New()
	url := "/cart/items/" + skuID.String()

	reqBody := reqdto.SetCartItemRequest{Quantity: 3}

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().SetItem(gomock.Any(), "tok-1", skuID, 3).Return(nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPut, url,
			reqBody, s.sessionCookie("tok-1"), "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "quantity zero", mutate: testutil.Field("quantity", 0)},
		{name: "quantity negative", mutate: testutil.Field("quantity", -1)},
		{name: "quantity above limit", mutate: testutil.Field("quantity", 1001)},
		{name: "quantity missing", mutate: testutil.Field("quantity", nil)},
		{name: "quantity not a number", mutate: testutil.Field("quantity", "two")},
	}
	for _, tc := range validation {
		s.Run("error: 400 "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPut, url,
				requestMap, s.sessionCookie("tok-1"), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		})
	}

	s.Run("error: 400 malformed sku id", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPut, "/cart/items/not-a-uuid",
			map[string]any{"quantity": 1}, s.sessionCookie("tok-1"), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid SKU ID format")
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "unknown sku", err: commands.ErrSKUNotFound, expectCode: http.StatusNotFound, expectMsg: "SKU not found"},
		{name: "expired session", err: shared.ErrSessionNotFound, expectCode: http.StatusNotFound, expectMsg: "Session not found"},
		{name: "storage failure", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().SetItem(gomock.Any(), "tok-1", skuID, 2).Return(tc.err).Times(1)

			rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPut, url,
				map[string]any{"quantity": 2}, s.sessionCookie("tok-1"), "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	skuID := uuid.New()
	url := "/cart/items/" + skuID.String()

	s.Run("success: 204 with header token", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), "tok-h", skuID).Return(nil).Times(1)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodDelete, url, nil,
			map[string]string{middleware.SessionTokenHeader: "tok-h"})
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("error: 404 item not in cart", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), "tok-1", skuID).Return(commands.ErrCartItemNotFound).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, url, nil, s.sessionCookie("tok-1"), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})
}
