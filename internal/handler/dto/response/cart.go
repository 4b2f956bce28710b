package response

import (
	"time"

	"storefront/internal/domain/pricing"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromSessionResult(r *commands.SessionResult) *SessionResponse {
	return &SessionResponse{ExpiresAt: r.ExpiresAt}
}

// QuoteResponse carries amounts as fixed two-decimal strings.
type QuoteResponse struct {
	Currency string `json:"currency"`
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

func fromQuote(currency string, q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		Currency: currency,
		Subtotal: q.Subtotal.StringFixed(2),
		Tax:      q.Tax.StringFixed(2),
		Shipping: q.Shipping.StringFixed(2),
		Total:    q.Total.StringFixed(2),
	}
}

type CartItemResponse struct {
	SKUID     uuid.UUID `json:"skuId"`
	SKUCode   string    `json:"skuCode"`
	SKUName   string    `json:"skuName"`
	UnitPrice string    `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ExpiresAt time.Time          `json:"expiresAt"`
	QuoteResponse
}

func FromCartView(v *queries.CartView) *CartResponse {
	items := make([]CartItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = CartItemResponse{
			SKUID:     item.SKUID,
			SKUCode:   item.SKUCode,
			SKUName:   item.SKUName,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Quantity:  item.Quantity,
		}
	}
	return &CartResponse{
		Items:         items,
		ExpiresAt:     v.ExpiresAt,
		QuoteResponse: fromQuote(v.Currency, v.Quote),
	}
}
