package response

import (
	"time"

	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	Reference string    `json:"reference"`
	ExpiresAt time.Time `json:"expiresAt"`
	QuoteResponse
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Reference:     r.Reference.String(),
		ExpiresAt:     r.ExpiresAt,
		QuoteResponse: fromQuote(r.Currency, r.Quote),
	}
}

type OutOfStockDetail struct {
	SKUID     uuid.UUID `json:"skuId"`
	Requested int       `json:"requested"`
	Available int       `json:"available"`
}

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	SKUID     uuid.UUID `json:"skuId"`
	SKUCode   string    `json:"skuCode"`
	SKUName   string    `json:"skuName"`
	Reference string    `json:"reference"`
	Quantity  int       `json:"quantity"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromReservationViews(views []*queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, len(views))
	for i, v := range views {
		out[i] = ReservationResponse{
			ID:        v.ID,
			SKUID:     v.SKUID,
			SKUCode:   v.SKUCode,
			SKUName:   v.SKUName,
			Reference: v.Reference,
			Quantity:  v.Quantity,
			ExpiresAt: v.ExpiresAt,
		}
	}
	return out
}
