package response

import (
	"time"

	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReserveOrderResponse struct {
	OrderID    uuid.UUID `json:"orderId"`
	PriceCents int64     `json:"priceCents"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type OrderResponse struct {
	ID            uuid.UUID  `json:"id"`
	ProductID     uuid.UUID  `json:"productId"`
	ProductName   string     `json:"productName"`
	Day           string     `json:"date"`
	Status        string     `json:"status"`
	PriceCents    int64      `json:"priceCents"`
	ReceiptURL    *string    `json:"receiptUrl,omitempty"`
	CancelReason  *string    `json:"cancelReason,omitempty"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	Note          *string    `json:"note,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}

type OrderListResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	Day          string    `json:"date"`
	Status       string    `json:"status"`
	PriceCents   int64     `json:"priceCents"`
	CustomerName string    `json:"customerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SweepResponse struct {
	Scanned  int `json:"scanned"`
	Released int `json:"released"`
	Failed   int `json:"failed"`
}

func FromReserveResult(result *commands.ReserveOrderResult) *ReserveOrderResponse {
	return &ReserveOrderResponse{
		OrderID:    result.OrderID,
		PriceCents: result.PriceCents,
		ExpiresAt:  result.ExpiresAt,
	}
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOrderListItems(items []*queries.OrderListItem) []*OrderListResponse {
	out := make([]*OrderListResponse, len(items))
	for i, item := range items {
		var resp OrderListResponse
		_ = copier.Copy(&resp, item)
		out[i] = &resp
	}
	return out
}

func FromSweepResult(result *commands.SweepResult) *SweepResponse {
	return &SweepResponse{
		Scanned:  result.Scanned,
		Released: result.Released,
		Failed:   result.Failed,
	}
}
