package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type OrderView struct {
	ID            uuid.UUID  `json:"id"`
	ProductID     uuid.UUID  `json:"product_id"`
	ProductName   string     `json:"product_name"`
	Day           string     `json:"day"`
	Status        string     `json:"status"`
	PriceCents    int64      `json:"price_cents"`
	ReceiptURL    *string    `json:"receipt_url,omitempty"`
	CancelReason  *string    `json:"cancel_reason,omitempty"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Note          *string    `json:"note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

type OrderListItem struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Day          string    `json:"day"`
	Status       string    `json:"status"`
	PriceCents   int64     `json:"price_cents"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type InventoryEntryView struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Available   int       `json:"available"`
	Sold        int       `json:"sold"`
	PriceCents  int64     `json:"price_cents"`
}

type BannerView struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"image_url"`
	LinkURL   string     `json:"link_url"`
	SortOrder int        `json:"sort_order"`
	Active    bool       `json:"active"`
	StartAt   *time.Time `json:"start_at,omitempty"`
	EndAt     *time.Time `json:"end_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CatalogItem struct {
	ID           uuid.UUID  `json:"id"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName *string    `json:"category_name,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	PriceCents   int64      `json:"price_cents"`
	Unit         string     `json:"unit"`
	Visible      bool       `json:"visible"`
}

type PaymentMethodView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AccountName string    `json:"account_name"`
	Number      string    `json:"number"`
	QRURL       string    `json:"qr_url"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuditEntryView struct {
	ID         int64     `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityKind string    `json:"entity_kind"`
	EntityID   string    `json:"entity_id"`
	Detail     []byte    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
