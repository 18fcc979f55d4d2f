package response

import (
	"time"

	"organic-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CatalogItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	CategoryID   *uuid.UUID `json:"categoryId,omitempty"`
	CategoryName *string    `json:"categoryName,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	PriceCents   int64      `json:"priceCents"`
	Unit         string     `json:"unit"`
	Visible      bool       `json:"visible"`
}

type InventoryEntryResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Available   int       `json:"available"`
	Sold        int       `json:"sold"`
	PriceCents  int64     `json:"priceCents"`
}

type InventoryResponse struct {
	Date    string                    `json:"date"`
	Entries []*InventoryEntryResponse `json:"entries"`
}

type PaymentMethodResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	AccountName string    `json:"accountName"`
	Number      string    `json:"number"`
	QRURL       string    `json:"qrUrl"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromCatalogItems(items []*queries.CatalogItem) []*CatalogItemResponse {
	out := make([]*CatalogItemResponse, len(items))
	for i, item := range items {
		var resp CatalogItemResponse
		_ = copier.Copy(&resp, item)
		out[i] = &resp
	}
	return out
}

func FromInventoryEntries(date string, entries []*queries.InventoryEntryView) *InventoryResponse {
	resp := &InventoryResponse{Date: date, Entries: make([]*InventoryEntryResponse, len(entries))}
	for i, entry := range entries {
		var e InventoryEntryResponse
		_ = copier.Copy(&e, entry)
		resp.Entries[i] = &e
	}
	return resp
}

func FromPaymentMethodViews(views []*queries.PaymentMethodView) []*PaymentMethodResponse {
	out := make([]*PaymentMethodResponse, len(views))
	for i, view := range views {
		var resp PaymentMethodResponse
		_ = copier.Copy(&resp, view)
		out[i] = &resp
	}
	return out
}
