package request

import "github.com/google/uuid"

type ProductRequest struct {
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	PriceCents  int64      `json:"priceCents" binding:"required"`
	Unit        string     `json:"unit"`
	Visible     bool       `json:"visible"`
}
