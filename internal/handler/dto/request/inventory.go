package request

import "github.com/google/uuid"

type SaveInventoryEntry struct {
	ProductID  uuid.UUID `json:"productId" binding:"required"`
	Available  int       `json:"available"`
	PriceCents int64     `json:"priceCents" binding:"required"`
}

type SaveInventoryRequest struct {
	Entries []SaveInventoryEntry `json:"entries" binding:"required"`
}
