package api

import (
	"errors"
	"net/http"

	"organic-storefront/internal/domain/inventory"
	reqdto "organic-storefront/internal/handler/dto/request"
	resdto "organic-storefront/internal/handler/dto/response"
	"organic-storefront/internal/handler/middleware"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminInventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewAdminInventoryHandler(
	inventoryCommands commands.InventoryCommands,
	inventoryQueries queries.InventoryQueries,
) *AdminInventoryHandler {
	return &AdminInventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary Get day ledger
// @Description Full per-product ledger for a delivery date, including sold counters
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inventory/{date} [get]
func (h *AdminInventoryHandler) GetLedger(c *gin.Context) {
	day, ok := parseDayParam(c)
	if !ok {
		return
	}

	entries, err := h.inventoryQueries.GetByDay(c.Request.Context(), day)
	if err != nil {
		if errors.Is(err, errs.ErrLedgerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No inventory for this date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryEntries(day.String(), entries))
}

// @Summary Save day ledger
// @Description Replace the stock plan for a delivery date; sold counters are preserved
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body reqdto.SaveInventoryRequest true "Ledger entries"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/inventory/{date} [put]
func (h *AdminInventoryHandler) SaveLedger(c *gin.Context) {
	day, ok := parseDayParam(c)
	if !ok {
		return
	}

	var req reqdto.SaveInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entries := make([]commands.SaveLedgerEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, commands.SaveLedgerEntry{
			ProductID:  e.ProductID,
			Available:  e.Available,
			PriceCents: e.PriceCents,
		})
	}

	err := h.inventoryCommands.SaveLedger(c.Request.Context(), commands.SaveLedgerRequest{
		Day:     day,
		Entries: entries,
	}, middleware.GetAdminSubject(c))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNegativeAvailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Available stock cannot be negative"})
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func parseDayParam(c *gin.Context) (inventory.Day, bool) {
	day, err := inventory.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return inventory.Day{}, false
	}
	return day, true
}
