package api

import (
	"errors"
	"net/http"

	"organic-storefront/internal/domain/inventory"
	resdto "organic-storefront/internal/handler/dto/response"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler serves the unauthenticated read surface: catalog,
// per-day inventory, active banners and payment methods.
type StorefrontHandler struct {
	catalogQueries   queries.CatalogQueries
	inventoryQueries queries.InventoryQueries
	bannerQueries    queries.BannerQueries
	paymentQueries   queries.PaymentMethodQueries
}

func NewStorefrontHandler(
	catalogQueries queries.CatalogQueries,
	inventoryQueries queries.InventoryQueries,
	bannerQueries queries.BannerQueries,
	paymentQueries queries.PaymentMethodQueries,
) *StorefrontHandler {
	return &StorefrontHandler{
		catalogQueries:   catalogQueries,
		inventoryQueries: inventoryQueries,
		bannerQueries:    bannerQueries,
		paymentQueries:   paymentQueries,
	}
}

// @Summary List catalog
// @Description List visible products
// @Tags storefront
// @Produce json
// @Success 200 {array} resdto.CatalogItemResponse
// @Router /catalog [get]
func (h *StorefrontHandler) ListCatalog(c *gin.Context) {
	items, err := h.catalogQueries.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogItems(items))
}

// @Summary Get inventory for a date
// @Description Per-product availability for a delivery date
// @Tags storefront
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/{date} [get]
func (h *StorefrontHandler) GetInventory(c *gin.Context) {
	day, err := inventory.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
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

// @Summary List active banners
// @Description Banners whose schedule covers the current time
// @Tags storefront
// @Produce json
// @Success 200 {array} resdto.BannerResponse
// @Router /banners [get]
func (h *StorefrontHandler) ListBanners(c *gin.Context) {
	banners, err := h.bannerQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBannerViews(banners))
}

// @Summary List payment methods
// @Description Active payment methods shown on the payment page
// @Tags storefront
// @Produce json
// @Success 200 {array} resdto.PaymentMethodResponse
// @Router /payment-methods [get]
func (h *StorefrontHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.paymentQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentMethodViews(methods))
}
