package api

import (
	"errors"
	"net/http"
	"strconv"

	"organic-storefront/internal/domain/catalog"
	"organic-storefront/internal/domain/payment"
	reqdto "organic-storefront/internal/handler/dto/request"
	resdto "organic-storefront/internal/handler/dto/response"
	"organic-storefront/internal/handler/middleware"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminSettingsHandler covers the shop-configuration surface: the product
// catalog, payment methods and the audit trail.
type AdminSettingsHandler struct {
	catalogCommands  commands.CatalogCommands
	settingsCommands commands.SettingsCommands
	catalogQueries   queries.CatalogQueries
	paymentQueries   queries.PaymentMethodQueries
	auditQueries     queries.AuditQueries
}

func NewAdminSettingsHandler(
	catalogCommands commands.CatalogCommands,
	settingsCommands commands.SettingsCommands,
	catalogQueries queries.CatalogQueries,
	paymentQueries queries.PaymentMethodQueries,
	auditQueries queries.AuditQueries,
) *AdminSettingsHandler {
	return &AdminSettingsHandler{
		catalogCommands:  catalogCommands,
		settingsCommands: settingsCommands,
		catalogQueries:   catalogQueries,
		paymentQueries:   paymentQueries,
		auditQueries:     auditQueries,
	}
}

// @Summary List all products
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CatalogItemResponse
// @Router /admin/products [get]
func (h *AdminSettingsHandler) ListProducts(c *gin.Context) {
	items, err := h.catalogQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogItems(items))
}

// @Summary Create product
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/products [post]
func (h *AdminSettingsHandler) CreateProduct(c *gin.Context) {
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	id, err := h.catalogCommands.CreateProduct(c.Request.Context(), req, middleware.GetAdminSubject(c))
	if err != nil {
		respondProductError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update product
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [put]
func (h *AdminSettingsHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}
	req, ok := bindProductRequest(c)
	if !ok {
		return
	}

	if err := h.catalogCommands.UpdateProduct(c.Request.Context(), id, req, middleware.GetAdminSubject(c)); err != nil {
		respondProductError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List payment methods
// @Description All payment methods, including inactive ones
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.PaymentMethodResponse
// @Router /admin/payment-methods [get]
func (h *AdminSettingsHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.paymentQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentMethodViews(methods))
}

// @Summary Add payment method
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentMethodRequest true "Payment method"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/payment-methods [post]
func (h *AdminSettingsHandler) AddPaymentMethod(c *gin.Context) {
	var req reqdto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.settingsCommands.AddPaymentMethod(c.Request.Context(), commands.PaymentMethodRequest{
		Name:        req.Name,
		AccountName: req.AccountName,
		Number:      req.Number,
		QRURL:       req.QRURL,
		Active:      req.Active,
	}, middleware.GetAdminSubject(c))
	if err != nil {
		if errors.Is(err, payment.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Remove payment method
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/payment-methods/{id} [delete]
func (h *AdminSettingsHandler) RemovePaymentMethod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method ID format"})
		return
	}

	if err := h.settingsCommands.RemovePaymentMethod(c.Request.Context(), id, middleware.GetAdminSubject(c)); err != nil {
		if errors.Is(err, errs.ErrPaymentMethodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List audit log
// @Description Recent admin and scheduler actions, newest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {array} resdto.AuditEntryResponse
// @Router /admin/audit [get]
func (h *AdminSettingsHandler) ListAudit(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.auditQueries.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditViews(entries))
}

func bindProductRequest(c *gin.Context) (commands.ProductRequest, bool) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return commands.ProductRequest{}, false
	}
	return commands.ProductRequest{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PriceCents:  req.PriceCents,
		Unit:        req.Unit,
		Visible:     req.Visible,
	}, true
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, catalog.ErrEmptyName), errors.Is(err, catalog.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
