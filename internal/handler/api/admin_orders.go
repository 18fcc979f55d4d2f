package api

import (
	"net/http"
	"strconv"

	resdto "organic-storefront/internal/handler/dto/response"
	"organic-storefront/internal/handler/middleware"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminOrderHandler struct {
	orderCommands   commands.OrderCommands
	sweeperCommands commands.SweeperCommands
	orderQueries    queries.OrderQueries
}

func NewAdminOrderHandler(
	orderCommands commands.OrderCommands,
	sweeperCommands commands.SweeperCommands,
	orderQueries queries.OrderQueries,
) *AdminOrderHandler {
	return &AdminOrderHandler{
		orderCommands:   orderCommands,
		sweeperCommands: sweeperCommands,
		orderQueries:    orderQueries,
	}
}

// @Summary List orders
// @Description List orders, newest first, optionally filtered by status
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Order status filter"
// @Param limit query int false "Max rows (default 200)"
// @Success 200 {array} resdto.OrderListResponse
// @Router /admin/orders [get]
func (h *AdminOrderHandler) ListOrders(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	items, err := h.orderQueries.List(c.Request.Context(), status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderListItems(items))
}

// @Summary Get order
// @Description Get full order details by ID
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [get]
func (h *AdminOrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Verify payment
// @Description Confirm a submitted receipt and mark the order paid
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{id}/verify [post]
func (h *AdminOrderHandler) VerifyOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.orderCommands.Verify(c.Request.Context(), id, middleware.GetAdminSubject(c)); err != nil {
		respondOrderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject payment
// @Description Reject a submitted receipt, cancelling the order and releasing its stock
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/orders/{id}/reject [post]
func (h *AdminOrderHandler) RejectOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.orderCommands.Reject(c.Request.Context(), id, middleware.GetAdminSubject(c)); err != nil {
		respondOrderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Release expired holds
// @Description Run the expiry sweep immediately instead of waiting for the scheduler
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SweepResponse
// @Router /admin/orders/release-expired [post]
func (h *AdminOrderHandler) ReleaseExpired(c *gin.Context) {
	result, err := h.sweeperCommands.ReleaseExpired(c.Request.Context(), middleware.GetAdminSubject(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}
