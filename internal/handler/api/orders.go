package api

import (
	"errors"
	"net/http"

	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/domain/order"
	reqdto "organic-storefront/internal/handler/dto/request"
	resdto "organic-storefront/internal/handler/dto/response"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Reserve an order
// @Description Reserve one unit of a product for a delivery day
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.ReserveOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	day, err := inventory.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	result, err := h.orderCommands.Reserve(c.Request.Context(), commands.ReserveOrderRequest{
		ProductID:     req.ProductID,
		Day:           day,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Note:          req.TrimmedNote(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOutOfStock):
			// The storefront renders this as a sold-out state, not an error.
			c.JSON(http.StatusConflict, gin.H{"error": "Sold out"})
		case errors.Is(err, errs.ErrLedgerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No inventory published for this date"})
		case errors.Is(err, errs.ErrProductNotFound), errors.Is(err, commands.ErrProductNotPurchasable):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
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

// @Summary Submit payment receipt
// @Description Attach a payment receipt and move the order to pending verification
// @Tags orders
// @Accept json
// @Param id path string true "Order ID"
// @Param request body reqdto.SubmitReceiptRequest true "Receipt"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/receipt [post]
func (h *OrderHandler) SubmitReceipt(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Receipt URL is required"})
		return
	}

	if err := h.orderCommands.SubmitReceipt(c.Request.Context(), id, req.ReceiptURL); err != nil {
		respondOrderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel order
// @Description Cancel a reserved or pending order, releasing its stock unit
// @Tags orders
// @Accept json
// @Param id path string true "Order ID"
// @Param request body reqdto.CancelOrderRequest false "Cancellation reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req reqdto.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	reason, ok := req.CancelReason()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cancellation reason"})
		return
	}

	if err := h.orderCommands.Cancel(c.Request.Context(), id, reason); err != nil {
		respondOrderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseOrderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, order.ErrAlreadyFinalized):
		c.JSON(http.StatusConflict, gin.H{"error": "Order is already finalized"})
	case errors.Is(err, order.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Order is not in a state that allows this action"})
	case errors.Is(err, order.ErrReceiptRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Receipt URL is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
