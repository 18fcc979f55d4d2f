//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"organic-storefront/internal/domain/order"
	"organic-storefront/internal/handler/api"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// stubOrderCommands implements commands.OrderCommands with overridable funcs.
type stubOrderCommands struct {
	reserve       func(ctx context.Context, req commands.ReserveOrderRequest) (*commands.ReserveOrderResult, error)
	submitReceipt func(ctx context.Context, orderID uuid.UUID, receiptURL string) error
	cancel        func(ctx context.Context, orderID uuid.UUID, reason order.CancelReason) error
	verify        func(ctx context.Context, orderID uuid.UUID, actor string) error
	reject        func(ctx context.Context, orderID uuid.UUID, actor string) error
}

func (s *stubOrderCommands) Reserve(ctx context.Context, req commands.ReserveOrderRequest) (*commands.ReserveOrderResult, error) {
	return s.reserve(ctx, req)
}

func (s *stubOrderCommands) SubmitReceipt(ctx context.Context, orderID uuid.UUID, receiptURL string) error {
	return s.submitReceipt(ctx, orderID, receiptURL)
}

func (s *stubOrderCommands) Cancel(ctx context.Context, orderID uuid.UUID, reason order.CancelReason) error {
	return s.cancel(ctx, orderID, reason)
}

func (s *stubOrderCommands) Verify(ctx context.Context, orderID uuid.UUID, actor string) error {
	return s.verify(ctx, orderID, actor)
}

func (s *stubOrderCommands) Reject(ctx context.Context, orderID uuid.UUID, actor string) error {
	return s.reject(ctx, orderID, actor)
}

type stubOrderQueries struct {
	getByID func(ctx context.Context, id uuid.UUID) (*queries.OrderView, error)
	list    func(ctx context.Context, status *string, limit int) ([]*queries.OrderListItem, error)
}

func (s *stubOrderQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	return s.getByID(ctx, id)
}

func (s *stubOrderQueries) List(ctx context.Context, status *string, limit int) ([]*queries.OrderListItem, error) {
	return s.list(ctx, status, limit)
}

type OrderHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubOrderCommands
	queries  *stubOrderQueries
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.commands = &stubOrderCommands{}
	s.queries = &stubOrderQueries{}
	handler := api.NewOrderHandler(s.commands, s.queries)

	s.router.POST("/orders", handler.CreateOrder)
	s.router.GET("/orders/:id", handler.GetOrder)
	s.router.POST("/orders/:id/receipt", handler.SubmitReceipt)
	s.router.POST("/orders/:id/cancel", handler.CancelOrder)
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validCreateBody() map[string]any {
	return map[string]any{
		"productId":     uuid.New().String(),
		"date":          "2026-08-29",
		"customerName":  "Ada",
		"customerPhone": "555-0100",
	}
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	s.Run("success: 201 with order id and expiry", func() {
		orderID := uuid.New()
		s.commands.reserve = func(_ context.Context, req commands.ReserveOrderRequest) (*commands.ReserveOrderResult, error) {
			s.Equal("2026-08-29", req.Day.String())
			return &commands.ReserveOrderResult{OrderID: orderID, PriceCents: 4500}, nil
		}

		rec := s.perform(http.MethodPost, "/orders", validCreateBody())

		s.Equal(http.StatusCreated, rec.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(orderID.String(), body["orderId"])
	})

	s.Run("error: 400 on malformed date", func() {
		body := validCreateBody()
		body["date"] = "29/08/2026"
		rec := s.perform(http.MethodPost, "/orders", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on missing customer name", func() {
		body := validCreateBody()
		delete(body, "customerName")
		rec := s.perform(http.MethodPost, "/orders", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 when sold out", func() {
		s.commands.reserve = func(context.Context, commands.ReserveOrderRequest) (*commands.ReserveOrderResult, error) {
			return nil, errs.ErrOutOfStock
		}
		rec := s.perform(http.MethodPost, "/orders", validCreateBody())
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "Sold out")
	})

	s.Run("error: 404 when no ledger for the date", func() {
		s.commands.reserve = func(context.Context, commands.ReserveOrderRequest) (*commands.ReserveOrderResult, error) {
			return nil, errs.ErrLedgerNotFound
		}
		rec := s.perform(http.MethodPost, "/orders", validCreateBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 404 when product is hidden", func() {
		s.commands.reserve = func(context.Context, commands.ReserveOrderRequest) (*commands.ReserveOrderResult, error) {
			return nil, commands.ErrProductNotPurchasable
		}
		rec := s.perform(http.MethodPost, "/orders", validCreateBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	s.Run("success: 200 with order view", func() {
		id := uuid.New()
		s.queries.getByID = func(_ context.Context, got uuid.UUID) (*queries.OrderView, error) {
			s.Equal(id, got)
			return &queries.OrderView{ID: id, Status: "reserved", PriceCents: 4500}, nil
		}
		rec := s.perform(http.MethodGet, "/orders/"+id.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "reserved")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := s.perform(http.MethodGet, "/orders/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.queries.getByID = func(context.Context, uuid.UUID) (*queries.OrderView, error) {
			return nil, errs.ErrOrderNotFound
		}
		rec := s.perform(http.MethodGet, "/orders/"+uuid.NewString(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestSubmitReceipt() {
	url := func(id uuid.UUID) string { return "/orders/" + id.String() + "/receipt" }

	s.Run("success: 204", func() {
		s.commands.submitReceipt = func(_ context.Context, _ uuid.UUID, receiptURL string) error {
			s.Equal("https://img.example/r.jpg", receiptURL)
			return nil
		}
		rec := s.perform(http.MethodPost, url(uuid.New()), map[string]any{"receiptUrl": "https://img.example/r.jpg"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when receipt url missing", func() {
		rec := s.perform(http.MethodPost, url(uuid.New()), map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 when order already finalized", func() {
		s.commands.submitReceipt = func(context.Context, uuid.UUID, string) error {
			return order.ErrAlreadyFinalized
		}
		rec := s.perform(http.MethodPost, url(uuid.New()), map[string]any{"receiptUrl": "https://img.example/r.jpg"})
		s.Equal(http.StatusConflict, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	url := func(id uuid.UUID) string { return "/orders/" + id.String() + "/cancel" }

	s.Run("success: empty body defaults to user cancellation", func() {
		var gotReason order.CancelReason
		s.commands.cancel = func(_ context.Context, _ uuid.UUID, reason order.CancelReason) error {
			gotReason = reason
			return nil
		}
		rec := s.perform(http.MethodPost, url(uuid.New()), nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(order.CancelReasonUserCancelled, gotReason)
	})

	s.Run("success: timeout reason accepted", func() {
		var gotReason order.CancelReason
		s.commands.cancel = func(_ context.Context, _ uuid.UUID, reason order.CancelReason) error {
			gotReason = reason
			return nil
		}
		rec := s.perform(http.MethodPost, url(uuid.New()), map[string]any{"reason": "timeout"})
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(order.CancelReasonTimeout, gotReason)
	})

	s.Run("error: 400 on admin-only reason", func() {
		rec := s.perform(http.MethodPost, url(uuid.New()), map[string]any{"reason": "rejected_payment"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 when already finalized", func() {
		s.commands.cancel = func(context.Context, uuid.UUID, order.CancelReason) error {
			return order.ErrAlreadyFinalized
		}
		rec := s.perform(http.MethodPost, url(uuid.New()), nil)
		s.Equal(http.StatusConflict, rec.Code)
	})
}
