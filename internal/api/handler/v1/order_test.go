package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/api/middleware"
	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/service"
)

type stubOrderService struct {
	created   service.CreateOrderInput
	createErr error
	orders    []domain.Order
	err       error
	gotStore  uint
	gotID     uint
	gotStatus string
}

func (s *stubOrderService) CreateOrder(_ context.Context, in service.CreateOrderInput) (domain.Order, error) {
	s.created = in
	if s.createErr != nil {
		return domain.Order{}, s.createErr
	}
	return domain.Order{ID: 1, StoreID: in.StoreID, TableID: in.TableID, Status: domain.OrderPending}, nil
}

func (s *stubOrderService) GetOrder(_ context.Context, storeID, orderID uint) (domain.Order, error) {
	s.gotStore, s.gotID = storeID, orderID
	return domain.Order{ID: orderID, StoreID: storeID}, s.err
}

func (s *stubOrderService) ListByStore(_ context.Context, storeID uint) ([]domain.Order, error) {
	s.gotStore = storeID
	return s.orders, s.err
}

func (s *stubOrderService) ListByStatus(_ context.Context, storeID uint, status string) ([]domain.Order, error) {
	s.gotStore, s.gotStatus = storeID, status
	return s.orders, s.err
}

func (s *stubOrderService) ListByTable(_ context.Context, storeID, tableID uint) ([]domain.Order, error) {
	s.gotStore, s.gotID = storeID, tableID
	return s.orders, s.err
}

func (s *stubOrderService) ListByDay(_ context.Context, storeID uint, _ string) ([]domain.Order, error) {
	s.gotStore = storeID
	return s.orders, s.err
}

func (s *stubOrderService) ListByMonth(_ context.Context, storeID uint, _, _ int) ([]domain.Order, error) {
	s.gotStore = storeID
	return s.orders, s.err
}

func (s *stubOrderService) UpdateStatus(_ context.Context, storeID, orderID uint, status string) (domain.Order, error) {
	s.gotStore, s.gotID, s.gotStatus = storeID, orderID, status
	return domain.Order{ID: orderID, Status: domain.OrderStatus(status)}, s.err
}

func (s *stubOrderService) CancelOrder(_ context.Context, storeID, orderID uint) (domain.Order, error) {
	s.gotStore, s.gotID = storeID, orderID
	return domain.Order{ID: orderID, Status: domain.OrderCancelled}, s.err
}

type stubSyncService struct {
	records []domain.SyncRecord
}

func (s *stubSyncService) SyncOrders(_ context.Context, _ uint, records []domain.SyncRecord) (domain.SyncReport, error) {
	s.records = records
	var report domain.SyncReport
	for _, r := range records {
		report.Add(domain.SyncOutcome{LocalRef: r.LocalRef, Success: r.Validate() == nil})
	}
	return report, nil
}

// asStore stands in for VerifyJWT.
func asStore(storeID uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.StoreIDKey, storeID)
	}
}

func newOrderRouter(svc OrderService, syncSvc SyncService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOrderHandler(svc, syncSvc)

	r.POST("/orders/create", h.HandleCreateOrder)
	r.POST("/orders/sync-orders", h.HandleSyncOrders)

	auth := r.Group("/orders", asStore(3))
	auth.GET("/store-orders", h.HandleGetStoreOrders)
	auth.GET("/store-orders/month", h.HandleGetOrdersByMonth)
	auth.GET("/table/:tableID", h.HandleGetTableOrders)
	auth.GET("/:orderID", h.HandleGetOrder)
	auth.PUT("/status/:orderID", h.HandleUpdateOrderStatus)
	auth.PUT("/cancel/:orderID", h.HandleCancelOrder)

	r.GET("/anonymous/store-orders", h.HandleGetStoreOrders)

	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

const createBody = `{
	"storeId": 3,
	"tableId": 9,
	"username": "Asha",
	"items": [{"itemId": 1, "itemName": "Paneer Tikka", "variants": [{"type": "Full", "quantity": 1, "price": 240}]}],
	"billingSummary": {"subTotal": 240, "totalAmount": 240}
}`

func TestOrderHandler_HandleCreateOrder(t *testing.T) {
	svc := &stubOrderService{}
	r := newOrderRouter(svc, &stubSyncService{})

	w := serve(r, http.MethodPost, "/orders/create", createBody)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var got response.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Order placed successfully", got.Message)
	assert.Equal(t, uint(9), got.Order.TableID)

	assert.Equal(t, "Asha", svc.created.Username)
	assert.Equal(t, domain.BillingVerified, svc.created.Billing.Mode())
}

func TestOrderHandler_HandleCreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "price mismatch",
			body:        createBody,
			err:         fmt.Errorf("s.catalog.Lookup -> %w: Paneer Tikka (Full)", service.ErrPriceMismatch),
			wantStatus:  http.StatusForbidden,
			wantMessage: response.MsgPriceMismatch,
		},
		{
			name:        "table of another store",
			body:        createBody,
			err:         fmt.Errorf("s.tables.FindByID -> %w", service.ErrTableNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: service.ErrTableNotFound.Error(),
		},
		{
			name:        "unavailable item",
			body:        createBody,
			err:         fmt.Errorf("%w: %q", service.ErrItemUnavailable, "Paneer Tikka"),
			wantStatus:  http.StatusNotFound,
			wantMessage: service.ErrItemUnavailable.Error(),
		},
		{
			name:        "storage failure",
			body:        createBody,
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:        "missing billing summary",
			body:        `{"storeId": 3, "tableId": 9, "items": [{"itemId": 1, "itemName": "x", "variants": [{"type": "Full", "quantity": 1, "price": 1}]}]}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid request",
		},
		{
			name:        "malformed json",
			body:        `{"storeId": `,
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newOrderRouter(&stubOrderService{createErr: tt.err}, &stubSyncService{})

			w := serve(r, http.MethodPost, "/orders/create", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				var got response.Err
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.wantMessage, got.Message)
			}
		})
	}
}

func TestOrderHandler_HandleSyncOrders(t *testing.T) {
	syncSvc := &stubSyncService{}
	r := newOrderRouter(&stubOrderService{}, syncSvc)

	body := `{"storeId": 3, "orders": [
		{"localId": "a", "tableId": 9, "items": [{"itemId": 1, "itemName": "Lassi", "variants": [{"type": "Full", "quantity": 1, "price": 80}]}], "billingSummary": {"totalAmount": 80}},
		{"localId": "b"}
	]}`
	w := serve(r, http.MethodPost, "/orders/sync-orders", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{
		"message": "Synced 1 of 2 orders",
		"results": [{"localId": "a", "success": true}, {"localId": "b", "success": false}],
		"total": 2,
		"successCount": 1,
		"failedCount": 1
	}`, w.Body.String())
	assert.Len(t, syncSvc.records, 2)
}

func TestOrderHandler_StoreScopedRoutes(t *testing.T) {
	svc := &stubOrderService{}
	r := newOrderRouter(svc, &stubSyncService{})

	w := serve(r, http.MethodGet, "/orders/store-orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Orders fetched successfully", "count": 0, "orders": []}`, w.Body.String())
	assert.Equal(t, uint(3), svc.gotStore)

	w = serve(r, http.MethodGet, "/orders/42", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), svc.gotID)

	w = serve(r, http.MethodGet, "/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodGet, "/orders/store-orders/month?month=x&year=2024", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodGet, "/anonymous/store-orders", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderHandler_StatusChanges(t *testing.T) {
	svc := &stubOrderService{}
	r := newOrderRouter(svc, &stubSyncService{})

	w := serve(r, http.MethodPut, "/orders/status/5", `{"status": "served"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "served", svc.gotStatus)

	w = serve(r, http.MethodPut, "/orders/status/5", `{"status": "eaten"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = service.ErrOrderNotCancellable
	w = serve(r, http.MethodPut, "/orders/cancel/5", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = fmt.Errorf("s.repo.FindByID -> %w", service.ErrOrderNotFound)
	w = serve(r, http.MethodPut, "/orders/cancel/6", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrOrderNotFound.Error())
	assert.NotContains(t, w.Body.String(), "s.repo")
}

func TestOrderHandler_TableOrdersEmpty(t *testing.T) {
	r := newOrderRouter(&stubOrderService{err: service.ErrNoTableOrders}, &stubSyncService{})

	w := serve(r, http.MethodGet, "/orders/table/9", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no orders found for this table")
}
