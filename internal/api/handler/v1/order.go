package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/restron/restron-api/internal/api/handler/v1/request"
	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/service"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (domain.Order, error)
	GetOrder(ctx context.Context, storeID, orderID uint) (domain.Order, error)
	ListByStore(ctx context.Context, storeID uint) ([]domain.Order, error)
	ListByStatus(ctx context.Context, storeID uint, status string) ([]domain.Order, error)
	ListByTable(ctx context.Context, storeID, tableID uint) ([]domain.Order, error)
	ListByDay(ctx context.Context, storeID uint, date string) ([]domain.Order, error)
	ListByMonth(ctx context.Context, storeID uint, month, year int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, storeID, orderID uint, status string) (domain.Order, error)
	CancelOrder(ctx context.Context, storeID, orderID uint) (domain.Order, error)
}

type SyncService interface {
	SyncOrders(ctx context.Context, storeID uint, records []domain.SyncRecord) (domain.SyncReport, error)
}

type OrderHandler struct {
	svc     OrderService
	syncSvc SyncService
}

func NewOrderHandler(svc OrderService, syncSvc SyncService) *OrderHandler {
	return &OrderHandler{
		svc:     svc,
		syncSvc: syncSvc,
	}
}

// HandleCreateOrder godoc
// @Summary      Place an order from a table
// @Description  Prices are checked against the menu unless billingSummary.trusted is set.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateOrderRequest  true  "request body"
// @Success      201      {object}  response.OrderResponse
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/create [post]
func (h *OrderHandler) HandleCreateOrder(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), service.CreateOrderInput{
		StoreID:  req.StoreID,
		TableID:  req.TableID,
		Username: req.Username,
		Billing:  req.BillingSource(),
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateOrder -> h.svc.CreateOrder", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.OrderResponse{
		Message: "Order placed successfully",
		Order:   order,
	})
}

// HandleSyncOrders godoc
// @Summary      Replay orders taken offline
// @Description  Each order succeeds or fails on its own; the response lists every outcome.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      request.SyncOrdersRequest  true  "request body"
// @Success      200      {object}  response.SyncResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/sync-orders [post]
func (h *OrderHandler) HandleSyncOrders(ctx *gin.Context) {
	var req request.SyncOrdersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.syncSvc.SyncOrders(ctx.Request.Context(), req.StoreID, req.Records())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSyncOrders -> h.syncSvc.SyncOrders", err)
		return
	}

	ctx.JSON(http.StatusOK, response.SyncResponse{
		Message:    fmt.Sprintf("Synced %d of %d orders", report.Succeeded, report.Total),
		SyncReport: report,
	})
}

// HandleGetStoreOrders godoc
// @Summary      List the store's orders
// @Tags         orders
// @Produce      json
// @Success      200      {object}  response.OrdersResponse
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/store-orders [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetStoreOrders(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	orders, err := h.svc.ListByStore(ctx.Request.Context(), storeID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetStoreOrders -> h.svc.ListByStore", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrdersResponse("Orders fetched successfully", orders))
}

// HandleGetOrdersByDate godoc
// @Summary      List the store's orders of one day
// @Tags         orders
// @Produce      json
// @Param        date     query     string  true  "YYYY-MM-DD"
// @Success      200      {object}  response.OrdersResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/store-orders/date [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetOrdersByDate(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	date := ctx.Query("date")
	orders, err := h.svc.ListByDay(ctx.Request.Context(), storeID, date)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOrdersByDate -> h.svc.ListByDay", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrdersResponse(fmt.Sprintf("Orders for %s fetched successfully", date), orders))
}

// HandleGetOrdersByMonth godoc
// @Summary      List the store's orders of one month
// @Tags         orders
// @Produce      json
// @Param        month    query     int  true  "1-12"
// @Param        year     query     int  true  "year"
// @Success      200      {object}  response.OrdersResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/store-orders/month [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetOrdersByMonth(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	month, monthErr := strconv.Atoi(ctx.Query("month"))
	year, yearErr := strconv.Atoi(ctx.Query("year"))
	if monthErr != nil || yearErr != nil {
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidMonth))
		return
	}

	orders, err := h.svc.ListByMonth(ctx.Request.Context(), storeID, month, year)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOrdersByMonth -> h.svc.ListByMonth", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrdersResponse(fmt.Sprintf("Orders for %d-%d fetched successfully", month, year), orders))
}

// HandleGetOrdersByStatus godoc
// @Summary      List the store's orders with one status
// @Tags         orders
// @Produce      json
// @Param        status   query     string  true  "order status"
// @Success      200      {object}  response.OrdersResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/store-orders/status [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetOrdersByStatus(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	status := ctx.Query("status")
	orders, err := h.svc.ListByStatus(ctx.Request.Context(), storeID, status)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOrdersByStatus -> h.svc.ListByStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrdersResponse(fmt.Sprintf("Orders with status '%s' fetched successfully", status), orders))
}

// HandleGetTableOrders godoc
// @Summary      List the orders of one table
// @Tags         orders
// @Produce      json
// @Param        tableID  path      int  true  "Table ID"
// @Success      200      {object}  response.OrdersResponse
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/table/{tableID} [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetTableOrders(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tableID, respErr := idParam(ctx, "tableID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	orders, err := h.svc.ListByTable(ctx.Request.Context(), storeID, tableID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetTableOrders -> h.svc.ListByTable", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewOrdersResponse("Table orders fetched successfully", orders))
}

// HandleGetOrder godoc
// @Summary      Get one order with its store and table
// @Tags         orders
// @Produce      json
// @Param        orderID  path      int  true  "Order ID"
// @Success      200      {object}  response.OrderResponse
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/{orderID} [get]
// @Security BearerAuth
func (h *OrderHandler) HandleGetOrder(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	orderID, respErr := idParam(ctx, "orderID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	order, err := h.svc.GetOrder(ctx.Request.Context(), storeID, orderID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetOrder -> h.svc.GetOrder", err)
		return
	}

	ctx.JSON(http.StatusOK, response.OrderResponse{
		Message: "Order details fetched successfully",
		Order:   order,
	})
}

// HandleUpdateOrderStatus godoc
// @Summary      Change an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderID  path      int                          true  "Order ID"
// @Param        request  body      request.UpdateStatusRequest  true  "request body"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/status/{orderID} [put]
// @Security BearerAuth
func (h *OrderHandler) HandleUpdateOrderStatus(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	orderID, respErr := idParam(ctx, "orderID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	order, err := h.svc.UpdateStatus(ctx.Request.Context(), storeID, orderID, req.Status)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateOrderStatus -> h.svc.UpdateStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, response.OrderResponse{
		Message: fmt.Sprintf("Order status updated to '%s'", order.Status),
		Order:   order,
	})
}

// HandleCancelOrder godoc
// @Summary      Cancel an order
// @Description  Completed and cancelled orders cannot be cancelled.
// @Tags         orders
// @Produce      json
// @Param        orderID  path      int  true  "Order ID"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /orders/cancel/{orderID} [put]
// @Security BearerAuth
func (h *OrderHandler) HandleCancelOrder(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	orderID, respErr := idParam(ctx, "orderID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	order, err := h.svc.CancelOrder(ctx.Request.Context(), storeID, orderID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCancelOrder -> h.svc.CancelOrder", err)
		return
	}

	ctx.JSON(http.StatusOK, response.OrderResponse{
		Message: "Order cancelled successfully",
		Order:   order,
	})
}
