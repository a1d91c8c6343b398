package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/restron/restron-api/internal/api/handler/v1/request"
	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/service"
)

type ItemService interface {
	CreateItem(ctx context.Context, storeID uint, name, description string, price decimal.Decimal) (domain.Item, error)
	ListItems(ctx context.Context, storeID uint) ([]domain.Item, error)
	GetItem(ctx context.Context, storeID, itemID uint) (domain.Item, error)
	UpdateItem(ctx context.Context, storeID, itemID uint, update service.ItemUpdate) (domain.Item, error)
	SetItemAvailability(ctx context.Context, storeID, itemID uint, available bool) (domain.Item, error)
	DeleteItem(ctx context.Context, storeID, itemID uint) error
	AddVariant(ctx context.Context, storeID, itemID uint, name string, price decimal.Decimal) (domain.Variant, error)
	UpdateVariant(ctx context.Context, storeID, itemID, variantID uint, name *string, price *decimal.Decimal) (domain.Variant, error)
	SetVariantAvailability(ctx context.Context, storeID, itemID, variantID uint, available bool) (domain.Variant, error)
	RemoveVariant(ctx context.Context, storeID, itemID, variantID uint) error
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleCreateItem godoc
// @Summary      Add a menu item
// @Description  The item starts available with a single "Full" variant at the given price.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateItemRequest  true  "request body"
// @Success      201      {object}  response.ItemResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items [post]
// @Security BearerAuth
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), storeID, req.ItemName, req.Description, req.Price)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateItem -> h.svc.CreateItem", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.ItemResponse{
		Message: "Item created successfully",
		Item:    item,
	})
}

// HandleListItems godoc
// @Summary      List the store's menu
// @Tags         items
// @Produce      json
// @Success      200      {object}  response.ItemsResponse
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items [get]
// @Security BearerAuth
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	items, err := h.svc.ListItems(ctx.Request.Context(), storeID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListItems -> h.svc.ListItems", err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}

	ctx.JSON(http.StatusOK, response.ItemsResponse{
		Message: "Items fetched successfully",
		Count:   len(items),
		Items:   items,
	})
}

// HandleGetItem godoc
// @Summary      Get a menu item
// @Tags         items
// @Produce      json
// @Param        itemID   path      int  true  "Item ID"
// @Success      200      {object}  response.ItemResponse
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID} [get]
// @Security BearerAuth
func (h *ItemHandler) HandleGetItem(ctx *gin.Context) {
	storeID, itemID, ok := storeAndID(ctx, "itemID")
	if !ok {
		return
	}

	item, err := h.svc.GetItem(ctx.Request.Context(), storeID, itemID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetItem -> h.svc.GetItem", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ItemResponse{
		Message: "Item fetched successfully",
		Item:    item,
	})
}

// HandleUpdateItem godoc
// @Summary      Rename or describe a menu item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID   path      int                        true  "Item ID"
// @Param        request  body      request.UpdateItemRequest  true  "request body"
// @Success      200      {object}  response.ItemResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID} [patch]
// @Security BearerAuth
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	storeID, itemID, ok := storeAndID(ctx, "itemID")
	if !ok {
		return
	}

	var req request.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.UpdateItem(ctx.Request.Context(), storeID, itemID, service.ItemUpdate{
		Name:        req.ItemName,
		Description: req.Description,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateItem -> h.svc.UpdateItem", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ItemResponse{
		Message: "Item updated successfully",
		Item:    item,
	})
}

// HandleSetItemAvailability godoc
// @Summary      Mark a menu item and all its variants available or not
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID   path      int                          true  "Item ID"
// @Param        request  body      request.AvailabilityRequest  true  "request body"
// @Success      200      {object}  response.ItemResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID}/availability [put]
// @Security BearerAuth
func (h *ItemHandler) HandleSetItemAvailability(ctx *gin.Context) {
	storeID, itemID, ok := storeAndID(ctx, "itemID")
	if !ok {
		return
	}

	available, ok := bindAvailability(ctx)
	if !ok {
		return
	}

	item, err := h.svc.SetItemAvailability(ctx.Request.Context(), storeID, itemID, available)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSetItemAvailability -> h.svc.SetItemAvailability", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ItemResponse{
		Message: "Item availability updated",
		Item:    item,
	})
}

// HandleDeleteItem godoc
// @Summary      Remove a menu item
// @Tags         items
// @Produce      json
// @Param        itemID   path      int  true  "Item ID"
// @Success      200      {object}  response.Message
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID} [delete]
// @Security BearerAuth
func (h *ItemHandler) HandleDeleteItem(ctx *gin.Context) {
	storeID, itemID, ok := storeAndID(ctx, "itemID")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(ctx.Request.Context(), storeID, itemID); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteItem -> h.svc.DeleteItem", err)
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Item deleted successfully"})
}

// HandleAddVariant godoc
// @Summary      Add a variant to a menu item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID   path      int                           true  "Item ID"
// @Param        request  body      request.CreateVariantRequest  true  "request body"
// @Success      201      {object}  response.VariantResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{itemID}/variants [post]
// @Security BearerAuth
func (h *ItemHandler) HandleAddVariant(ctx *gin.Context) {
	storeID, itemID, ok := storeAndID(ctx, "itemID")
	if !ok {
		return
	}

	var req request.CreateVariantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	variant, err := h.svc.AddVariant(ctx.Request.Context(), storeID, itemID, req.Name, req.Price)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleAddVariant -> h.svc.AddVariant", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.VariantResponse{
		Message: "Variant added successfully",
		Variant: variant,
	})
}

// HandleUpdateVariant godoc
// @Summary      Rename or reprice a variant
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID     path      int                           true  "Item ID"
// @Param        variantID  path      int                           true  "Variant ID"
// @Param        request    body      request.UpdateVariantRequest  true  "request body"
// @Success      200        {object}  response.VariantResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /items/{itemID}/variants/{variantID} [patch]
// @Security BearerAuth
func (h *ItemHandler) HandleUpdateVariant(ctx *gin.Context) {
	storeID, itemID, ok := storeAndID(ctx, "itemID")
	if !ok {
		return
	}

	variantID, respErr := idParam(ctx, "variantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateVariantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	variant, err := h.svc.UpdateVariant(ctx.Request.Context(), storeID, itemID, variantID, req.Name, req.Price)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateVariant -> h.svc.UpdateVariant", err)
		return
	}

	ctx.JSON(http.StatusOK, response.VariantResponse{
		Message: "Variant updated successfully",
		Variant: variant,
	})
}

// HandleSetVariantAvailability godoc
// @Summary      Mark a variant available or not
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID     path      int                          true  "Item ID"
// @Param        variantID  path      int                          true  "Variant ID"
// @Param        request    body      request.AvailabilityRequest  true  "request body"
// @Success      200        {object}  response.VariantResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /items/{itemID}/variants/{variantID}/availability [put]
// @Security BearerAuth
func (h *ItemHandler) HandleSetVariantAvailability(ctx *gin.Context) {
	storeID, itemID, ok := storeAndID(ctx, "itemID")
	if !ok {
		return
	}

	variantID, respErr := idParam(ctx, "variantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	available, ok := bindAvailability(ctx)
	if !ok {
		return
	}

	variant, err := h.svc.SetVariantAvailability(ctx.Request.Context(), storeID, itemID, variantID, available)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSetVariantAvailability -> h.svc.SetVariantAvailability", err)
		return
	}

	ctx.JSON(http.StatusOK, response.VariantResponse{
		Message: "Variant availability updated",
		Variant: variant,
	})
}

// HandleRemoveVariant godoc
// @Summary      Remove a variant
// @Description  The last variant of an item cannot be removed.
// @Tags         items
// @Produce      json
// @Param        itemID     path      int  true  "Item ID"
// @Param        variantID  path      int  true  "Variant ID"
// @Success      200        {object}  response.Message
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /items/{itemID}/variants/{variantID} [delete]
// @Security BearerAuth
func (h *ItemHandler) HandleRemoveVariant(ctx *gin.Context) {
	storeID, itemID, ok := storeAndID(ctx, "itemID")
	if !ok {
		return
	}

	variantID, respErr := idParam(ctx, "variantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.RemoveVariant(ctx.Request.Context(), storeID, itemID, variantID); err != nil {
		renderServiceErr(ctx, "v1.HandleRemoveVariant -> h.svc.RemoveVariant", err)
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Variant removed successfully"})
}

func bindAvailability(ctx *gin.Context) (bool, bool) {
	var req request.AvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return false, false
	}

	return *req.Available, true
}
