package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restron/restron-api/internal/api/handler/v1/request"
	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/domain"
)

type TableService interface {
	CreateTable(ctx context.Context, storeID uint) (domain.Table, error)
	ListTables(ctx context.Context, storeID uint) ([]domain.Table, error)
	GetTable(ctx context.Context, storeID, tableID uint) (domain.Table, error)
	RenumberTable(ctx context.Context, storeID, tableID uint, number int) (domain.Table, error)
	DeleteTable(ctx context.Context, storeID, tableID uint) error
}

type TableHandler struct {
	svc TableService
}

func NewTableHandler(svc TableService) *TableHandler {
	return &TableHandler{
		svc: svc,
	}
}

// HandleCreateTable godoc
// @Summary      Add a table
// @Description  Tables are numbered in sequence and get a QR ordering link.
// @Tags         tables
// @Produce      json
// @Success      201      {object}  response.TableResponse
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tables [post]
// @Security BearerAuth
func (h *TableHandler) HandleCreateTable(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	table, err := h.svc.CreateTable(ctx.Request.Context(), storeID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateTable -> h.svc.CreateTable", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.TableResponse{
		Message: "Table created successfully",
		Table:   table,
	})
}

// HandleListTables godoc
// @Summary      List the store's tables
// @Tags         tables
// @Produce      json
// @Success      200      {object}  response.TablesResponse
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tables [get]
// @Security BearerAuth
func (h *TableHandler) HandleListTables(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tables, err := h.svc.ListTables(ctx.Request.Context(), storeID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListTables -> h.svc.ListTables", err)
		return
	}
	if tables == nil {
		tables = []domain.Table{}
	}

	ctx.JSON(http.StatusOK, response.TablesResponse{
		Message: "Tables fetched successfully",
		Count:   len(tables),
		Tables:  tables,
	})
}

// HandleGetTable godoc
// @Summary      Get a table
// @Tags         tables
// @Produce      json
// @Param        tableID  path      int  true  "Table ID"
// @Success      200      {object}  response.TableResponse
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tables/{tableID} [get]
// @Security BearerAuth
func (h *TableHandler) HandleGetTable(ctx *gin.Context) {
	storeID, tableID, ok := storeAndID(ctx, "tableID")
	if !ok {
		return
	}

	table, err := h.svc.GetTable(ctx.Request.Context(), storeID, tableID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetTable -> h.svc.GetTable", err)
		return
	}

	ctx.JSON(http.StatusOK, response.TableResponse{
		Message: "Table fetched successfully",
		Table:   table,
	})
}

// HandleRenumberTable godoc
// @Summary      Change a table's number
// @Tags         tables
// @Accept       json
// @Produce      json
// @Param        tableID  path      int                           true  "Table ID"
// @Param        request  body      request.RenumberTableRequest  true  "request body"
// @Success      200      {object}  response.TableResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tables/{tableID} [put]
// @Security BearerAuth
func (h *TableHandler) HandleRenumberTable(ctx *gin.Context) {
	storeID, tableID, ok := storeAndID(ctx, "tableID")
	if !ok {
		return
	}

	var req request.RenumberTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	table, err := h.svc.RenumberTable(ctx.Request.Context(), storeID, tableID, req.TableNumber)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRenumberTable -> h.svc.RenumberTable", err)
		return
	}

	ctx.JSON(http.StatusOK, response.TableResponse{
		Message: "Table updated successfully",
		Table:   table,
	})
}

// HandleDeleteTable godoc
// @Summary      Remove a table
// @Description  Tables that still have orders cannot be removed.
// @Tags         tables
// @Produce      json
// @Param        tableID  path      int  true  "Table ID"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /tables/{tableID} [delete]
// @Security BearerAuth
func (h *TableHandler) HandleDeleteTable(ctx *gin.Context) {
	storeID, tableID, ok := storeAndID(ctx, "tableID")
	if !ok {
		return
	}

	if err := h.svc.DeleteTable(ctx.Request.Context(), storeID, tableID); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteTable -> h.svc.DeleteTable", err)
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Table deleted successfully"})
}
