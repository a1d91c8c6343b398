package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/api/middleware"
	"github.com/restron/restron-api/internal/service"
)

var (
	errNoStoreInContext = errors.New("no authenticated store in context")
	errNoAdminInContext = errors.New("no authenticated admin in context")
)

var (
	notFoundErrs = []error{
		service.ErrStoreNotFound,
		service.ErrAdminNotFound,
		service.ErrTableNotFound,
		service.ErrItemNotFound,
		service.ErrVariantNotFound,
		service.ErrOrderNotFound,
		service.ErrItemUnavailable,
		service.ErrVariantUnavailable,
		service.ErrNoTableOrders,
	}
	conflictErrs = []error{
		service.ErrStoreEmailExists,
		service.ErrAdminEmailExists,
		service.ErrAdminsExist,
		service.ErrItemExists,
		service.ErrVariantExists,
		service.ErrLastVariant,
		service.ErrOrderNotCancellable,
		service.ErrTableNumberExists,
		service.ErrTableInUse,
	}
	badRequestErrs = []error{
		service.ErrInvalidStatus,
		service.ErrInvalidDate,
		service.ErrInvalidMonth,
		service.ErrInvalidPrice,
		service.ErrQuantityOutOfRange,
		service.ErrAmountOutOfRange,
		service.ErrChargesOutOfRange,
	}
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         healthcheck
// @Produce      json
// @Success      200      {object}   response.Message
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Message{Message: "OK"})
}

func storeIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	value, ok := ctx.Get(middleware.StoreIDKey)
	if !ok {
		return 0, response.ErrUnauthorized(errNoStoreInContext)
	}

	storeID, ok := value.(uint)
	if !ok || storeID == 0 {
		return 0, response.ErrUnauthorized(errNoStoreInContext)
	}

	return storeID, nil
}

func adminIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	adminID, ok := ctx.Value(middleware.AdminIDKey).(uint)
	if !ok || adminID == 0 {
		return 0, response.ErrUnauthorized(errNoAdminInContext)
	}

	return adminID, nil
}

func idParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s", name))
	}

	return uint(id), nil
}

// storeAndID reads the authenticated store and a path id, rendering the
// error itself when either is missing.
func storeAndID(ctx *gin.Context, name string) (uint, uint, bool) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return 0, 0, false
	}

	id, respErr := idParam(ctx, name)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return 0, 0, false
	}

	return storeID, id, true
}

// renderServiceErr maps a service error to its response. Unknown errors are
// internal and are wrapped with op for the log.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrPriceMismatch) {
		response.RenderErr(ctx, response.ErrPriceMismatch(err))
		return
	}
	if errors.Is(err, service.ErrWrongCredentials) {
		response.RenderErr(ctx, response.ErrWrongCredentials(service.ErrWrongCredentials))
		return
	}
	if errors.Is(err, service.ErrNotPermitted) {
		response.RenderErr(ctx, response.ErrForbidden(service.ErrNotPermitted))
		return
	}
	if target := matchAny(err, notFoundErrs); target != nil {
		response.RenderErr(ctx, response.ErrNotFound(target))
		return
	}
	if target := matchAny(err, conflictErrs); target != nil {
		response.RenderErr(ctx, response.ErrConflict(target))
		return
	}
	if target := matchAny(err, badRequestErrs); target != nil {
		response.RenderErr(ctx, response.ErrBadRequest(target))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
}

func matchAny(err error, targets []error) error {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target
		}
	}

	return nil
}
