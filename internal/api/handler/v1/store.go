package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restron/restron-api/internal/api/handler/v1/request"
	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/config"
	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/pkg/jwthelper"
	"github.com/restron/restron-api/internal/service"
)

type StoreService interface {
	Register(ctx context.Context, adminID uint, store domain.Store) (domain.Store, error)
	Login(ctx context.Context, email, password string) (domain.Store, error)
	Logout(ctx context.Context, storeID uint) error
	GetStore(ctx context.Context, id uint) (domain.Store, error)
	UpdateCharges(ctx context.Context, storeID uint, update service.ChargesUpdate) (domain.Store, error)
	AddPushToken(ctx context.Context, storeID uint, token string) error
	RemovePushToken(ctx context.Context, storeID uint, token string) error
}

type StoreHandler struct {
	conf *config.APIConfig
	svc  StoreService
}

func NewStoreHandler(conf *config.APIConfig, svc StoreService) *StoreHandler {
	return &StoreHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new store
// @Description  Requires a superadmin token. The store is owned by that admin.
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterStoreRequest  true  "request body"
// @Success      201      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/register [post]
// @Security BearerAuth
func (h *StoreHandler) HandleRegister(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegisterStoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	store, err := h.svc.Register(ctx.Request.Context(), adminID, domain.Store{
		Name:     req.StoreName,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.StoreDetails.Address,
		Phone:    req.StoreDetails.PhoneNumber,
		Charges: domain.Charges{
			TaxEnabled:           req.ChargeSettings.TaxEnabled,
			TaxRate:              req.ChargeSettings.TaxRate,
			ServiceChargeEnabled: req.ChargeSettings.ServiceChargeEnabled,
			ServiceChargeValue:   req.ChargeSettings.ServiceChargeValue,
		},
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRegister -> h.svc.Register", err)
		return
	}

	h.renderToken(ctx, http.StatusCreated, store)
}

// HandleLogin godoc
// @Summary      Log a store in and open it
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/login [post]
func (h *StoreHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	store, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleLogin -> h.svc.Login", err)
		return
	}

	h.renderToken(ctx, http.StatusOK, store)
}

func (h *StoreHandler) renderToken(ctx *gin.Context, status int, store domain.Store) {
	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), store.ID, jwthelper.RoleStore, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.renderToken -> jwthelper.GenerateToken() -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(status, response.LoginResponse{
		Token: token,
		Store: store,
	})
}

// HandleLogout godoc
// @Summary      Close the store
// @Tags         stores
// @Produce      json
// @Success      200      {object}  response.Message
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/logout [post]
// @Security BearerAuth
func (h *StoreHandler) HandleLogout(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Logout(ctx.Request.Context(), storeID); err != nil {
		renderServiceErr(ctx, "v1.HandleLogout -> h.svc.Logout", err)
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Logged out successfully"})
}

// HandleGetProfile godoc
// @Summary      Get the authenticated store
// @Tags         stores
// @Produce      json
// @Success      200      {object}  response.StoreResponse
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/profile [get]
// @Security BearerAuth
func (h *StoreHandler) HandleGetProfile(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	store, err := h.svc.GetStore(ctx.Request.Context(), storeID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetProfile -> h.svc.GetStore", err)
		return
	}

	ctx.JSON(http.StatusOK, response.StoreResponse{Store: store})
}

// HandleUpdateCharges godoc
// @Summary      Change tax and service charge settings
// @Description  Only the settings present in the body are changed.
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateChargesRequest  true  "request body"
// @Success      200      {object}  response.ChargesResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/charges [put]
// @Security BearerAuth
func (h *StoreHandler) HandleUpdateCharges(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateChargesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	store, err := h.svc.UpdateCharges(ctx.Request.Context(), storeID, service.ChargesUpdate{
		TaxEnabled:           req.TaxEnabled,
		TaxRate:              req.TaxRate,
		ServiceChargeEnabled: req.ServiceChargeEnabled,
		ServiceChargeValue:   req.ServiceChargeValue,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateCharges -> h.svc.UpdateCharges", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ChargesResponse{
		Message: "Charge settings updated successfully",
		Charges: store.Charges,
	})
}

// HandleAddPushToken godoc
// @Summary      Register a device for push notifications
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request  body      request.PushTokenRequest  true  "request body"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/push-tokens [post]
// @Security BearerAuth
func (h *StoreHandler) HandleAddPushToken(ctx *gin.Context) {
	h.handlePushToken(ctx, "v1.HandleAddPushToken -> h.svc.AddPushToken", h.svc.AddPushToken, "Push token registered")
}

// HandleRemovePushToken godoc
// @Summary      Unregister a device from push notifications
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request  body      request.PushTokenRequest  true  "request body"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stores/push-tokens [delete]
// @Security BearerAuth
func (h *StoreHandler) HandleRemovePushToken(ctx *gin.Context) {
	h.handlePushToken(ctx, "v1.HandleRemovePushToken -> h.svc.RemovePushToken", h.svc.RemovePushToken, "Push token removed")
}

func (h *StoreHandler) handlePushToken(
	ctx *gin.Context,
	op string,
	apply func(ctx context.Context, storeID uint, token string) error,
	message string,
) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PushTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := apply(ctx.Request.Context(), storeID, req.Token); err != nil {
		renderServiceErr(ctx, op, err)
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: message})
}
