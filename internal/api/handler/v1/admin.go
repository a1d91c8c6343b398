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
)

type AdminService interface {
	Bootstrap(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	Register(ctx context.Context, creatorID uint, admin domain.Admin) (domain.Admin, error)
	Login(ctx context.Context, email, password string) (domain.Admin, error)
	GetAdmin(ctx context.Context, id uint) (domain.Admin, error)
	ListStores(ctx context.Context, adminID uint) ([]domain.Store, error)
}

type AdminHandler struct {
	conf *config.APIConfig
	svc  AdminService
}

func NewAdminHandler(conf *config.APIConfig, svc AdminService) *AdminHandler {
	return &AdminHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleBootstrap godoc
// @Summary      Register the first admin
// @Description  Only succeeds while no admin exists. The admin becomes a superadmin.
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterAdminRequest  true  "request body"
// @Success      201      {object}  response.AdminLoginResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admins/bootstrap [post]
func (h *AdminHandler) HandleBootstrap(ctx *gin.Context) {
	var req request.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.svc.Bootstrap(ctx.Request.Context(), req.Admin())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleBootstrap -> h.svc.Bootstrap", err)
		return
	}

	h.renderToken(ctx, http.StatusCreated, admin)
}

// HandleRegister godoc
// @Summary      Register another admin
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterAdminRequest  true  "request body"
// @Success      201      {object}  response.AdminResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admins/register [post]
// @Security BearerAuth
func (h *AdminHandler) HandleRegister(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.svc.Register(ctx.Request.Context(), adminID, req.Admin())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRegister -> h.svc.Register", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.AdminResponse{Admin: admin})
}

// HandleLogin godoc
// @Summary      Log an admin in
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.AdminLoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admins/login [post]
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleLogin -> h.svc.Login", err)
		return
	}

	h.renderToken(ctx, http.StatusOK, admin)
}

// HandleGetProfile godoc
// @Summary      Get the authenticated admin
// @Tags         admins
// @Produce      json
// @Success      200      {object}  response.AdminResponse
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admins/profile [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetProfile(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	admin, err := h.svc.GetAdmin(ctx.Request.Context(), adminID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetProfile -> h.svc.GetAdmin", err)
		return
	}

	ctx.JSON(http.StatusOK, response.AdminResponse{Admin: admin})
}

// HandleListStores godoc
// @Summary      List the stores registered by the authenticated admin
// @Tags         admins
// @Produce      json
// @Success      200      {object}  response.StoresResponse
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admins/stores [get]
// @Security BearerAuth
func (h *AdminHandler) HandleListStores(ctx *gin.Context) {
	adminID, respErr := adminIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stores, err := h.svc.ListStores(ctx.Request.Context(), adminID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListStores -> h.svc.ListStores", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewStoresResponse("Stores fetched successfully", stores))
}

func (h *AdminHandler) renderToken(ctx *gin.Context, status int, admin domain.Admin) {
	role := jwthelper.RoleAdmin
	if admin.Role == domain.AdminSuper {
		role = jwthelper.RoleSuperAdmin
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), admin.ID, role, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.renderToken -> jwthelper.GenerateToken() -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(status, response.AdminLoginResponse{
		Token: token,
		Admin: admin,
	})
}
