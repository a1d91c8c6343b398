package middleware

import (
	"errors"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/pkg/jwthelper"
)

const (
	// StoreIDKey is the gin context key holding the authenticated store id.
	StoreIDKey = "storeID"
	// AdminIDKey is the gin context key holding the authenticated admin id.
	AdminIDKey = "adminID"
	// AdminRoleKey holds the jwthelper.Role of the authenticated admin.
	AdminRoleKey = "adminRole"
)

var (
	errMissingToken      = errors.New("missing bearer token")
	errUserAgentMismatch = errors.New("token was issued to another client")
	errRoleNotAllowed    = errors.New("token role is not allowed on this route")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT admits store tokens sent in the Authorization header.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return a.verify(headerToken, storeSubject, jwthelper.RoleStore)
}

// VerifyJWTFromQuery also reads the token query parameter. Only mount it
// where the client cannot set headers, like the websocket upgrade.
func (a *Authenticator) VerifyJWTFromQuery() gin.HandlerFunc {
	return a.verify(headerOrQueryToken, storeSubject, jwthelper.RoleStore)
}

// VerifyAdminJWT admits admin tokens whose role is one of roles.
func (a *Authenticator) VerifyAdminJWT(roles ...jwthelper.Role) gin.HandlerFunc {
	return a.verify(headerToken, adminSubject, roles...)
}

func (a *Authenticator) verify(
	tokenFrom func(*gin.Context) string,
	bind func(*gin.Context, uint, jwthelper.Role),
	roles ...jwthelper.Role,
) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := tokenFrom(ctx)
		if tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		if claims.UserAgent != ctx.Request.UserAgent() {
			response.RenderErr(ctx, response.ErrUnauthorized(errUserAgentMismatch))
			return
		}

		if !slices.Contains(roles, claims.Role) {
			response.RenderErr(ctx, response.ErrUnauthorized(errRoleNotAllowed))
			return
		}

		id, err := claims.SubjectID()
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		bind(ctx, id, claims.Role)
		ctx.Next()
	}
}

func storeSubject(ctx *gin.Context, id uint, _ jwthelper.Role) {
	ctx.Set(StoreIDKey, id)
}

func adminSubject(ctx *gin.Context, id uint, role jwthelper.Role) {
	ctx.Set(AdminIDKey, id)
	ctx.Set(AdminRoleKey, role)
}

func headerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

func headerOrQueryToken(ctx *gin.Context) string {
	if token := headerToken(ctx); token != "" {
		return token
	}

	return ctx.Query("token")
}
