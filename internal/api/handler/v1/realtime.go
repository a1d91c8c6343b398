package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/restron/restron-api/internal/api/handler/v1/response"
	"github.com/restron/restron-api/internal/realtime"
)

const eventConnected = "connected"

type SessionService interface {
	JoinSession(ctx context.Context, storeID uint, sessionID string) error
	LeaveSession(ctx context.Context, storeID uint, sessionID string)
}

type SessionHub interface {
	Connect(conn *websocket.Conn, storeID uint, join func(sessionID string) error, onClose func(sessionID string)) (*realtime.Client, error)
	Emit(sessionID, event string, payload any) error
}

type RealtimeHandler struct {
	svc      SessionService
	hub      SessionHub
	upgrader websocket.Upgrader
}

// NewRealtimeHandler accepts websocket upgrades from the given origins. An
// empty list or "*" accepts any origin.
func NewRealtimeHandler(svc SessionService, hub SessionHub, allowedOrigins []string) *RealtimeHandler {
	return &RealtimeHandler{
		svc: svc,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// HandleConnect godoc
// @Summary      Open the store dashboard's live session
// @Description  New orders are pushed on this socket as "new-order" events. A new connection replaces the store's previous session.
// @Tags         realtime
// @Param        token    query     string  false  "JWT when the Authorization header cannot be set"
// @Success      101      {string}  string  "Switching Protocols"
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /ws [get]
// @Security BearerAuth
func (h *RealtimeHandler) HandleConnect(ctx *gin.Context) {
	storeID, respErr := storeIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		zap.L().Warn("websocket upgrade failed", zap.Uint("store_id", storeID), zap.Error(err))
		return
	}

	joinCtx := ctx.Request.Context()
	client, err := h.hub.Connect(conn, storeID,
		func(sessionID string) error {
			return h.svc.JoinSession(joinCtx, storeID, sessionID)
		},
		func(sessionID string) {
			h.svc.LeaveSession(context.Background(), storeID, sessionID)
		},
	)
	if err != nil {
		zap.L().Error("failed to record realtime session",
			zap.Uint("store_id", storeID),
			zap.Error(err))
		return
	}
	sessionID := client.SessionID()

	if err = h.hub.Emit(sessionID, eventConnected, gin.H{"sessionId": sessionID}); err != nil {
		zap.L().Warn("failed to greet realtime session", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		set[origin] = struct{}{}
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
