package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/push"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	EventNewOrder = "new-order"

	newOrderTitle    = "New Order Received!"
	syncSummaryTitle = "Offline Orders Synced"

	defaultPushConcurrency = 8
)

type SessionEmitter interface {
	Emit(sessionID, event string, payload any) error
}

type PushSender interface {
	Send(ctx context.Context, token, title, body string) error
}

type PushTokenRemover interface {
	RemovePushToken(ctx context.Context, storeID uint, token string) (bool, error)
}

// Notifier tells a store about new orders over its live session and its
// registered devices. Delivery is best effort: nothing it does can fail the
// caller.
type Notifier struct {
	sessions    SessionEmitter
	push        PushSender
	tokens      PushTokenRemover
	concurrency int
}

// NewNotifier builds a notifier. A nil push sender disables device
// notifications.
func NewNotifier(sessions SessionEmitter, sender PushSender, tokens PushTokenRemover, concurrency int) *Notifier {
	if concurrency <= 0 {
		concurrency = defaultPushConcurrency
	}

	return &Notifier{
		sessions:    sessions,
		push:        sender,
		tokens:      tokens,
		concurrency: concurrency,
	}
}

func (n *Notifier) NotifyNewOrder(ctx context.Context, store domain.Store, order domain.Order, tableNumber int) {
	if store.HasSession() {
		if err := n.sessions.Emit(store.SocketID, EventNewOrder, order); err != nil {
			zap.L().Warn("failed to emit new order",
				zap.Uint("store_id", store.ID),
				zap.Uint("order_id", order.ID),
				zap.String("session_id", store.SocketID),
				zap.Error(err))
		}
	}

	body := fmt.Sprintf("New order from Table %d totaling ₹%s", tableNumber, order.Billing.Total.StringFixed(2))
	n.pushAll(ctx, store, newOrderTitle, body)
}

// NotifySyncSummary sends one device notification describing a finished
// offline sync. The live session is not used.
func (n *Notifier) NotifySyncSummary(ctx context.Context, store domain.Store, succeeded, failed int) {
	body := fmt.Sprintf("%d offline orders synced, %d failed", succeeded, failed)
	n.pushAll(ctx, store, syncSummaryTitle, body)
}

// pushAll sends to every token of the store concurrently. Each token is its
// own failure domain, so every goroutine returns nil.
func (n *Notifier) pushAll(ctx context.Context, store domain.Store, title, body string) {
	if n.push == nil || len(store.PushTokens) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(n.concurrency)

	for _, token := range store.PushTokens {
		token := token
		g.Go(func() error {
			n.deliver(ctx, store.ID, token, title, body)
			return nil
		})
	}

	_ = g.Wait()
}

func (n *Notifier) deliver(ctx context.Context, storeID uint, token, title, body string) {
	err := n.push.Send(ctx, token, title, body)
	if err == nil {
		return
	}

	if !errors.Is(err, push.ErrTokenInvalid) {
		zap.L().Warn("failed to send push notification",
			zap.Uint("store_id", storeID),
			zap.Error(err))
		return
	}

	removed, err := n.tokens.RemovePushToken(ctx, storeID, token)
	if err != nil {
		zap.L().Error("failed to remove invalid push token",
			zap.Uint("store_id", storeID),
			zap.Error(err))
		return
	}
	if removed {
		zap.L().Info("removed invalid push token", zap.Uint("store_id", storeID))
	}
}
