package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrOrderNotCancellable = errors.New("order can no longer be cancelled")

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderServed    OrderStatus = "served"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderServed,
	OrderCompleted,
	OrderCancelled,
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return status, true
		}
	}

	return "", false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

type OrderSource string

const (
	SourceOnline      OrderSource = "online"
	SourceOfflineSync OrderSource = "offline-sync"
)

const DefaultUsername = "Guest"

type LineItem struct {
	ItemID    uint            `json:"itemId"`
	ItemName  string          `json:"itemName"`
	Variant   string          `json:"variant"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// StoreProjection and TableProjection are the slices of Store and Table
// returned alongside a single order.
type StoreProjection struct {
	ID      uint   `json:"id"`
	Name    string `json:"storeName"`
	Address string `json:"address"`
	Phone   string `json:"phoneNumber"`
}

type TableProjection struct {
	ID     uint `json:"id"`
	Number int  `json:"tableNumber"`
}

type Order struct {
	ID            uint             `json:"id"`
	StoreID       uint             `json:"storeId"`
	TableID       uint             `json:"tableId"`
	Username      string           `json:"username"`
	Items         []LineItem       `json:"items"`
	Billing       Bill             `json:"billing"`
	BillingSource BillingMode      `json:"billingSource"`
	Status        OrderStatus      `json:"status"`
	Source        OrderSource      `json:"source"`
	Synced        bool             `json:"isSynced"`
	Store         *StoreProjection `json:"store,omitempty"`
	Table         *TableProjection `json:"table,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func (o *Order) Cancel() error {
	if o.Status.IsTerminal() {
		return ErrOrderNotCancellable
	}
	o.Status = OrderCancelled

	return nil
}

// SetStatus moves the order to status. Cancellation goes through the
// terminal-state guard; every other value of the enum is accepted as is.
func (o *Order) SetStatus(status OrderStatus) error {
	if status == OrderCancelled {
		return o.Cancel()
	}
	o.Status = status

	return nil
}

// OrderFilter narrows a store's orders. Zero fields are ignored; From and To are inclusive.
type OrderFilter struct {
	StoreID uint
	TableID uint
	Status  OrderStatus
	From    time.Time
	To      time.Time
}
