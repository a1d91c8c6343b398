package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type Order struct {
	ID       uint   `gorm:"primaryKey"`
	StoreID  uint   `gorm:"not null;index:idx_orders_store_created,priority:1"`
	Store    Store  `gorm:"foreignKey:StoreID"`
	TableID  uint   `gorm:"not null;index"`
	Table    Table  `gorm:"foreignKey:TableID"`
	Username string `gorm:"not null"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Subtotal             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxAmount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ServiceChargeAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxEnabled           bool            `gorm:"not null"`
	TaxRate              decimal.Decimal `gorm:"type:numeric(6,4);not null"`
	ServiceChargeEnabled bool            `gorm:"not null"`
	ServiceChargeValue   decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	BillingSource        string          `gorm:"not null"`

	Status string `gorm:"not null;index"`
	Source string `gorm:"not null"`
	Synced bool   `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index:idx_orders_store_created,priority:2"`
	UpdatedAt time.Time `gorm:"not null"`
}

// OrderItem is one priced line of an order, kept in submission order.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	Position  int             `gorm:"not null"`
	ItemID    uint            `gorm:"not null"`
	ItemName  string          `gorm:"not null"`
	Variant   string          `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

type OrderQuery struct {
	StoreID uint
	TableID uint
	Status  string
	From    *time.Time
	To      *time.Time
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

func preloadOrderItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}

// Insert persists the order and its lines. CreatedAt and UpdatedAt are kept
// when already set, which is how replayed offline orders keep their times.
func (d *OrderDAO) Insert(ctx context.Context, order Order) (Order, error) {
	for i := range order.Items {
		order.Items[i].Position = i
	}

	if err := d.db.WithContext(ctx).Omit("Store", "Table").Create(&order).Error; err != nil {
		return Order{}, err
	}

	return order, nil
}

// FindByID loads an order owned by storeID together with its store and table.
func (d *OrderDAO) FindByID(ctx context.Context, storeID, id uint) (Order, error) {
	var order Order

	result := preloadOrderItems(d.db.WithContext(ctx)).
		Preload("Store", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "address", "phone") }).
		Preload("Table").
		Where("store_id = ?", storeID).
		First(&order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}

		return Order{}, result.Error
	}

	return order, nil
}

// Find lists a store's orders newest first.
func (d *OrderDAO) Find(ctx context.Context, q OrderQuery) ([]Order, error) {
	tx := preloadOrderItems(d.db.WithContext(ctx)).
		Preload("Table").
		Where("store_id = ?", q.StoreID)

	if q.TableID != 0 {
		tx = tx.Where("table_id = ?", q.TableID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at <= ?", *q.To)
	}

	var orders []Order
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateStatus sets the status of a store's order unless its current status
// is one of notIn. It reports whether a row changed.
func (d *OrderDAO) UpdateStatus(ctx context.Context, storeID, id uint, status string, notIn []string) (bool, error) {
	tx := d.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ? AND store_id = ?", id, storeID)
	if len(notIn) > 0 {
		tx = tx.Where("status NOT IN ?", notIn)
	}

	result := tx.Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
