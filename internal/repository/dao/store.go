package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStoreEmailExists = errors.New("store already exists")
	ErrStoreNotFound    = errors.New("store not found")
)

type Store struct {
	ID      uint `gorm:"primaryKey"`
	AdminID uint `gorm:"not null;index"`

	Name     string `gorm:"not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Address  string `gorm:"not null"`
	Phone    string
	Status   string `gorm:"not null"`

	TaxEnabled           bool            `gorm:"not null"`
	TaxRate              decimal.Decimal `gorm:"type:numeric(6,4);not null"`
	ServiceChargeEnabled bool            `gorm:"not null"`
	ServiceChargeValue   decimal.Decimal `gorm:"type:numeric(12,4);not null"`

	SocketID   string      `gorm:"not null"`
	PushTokens []PushToken `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// PushToken is one registered mobile device of a store.
type PushToken struct {
	ID        uint   `gorm:"primaryKey"`
	StoreID   uint   `gorm:"not null;uniqueIndex:idx_store_push_token"`
	Token     string `gorm:"not null;uniqueIndex:idx_store_push_token"`
	CreatedAt time.Time
}

func (PushToken) TableName() string {
	return "store_push_tokens"
}

type StoreDAO struct {
	db *gorm.DB
}

func NewStoreDAO(db *gorm.DB) *StoreDAO {
	return &StoreDAO{
		db: db,
	}
}

func (d *StoreDAO) Insert(ctx context.Context, store Store) (Store, error) {
	result := d.db.WithContext(ctx).Omit("PushTokens").Create(&store)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_stores_email") {
			return Store{}, ErrStoreEmailExists
		}
		if isForeignKeyViolation(result.Error) {
			return Store{}, ErrAdminNotFound
		}

		return Store{}, result.Error
	}

	return store, nil
}

func (d *StoreDAO) FindByID(ctx context.Context, id uint) (Store, error) {
	var store Store

	result := d.db.WithContext(ctx).
		Preload("PushTokens", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&store, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Store{}, ErrStoreNotFound
		}

		return Store{}, result.Error
	}

	return store, nil
}

func (d *StoreDAO) FindByEmail(ctx context.Context, email string) (Store, error) {
	var store Store

	result := d.db.WithContext(ctx).First(&store, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Store{}, ErrStoreNotFound
		}

		return Store{}, result.Error
	}

	return store, nil
}

func (d *StoreDAO) FindByAdmin(ctx context.Context, adminID uint) ([]Store, error) {
	var stores []Store

	result := d.db.WithContext(ctx).Where("admin_id = ?", adminID).Order("id").Find(&stores)
	if result.Error != nil {
		return nil, result.Error
	}

	return stores, nil
}

func (d *StoreDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	return d.updateColumns(ctx, id, map[string]interface{}{"status": status})
}

// Close marks the store closed and drops its real-time session.
func (d *StoreDAO) Close(ctx context.Context, id uint, status string) error {
	return d.updateColumns(ctx, id, map[string]interface{}{"status": status, "socket_id": ""})
}

func (d *StoreDAO) UpdateCharges(ctx context.Context, store Store) (Store, error) {
	err := d.updateColumns(ctx, store.ID, map[string]interface{}{
		"tax_enabled":            store.TaxEnabled,
		"tax_rate":               store.TaxRate,
		"service_charge_enabled": store.ServiceChargeEnabled,
		"service_charge_value":   store.ServiceChargeValue,
	})
	if err != nil {
		return Store{}, err
	}

	return d.FindByID(ctx, store.ID)
}

func (d *StoreDAO) SetSocketID(ctx context.Context, id uint, socketID string) error {
	return d.updateColumns(ctx, id, map[string]interface{}{"socket_id": socketID})
}

// ClearSocketID drops the session only while it still equals socketID, so a
// late disconnect cannot erase a newer session.
func (d *StoreDAO) ClearSocketID(ctx context.Context, id uint, socketID string) (bool, error) {
	result := d.db.WithContext(ctx).
		Model(&Store{}).
		Where("id = ? AND socket_id = ?", id, socketID).
		Update("socket_id", "")
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (d *StoreDAO) AddPushToken(ctx context.Context, storeID uint, token string) error {
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&PushToken{StoreID: storeID, Token: token}).Error
}

// RemovePushToken deletes one token of a store in a single statement and
// reports how many rows went away.
func (d *StoreDAO) RemovePushToken(ctx context.Context, storeID uint, token string) (int64, error) {
	result := d.db.WithContext(ctx).
		Where("store_id = ? AND token = ?", storeID, token).
		Delete(&PushToken{})

	return result.RowsAffected, result.Error
}

func (d *StoreDAO) updateColumns(ctx context.Context, id uint, columns map[string]interface{}) error {
	result := d.db.WithContext(ctx).Model(&Store{ID: id}).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStoreNotFound
	}

	return nil
}
