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
	ErrItemNotFound      = errors.New("item not found")
	ErrItemNameExists    = errors.New("item with this name already exists")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrVariantNameExists = errors.New("variant already exists for this item")
	ErrLastVariant       = errors.New("cannot remove the only remaining variant")
)

// Names are unique per store and per item regardless of case. The indexes
// are created by InitTables.
const (
	itemNameIndex    = "idx_items_store_name"
	variantNameIndex = "idx_variants_item_name"
)

type Item struct {
	ID          uint      `gorm:"primaryKey"`
	StoreID     uint      `gorm:"not null;index"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Available   bool      `gorm:"not null"`
	Variants    []Variant `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Variant struct {
	ID        uint            `gorm:"primaryKey"`
	ItemID    uint            `gorm:"not null;index"`
	Name      string          `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available bool            `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func preloadVariants(db *gorm.DB) *gorm.DB {
	return db.Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	if err := d.db.WithContext(ctx).Create(&item).Error; err != nil {
		return Item{}, nameConflict(err)
	}

	return item, nil
}

func (d *ItemDAO) FindByID(ctx context.Context, storeID, id uint) (Item, error) {
	var item Item

	result := preloadVariants(d.db.WithContext(ctx)).
		Where("store_id = ?", storeID).
		First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

// FindByName matches the item name case-insensitively within a store.
func (d *ItemDAO) FindByName(ctx context.Context, storeID uint, name string) (Item, error) {
	var item Item

	result := preloadVariants(d.db.WithContext(ctx)).
		Where("store_id = ? AND LOWER(name) = LOWER(?)", storeID, name).
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindByStore(ctx context.Context, storeID uint) ([]Item, error) {
	var items []Item

	result := preloadVariants(d.db.WithContext(ctx)).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *ItemDAO) Update(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).
		Model(&Item{}).
		Where("id = ? AND store_id = ?", item.ID, item.StoreID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
		})
	if result.Error != nil {
		return Item{}, nameConflict(result.Error)
	}
	if result.RowsAffected == 0 {
		return Item{}, ErrItemNotFound
	}

	return d.FindByID(ctx, item.StoreID, item.ID)
}

// SetAvailability flips the item and all of its variants in one transaction.
func (d *ItemDAO) SetAvailability(ctx context.Context, storeID, id uint, available bool) (Item, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Item{}).
			Where("id = ? AND store_id = ?", id, storeID).
			Update("available", available)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrItemNotFound
		}

		return tx.Model(&Variant{}).Where("item_id = ?", id).Update("available", available).Error
	})
	if err != nil {
		return Item{}, err
	}

	return d.FindByID(ctx, storeID, id)
}

func (d *ItemDAO) Delete(ctx context.Context, storeID, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item Item
		if err := tx.Where("store_id = ?", storeID).First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if err := tx.Where("item_id = ?", id).Delete(&Variant{}).Error; err != nil {
			return err
		}

		return tx.Delete(&item).Error
	})
}

func (d *ItemDAO) InsertVariant(ctx context.Context, variant Variant) (Variant, error) {
	if err := d.db.WithContext(ctx).Create(&variant).Error; err != nil {
		return Variant{}, nameConflict(err)
	}

	return variant, nil
}

func (d *ItemDAO) UpdateVariant(ctx context.Context, variant Variant) (Variant, error) {
	result := d.db.WithContext(ctx).
		Model(&Variant{}).
		Where("id = ? AND item_id = ?", variant.ID, variant.ItemID).
		Updates(map[string]interface{}{
			"name":      variant.Name,
			"price":     variant.Price,
			"available": variant.Available,
		})
	if result.Error != nil {
		return Variant{}, nameConflict(result.Error)
	}
	if result.RowsAffected == 0 {
		return Variant{}, ErrVariantNotFound
	}

	var updated Variant
	if err := d.db.WithContext(ctx).First(&updated, variant.ID).Error; err != nil {
		return Variant{}, err
	}

	return updated, nil
}

// DeleteVariant removes a variant unless it is the last one of its item. The
// item row is locked so two concurrent removals cannot both pass the check.
func (d *ItemDAO) DeleteVariant(ctx context.Context, itemID, variantID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&Variant{}).Where("item_id = ?", itemID).Count(&count).Error; err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastVariant
		}

		result := tx.Where("id = ? AND item_id = ?", variantID, itemID).Delete(&Variant{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVariantNotFound
		}

		return nil
	})
}

// nameConflict maps a violation of the case-insensitive name indexes.
func nameConflict(err error) error {
	switch {
	case isUniqueViolation(err, itemNameIndex):
		return ErrItemNameExists
	case isUniqueViolation(err, variantNameIndex):
		return ErrVariantNameExists
	default:
		return err
	}
}
