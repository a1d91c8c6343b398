package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTableNotFound     = errors.New("table not found")
	ErrTableNumberExists = errors.New("table number already exists")
	ErrTableInUse        = errors.New("table has orders and cannot be removed")
)

type Table struct {
	ID        uint   `gorm:"primaryKey"`
	StoreID   uint   `gorm:"not null;uniqueIndex:idx_store_table_number"`
	Number    int    `gorm:"not null;uniqueIndex:idx_store_table_number"`
	QRLink    string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TableDAO struct {
	db *gorm.DB
}

func NewTableDAO(db *gorm.DB) *TableDAO {
	return &TableDAO{
		db: db,
	}
}

// InsertNext creates the store's next table, numbered max(existing)+1. The
// store row is locked for the duration so concurrent inserts cannot collide.
func (d *TableDAO) InsertNext(ctx context.Context, storeID uint, link func(tableID uint) string) (Table, error) {
	var table Table

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var store Store
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&store, storeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStoreNotFound
			}
			return err
		}

		var last int
		if err := tx.Model(&Table{}).
			Where("store_id = ?", storeID).
			Select("COALESCE(MAX(number), 0)").
			Scan(&last).Error; err != nil {
			return err
		}

		table = Table{StoreID: storeID, Number: last + 1}
		if err := tx.Create(&table).Error; err != nil {
			return err
		}

		table.QRLink = link(table.ID)

		return tx.Model(&table).Update("qr_link", table.QRLink).Error
	})
	if err != nil {
		return Table{}, err
	}

	return table, nil
}

func (d *TableDAO) FindByID(ctx context.Context, storeID, id uint) (Table, error) {
	var table Table

	result := d.db.WithContext(ctx).Where("store_id = ?", storeID).First(&table, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Table{}, ErrTableNotFound
		}

		return Table{}, result.Error
	}

	return table, nil
}

func (d *TableDAO) FindByStore(ctx context.Context, storeID uint) ([]Table, error) {
	var tables []Table

	result := d.db.WithContext(ctx).Where("store_id = ?", storeID).Order("number").Find(&tables)
	if result.Error != nil {
		return nil, result.Error
	}

	return tables, nil
}

func (d *TableDAO) UpdateNumber(ctx context.Context, storeID, id uint, number int) (Table, error) {
	result := d.db.WithContext(ctx).
		Model(&Table{}).
		Where("id = ? AND store_id = ?", id, storeID).
		Update("number", number)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_store_table_number") {
			return Table{}, ErrTableNumberExists
		}

		return Table{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Table{}, ErrTableNotFound
	}

	return d.FindByID(ctx, storeID, id)
}

func (d *TableDAO) Delete(ctx context.Context, storeID, id uint) error {
	result := d.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).Delete(&Table{})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrTableInUse
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}
