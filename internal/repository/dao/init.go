package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// expressionIndexes cannot be declared with struct tags.
var expressionIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS " + itemNameIndex + " ON items (store_id, lower(name))",
	"CREATE UNIQUE INDEX IF NOT EXISTS " + variantNameIndex + " ON variants (item_id, lower(name))",
}

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&Admin{},
		&Store{},
		&PushToken{},
		&Item{},
		&Variant{},
		&Table{},
		&Order{},
		&OrderItem{},
	)
	if err != nil {
		return err
	}

	for _, stmt := range expressionIndexes {
		if err = db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique violation on
// the named constraint or index.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}

	return pgErr.ConstraintName == constraint || strings.Contains(pgErr.Message, `"`+constraint+`"`)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
