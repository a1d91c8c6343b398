package repository

import (
	"context"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository/dao"
)

var (
	ErrTableNotFound     = dao.ErrTableNotFound
	ErrTableNumberExists = dao.ErrTableNumberExists
	ErrTableInUse        = dao.ErrTableInUse
)

type TableDAO interface {
	InsertNext(ctx context.Context, storeID uint, link func(tableID uint) string) (dao.Table, error)
	FindByID(ctx context.Context, storeID, id uint) (dao.Table, error)
	FindByStore(ctx context.Context, storeID uint) ([]dao.Table, error)
	UpdateNumber(ctx context.Context, storeID, id uint, number int) (dao.Table, error)
	Delete(ctx context.Context, storeID, id uint) error
}

type TableRepository struct {
	dao TableDAO
}

func NewTableRepository(dao TableDAO) *TableRepository {
	return &TableRepository{
		dao: dao,
	}
}

// CreateNext adds the store's next numbered table. link builds the ordering
// link once the table id is known.
func (r *TableRepository) CreateNext(ctx context.Context, storeID uint, link func(tableID uint) string) (domain.Table, error) {
	created, err := r.dao.InsertNext(ctx, storeID, link)
	if err != nil {
		return domain.Table{}, fmt.Errorf("r.dao.InsertNext -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TableRepository) FindByID(ctx context.Context, storeID, id uint) (domain.Table, error) {
	found, err := r.dao.FindByID(ctx, storeID, id)
	if err != nil {
		return domain.Table{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TableRepository) FindByStore(ctx context.Context, storeID uint) ([]domain.Table, error) {
	found, err := r.dao.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStore -> %w", err)
	}

	tables := make([]domain.Table, len(found))
	for i, t := range found {
		tables[i] = r.daoToDomain(t)
	}

	return tables, nil
}

func (r *TableRepository) UpdateNumber(ctx context.Context, storeID, id uint, number int) (domain.Table, error) {
	updated, err := r.dao.UpdateNumber(ctx, storeID, id, number)
	if err != nil {
		return domain.Table{}, fmt.Errorf("r.dao.UpdateNumber -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TableRepository) Delete(ctx context.Context, storeID, id uint) error {
	if err := r.dao.Delete(ctx, storeID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TableRepository) daoToDomain(t dao.Table) domain.Table {
	return domain.Table{
		ID:        t.ID,
		StoreID:   t.StoreID,
		Number:    t.Number,
		QRLink:    t.QRLink,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
