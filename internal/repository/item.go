package repository

import (
	"context"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository/dao"
)

var (
	ErrItemNotFound      = dao.ErrItemNotFound
	ErrItemNameExists    = dao.ErrItemNameExists
	ErrVariantNotFound   = dao.ErrVariantNotFound
	ErrVariantNameExists = dao.ErrVariantNameExists
	ErrLastVariant       = dao.ErrLastVariant
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByID(ctx context.Context, storeID, id uint) (dao.Item, error)
	FindByName(ctx context.Context, storeID uint, name string) (dao.Item, error)
	FindByStore(ctx context.Context, storeID uint) ([]dao.Item, error)
	Update(ctx context.Context, item dao.Item) (dao.Item, error)
	SetAvailability(ctx context.Context, storeID, id uint, available bool) (dao.Item, error)
	Delete(ctx context.Context, storeID, id uint) error
	InsertVariant(ctx context.Context, variant dao.Variant) (dao.Variant, error)
	UpdateVariant(ctx context.Context, variant dao.Variant) (dao.Variant, error)
	DeleteVariant(ctx context.Context, itemID, variantID uint) error
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, storeID, id uint) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, storeID, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) FindByName(ctx context.Context, storeID uint, name string) (domain.Item, error) {
	found, err := r.dao.FindByName(ctx, storeID, name)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) FindByStore(ctx context.Context, storeID uint) ([]domain.Item, error) {
	found, err := r.dao.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStore -> %w", err)
	}

	items := make([]domain.Item, len(found))
	for i, item := range found {
		items[i] = r.daoToDomain(item)
	}

	return items, nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) SetAvailability(ctx context.Context, storeID, id uint, available bool) (domain.Item, error) {
	updated, err := r.dao.SetAvailability(ctx, storeID, id, available)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.SetAvailability -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) Delete(ctx context.Context, storeID, id uint) error {
	if err := r.dao.Delete(ctx, storeID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) CreateVariant(ctx context.Context, variant domain.Variant) (domain.Variant, error) {
	created, err := r.dao.InsertVariant(ctx, r.variantDomainToDao(variant))
	if err != nil {
		return domain.Variant{}, fmt.Errorf("r.dao.InsertVariant -> %w", err)
	}

	return r.variantDaoToDomain(created), nil
}

func (r *ItemRepository) UpdateVariant(ctx context.Context, variant domain.Variant) (domain.Variant, error) {
	updated, err := r.dao.UpdateVariant(ctx, r.variantDomainToDao(variant))
	if err != nil {
		return domain.Variant{}, fmt.Errorf("r.dao.UpdateVariant -> %w", err)
	}

	return r.variantDaoToDomain(updated), nil
}

func (r *ItemRepository) DeleteVariant(ctx context.Context, itemID, variantID uint) error {
	if err := r.dao.DeleteVariant(ctx, itemID, variantID); err != nil {
		return fmt.Errorf("r.dao.DeleteVariant -> %w", err)
	}

	return nil
}

func (r *ItemRepository) domainToDao(i domain.Item) dao.Item {
	variants := make([]dao.Variant, len(i.Variants))
	for idx, v := range i.Variants {
		variants[idx] = r.variantDomainToDao(v)
	}

	return dao.Item{
		ID:          i.ID,
		StoreID:     i.StoreID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		Variants:    variants,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r *ItemRepository) daoToDomain(i dao.Item) domain.Item {
	variants := make([]domain.Variant, len(i.Variants))
	for idx, v := range i.Variants {
		variants[idx] = r.variantDaoToDomain(v)
	}

	return domain.Item{
		ID:          i.ID,
		StoreID:     i.StoreID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		Variants:    variants,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r *ItemRepository) variantDomainToDao(v domain.Variant) dao.Variant {
	return dao.Variant{
		ID:        v.ID,
		ItemID:    v.ItemID,
		Name:      v.Name,
		Price:     v.Price,
		Available: v.Available,
	}
}

func (r *ItemRepository) variantDaoToDomain(v dao.Variant) domain.Variant {
	return domain.Variant{
		ID:        v.ID,
		ItemID:    v.ItemID,
		Name:      v.Name,
		Price:     v.Price,
		Available: v.Available,
	}
}
