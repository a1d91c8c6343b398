package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository"
	"github.com/shopspring/decimal"
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByID(ctx context.Context, storeID, id uint) (domain.Item, error)
	FindByName(ctx context.Context, storeID uint, name string) (domain.Item, error)
	FindByStore(ctx context.Context, storeID uint) ([]domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	SetAvailability(ctx context.Context, storeID, id uint, available bool) (domain.Item, error)
	Delete(ctx context.Context, storeID, id uint) error
	CreateVariant(ctx context.Context, variant domain.Variant) (domain.Variant, error)
	UpdateVariant(ctx context.Context, variant domain.Variant) (domain.Variant, error)
	DeleteVariant(ctx context.Context, itemID, variantID uint) error
}

// ItemUpdate changes only the fields that are set.
type ItemUpdate struct {
	Name        *string
	Description *string
}

type ItemService struct {
	repo ItemRepository
}

func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// CreateItem adds an item with its default variant at price.
func (s *ItemService) CreateItem(ctx context.Context, storeID uint, name, description string, price decimal.Decimal) (domain.Item, error) {
	if err := s.ensureNameFree(ctx, storeID, 0, name); err != nil {
		return domain.Item{}, err
	}

	item, err := domain.NewItem(storeID, name, description, price)
	if err != nil {
		return domain.Item{}, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ItemService) ListItems(ctx context.Context, storeID uint) ([]domain.Item, error) {
	items, err := s.repo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStore -> %w", err)
	}

	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, storeID, itemID uint) (domain.Item, error) {
	item, err := s.repo.FindByID(ctx, storeID, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, storeID, itemID uint, update ItemUpdate) (domain.Item, error) {
	item, err := s.GetItem(ctx, storeID, itemID)
	if err != nil {
		return domain.Item{}, err
	}

	if update.Name != nil && !strings.EqualFold(*update.Name, item.Name) {
		if err = s.ensureNameFree(ctx, storeID, item.ID, *update.Name); err != nil {
			return domain.Item{}, err
		}
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// SetItemAvailability flips the item together with all of its variants.
func (s *ItemService) SetItemAvailability(ctx context.Context, storeID, itemID uint, available bool) (domain.Item, error) {
	updated, err := s.repo.SetAvailability(ctx, storeID, itemID, available)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.SetAvailability -> %w", err)
	}

	return updated, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, storeID, itemID uint) error {
	if err := s.repo.Delete(ctx, storeID, itemID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ItemService) AddVariant(ctx context.Context, storeID, itemID uint, name string, price decimal.Decimal) (domain.Variant, error) {
	item, err := s.GetItem(ctx, storeID, itemID)
	if err != nil {
		return domain.Variant{}, err
	}

	variant, err := item.AddVariant(name, price)
	if err != nil {
		return domain.Variant{}, err
	}

	created, err := s.repo.CreateVariant(ctx, variant)
	if err != nil {
		if errors.Is(err, repository.ErrVariantNameExists) {
			return domain.Variant{}, ErrVariantExists
		}

		return domain.Variant{}, fmt.Errorf("s.repo.CreateVariant -> %w", err)
	}

	return created, nil
}

// UpdateVariant renames and/or reprices a variant. Nil arguments are kept.
func (s *ItemService) UpdateVariant(ctx context.Context, storeID, itemID, variantID uint, name *string, price *decimal.Decimal) (domain.Variant, error) {
	item, err := s.GetItem(ctx, storeID, itemID)
	if err != nil {
		return domain.Variant{}, err
	}

	variant, err := item.EditVariant(variantID, name, price)
	if err != nil {
		return domain.Variant{}, err
	}

	return s.saveVariant(ctx, variant)
}

func (s *ItemService) SetVariantAvailability(ctx context.Context, storeID, itemID, variantID uint, available bool) (domain.Variant, error) {
	item, err := s.GetItem(ctx, storeID, itemID)
	if err != nil {
		return domain.Variant{}, err
	}

	variant, ok := item.VariantByID(variantID)
	if !ok {
		return domain.Variant{}, ErrVariantNotFound
	}
	variant.Available = available

	return s.saveVariant(ctx, variant)
}

// RemoveVariant deletes a variant. An item always keeps at least one.
func (s *ItemService) RemoveVariant(ctx context.Context, storeID, itemID, variantID uint) error {
	item, err := s.GetItem(ctx, storeID, itemID)
	if err != nil {
		return err
	}

	if err = item.RemoveVariant(variantID); err != nil {
		return err
	}

	if err = s.repo.DeleteVariant(ctx, item.ID, variantID); err != nil {
		switch {
		case errors.Is(err, repository.ErrLastVariant):
			return ErrLastVariant
		case errors.Is(err, repository.ErrVariantNotFound):
			return ErrVariantNotFound
		}

		return fmt.Errorf("s.repo.DeleteVariant -> %w", err)
	}

	return nil
}

func (s *ItemService) saveVariant(ctx context.Context, variant domain.Variant) (domain.Variant, error) {
	updated, err := s.repo.UpdateVariant(ctx, variant)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrVariantNotFound):
			return domain.Variant{}, ErrVariantNotFound
		case errors.Is(err, repository.ErrVariantNameExists):
			return domain.Variant{}, ErrVariantExists
		}

		return domain.Variant{}, fmt.Errorf("s.repo.UpdateVariant -> %w", err)
	}

	return updated, nil
}

// ensureNameFree fails with ErrItemExists when another item of the store,
// other than exceptID, already uses name.
func (s *ItemService) ensureNameFree(ctx context.Context, storeID, exceptID uint, name string) error {
	existing, err := s.repo.FindByName(ctx, storeID, name)
	if err == nil {
		if existing.ID != exceptID {
			return ErrItemExists
		}

		return nil
	}
	if !errors.Is(err, repository.ErrItemNotFound) {
		return fmt.Errorf("s.repo.FindByName -> %w", err)
	}

	return nil
}
