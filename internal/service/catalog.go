package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository"
)

type CatalogItemRepository interface {
	FindByID(ctx context.Context, storeID, id uint) (domain.Item, error)
}

// CatalogService resolves the current price of an item variant. It is the
// only source of prices used when billing an order.
type CatalogService struct {
	repo CatalogItemRepository
}

func NewCatalogService(repo CatalogItemRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// Lookup finds the available variant named by ref within storeID's menu. The
// item must match both id and name; names compare case-insensitively.
func (s *CatalogService) Lookup(ctx context.Context, storeID uint, ref domain.ItemRef) (domain.CatalogEntry, error) {
	item, err := s.repo.FindByID(ctx, storeID, ref.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domain.CatalogEntry{}, fmt.Errorf("%w: %q", ErrItemUnavailable, ref.ItemName)
		}

		return domain.CatalogEntry{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !item.Available || !strings.EqualFold(item.Name, ref.ItemName) {
		return domain.CatalogEntry{}, fmt.Errorf("%w: %q", ErrItemUnavailable, ref.ItemName)
	}

	variant, ok := item.FindVariant(ref.Variant)
	if !ok || !variant.Available {
		return domain.CatalogEntry{}, fmt.Errorf("%w: %q of %q", ErrVariantUnavailable, ref.Variant, item.Name)
	}

	return domain.CatalogEntry{
		ItemID:    item.ID,
		ItemName:  item.Name,
		Variant:   variant.Name,
		UnitPrice: variant.Price,
	}, nil
}
