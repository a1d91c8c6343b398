package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository"
)

func TestItemService_CreateItem(t *testing.T) {
	svc := NewItemService(newFakeItems())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, 1, "Masala Dosa", "crispy", dec("120"))
	require.NoError(t, err)
	assert.True(t, item.Available)
	require.Len(t, item.Variants, 1)
	assert.Equal(t, domain.DefaultVariantName, item.Variants[0].Name)
	assert.True(t, dec("120").Equal(item.Variants[0].Price))

	_, err = svc.CreateItem(ctx, 1, "masala dosa", "", dec("100"))
	assert.ErrorIs(t, err, ErrItemExists)

	_, err = svc.CreateItem(ctx, 2, "Masala Dosa", "", dec("100"))
	assert.NoError(t, err, "names are unique per store")

	_, err = svc.CreateItem(ctx, 1, "Water", "", dec("0.5"))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestItemService_Variants(t *testing.T) {
	items := newFakeItems(domain.Item{
		ID: 1, StoreID: 1, Name: "Biryani", Available: true,
		Variants: []domain.Variant{{ID: 1, ItemID: 1, Name: "Full", Price: dec("300"), Available: true}},
	})
	svc := NewItemService(items)
	ctx := context.Background()

	err := svc.RemoveVariant(ctx, 1, 1, 1)
	assert.ErrorIs(t, err, ErrLastVariant)

	half, err := svc.AddVariant(ctx, 1, 1, "Half", dec("180"))
	require.NoError(t, err)

	_, err = svc.AddVariant(ctx, 1, 1, "HALF", dec("170"))
	assert.ErrorIs(t, err, ErrVariantExists)

	name := "Full"
	_, err = svc.UpdateVariant(ctx, 1, 1, half.ID, &name, nil)
	assert.ErrorIs(t, err, ErrVariantExists)

	price := dec("190")
	updated, err := svc.UpdateVariant(ctx, 1, 1, half.ID, nil, &price)
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))
	assert.Equal(t, "Half", updated.Name)

	off, err := svc.SetVariantAvailability(ctx, 1, 1, half.ID, false)
	require.NoError(t, err)
	assert.False(t, off.Available)

	require.NoError(t, svc.RemoveVariant(ctx, 1, 1, 1))
	err = svc.RemoveVariant(ctx, 1, 1, half.ID)
	assert.ErrorIs(t, err, ErrLastVariant)

	_, err = svc.AddVariant(ctx, 2, 1, "Family", dec("500"))
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemService_NameRaceLostToIndex(t *testing.T) {
	items := newFakeItems(domain.Item{
		ID: 1, StoreID: 1, Name: "Biryani", Available: true,
		Variants: []domain.Variant{{ID: 1, ItemID: 1, Name: "Full", Price: dec("300"), Available: true}},
	})
	svc := NewItemService(items)
	ctx := context.Background()

	items.writeErr = repository.ErrItemNameExists
	_, err := svc.CreateItem(ctx, 1, "Pulao", "", dec("200"))
	assert.ErrorIs(t, err, ErrItemExists)

	name := "Pulao"
	_, err = svc.UpdateItem(ctx, 1, 1, ItemUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrItemExists)

	items.writeErr = repository.ErrVariantNameExists
	_, err = svc.AddVariant(ctx, 1, 1, "Half", dec("180"))
	assert.ErrorIs(t, err, ErrVariantExists)

	_, err = svc.UpdateVariant(ctx, 1, 1, 1, &name, nil)
	assert.ErrorIs(t, err, ErrVariantExists)
}

func TestItemService_UpdateItem(t *testing.T) {
	items := newFakeItems(
		domain.Item{ID: 1, StoreID: 1, Name: "Idli"},
		domain.Item{ID: 2, StoreID: 1, Name: "Vada"},
	)
	svc := NewItemService(items)
	ctx := context.Background()

	taken := "vada"
	_, err := svc.UpdateItem(ctx, 1, 1, ItemUpdate{Name: &taken})
	assert.ErrorIs(t, err, ErrItemExists)

	recased := "IDLI"
	desc := "steamed"
	item, err := svc.UpdateItem(ctx, 1, 1, ItemUpdate{Name: &recased, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "IDLI", item.Name)
	assert.Equal(t, "steamed", item.Description)
}

func TestItemService_SetItemAvailability(t *testing.T) {
	items := newFakeItems(domain.Item{
		ID: 1, StoreID: 1, Name: "Thali", Available: true,
		Variants: []domain.Variant{
			{ID: 1, Name: "Full", Available: true},
			{ID: 2, Name: "Mini", Available: true},
		},
	})
	svc := NewItemService(items)

	item, err := svc.SetItemAvailability(context.Background(), 1, 1, false)
	require.NoError(t, err)
	assert.False(t, item.Available)
	for _, v := range item.Variants {
		assert.False(t, v.Available)
	}
}
