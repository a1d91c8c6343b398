package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restron/restron-api/internal/domain"
)

type linkingTables struct {
	created []domain.Table
}

func (r *linkingTables) CreateNext(_ context.Context, storeID uint, link func(tableID uint) string) (domain.Table, error) {
	t := domain.Table{
		ID:      uint(len(r.created) + 40),
		StoreID: storeID,
		Number:  len(r.created) + 1,
	}
	t.QRLink = link(t.ID)
	r.created = append(r.created, t)
	return t, nil
}

func (r *linkingTables) FindByID(context.Context, uint, uint) (domain.Table, error) {
	return domain.Table{}, ErrTableNotFound
}

func (r *linkingTables) FindByStore(context.Context, uint) ([]domain.Table, error) {
	return r.created, nil
}

func (r *linkingTables) UpdateNumber(context.Context, uint, uint, int) (domain.Table, error) {
	return domain.Table{}, ErrTableNumberExists
}

func (r *linkingTables) Delete(context.Context, uint, uint) error {
	return ErrTableInUse
}

func TestTableService(t *testing.T) {
	repo := &linkingTables{}
	svc := NewTableService(repo, "https://order.example.com/")
	ctx := context.Background()

	first, err := svc.CreateTable(ctx, 3)
	require.NoError(t, err)
	second, err := svc.CreateTable(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, "https://order.example.com/order/3/41", second.QRLink)

	tables, err := svc.ListTables(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, tables, 2)

	_, err = svc.GetTable(ctx, 3, 1)
	assert.ErrorIs(t, err, ErrTableNotFound)

	_, err = svc.RenumberTable(ctx, 3, 40, 2)
	assert.ErrorIs(t, err, ErrTableNumberExists)

	assert.ErrorIs(t, svc.DeleteTable(ctx, 3, 40), ErrTableInUse)
}
