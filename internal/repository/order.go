package repository

import (
	"context"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository/dao"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = dao.ErrOrderNotFound

// moneyPlaces matches the scale of the numeric money columns.
const moneyPlaces = 2

type OrderDAO interface {
	Insert(ctx context.Context, order dao.Order) (dao.Order, error)
	FindByID(ctx context.Context, storeID, id uint) (dao.Order, error)
	Find(ctx context.Context, q dao.OrderQuery) ([]dao.Order, error)
	UpdateStatus(ctx context.Context, storeID, id uint, status string, notIn []string) (bool, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(order))
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, storeID, id uint) (domain.Order, error) {
	found, err := r.dao.FindByID(ctx, storeID, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	order := r.daoToDomain(found)
	order.Store = &domain.StoreProjection{
		ID:      found.Store.ID,
		Name:    found.Store.Name,
		Address: found.Store.Address,
		Phone:   found.Store.Phone,
	}

	return order, nil
}

func (r *OrderRepository) Find(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	q := dao.OrderQuery{
		StoreID: filter.StoreID,
		TableID: filter.TableID,
		Status:  string(filter.Status),
	}
	if !filter.From.IsZero() {
		q.From = &filter.From
	}
	if !filter.To.IsZero() {
		q.To = &filter.To
	}

	found, err := r.dao.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	orders := make([]domain.Order, len(found))
	for i, o := range found {
		orders[i] = r.daoToDomain(o)
	}

	return orders, nil
}

// UpdateStatus writes status unless the order currently sits in one of
// notIn. It reports whether the order changed.
func (r *OrderRepository) UpdateStatus(ctx context.Context, storeID, id uint, status domain.OrderStatus, notIn ...domain.OrderStatus) (bool, error) {
	excluded := make([]string, len(notIn))
	for i, s := range notIn {
		excluded[i] = string(s)
	}

	updated, err := r.dao.UpdateStatus(ctx, storeID, id, string(status), excluded)
	if err != nil {
		return false, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return updated, nil
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

func (r *OrderRepository) domainToDao(o domain.Order) dao.Order {
	items := make([]dao.OrderItem, len(o.Items))
	for i, line := range o.Items {
		items[i] = dao.OrderItem{
			ItemID:    line.ItemID,
			ItemName:  line.ItemName,
			Variant:   line.Variant,
			Quantity:  line.Quantity,
			UnitPrice: money(line.UnitPrice),
			Total:     money(line.Total),
		}
	}

	return dao.Order{
		ID:                   o.ID,
		StoreID:              o.StoreID,
		TableID:              o.TableID,
		Username:             o.Username,
		Items:                items,
		Subtotal:             money(o.Billing.Subtotal),
		TaxAmount:            money(o.Billing.TaxAmount),
		ServiceChargeAmount:  money(o.Billing.ServiceChargeAmount),
		Total:                money(o.Billing.Total),
		TaxEnabled:           o.Billing.TaxEnabled,
		TaxRate:              o.Billing.TaxRate,
		ServiceChargeEnabled: o.Billing.ServiceChargeEnabled,
		ServiceChargeValue:   o.Billing.ServiceChargeValue,
		BillingSource:        string(o.BillingSource),
		Status:               string(o.Status),
		Source:               string(o.Source),
		Synced:               o.Synced,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func (r *OrderRepository) daoToDomain(o dao.Order) domain.Order {
	lines := make([]domain.LineItem, len(o.Items))
	for i, item := range o.Items {
		lines[i] = domain.LineItem{
			ItemID:    item.ItemID,
			ItemName:  item.ItemName,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}

	order := domain.Order{
		ID:       o.ID,
		StoreID:  o.StoreID,
		TableID:  o.TableID,
		Username: o.Username,
		Items:    lines,
		Billing: domain.Bill{
			Subtotal:            o.Subtotal,
			TaxAmount:           o.TaxAmount,
			ServiceChargeAmount: o.ServiceChargeAmount,
			Total:               o.Total,
			Charges: domain.Charges{
				TaxEnabled:           o.TaxEnabled,
				TaxRate:              o.TaxRate,
				ServiceChargeEnabled: o.ServiceChargeEnabled,
				ServiceChargeValue:   o.ServiceChargeValue,
			},
		},
		BillingSource: domain.BillingMode(o.BillingSource),
		Status:        domain.OrderStatus(o.Status),
		Source:        domain.OrderSource(o.Source),
		Synced:        o.Synced,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Table.ID != 0 {
		order.Table = &domain.TableProjection{ID: o.Table.ID, Number: o.Table.Number}
	}

	return order
}
