package service

import (
	"context"
	"fmt"
	"time"

	"github.com/restron/restron-api/internal/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	FindByID(ctx context.Context, storeID, id uint) (domain.Order, error)
	Find(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, storeID, id uint, status domain.OrderStatus, notIn ...domain.OrderStatus) (bool, error)
}

type StoreFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Store, error)
}

type TableFinder interface {
	FindByID(ctx context.Context, storeID, id uint) (domain.Table, error)
}

type PriceLookup interface {
	Lookup(ctx context.Context, storeID uint, ref domain.ItemRef) (domain.CatalogEntry, error)
}

type OrderNotifier interface {
	NotifyNewOrder(ctx context.Context, store domain.Store, order domain.Order, tableNumber int)
}

type CreateOrderInput struct {
	StoreID  uint
	TableID  uint
	Username string
	Billing  domain.BillingSource
}

type OrderService struct {
	repo     OrderRepository
	stores   StoreFinder
	tables   TableFinder
	catalog  PriceLookup
	notifier OrderNotifier
	location *time.Location
	now      func() time.Time
}

// NewOrderService builds the order service. Day and month listings are
// interpreted in location.
func NewOrderService(
	repo OrderRepository,
	stores StoreFinder,
	tables TableFinder,
	catalog PriceLookup,
	notifier OrderNotifier,
	location *time.Location,
) *OrderService {
	if location == nil {
		location = time.Local
	}

	return &OrderService{
		repo:     repo,
		stores:   stores,
		tables:   tables,
		catalog:  catalog,
		notifier: notifier,
		location: location,
		now:      time.Now,
	}
}

// CreateOrder bills, persists and announces a new order. Nothing is written
// unless every line resolves and, for verified billing, every price matches
// the catalog. Notification failures never fail the order.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (domain.Order, error) {
	store, err := s.stores.FindByID(ctx, in.StoreID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.stores.FindByID -> %w", err)
	}

	table, err := s.tables.FindByID(ctx, store.ID, in.TableID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.tables.FindByID -> %w", err)
	}

	lines, bill, err := s.bill(ctx, store, in.Billing)
	if err != nil {
		return domain.Order{}, err
	}
	if err = domain.CheckOrderRange(lines, bill); err != nil {
		return domain.Order{}, err
	}

	username := in.Username
	if username == "" {
		username = domain.DefaultUsername
	}

	now := s.now()
	created, err := s.repo.Create(ctx, domain.Order{
		StoreID:       store.ID,
		TableID:       table.ID,
		Username:      username,
		Items:         lines,
		Billing:       bill,
		BillingSource: in.Billing.Mode(),
		Status:        domain.OrderPending,
		Source:        domain.SourceOnline,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	created.Table = &domain.TableProjection{ID: table.ID, Number: table.Number}

	s.notifier.NotifyNewOrder(context.WithoutCancel(ctx), store, created, table.Number)

	return created, nil
}

func (s *OrderService) bill(ctx context.Context, store domain.Store, src domain.BillingSource) ([]domain.LineItem, domain.Bill, error) {
	switch b := src.(type) {
	case domain.Verified:
		lines := make([]domain.LineItem, len(b.Lines))
		for i, line := range b.Lines {
			entry, err := s.catalog.Lookup(ctx, store.ID, domain.ItemRef{
				ItemID:   line.ItemID,
				ItemName: line.ItemName,
				Variant:  line.Variant,
			})
			if err != nil {
				return nil, domain.Bill{}, fmt.Errorf("s.catalog.Lookup -> %w", err)
			}
			if !line.UnitPrice.Equal(entry.UnitPrice) {
				return nil, domain.Bill{}, fmt.Errorf("%w: %s (%s)", ErrPriceMismatch, entry.ItemName, entry.Variant)
			}

			lines[i] = priced(line, entry.ItemName, entry.Variant, entry.UnitPrice)
		}

		return lines, domain.ComputeBill(lines, store.Charges), nil
	case domain.Trusted:
		lines := make([]domain.LineItem, len(b.Lines))
		for i, line := range b.Lines {
			lines[i] = priced(line, line.ItemName, line.Variant, line.UnitPrice)
		}

		return lines, b.Bill, nil
	default:
		return nil, domain.Bill{}, fmt.Errorf("unknown billing source %T", src)
	}
}

func priced(line domain.LineItem, name, variant string, unitPrice decimal.Decimal) domain.LineItem {
	line.ItemName = name
	line.Variant = variant
	line.UnitPrice = unitPrice
	line.Total = unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))

	return line
}

// GetOrder returns an order owned by storeID with its store and table.
func (s *OrderService) GetOrder(ctx context.Context, storeID, orderID uint) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, storeID, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return order, nil
}

func (s *OrderService) ListByStore(ctx context.Context, storeID uint) ([]domain.Order, error) {
	return s.find(ctx, domain.OrderFilter{StoreID: storeID})
}

func (s *OrderService) ListByStatus(ctx context.Context, storeID uint, status string) ([]domain.Order, error) {
	parsed, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	return s.find(ctx, domain.OrderFilter{StoreID: storeID, Status: parsed})
}

// ListByTable fails with ErrNoTableOrders when the table has no orders.
func (s *OrderService) ListByTable(ctx context.Context, storeID, tableID uint) ([]domain.Order, error) {
	orders, err := s.find(ctx, domain.OrderFilter{StoreID: storeID, TableID: tableID})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoTableOrders
	}

	return orders, nil
}

// ListByDay returns the orders placed on date (YYYY-MM-DD), from midnight to
// 23:59:59.999 in the service's location.
func (s *OrderService) ListByDay(ctx context.Context, storeID uint, date string) ([]domain.Order, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.find(ctx, domain.OrderFilter{
		StoreID: storeID,
		From:    day,
		To:      day.AddDate(0, 0, 1).Add(-time.Millisecond),
	})
}

func (s *OrderService) ListByMonth(ctx context.Context, storeID uint, month, year int) ([]domain.Order, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidMonth
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)

	return s.find(ctx, domain.OrderFilter{
		StoreID: storeID,
		From:    start,
		To:      start.AddDate(0, 1, 0).Add(-time.Millisecond),
	})
}

func (s *OrderService) find(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return orders, nil
}

// UpdateStatus moves an order to any status of the enum. Moving to cancelled
// applies the same guard as CancelOrder.
func (s *OrderService) UpdateStatus(ctx context.Context, storeID, orderID uint, status string) (domain.Order, error) {
	parsed, ok := domain.ParseOrderStatus(status)
	if !ok {
		return domain.Order{}, ErrInvalidStatus
	}

	return s.transition(ctx, storeID, orderID, parsed)
}

func (s *OrderService) CancelOrder(ctx context.Context, storeID, orderID uint) (domain.Order, error) {
	return s.transition(ctx, storeID, orderID, domain.OrderCancelled)
}

func (s *OrderService) transition(ctx context.Context, storeID, orderID uint, status domain.OrderStatus) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, storeID, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = order.SetStatus(status); err != nil {
		return domain.Order{}, err
	}

	// The guard is repeated in the write so a concurrent completion or
	// cancellation between the read and the update is not overwritten.
	var notIn []domain.OrderStatus
	if status == domain.OrderCancelled {
		notIn = []domain.OrderStatus{domain.OrderCompleted, domain.OrderCancelled}
	}

	updated, err := s.repo.UpdateStatus(ctx, storeID, orderID, status, notIn...)
	if err != nil {
		return domain.Order{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}
	if !updated {
		if status == domain.OrderCancelled {
			return domain.Order{}, ErrOrderNotCancellable
		}

		return domain.Order{}, ErrOrderNotFound
	}

	return s.GetOrder(ctx, storeID, orderID)
}
