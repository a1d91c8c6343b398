package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository"
)

var errBoom = errors.New("boom")

type fakeStores struct {
	mu      sync.Mutex
	byID    map[uint]domain.Store
	removed []string
}

func newFakeStores(stores ...domain.Store) *fakeStores {
	f := &fakeStores{byID: map[uint]domain.Store{}}
	for _, s := range stores {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeStores) Create(_ context.Context, store domain.Store) (domain.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.byID {
		if strings.EqualFold(s.Email, store.Email) {
			return domain.Store{}, repository.ErrStoreEmailExists
		}
	}
	store.ID = uint(len(f.byID) + 1)
	f.byID[store.ID] = store
	return store, nil
}

func (f *fakeStores) FindByID(_ context.Context, id uint) (domain.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok {
		return domain.Store{}, repository.ErrStoreNotFound
	}
	return s, nil
}

func (f *fakeStores) FindByEmail(_ context.Context, email string) (domain.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.byID {
		if s.Email == email {
			return s, nil
		}
	}
	return domain.Store{}, repository.ErrStoreNotFound
}

func (f *fakeStores) FindByAdmin(_ context.Context, adminID uint) ([]domain.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stores []domain.Store
	for _, s := range f.byID {
		if s.AdminID == adminID {
			stores = append(stores, s)
		}
	}
	return stores, nil
}

func (f *fakeStores) UpdateStatus(_ context.Context, id uint, status domain.StoreStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok {
		return repository.ErrStoreNotFound
	}
	s.Status = status
	if status == domain.StoreClosed {
		s.SocketID = ""
	}
	f.byID[id] = s
	return nil
}

func (f *fakeStores) UpdateCharges(_ context.Context, id uint, charges domain.Charges) (domain.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok {
		return domain.Store{}, repository.ErrStoreNotFound
	}
	s.Charges = charges
	f.byID[id] = s
	return s, nil
}

func (f *fakeStores) SetSocketID(_ context.Context, id uint, socketID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok {
		return repository.ErrStoreNotFound
	}
	s.SocketID = socketID
	f.byID[id] = s
	return nil
}

func (f *fakeStores) ClearSocketID(_ context.Context, id uint, socketID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok || s.SocketID != socketID {
		return false, nil
	}
	s.SocketID = ""
	f.byID[id] = s
	return true, nil
}

func (f *fakeStores) AddPushToken(_ context.Context, storeID uint, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[storeID]
	if !ok {
		return repository.ErrStoreNotFound
	}
	for _, t := range s.PushTokens {
		if t == token {
			return nil
		}
	}
	s.PushTokens = append(s.PushTokens, token)
	f.byID[storeID] = s
	return nil
}

func (f *fakeStores) RemovePushToken(_ context.Context, storeID uint, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, token)
	s, ok := f.byID[storeID]
	if !ok {
		return false, nil
	}
	for i, t := range s.PushTokens {
		if t == token {
			s.PushTokens = append(s.PushTokens[:i:i], s.PushTokens[i+1:]...)
			f.byID[storeID] = s
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStores) removedTokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.removed...)
}

type fakeAdmins struct {
	mu   sync.Mutex
	byID map[uint]domain.Admin
}

func newFakeAdmins(admins ...domain.Admin) *fakeAdmins {
	f := &fakeAdmins{byID: map[uint]domain.Admin{}}
	for _, a := range admins {
		f.byID[a.ID] = a
	}
	return f
}

func (f *fakeAdmins) Create(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insert(admin)
}

func (f *fakeAdmins) CreateFirst(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.byID) > 0 {
		return domain.Admin{}, repository.ErrAdminsExist
	}
	return f.insert(admin)
}

func (f *fakeAdmins) insert(admin domain.Admin) (domain.Admin, error) {
	for _, a := range f.byID {
		if strings.EqualFold(a.Email, admin.Email) {
			return domain.Admin{}, repository.ErrAdminEmailExists
		}
	}
	admin.ID = uint(len(f.byID) + 1)
	f.byID[admin.ID] = admin
	return admin, nil
}

func (f *fakeAdmins) FindByID(_ context.Context, id uint) (domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return domain.Admin{}, repository.ErrAdminNotFound
	}
	return a, nil
}

func (f *fakeAdmins) FindByEmail(_ context.Context, email string) (domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return domain.Admin{}, repository.ErrAdminNotFound
}

type fakeTables struct {
	byID map[uint]domain.Table
}

func newFakeTables(tables ...domain.Table) *fakeTables {
	f := &fakeTables{byID: map[uint]domain.Table{}}
	for _, t := range tables {
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeTables) FindByID(_ context.Context, storeID, id uint) (domain.Table, error) {
	t, ok := f.byID[id]
	if !ok || t.StoreID != storeID {
		return domain.Table{}, repository.ErrTableNotFound
	}
	return t, nil
}

type fakeItems struct {
	byID map[uint]domain.Item
	// writeErr stands in for a unique index rejecting a write that lost a
	// race with another request.
	writeErr error
}

func newFakeItems(items ...domain.Item) *fakeItems {
	f := &fakeItems{byID: map[uint]domain.Item{}}
	for _, i := range items {
		f.byID[i.ID] = i
	}
	return f
}

func (f *fakeItems) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	if f.writeErr != nil {
		return domain.Item{}, f.writeErr
	}
	item.ID = uint(len(f.byID) + 1)
	for i := range item.Variants {
		item.Variants[i].ID = uint(i + 1)
		item.Variants[i].ItemID = item.ID
	}
	f.byID[item.ID] = item
	return item, nil
}

func (f *fakeItems) FindByID(_ context.Context, storeID, id uint) (domain.Item, error) {
	i, ok := f.byID[id]
	if !ok || i.StoreID != storeID {
		return domain.Item{}, repository.ErrItemNotFound
	}
	i.Variants = append([]domain.Variant(nil), i.Variants...)
	return i, nil
}

func (f *fakeItems) FindByName(_ context.Context, storeID uint, name string) (domain.Item, error) {
	for _, i := range f.byID {
		if i.StoreID == storeID && strings.EqualFold(i.Name, name) {
			return i, nil
		}
	}
	return domain.Item{}, repository.ErrItemNotFound
}

func (f *fakeItems) FindByStore(_ context.Context, storeID uint) ([]domain.Item, error) {
	var items []domain.Item
	for _, i := range f.byID {
		if i.StoreID == storeID {
			items = append(items, i)
		}
	}
	return items, nil
}

func (f *fakeItems) Update(_ context.Context, item domain.Item) (domain.Item, error) {
	if f.writeErr != nil {
		return domain.Item{}, f.writeErr
	}
	f.byID[item.ID] = item
	return item, nil
}

func (f *fakeItems) SetAvailability(ctx context.Context, storeID, id uint, available bool) (domain.Item, error) {
	item, err := f.FindByID(ctx, storeID, id)
	if err != nil {
		return domain.Item{}, err
	}
	item.SetAvailability(available)
	f.byID[id] = item
	return item, nil
}

func (f *fakeItems) Delete(ctx context.Context, storeID, id uint) error {
	if _, err := f.FindByID(ctx, storeID, id); err != nil {
		return err
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeItems) CreateVariant(_ context.Context, variant domain.Variant) (domain.Variant, error) {
	if f.writeErr != nil {
		return domain.Variant{}, f.writeErr
	}
	item := f.byID[variant.ItemID]
	variant.ID = uint(100 + len(item.Variants))
	item.Variants = append(item.Variants, variant)
	f.byID[item.ID] = item
	return variant, nil
}

func (f *fakeItems) UpdateVariant(_ context.Context, variant domain.Variant) (domain.Variant, error) {
	if f.writeErr != nil {
		return domain.Variant{}, f.writeErr
	}
	item := f.byID[variant.ItemID]
	for i, v := range item.Variants {
		if v.ID == variant.ID {
			item.Variants[i] = variant
			f.byID[item.ID] = item
			return variant, nil
		}
	}
	return domain.Variant{}, repository.ErrVariantNotFound
}

func (f *fakeItems) DeleteVariant(_ context.Context, itemID, variantID uint) error {
	item := f.byID[itemID]
	if len(item.Variants) <= 1 {
		return repository.ErrLastVariant
	}
	for i, v := range item.Variants {
		if v.ID == variantID {
			item.Variants = append(item.Variants[:i:i], item.Variants[i+1:]...)
			f.byID[itemID] = item
			return nil
		}
	}
	return repository.ErrVariantNotFound
}

type updateCall struct {
	status domain.OrderStatus
	notIn  []domain.OrderStatus
}

type fakeOrders struct {
	mu        sync.Mutex
	byID      map[uint]domain.Order
	nextID    uint
	failOn    func(domain.Order) bool
	filters   []domain.OrderFilter
	updates   []updateCall
	createErr error
}

func newFakeOrders(orders ...domain.Order) *fakeOrders {
	f := &fakeOrders{byID: map[uint]domain.Order{}, nextID: 1000}
	for _, o := range orders {
		f.byID[o.ID] = o
	}
	return f
}

func (f *fakeOrders) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}
	if f.failOn != nil && f.failOn(order) {
		return domain.Order{}, errBoom
	}
	f.nextID++
	order.ID = f.nextID
	f.byID[order.ID] = order
	return order, nil
}

func (f *fakeOrders) FindByID(_ context.Context, storeID, id uint) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || o.StoreID != storeID {
		return domain.Order{}, repository.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrders) Find(_ context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	var orders []domain.Order
	for _, o := range f.byID {
		if o.StoreID != filter.StoreID {
			continue
		}
		if filter.TableID != 0 && o.TableID != filter.TableID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, storeID, id uint, status domain.OrderStatus, notIn ...domain.OrderStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updateCall{status: status, notIn: notIn})
	o, ok := f.byID[id]
	if !ok || o.StoreID != storeID {
		return false, nil
	}
	for _, s := range notIn {
		if o.Status == s {
			return false, nil
		}
	}
	o.Status = status
	f.byID[id] = o
	return true, nil
}

func (f *fakeOrders) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type newOrderNote struct {
	store       domain.Store
	order       domain.Order
	tableNumber int
}

type syncNote struct {
	succeeded, failed int
}

type recordingNotifier struct {
	mu       sync.Mutex
	newOrder []newOrderNote
	syncs    []syncNote
}

func (n *recordingNotifier) NotifyNewOrder(_ context.Context, store domain.Store, order domain.Order, tableNumber int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.newOrder = append(n.newOrder, newOrderNote{store: store, order: order, tableNumber: tableNumber})
}

func (n *recordingNotifier) NotifySyncSummary(_ context.Context, _ domain.Store, succeeded, failed int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.syncs = append(n.syncs, syncNote{succeeded: succeeded, failed: failed})
}
