package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restron/restron-api/internal/domain"
)

func syncRecord(ref string, tableID uint) domain.SyncRecord {
	return domain.SyncRecord{
		LocalRef: ref,
		TableID:  tableID,
		Items: []domain.LineItem{
			{ItemID: 1, ItemName: "Paneer Tikka", Variant: "Full", Quantity: 2, UnitPrice: dec("240")},
		},
		Bill: &domain.Bill{Subtotal: dec("480"), Total: dec("480")},
	}
}

func newSyncFixture() (*SyncService, *fakeOrders, *recordingNotifier) {
	stores := newFakeStores(domain.Store{ID: 1, Name: "Spice Route"})
	tables := newFakeTables(domain.Table{ID: 10, StoreID: 1, Number: 4})
	orders := newFakeOrders()
	notifier := &recordingNotifier{}

	return NewSyncService(orders, stores, tables, notifier), orders, notifier
}

func TestSyncService_SyncOrders_PartialFailure(t *testing.T) {
	svc, orders, notifier := newSyncFixture()

	bad := syncRecord("r3", 10)
	bad.Bill = nil

	records := []domain.SyncRecord{
		syncRecord("r1", 10),
		syncRecord("r2", 10),
		bad,
		syncRecord("r4", 10),
		syncRecord("r5", 10),
	}

	report, err := svc.SyncOrders(context.Background(), 1, records)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 4, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 5)
	for i, outcome := range report.Outcomes {
		assert.Equal(t, records[i].LocalRef, outcome.LocalRef)
	}
	assert.False(t, report.Outcomes[2].Success)
	assert.Equal(t, domain.ErrSyncMissingBilling.Error(), report.Outcomes[2].Error)
	assert.NotZero(t, report.Outcomes[3].OrderID)

	assert.Equal(t, 4, orders.count())
	require.Len(t, notifier.syncs, 1)
	assert.Equal(t, syncNote{succeeded: 4, failed: 1}, notifier.syncs[0])
}

func TestSyncService_SyncOrders_ForeignTableInBatch(t *testing.T) {
	svc, orders, notifier := newSyncFixture()

	records := []domain.SyncRecord{
		syncRecord("r1", 10),
		syncRecord("r2", 10),
		syncRecord("r3", 99),
		syncRecord("r4", 10),
		syncRecord("r5", 10),
	}

	report, err := svc.SyncOrders(context.Background(), 1, records)
	require.NoError(t, err)

	assert.Equal(t, 4, orders.count())
	assert.Equal(t, 4, report.Succeeded)
	assert.Equal(t, 1, report.Failed)

	var failures []domain.SyncOutcome
	for _, outcome := range report.Outcomes {
		if !outcome.Success {
			failures = append(failures, outcome)
		}
	}
	require.Len(t, failures, 1)
	assert.Equal(t, "r3", failures[0].LocalRef)
	assert.Equal(t, ErrTableNotFound.Error(), failures[0].Error)
	assert.Zero(t, failures[0].OrderID)

	require.Len(t, notifier.syncs, 1)
	assert.Equal(t, syncNote{succeeded: 4, failed: 1}, notifier.syncs[0])
}

func TestSyncService_SyncOrders_OutOfRange(t *testing.T) {
	svc, orders, notifier := newSyncFixture()

	hugeBill := syncRecord("huge", 10)
	hugeBill.Bill = &domain.Bill{Subtotal: dec("480"), Total: dec("1e11")}
	tooMany := syncRecord("many", 10)
	tooMany.Items[0].Quantity = domain.MaxQuantity + 1

	report, err := svc.SyncOrders(context.Background(), 1, []domain.SyncRecord{hugeBill, tooMany, syncRecord("ok", 10)})
	require.NoError(t, err)

	assert.Equal(t, ErrAmountOutOfRange.Error(), report.Outcomes[0].Error)
	assert.Equal(t, ErrQuantityOutOfRange.Error(), report.Outcomes[1].Error)
	assert.True(t, report.Outcomes[2].Success)
	assert.Equal(t, 1, orders.count())
	assert.Equal(t, []syncNote{{succeeded: 1, failed: 2}}, notifier.syncs)
}

func TestSyncService_SyncOrders_StoredAsOffline(t *testing.T) {
	svc, orders, _ := newSyncFixture()

	created := time.Date(2024, 3, 9, 20, 15, 0, 0, time.UTC)
	record := syncRecord("r1", 10)
	record.Status = "served"
	record.CreatedAt = &created

	report, err := svc.SyncOrders(context.Background(), 1, []domain.SyncRecord{record})
	require.NoError(t, err)
	require.True(t, report.Outcomes[0].Success)

	order, err := orders.FindByID(context.Background(), 1, report.Outcomes[0].OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderServed, order.Status)
	assert.Equal(t, domain.SourceOfflineSync, order.Source)
	assert.Equal(t, domain.BillingTrusted, order.BillingSource)
	assert.True(t, order.Synced)
	assert.Equal(t, created, order.CreatedAt)
	assert.Equal(t, domain.DefaultUsername, order.Username)
	assert.True(t, dec("480").Equal(order.Items[0].Total))
}

func TestSyncService_SyncOrders_RecordErrors(t *testing.T) {
	svc, orders, _ := newSyncFixture()
	orders.failOn = func(o domain.Order) bool { return o.Username == "explode" }

	foreignTable := syncRecord("foreign", 99)
	saveFails := syncRecord("save", 10)
	saveFails.Username = "explode"

	report, err := svc.SyncOrders(context.Background(), 1, []domain.SyncRecord{foreignTable, saveFails})
	require.NoError(t, err)

	assert.Equal(t, ErrTableNotFound.Error(), report.Outcomes[0].Error)
	assert.Equal(t, syncSaveFailed, report.Outcomes[1].Error)
	assert.Equal(t, 2, report.Failed)
}

func TestSyncService_SyncOrders_Empty(t *testing.T) {
	svc, _, notifier := newSyncFixture()

	report, err := svc.SyncOrders(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Empty(t, notifier.syncs)

	_, err = svc.SyncOrders(context.Background(), 2, nil)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}
