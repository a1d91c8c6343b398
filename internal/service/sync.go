package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository"
	"go.uber.org/zap"
)

const syncSaveFailed = "failed to save order"

type SyncOrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
}

type SyncNotifier interface {
	NotifySyncSummary(ctx context.Context, store domain.Store, succeeded, failed int)
}

// SyncService replays orders a store's point of sale took while offline.
type SyncService struct {
	repo     SyncOrderRepository
	stores   StoreFinder
	tables   TableFinder
	notifier SyncNotifier
	now      func() time.Time
}

func NewSyncService(repo SyncOrderRepository, stores StoreFinder, tables TableFinder, notifier SyncNotifier) *SyncService {
	return &SyncService{
		repo:     repo,
		stores:   stores,
		tables:   tables,
		notifier: notifier,
		now:      time.Now,
	}
}

// SyncOrders persists each record on its own. A bad record is reported in
// its outcome and does not stop the rest of the batch. Records carry no
// idempotency key, so submitting the same batch twice stores it twice.
func (s *SyncService) SyncOrders(ctx context.Context, storeID uint, records []domain.SyncRecord) (domain.SyncReport, error) {
	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return domain.SyncReport{}, fmt.Errorf("s.stores.FindByID -> %w", err)
	}

	report := domain.SyncReport{Outcomes: make([]domain.SyncOutcome, 0, len(records))}
	for _, record := range records {
		report.Add(s.syncOne(ctx, store, record))
	}

	if len(records) > 0 {
		s.notifier.NotifySyncSummary(context.WithoutCancel(ctx), store, report.Succeeded, report.Failed)
	}

	return report, nil
}

func (s *SyncService) syncOne(ctx context.Context, store domain.Store, record domain.SyncRecord) domain.SyncOutcome {
	outcome := domain.SyncOutcome{LocalRef: record.LocalRef}

	if err := record.Validate(); err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	table, err := s.tables.FindByID(ctx, store.ID, record.TableID)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			outcome.Error = ErrTableNotFound.Error()
			return outcome
		}

		zap.L().Error("failed to load table for offline order",
			zap.Uint("store_id", store.ID),
			zap.String("local_ref", record.LocalRef),
			zap.Error(err))
		outcome.Error = syncSaveFailed
		return outcome
	}

	status := domain.OrderPending
	if record.Status != "" {
		status, _ = domain.ParseOrderStatus(record.Status)
	}

	username := record.Username
	if username == "" {
		username = domain.DefaultUsername
	}

	now := s.now()
	createdAt, updatedAt := now, now
	if record.CreatedAt != nil {
		createdAt = *record.CreatedAt
	}
	if record.UpdatedAt != nil {
		updatedAt = *record.UpdatedAt
	}

	lines := make([]domain.LineItem, len(record.Items))
	for i, line := range record.Items {
		lines[i] = priced(line, line.ItemName, line.Variant, line.UnitPrice)
	}
	if err = domain.CheckOrderRange(lines, *record.Bill); err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	created, err := s.repo.Create(ctx, domain.Order{
		StoreID:       store.ID,
		TableID:       table.ID,
		Username:      username,
		Items:         lines,
		Billing:       *record.Bill,
		BillingSource: domain.BillingTrusted,
		Status:        status,
		Source:        domain.SourceOfflineSync,
		Synced:        true,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	})
	if err != nil {
		zap.L().Error("failed to save offline order",
			zap.Uint("store_id", store.ID),
			zap.String("local_ref", record.LocalRef),
			zap.Error(err))
		outcome.Error = syncSaveFailed
		return outcome
	}

	outcome.Success = true
	outcome.OrderID = created.ID

	return outcome
}
