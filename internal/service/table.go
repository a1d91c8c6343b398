package service

import (
	"context"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
)

type TableRepository interface {
	CreateNext(ctx context.Context, storeID uint, link func(tableID uint) string) (domain.Table, error)
	FindByID(ctx context.Context, storeID, id uint) (domain.Table, error)
	FindByStore(ctx context.Context, storeID uint) ([]domain.Table, error)
	UpdateNumber(ctx context.Context, storeID, id uint, number int) (domain.Table, error)
	Delete(ctx context.Context, storeID, id uint) error
}

type TableService struct {
	repo      TableRepository
	clientURL string
}

// NewTableService builds the table service. clientURL is the base of the
// customer ordering app that table links point to.
func NewTableService(repo TableRepository, clientURL string) *TableService {
	return &TableService{
		repo:      repo,
		clientURL: clientURL,
	}
}

// CreateTable adds the store's next table, numbered after the highest one.
func (s *TableService) CreateTable(ctx context.Context, storeID uint) (domain.Table, error) {
	table, err := s.repo.CreateNext(ctx, storeID, func(tableID uint) string {
		return domain.OrderingLink(s.clientURL, storeID, tableID)
	})
	if err != nil {
		return domain.Table{}, fmt.Errorf("s.repo.CreateNext -> %w", err)
	}

	return table, nil
}

func (s *TableService) ListTables(ctx context.Context, storeID uint) ([]domain.Table, error) {
	tables, err := s.repo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStore -> %w", err)
	}

	return tables, nil
}

func (s *TableService) GetTable(ctx context.Context, storeID, tableID uint) (domain.Table, error) {
	table, err := s.repo.FindByID(ctx, storeID, tableID)
	if err != nil {
		return domain.Table{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return table, nil
}

func (s *TableService) RenumberTable(ctx context.Context, storeID, tableID uint, number int) (domain.Table, error) {
	table, err := s.repo.UpdateNumber(ctx, storeID, tableID, number)
	if err != nil {
		return domain.Table{}, fmt.Errorf("s.repo.UpdateNumber -> %w", err)
	}

	return table, nil
}

func (s *TableService) DeleteTable(ctx context.Context, storeID, tableID uint) error {
	if err := s.repo.Delete(ctx, storeID, tableID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
