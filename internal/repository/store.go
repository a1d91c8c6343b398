package repository

import (
	"context"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository/dao"
)

var (
	ErrStoreEmailExists = dao.ErrStoreEmailExists
	ErrStoreNotFound    = dao.ErrStoreNotFound
)

type StoreDAO interface {
	Insert(ctx context.Context, store dao.Store) (dao.Store, error)
	FindByID(ctx context.Context, id uint) (dao.Store, error)
	FindByEmail(ctx context.Context, email string) (dao.Store, error)
	FindByAdmin(ctx context.Context, adminID uint) ([]dao.Store, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Close(ctx context.Context, id uint, status string) error
	UpdateCharges(ctx context.Context, store dao.Store) (dao.Store, error)
	SetSocketID(ctx context.Context, id uint, socketID string) error
	ClearSocketID(ctx context.Context, id uint, socketID string) (bool, error)
	AddPushToken(ctx context.Context, storeID uint, token string) error
	RemovePushToken(ctx context.Context, storeID uint, token string) (int64, error)
}

type StoreRepository struct {
	dao StoreDAO
}

func NewStoreRepository(dao StoreDAO) *StoreRepository {
	return &StoreRepository{
		dao: dao,
	}
}

func (r *StoreRepository) Create(ctx context.Context, store domain.Store) (domain.Store, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(store))
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id uint) (domain.Store, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StoreRepository) FindByEmail(ctx context.Context, email string) (domain.Store, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StoreRepository) FindByAdmin(ctx context.Context, adminID uint) ([]domain.Store, error) {
	found, err := r.dao.FindByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAdmin -> %w", err)
	}

	stores := make([]domain.Store, 0, len(found))
	for _, s := range found {
		stores = append(stores, r.daoToDomain(s))
	}

	return stores, nil
}

func (r *StoreRepository) UpdateStatus(ctx context.Context, id uint, status domain.StoreStatus) error {
	if status == domain.StoreClosed {
		if err := r.dao.Close(ctx, id, string(status)); err != nil {
			return fmt.Errorf("r.dao.Close -> %w", err)
		}

		return nil
	}

	if err := r.dao.UpdateStatus(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}

func (r *StoreRepository) UpdateCharges(ctx context.Context, id uint, charges domain.Charges) (domain.Store, error) {
	updated, err := r.dao.UpdateCharges(ctx, dao.Store{
		ID:                   id,
		TaxEnabled:           charges.TaxEnabled,
		TaxRate:              charges.TaxRate,
		ServiceChargeEnabled: charges.ServiceChargeEnabled,
		ServiceChargeValue:   charges.ServiceChargeValue,
	})
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.UpdateCharges -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StoreRepository) SetSocketID(ctx context.Context, id uint, socketID string) error {
	if err := r.dao.SetSocketID(ctx, id, socketID); err != nil {
		return fmt.Errorf("r.dao.SetSocketID -> %w", err)
	}

	return nil
}

func (r *StoreRepository) ClearSocketID(ctx context.Context, id uint, socketID string) (bool, error) {
	cleared, err := r.dao.ClearSocketID(ctx, id, socketID)
	if err != nil {
		return false, fmt.Errorf("r.dao.ClearSocketID -> %w", err)
	}

	return cleared, nil
}

func (r *StoreRepository) AddPushToken(ctx context.Context, storeID uint, token string) error {
	if err := r.dao.AddPushToken(ctx, storeID, token); err != nil {
		return fmt.Errorf("r.dao.AddPushToken -> %w", err)
	}

	return nil
}

func (r *StoreRepository) RemovePushToken(ctx context.Context, storeID uint, token string) (bool, error) {
	removed, err := r.dao.RemovePushToken(ctx, storeID, token)
	if err != nil {
		return false, fmt.Errorf("r.dao.RemovePushToken -> %w", err)
	}

	return removed > 0, nil
}

func (r *StoreRepository) domainToDao(s domain.Store) dao.Store {
	return dao.Store{
		ID:                   s.ID,
		AdminID:              s.AdminID,
		Name:                 s.Name,
		Email:                s.Email,
		Password:             s.Password,
		Address:              s.Address,
		Phone:                s.Phone,
		Status:               string(s.Status),
		TaxEnabled:           s.Charges.TaxEnabled,
		TaxRate:              s.Charges.TaxRate,
		ServiceChargeEnabled: s.Charges.ServiceChargeEnabled,
		ServiceChargeValue:   s.Charges.ServiceChargeValue,
		SocketID:             s.SocketID,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (r *StoreRepository) daoToDomain(s dao.Store) domain.Store {
	tokens := make([]string, 0, len(s.PushTokens))
	for _, t := range s.PushTokens {
		tokens = append(tokens, t.Token)
	}

	return domain.Store{
		ID:       s.ID,
		AdminID:  s.AdminID,
		Name:     s.Name,
		Email:    s.Email,
		Password: s.Password,
		Address:  s.Address,
		Phone:    s.Phone,
		Status:   domain.StoreStatus(s.Status),
		Charges: domain.Charges{
			TaxEnabled:           s.TaxEnabled,
			TaxRate:              s.TaxRate,
			ServiceChargeEnabled: s.ServiceChargeEnabled,
			ServiceChargeValue:   s.ServiceChargeValue,
		},
		SocketID:   s.SocketID,
		PushTokens: tokens,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
