package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type StoreRepository interface {
	Create(ctx context.Context, store domain.Store) (domain.Store, error)
	FindByID(ctx context.Context, id uint) (domain.Store, error)
	FindByEmail(ctx context.Context, email string) (domain.Store, error)
	UpdateStatus(ctx context.Context, id uint, status domain.StoreStatus) error
	UpdateCharges(ctx context.Context, id uint, charges domain.Charges) (domain.Store, error)
	SetSocketID(ctx context.Context, id uint, socketID string) error
	ClearSocketID(ctx context.Context, id uint, socketID string) (bool, error)
	AddPushToken(ctx context.Context, storeID uint, token string) error
	RemovePushToken(ctx context.Context, storeID uint, token string) (bool, error)
}

// AdminFinder resolves the admin registering a store.
type AdminFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Admin, error)
}

// ChargesUpdate changes only the settings that are set.
type ChargesUpdate struct {
	TaxEnabled           *bool
	TaxRate              *decimal.Decimal
	ServiceChargeEnabled *bool
	ServiceChargeValue   *decimal.Decimal
}

type StoreService struct {
	repo   StoreRepository
	admins AdminFinder
}

func NewStoreService(repo StoreRepository, admins AdminFinder) *StoreService {
	return &StoreService{
		repo:   repo,
		admins: admins,
	}
}

// Register creates a closed store owned by adminID, who must be a superadmin.
func (s *StoreService) Register(ctx context.Context, adminID uint, store domain.Store) (domain.Store, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Store{}, ErrNotPermitted
		}

		return domain.Store{}, fmt.Errorf("s.admins.FindByID -> %w", err)
	}
	if !admin.CanManageStores() {
		return domain.Store{}, ErrNotPermitted
	}

	if store.Password, err = hashPassword(store.Password); err != nil {
		return domain.Store{}, err
	}
	store.AdminID = admin.ID
	store.Status = domain.StoreClosed

	created, err := s.repo.Create(ctx, store)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login checks the credentials and opens the store.
func (s *StoreService) Login(ctx context.Context, email, password string) (domain.Store, error) {
	store, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domain.Store{}, ErrWrongCredentials
		}

		return domain.Store{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if !passwordMatches(store.Password, password) {
		return domain.Store{}, ErrWrongCredentials
	}

	if err = s.repo.UpdateStatus(ctx, store.ID, domain.StoreOpen); err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}
	store.Status = domain.StoreOpen

	return store, nil
}

// Logout closes the store and forgets its live session.
func (s *StoreService) Logout(ctx context.Context, storeID uint) error {
	if err := s.repo.UpdateStatus(ctx, storeID, domain.StoreClosed); err != nil {
		return fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return nil
}

func (s *StoreService) GetStore(ctx context.Context, id uint) (domain.Store, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return store, nil
}

func (s *StoreService) UpdateCharges(ctx context.Context, storeID uint, update ChargesUpdate) (domain.Store, error) {
	store, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	charges := store.Charges
	if update.TaxEnabled != nil {
		charges.TaxEnabled = *update.TaxEnabled
	}
	if update.TaxRate != nil {
		charges.TaxRate = *update.TaxRate
	}
	if update.ServiceChargeEnabled != nil {
		charges.ServiceChargeEnabled = *update.ServiceChargeEnabled
	}
	if update.ServiceChargeValue != nil {
		charges.ServiceChargeValue = *update.ServiceChargeValue
	}
	if err = charges.CheckRange(); err != nil {
		return domain.Store{}, err
	}

	updated, err := s.repo.UpdateCharges(ctx, storeID, charges)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.UpdateCharges -> %w", err)
	}

	return updated, nil
}

func (s *StoreService) AddPushToken(ctx context.Context, storeID uint, token string) error {
	if err := s.repo.AddPushToken(ctx, storeID, token); err != nil {
		return fmt.Errorf("s.repo.AddPushToken -> %w", err)
	}

	return nil
}

func (s *StoreService) RemovePushToken(ctx context.Context, storeID uint, token string) error {
	if _, err := s.repo.RemovePushToken(ctx, storeID, token); err != nil {
		return fmt.Errorf("s.repo.RemovePushToken -> %w", err)
	}

	return nil
}

// JoinSession makes sessionID the store's live session, replacing any other.
func (s *StoreService) JoinSession(ctx context.Context, storeID uint, sessionID string) error {
	if err := s.repo.SetSocketID(ctx, storeID, sessionID); err != nil {
		return fmt.Errorf("s.repo.SetSocketID -> %w", err)
	}

	return nil
}

// LeaveSession forgets sessionID unless a newer session already replaced it.
func (s *StoreService) LeaveSession(ctx context.Context, storeID uint, sessionID string) {
	cleared, err := s.repo.ClearSocketID(ctx, storeID, sessionID)
	if err != nil {
		zap.L().Error("failed to clear realtime session",
			zap.Uint("store_id", storeID),
			zap.String("session_id", sessionID),
			zap.Error(err))
		return
	}
	if !cleared {
		zap.L().Debug("realtime session already replaced",
			zap.Uint("store_id", storeID),
			zap.String("session_id", sessionID))
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	return string(hash), nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
