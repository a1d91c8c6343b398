package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository"
)

type AdminRepository interface {
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	CreateFirst(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	FindByID(ctx context.Context, id uint) (domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (domain.Admin, error)
}

type StoreLister interface {
	FindByAdmin(ctx context.Context, adminID uint) ([]domain.Store, error)
}

type AdminService struct {
	repo   AdminRepository
	stores StoreLister
}

func NewAdminService(repo AdminRepository, stores StoreLister) *AdminService {
	return &AdminService{
		repo:   repo,
		stores: stores,
	}
}

// Bootstrap registers the first admin of a fresh installation as a
// superadmin. It fails with ErrAdminsExist once any admin exists.
func (s *AdminService) Bootstrap(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	var err error
	if admin.Password, err = hashPassword(admin.Password); err != nil {
		return domain.Admin{}, err
	}
	admin.Role = domain.AdminSuper

	created, err := s.repo.CreateFirst(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.CreateFirst -> %w", err)
	}

	return created, nil
}

// Register lets the superadmin creatorID add another admin. The role
// defaults to a plain admin.
func (s *AdminService) Register(ctx context.Context, creatorID uint, admin domain.Admin) (domain.Admin, error) {
	creator, err := s.repo.FindByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Admin{}, ErrNotPermitted
		}

		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if creator.Role != domain.AdminSuper {
		return domain.Admin{}, ErrNotPermitted
	}

	if admin.Password, err = hashPassword(admin.Password); err != nil {
		return domain.Admin{}, err
	}
	if admin.Role == "" {
		admin.Role = domain.AdminBasic
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AdminService) Login(ctx context.Context, email, password string) (domain.Admin, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Admin{}, ErrWrongCredentials
		}

		return domain.Admin{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if !passwordMatches(admin.Password, password) {
		return domain.Admin{}, ErrWrongCredentials
	}

	return admin, nil
}

func (s *AdminService) GetAdmin(ctx context.Context, id uint) (domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return admin, nil
}

func (s *AdminService) ListStores(ctx context.Context, adminID uint) ([]domain.Store, error) {
	stores, err := s.stores.FindByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("s.stores.FindByAdmin -> %w", err)
	}

	return stores, nil
}
