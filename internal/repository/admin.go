package repository

import (
	"context"
	"fmt"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository/dao"
)

var (
	ErrAdminEmailExists = dao.ErrAdminEmailExists
	ErrAdminNotFound    = dao.ErrAdminNotFound
	ErrAdminsExist      = dao.ErrAdminsExist
)

type AdminDAO interface {
	Insert(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	InsertFirst(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	FindByID(ctx context.Context, id uint) (dao.Admin, error)
	FindByEmail(ctx context.Context, email string) (dao.Admin, error)
}

type AdminRepository struct {
	dao AdminDAO
}

func NewAdminRepository(dao AdminDAO) *AdminRepository {
	return &AdminRepository{
		dao: dao,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(admin))
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

// CreateFirst creates admin only when no admin exists yet.
func (r *AdminRepository) CreateFirst(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	created, err := r.dao.InsertFirst(ctx, r.domainToDao(admin))
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.InsertFirst -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (domain.Admin, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (domain.Admin, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AdminRepository) domainToDao(a domain.Admin) dao.Admin {
	return dao.Admin{
		ID:        a.ID,
		FirstName: a.Name.FirstName,
		LastName:  a.Name.LastName,
		Email:     a.Email,
		Password:  a.Password,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *AdminRepository) daoToDomain(a dao.Admin) domain.Admin {
	return domain.Admin{
		ID: a.ID,
		Name: domain.FullName{
			FirstName: a.FirstName,
			LastName:  a.LastName,
		},
		Email:     a.Email,
		Password:  a.Password,
		Role:      domain.AdminRole(a.Role),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
