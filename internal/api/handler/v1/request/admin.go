package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/restron/restron-api/internal/domain"
)

var adminRoles = func() []interface{} {
	roles := make([]interface{}, len(domain.AdminRoles))
	for i, r := range domain.AdminRoles {
		roles[i] = string(r)
	}
	return roles
}()

type FullName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (n FullName) Validate() error {
	return validation.ValidateStruct(
		&n,
		validation.Field(&n.FirstName, validation.Required, validation.Length(3, 50)),
		validation.Field(&n.LastName, validation.Length(0, 50)),
	)
}

type RegisterAdminRequest struct {
	FullName FullName `json:"fullName"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	// Role is honored when a superadmin registers another admin.
	Role string `json:"role"`
}

func (req *RegisterAdminRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FullName),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.By(password)),
		validation.Field(&req.Role, validation.In(adminRoles...)),
	)
}

func (req *RegisterAdminRequest) Admin() domain.Admin {
	return domain.Admin{
		Name: domain.FullName{
			FirstName: req.FullName.FirstName,
			LastName:  req.FullName.LastName,
		},
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.AdminRole(req.Role),
	}
}
