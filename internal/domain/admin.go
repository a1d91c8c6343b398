package domain

import "time"

type AdminRole string

const (
	// AdminSuper may register stores and other admins.
	AdminSuper AdminRole = "superadmin"
	AdminBasic AdminRole = "admin"
)

var AdminRoles = []AdminRole{AdminSuper, AdminBasic}

type FullName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Admin operates one or more stores. Stores can only be registered by a
// superadmin and stay owned by the admin that registered them.
type Admin struct {
	ID        uint      `json:"id"`
	Name      FullName  `json:"fullName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      AdminRole `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a Admin) CanManageStores() bool {
	return a.Role == AdminSuper
}
