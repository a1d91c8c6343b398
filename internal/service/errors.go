package service

import (
	"errors"

	"github.com/restron/restron-api/internal/domain"
	"github.com/restron/restron-api/internal/repository"
)

// Validation.
var (
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12 and year must be positive")
	ErrInvalidPrice  = domain.ErrInvalidItemPrice

	ErrQuantityOutOfRange = domain.ErrQuantityOutOfRange
	ErrAmountOutOfRange   = domain.ErrAmountOutOfRange
	ErrChargesOutOfRange  = domain.ErrChargesOutOfRange
)

// Not found. Resources owned by another store are reported the same way.
var (
	ErrStoreNotFound      = repository.ErrStoreNotFound
	ErrAdminNotFound      = repository.ErrAdminNotFound
	ErrTableNotFound      = repository.ErrTableNotFound
	ErrItemNotFound       = repository.ErrItemNotFound
	ErrVariantNotFound    = domain.ErrVariantNotFound
	ErrOrderNotFound      = repository.ErrOrderNotFound
	ErrItemUnavailable    = errors.New("item is not available or doesn't exist")
	ErrVariantUnavailable = errors.New("variant is not available for this item")
	ErrNoTableOrders      = errors.New("no orders found for this table")
)

// Integrity.
var ErrPriceMismatch = errors.New("price mismatch detected")

// Conflict.
var (
	ErrStoreEmailExists    = repository.ErrStoreEmailExists
	ErrAdminEmailExists    = repository.ErrAdminEmailExists
	ErrAdminsExist         = repository.ErrAdminsExist
	ErrItemExists          = repository.ErrItemNameExists
	ErrVariantExists       = domain.ErrVariantExists
	ErrLastVariant         = domain.ErrLastVariant
	ErrOrderNotCancellable = domain.ErrOrderNotCancellable
	ErrTableNumberExists   = repository.ErrTableNumberExists
	ErrTableInUse          = repository.ErrTableInUse
)

// Authentication and authorization.
var (
	ErrWrongCredentials = errors.New("invalid email or password")
	ErrNotPermitted     = errors.New("you are not allowed to perform this action")
)
