package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type CreateItemRequest struct {
	ItemName    string          `json:"itemName"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Price, validation.By(atLeastOne)),
	)
}

type UpdateItemRequest struct {
	ItemName    *string `json:"itemName"`
	Description *string `json:"description"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type AvailabilityRequest struct {
	Available *bool `json:"available"`
}

func (req *AvailabilityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Available, validation.NotNil),
	)
}

type CreateVariantRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (req *CreateVariantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Price, validation.By(atLeastOne)),
	)
}

type UpdateVariantRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

func (req *UpdateVariantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&req.Price, validation.By(atLeastOne)),
	)
}
